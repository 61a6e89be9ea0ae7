package usecase

import (
	"context"
	"io"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/queue"
)

type AppointmentRepositoryInterface interface {
	Create(ctx context.Context, a *entity.Appointment) error
	Update(ctx context.Context, a *entity.Appointment) error
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	ListAll(ctx context.Context) ([]entity.Appointment, error)
	ListByStatus(ctx context.Context, status string) ([]entity.Appointment, error)
	// SetStatus flips a scheduled appointment to the given terminal status.
	// Rows already out of "scheduled" are left untouched without error.
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type LeadQuery struct {
	Search string
	Status string
	Source string
	From   string
	To     string
	Limit  int
	Offset int
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context, q LeadQuery) ([]entity.Lead, int, error)
	Update(ctx context.Context, lead *entity.Lead) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type ClientQuery struct {
	Search string
	Status string
	Limit  int
	Offset int
}

type ClientRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Client) error
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, q ClientQuery) ([]entity.Client, int, error)
	Update(ctx context.Context, c *entity.Client) error
	Delete(ctx context.Context, id string) error
}

type PackageRepositoryInterface interface {
	Create(ctx context.Context, p *entity.Package) error
	Update(ctx context.Context, p *entity.Package) error
	FindByID(ctx context.Context, id string) (*entity.Package, error)
	List(ctx context.Context) ([]entity.Package, error)
	Delete(ctx context.Context, id string) error
}

type AreaRepositoryInterface interface {
	Create(ctx context.Context, a *entity.Area) error
	Update(ctx context.Context, a *entity.Area) error
	FindByID(ctx context.Context, id string) (*entity.Area, error)
	List(ctx context.Context, includeInactive bool) ([]entity.Area, error)
	Delete(ctx context.Context, id string) error
}

type VideoRepositoryInterface interface {
	Create(ctx context.Context, v *entity.Video) error
	Update(ctx context.Context, v *entity.Video) error
	FindByID(ctx context.Context, id string) (*entity.Video, error)
	List(ctx context.Context, includeInactive bool) ([]entity.Video, error)
	Delete(ctx context.Context, id string) error
}

type SiteTextRepositoryInterface interface {
	GetByKeys(ctx context.Context, keys []string) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}

type StorageUploader interface {
	Upload(ctx context.Context, bucket, objectPath, contentType string, body io.Reader) (string, error)
}
