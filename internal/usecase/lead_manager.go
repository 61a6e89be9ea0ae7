package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

const defaultLeadPageSize = 20

// LeadManager backs the admin lead inbox: paged listing with search, field
// edits and deletion. Conversion lives in ConvertLeadUseCase.
type LeadManager struct {
	Repo LeadRepositoryInterface
}

func NewLeadManager(repo LeadRepositoryInterface) *LeadManager {
	return &LeadManager{Repo: repo}
}

func (m *LeadManager) List(ctx context.Context, input ListLeadsInput) ([]entity.Lead, int, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultLeadPageSize
	}

	status := input.Status
	if status == "all" {
		status = ""
	}

	leads, total, err := m.Repo.List(ctx, LeadQuery{
		Search: cleanString(input.Search),
		Status: status,
		Source: cleanString(input.Source),
		From:   cleanString(input.From),
		To:     cleanString(input.To),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		return nil, 0, databaseError("failed to list leads", err)
	}
	return leads, total, nil
}

func (m *LeadManager) Get(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := m.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound("lead")
		}
		return nil, databaseError("failed to load lead", err)
	}
	return lead, nil
}

func (m *LeadManager) Update(ctx context.Context, id string, patch UpdateLeadInput) (*entity.Lead, error) {
	lead, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := 0
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = cleanString(*src)
			changed++
		}
	}
	apply(&lead.Name, patch.Name)
	apply(&lead.Email, patch.Email)
	apply(&lead.Phone, patch.Phone)
	apply(&lead.City, patch.City)
	apply(&lead.Message, patch.Message)
	apply(&lead.Source, patch.Source)
	apply(&lead.Status, patch.Status)

	if changed == 0 {
		return nil, nothingToUpdate()
	}
	if err := lead.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	lead.UpdatedAt = time.Now()
	if err := m.Repo.Update(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound("lead")
		}
		return nil, databaseError("failed to update lead", err)
	}
	return lead, nil
}

func (m *LeadManager) Delete(ctx context.Context, id string) error {
	if err := m.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFound("lead")
		}
		return databaseError("failed to delete lead", err)
	}
	return nil
}
