package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

const defaultClientPageSize = 100

type ClientManager struct {
	Repo ClientRepositoryInterface
}

func NewClientManager(repo ClientRepositoryInterface) *ClientManager {
	return &ClientManager{Repo: repo}
}

func (m *ClientManager) Create(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	client, err := entity.NewClient(
		cleanString(input.Name),
		cleanString(input.Email),
		cleanString(input.Phone),
		cleanString(input.City),
		cleanString(input.Address),
		cleanString(input.Notes),
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := m.Repo.Create(ctx, client); err != nil {
		return nil, databaseError("failed to create client", err)
	}
	return client, nil
}

func (m *ClientManager) List(ctx context.Context, input ListClientsInput) ([]entity.Client, int, error) {
	limit := input.Limit
	if limit < 1 {
		limit = defaultClientPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}
	status := input.Status
	if status == "all" {
		status = ""
	}

	clients, total, err := m.Repo.List(ctx, ClientQuery{
		Search: cleanString(input.Search),
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, databaseError("failed to list clients", err)
	}
	return clients, total, nil
}

func (m *ClientManager) Get(ctx context.Context, id string) (*entity.Client, error) {
	client, err := m.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound("client")
		}
		return nil, databaseError("failed to load client", err)
	}
	return client, nil
}

func (m *ClientManager) Update(ctx context.Context, id string, patch UpdateClientInput) (*entity.Client, error) {
	client, err := m.Get(ctx, id)
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
	apply(&client.Name, patch.Name)
	apply(&client.Email, patch.Email)
	apply(&client.Phone, patch.Phone)
	apply(&client.City, patch.City)
	apply(&client.Address, patch.Address)
	apply(&client.Notes, patch.Notes)
	apply(&client.Status, patch.Status)

	if changed == 0 {
		return nil, nothingToUpdate()
	}
	if err := client.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	client.UpdatedAt = time.Now()
	if err := m.Repo.Update(ctx, client); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound("client")
		}
		return nil, databaseError("failed to update client", err)
	}
	return client, nil
}

func (m *ClientManager) Delete(ctx context.Context, id string) error {
	if err := m.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFound("client")
		}
		return databaseError("failed to delete client", err)
	}
	return nil
}
