package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
)

// ConvertLeadUseCase turns a lead into an active client and marks the lead
// converted. The two writes are not atomic: when the status update fails
// after the client insert succeeded, the created client is returned together
// with the error so the caller can see both outcomes. Nothing is rolled
// back; a lead left unmarked can be converted again or fixed by hand.
type ConvertLeadUseCase struct {
	Leads   LeadRepositoryInterface
	Clients ClientRepositoryInterface
}

func NewConvertLeadUseCase(leads LeadRepositoryInterface, clients ClientRepositoryInterface) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{Leads: leads, Clients: clients}
}

func (uc *ConvertLeadUseCase) Execute(ctx context.Context, leadID string) (*entity.Client, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound("lead")
		}
		return nil, databaseError("failed to load lead", err)
	}

	client, err := entity.NewClient(lead.Name, lead.Email, lead.Phone, lead.City, "", lead.Message)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}
	client.LeadID = lead.ID

	if err := uc.Clients.Create(ctx, client); err != nil {
		return nil, databaseError("failed to create client", err)
	}

	if err := uc.Leads.SetStatus(ctx, lead.ID, entity.LeadConverted); err != nil {
		log.Printf("client %s created but lead %s was not marked converted: %v", client.ID, lead.ID, err)
		return client, databaseError("client created but lead status update failed", err)
	}

	return client, nil
}
