package usecase

import (
	"context"
	"log"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
	"github.com/libertyaulas/liberty-backoffice/internal/infra/queue"
)

// CaptureLeadUseCase handles the public contact form. The lead row is the
// only thing that must not be lost: notification fan-out goes through the
// queue and a publish failure is logged, not surfaced to the visitor.
type CaptureLeadUseCase struct {
	Repo  LeadRepositoryInterface
	Queue QueueProducerInterface
}

func NewCaptureLeadUseCase(repo LeadRepositoryInterface, producer QueueProducerInterface) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{Repo: repo, Queue: producer}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*entity.Lead, error) {
	validationErrors := ValidateCaptureLeadInput(input)
	if len(validationErrors) > 0 {
		return nil, validationFailed(validationErrors)
	}

	lead, err := entity.NewLead(
		cleanString(input.Name),
		cleanString(input.Email),
		cleanString(input.Phone),
		cleanString(input.City),
		cleanString(input.Message),
		cleanString(input.Source),
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, databaseError("failed to save lead", err)
	}

	if uc.Queue != nil {
		payload := queue.LeadCapturedPayload{
			LeadID:  lead.ID,
			Name:    lead.Name,
			Email:   lead.Email,
			Phone:   lead.Phone,
			City:    lead.City,
			Message: lead.Message,
			Source:  lead.Source,
		}
		if err := uc.Queue.PublishLeadCaptured(ctx, payload); err != nil {
			log.Printf("lead %s saved but notification publish failed: %v", lead.ID, err)
		}
	}

	return lead, nil
}
