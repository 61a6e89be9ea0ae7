package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/libertyaulas/liberty-backoffice/internal/entity"
	"github.com/libertyaulas/liberty-backoffice/internal/usecase"
)

func TestCaptureLeadSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadCaptured", ctx, mock.Anything).Return(nil)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockQueue)

	lead, err := uc.Execute(ctx, usecase.CaptureLeadInput{
		Name:    "  Maria Souza  ",
		Email:   "maria@example.com",
		Phone:   "(11) 98888-7766",
		City:    "Osasco",
		Message: "Quero aulas para habilitados",
	})

	assert.NoError(t, err)
	assert.NotNil(t, lead)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Maria Souza", lead.Name)
	assert.Equal(t, entity.LeadNew, lead.Status)
	assert.Equal(t, entity.LeadSourceSite, lead.Source)

	mockRepo.AssertCalled(t, "Create", ctx, mock.Anything)
	mockQueue.AssertCalled(t, "PublishLeadCaptured", ctx, mock.Anything)
}

func TestCaptureLeadValidationFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)
	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockQueue)

	cases := []struct {
		name  string
		input usecase.CaptureLeadInput
	}{
		{"missing name", usecase.CaptureLeadInput{Email: "a@b.com", City: "Osasco", Message: "oi"}},
		{"bad email", usecase.CaptureLeadInput{Name: "Ana", Email: "not-an-email", City: "Osasco", Message: "oi"}},
		{"bad phone", usecase.CaptureLeadInput{Name: "Ana", Email: "a@b.com", Phone: "123", City: "Osasco", Message: "oi"}},
		{"missing message", usecase.CaptureLeadInput{Name: "Ana", Email: "a@b.com", City: "Osasco"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lead, err := uc.Execute(ctx, tc.input)
			assert.Nil(t, lead)
			assert.True(t, usecase.IsDomainError(err))
		})
	}

	mockRepo.AssertNotCalled(t, "Create")
	mockQueue.AssertNotCalled(t, "PublishLeadCaptured")
}

// The lead row is the source of truth. A broken broker must not turn a
// captured lead into an error for the visitor.
func TestCaptureLeadPublishFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishLeadCaptured", ctx, mock.Anything).Return(errors.New("broker unavailable"))

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockQueue)

	lead, err := uc.Execute(ctx, usecase.CaptureLeadInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		City:    "Carapicuiba",
		Message: "Aulas de baliza",
	})

	assert.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestCaptureLeadRepositoryFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockLeadRepository)
	mockQueue := new(MockQueueProducer)
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockQueue)

	lead, err := uc.Execute(ctx, usecase.CaptureLeadInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		City:    "Osasco",
		Message: "oi",
	})

	assert.Nil(t, lead)
	assert.True(t, usecase.IsTechnicalError(err))
	mockQueue.AssertNotCalled(t, "PublishLeadCaptured")
}
