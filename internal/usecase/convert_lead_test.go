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

func TestConvertLeadCopiesContactData(t *testing.T) {
	ctx := context.Background()

	lead := &entity.Lead{
		ID:      "lead-1",
		Name:    "Maria Souza",
		Email:   "maria@example.com",
		Phone:   "11988887766",
		City:    "Osasco",
		Message: "Aulas para habilitados",
		Status:  entity.LeadNew,
	}

	mockLeads := new(MockLeadRepository)
	mockClients := new(MockClientRepository)
	mockLeads.On("FindByID", ctx, "lead-1").Return(lead, nil)
	mockClients.On("Create", ctx, mock.Anything).Return(nil)
	mockLeads.On("SetStatus", ctx, "lead-1", entity.LeadConverted).Return(nil)

	uc := usecase.NewConvertLeadUseCase(mockLeads, mockClients)

	client, err := uc.Execute(ctx, "lead-1")
	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "Maria Souza", client.Name)
	assert.Equal(t, "maria@example.com", client.Email)
	assert.Equal(t, "11988887766", client.Phone)
	assert.Equal(t, "Osasco", client.City)
	assert.Equal(t, "Aulas para habilitados", client.Notes)
	assert.Equal(t, "lead-1", client.LeadID)
	assert.Equal(t, entity.ClientActive, client.Status)

	mockLeads.AssertCalled(t, "SetStatus", ctx, "lead-1", entity.LeadConverted)
}

func TestConvertLeadNotFound(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockClients := new(MockClientRepository)
	mockLeads.On("FindByID", ctx, "missing").Return(nil, entity.ErrNotFound)

	uc := usecase.NewConvertLeadUseCase(mockLeads, mockClients)

	client, err := uc.Execute(ctx, "missing")
	assert.Nil(t, client)
	assert.Equal(t, usecase.CodeNotFound, domainCode(t, err))
	mockClients.AssertNotCalled(t, "Create")
}

// Conversion is two writes without a transaction. When the status update
// fails after the insert, the client must come back together with the error
// and nothing is rolled back.
func TestConvertLeadPartialFailureReturnsClient(t *testing.T) {
	ctx := context.Background()

	lead := &entity.Lead{
		ID:     "lead-1",
		Name:   "Maria Souza",
		Email:  "maria@example.com",
		Status: entity.LeadNew,
	}

	mockLeads := new(MockLeadRepository)
	mockClients := new(MockClientRepository)
	mockLeads.On("FindByID", ctx, "lead-1").Return(lead, nil)
	mockClients.On("Create", ctx, mock.Anything).Return(nil)
	mockLeads.On("SetStatus", ctx, "lead-1", entity.LeadConverted).Return(errors.New("connection reset"))

	uc := usecase.NewConvertLeadUseCase(mockLeads, mockClients)

	client, err := uc.Execute(ctx, "lead-1")
	assert.Error(t, err)
	assert.True(t, usecase.IsTechnicalError(err))
	assert.NotNil(t, client)
	assert.Equal(t, "Maria Souza", client.Name)

	mockClients.AssertNotCalled(t, "Delete")
}

func TestConvertLeadClientInsertFailure(t *testing.T) {
	ctx := context.Background()

	lead := &entity.Lead{
		ID:     "lead-1",
		Name:   "Maria Souza",
		Email:  "maria@example.com",
		Status: entity.LeadNew,
	}

	mockLeads := new(MockLeadRepository)
	mockClients := new(MockClientRepository)
	mockLeads.On("FindByID", ctx, "lead-1").Return(lead, nil)
	mockClients.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

	uc := usecase.NewConvertLeadUseCase(mockLeads, mockClients)

	client, err := uc.Execute(ctx, "lead-1")
	assert.Nil(t, client)
	assert.True(t, usecase.IsTechnicalError(err))
	mockLeads.AssertNotCalled(t, "SetStatus")
}
