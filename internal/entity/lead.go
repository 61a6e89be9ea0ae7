package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadConverted = "converted"
	LeadLost      = "lost"
)

const LeadSourceSite = "site"

type Lead struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	Message string `json:"message,omitempty"`
	Source  string `json:"source"`
	Status  string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLead(name, email, phone, city, message, source string) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		City:      city,
		Message:   message,
		Source:    source,
		Status:    LeadNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if lead.Source == "" {
		lead.Source = LeadSourceSite
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}
	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
