package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	ClientActive   = "active"
	ClientInactive = "inactive"
)

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Status  string `json:"status"`

	// Back-reference to the lead this client was converted from, when any.
	LeadID string `json:"lead_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewClient(name, email, phone, city, address, notes string) (*Client, error) {
	client := &Client{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		City:      city,
		Address:   address,
		Notes:     notes,
		Status:    ClientActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}
	return client, nil
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
