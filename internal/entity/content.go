package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Package is a lesson bundle shown on the public pricing section.
// Price is in whole BRL, the way the admin types it.
type Package struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       int    `json:"price"`
	LessonCount int    `json:"lesson_count"`
	Savings     string `json:"savings,omitempty"`
	CardColor   string `json:"card_color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPackage(title string, price, lessonCount int, savings, cardColor string) (*Package, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if price <= 0 {
		return nil, errors.New("price must be positive")
	}
	if lessonCount <= 0 {
		return nil, errors.New("lesson count must be positive")
	}
	if cardColor == "" {
		cardColor = "red"
	}
	return &Package{
		ID:          uuid.New().String(),
		Title:       title,
		Price:       price,
		LessonCount: lessonCount,
		Savings:     savings,
		CardColor:   cardColor,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}, nil
}

// Area is a city the school serves, shown with an optional cover image.
type Area struct {
	ID        string `json:"id"`
	City      string `json:"city"`
	ImageURL  string `json:"image_url,omitempty"`
	Active    bool   `json:"active"`
	SortOrder int    `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewArea(city, imageURL string, active bool, sortOrder int) (*Area, error) {
	if city == "" {
		return nil, errors.New("city is required")
	}
	return &Area{
		ID:        uuid.New().String(),
		City:      city,
		ImageURL:  imageURL,
		Active:    active,
		SortOrder: sortOrder,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// Video is a testimonial video embedded from YouTube.
type Video struct {
	ID        string `json:"id"`
	YoutubeID string `json:"youtube_id"`
	Title     string `json:"title,omitempty"`
	Active    bool   `json:"active"`
	SortOrder int    `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewVideo(youtubeID, title string, active bool, sortOrder int) (*Video, error) {
	if youtubeID == "" {
		return nil, errors.New("youtube id is required")
	}
	return &Video{
		ID:        uuid.New().String(),
		YoutubeID: youtubeID,
		Title:     title,
		Active:    active,
		SortOrder: sortOrder,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// SiteText is one editable text of the public site (hero title, footer
// contacts, about section and so on), keyed by a stable slug.
type SiteText struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
