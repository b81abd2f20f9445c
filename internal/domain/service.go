package domain

import (
	"errors"
	"strings"
)

// Service is a reusable price-list entry used to quick-fill invoice items.
type Service struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// NewService creates a new service with a fresh identifier
func NewService(name string, rate float64) *Service {
	return &Service{
		ID:   NewID(),
		Name: strings.TrimSpace(name),
		Rate: rate,
	}
}

// Validate returns an error if the service is invalid
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("service name is required")
	}
	if s.Rate < 0 {
		return errors.New("rate cannot be negative")
	}
	return nil
}
