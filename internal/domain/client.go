package domain

import (
	"errors"
	"strings"
)

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewClient creates a new client with a fresh identifier
func NewClient(name string) *Client {
	return &Client{
		ID:   NewID(),
		Name: strings.TrimSpace(name),
	}
}

// Validate returns an error if the client is invalid
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("client name is required")
	}
	return nil
}
