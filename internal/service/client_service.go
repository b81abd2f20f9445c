package service

import (
	"context"
	"errors"

	"github.com/rezapahlevi/kaludra/internal/domain"
	"github.com/rezapahlevi/kaludra/internal/repository"
)

var ErrClientNotFound = errors.New("client not found")

// ClientService manages the client collection
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, client domain.Client) (*domain.Client, error)
	Update(ctx context.Context, client domain.Client) error
	Delete(ctx context.Context, id string) error
}

type clientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.Load(ctx)
}

func (s *clientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	clients, err := s.clientRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		if clients[i].ID == id {
			c := clients[i]
			return &c, nil
		}
	}
	return nil, ErrClientNotFound
}

func (s *clientService) Create(ctx context.Context, client domain.Client) (*domain.Client, error) {
	if err := client.Validate(); err != nil {
		return nil, err
	}
	if client.ID == "" {
		client.ID = domain.NewID()
	}

	clients, err := s.clientRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	clients = append(clients, client)

	if err := s.clientRepo.Replace(ctx, clients); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *clientService) Update(ctx context.Context, client domain.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	clients, err := s.clientRepo.Load(ctx)
	if err != nil {
		return err
	}
	for i := range clients {
		if clients[i].ID == client.ID {
			clients[i] = client
			return s.clientRepo.Replace(ctx, clients)
		}
	}
	return ErrClientNotFound
}

// Delete removes a client. Saved invoices keep their snapshotted client
// details, so deletion never rewrites billing history.
func (s *clientService) Delete(ctx context.Context, id string) error {
	clients, err := s.clientRepo.Load(ctx)
	if err != nil {
		return err
	}

	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(clients) {
		return nil
	}

	return s.clientRepo.Replace(ctx, kept)
}
