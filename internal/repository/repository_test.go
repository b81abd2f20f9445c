package repository

import (
	"context"
	"testing"

	"github.com/rezapahlevi/kaludra/internal/domain"
)

// fakeKV is an in-memory KV store for tests
type fakeKV struct {
	data map[string][]byte
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Put(_ context.Context, key string, value []byte) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func TestClientRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepo(newFakeKV())

	clients, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 0 {
		t.Fatalf("expected empty collection from fresh store, got %d", len(clients))
	}

	want := []domain.Client{
		{ID: "c1", Name: "Naya Studio", Email: "contact@nayastudio.com"},
		{ID: "c2", Name: "Second"},
	}
	if err := repo.Replace(ctx, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clients, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 2 || clients[0].Name != "Naya Studio" || clients[1].ID != "c2" {
		t.Fatalf("unexpected collection: %+v", clients)
	}
}

func TestReplaceOverwritesWholeCollection(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepo(newFakeKV())

	if err := repo.Replace(ctx, []domain.Service{{ID: "s1"}, {ID: "s2"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Replace(ctx, []domain.Service{{ID: "s3"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	services, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 1 || services[0].ID != "s3" {
		t.Fatalf("expected only s3 to remain, got %+v", services)
	}
}

func TestSessionRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepo(newFakeKV())

	loggedIn, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loggedIn {
		t.Fatal("expected logged out on fresh store")
	}

	if err := repo.Set(ctx, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loggedIn, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loggedIn {
		t.Fatal("expected logged in after Set")
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loggedIn, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loggedIn {
		t.Fatal("expected logged out after Clear")
	}
}

func TestSeedFreshStore(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()

	if err := Seed(ctx, kv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clients, err := NewClientRepo(kv).Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 1 || clients[0].Name != "Naya Studio" {
		t.Fatalf("unexpected seed clients: %+v", clients)
	}

	services, err := NewServiceRepo(kv).Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 3 {
		t.Fatalf("expected 3 seed services, got %d", len(services))
	}

	if _, ok := kv.data[KeyInvoices]; ok {
		t.Fatal("invoices must never be seeded")
	}
}

func TestSeedLeavesExistingDataAlone(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	clientRepo := NewClientRepo(kv)

	// An existing empty collection is a deliberate user state
	if err := clientRepo.Replace(ctx, []domain.Client{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Seed(ctx, kv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clients, err := clientRepo.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 0 {
		t.Fatalf("seed overwrote an existing collection: %+v", clients)
	}
}
