package app

import (
	"context"
	"fmt"
	"syscall"

	"github.com/rezapahlevi/kaludra/internal/config"
	"github.com/rezapahlevi/kaludra/internal/crypto"
	"github.com/rezapahlevi/kaludra/internal/repository"
	"github.com/rezapahlevi/kaludra/internal/service"
	"github.com/rezapahlevi/kaludra/internal/store"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Store  *store.Store

	// Repositories
	ClientRepo  repository.ClientRepository
	ServiceRepo repository.ServiceRepository
	InvoiceRepo repository.InvoiceRepository
	SessionRepo repository.SessionRepository

	// Services
	AuthService    service.AuthService
	ClientService  service.ClientService
	CatalogService service.CatalogService
	InvoiceService service.InvoiceService
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Getting encryption key from keyring
// 3. Opening the store
// 4. Running migrations
// 5. Seeding starter data on first run
// 6. Creating repositories and services
func New(ctx context.Context) (*App, error) {
	// Load config from default path
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	// Ensure all necessary directories exist
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	// Get keyring for secure password storage
	keyring := crypto.NewKeyring()

	// Try to get existing encryption key
	password, err := keyring.GetKey()
	if err != nil {
		// No key exists, prompt user to set one
		fmt.Println("Setting up store encryption for the first time...")
		password, err = promptForPassword()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}

		// Store the key in keyring
		if err := keyring.SetKey(password); err != nil {
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}

	// Open the store with encryption
	kv, err := store.Open(cfg.Store.Path, password)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// Run migrations to ensure schema is up to date
	if err := kv.RunMigrations(); err != nil {
		kv.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed starter clients and services on a fresh store
	if err := repository.Seed(ctx, kv); err != nil {
		kv.Close()
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}

	// Create repositories
	clientRepo := repository.NewClientRepo(kv)
	serviceRepo := repository.NewServiceRepo(kv)
	invoiceRepo := repository.NewInvoiceRepo(kv)
	sessionRepo := repository.NewSessionRepo(kv)

	// Create services with their dependencies
	authService := service.NewAuthService(sessionRepo, cfg.Auth.Email, cfg.Auth.Password)
	clientService := service.NewClientService(clientRepo)
	catalogService := service.NewCatalogService(serviceRepo)
	invoiceService := service.NewInvoiceService(
		invoiceRepo, clientRepo, serviceRepo,
		cfg.Invoice.OrgPrefix, cfg.Invoice.DueDays,
	)

	return &App{
		Config:         cfg,
		Store:          kv,
		ClientRepo:     clientRepo,
		ServiceRepo:    serviceRepo,
		InvoiceRepo:    invoiceRepo,
		SessionRepo:    sessionRepo,
		AuthService:    authService,
		ClientService:  clientService,
		CatalogService: catalogService,
		InvoiceService: invoiceService,
	}, nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// promptForPassword prompts user for a new store password (first run)
// This should be called when keyring has no stored key
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your invoicing data will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for store encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	// Confirm password
	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // New line after confirmation
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	// Check if passwords match
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Store encryption configured successfully")
	fmt.Println()

	return string(password), nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
