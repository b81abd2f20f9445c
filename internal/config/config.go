package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Store settings
	Store StoreConfig `yaml:"store"`

	// Invoice numbering and defaults
	Invoice InvoiceConfig `yaml:"invoice"`

	// Sender identity printed on invoices
	Company CompanyConfig `yaml:"company"`

	// Payment details printed on invoices
	Payment PaymentConfig `yaml:"payment"`

	// Login credentials
	Auth AuthConfig `yaml:"auth"`
}

type StoreConfig struct {
	Path string `yaml:"path"` // Path to the encrypted store file
}

type InvoiceConfig struct {
	OrgPrefix string `yaml:"org_prefix"` // Number prefix (e.g., "KLD")
	DueDays   int    `yaml:"due_days"`   // Days until a new draft is due
	ExportDir string `yaml:"export_dir"` // Directory for exported invoices
}

type CompanyConfig struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
}

type PaymentConfig struct {
	Bank    string `yaml:"bank"`
	Account string `yaml:"account"`
	Holder  string `yaml:"holder"`
}

type AuthConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// DefaultConfigPath returns ~/.config/kaludra/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "kaludra", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "kaludra", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Store: StoreConfig{
			Path: filepath.Join(homeDir, ".config", "kaludra", "kaludra.db"),
		},
		Invoice: InvoiceConfig{
			OrgPrefix: "KLD",
			DueDays:   7,
			ExportDir: filepath.Join(homeDir, ".config", "kaludra", "invoices"),
		},
		Company: CompanyConfig{
			Name:    "Reza Pahlevi Creative",
			Address: "Semarang, Indonesia",
			Email:   "rezapahlevi@kaludra.com",
		},
		Payment: PaymentConfig{
			Bank:    "Bank Permata",
			Account: "4206671993",
			Holder:  "Muhammad Reza Pahlevi",
		},
		Auth: AuthConfig{
			Email:    "masjaak@gmail.com",
			Password: "Xavieryzhaka",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0600)
}

// EnsureDirectories creates all necessary directories (store, exports)
func (c *Config) EnsureDirectories() error {
	storeDir := filepath.Dir(c.Store.Path)
	if err := os.MkdirAll(storeDir, 0700); err != nil {
		return err
	}

	if err := os.MkdirAll(c.Invoice.ExportDir, 0755); err != nil {
		return err
	}

	return nil
}
