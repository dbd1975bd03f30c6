package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// DefaultShelfName is used when the config leaves the shelf name unset.
const DefaultShelfName = "Obsidian Content"

// DefaultBookName is the single-book name used when folder structure is
// not preserved and no book name was configured.
const DefaultBookName = "Obsidian Vault"

// BookStack holds the remote target's address and API credentials.
type BookStack struct {
	URL         string `json:"url"`
	TokenID     string `json:"token_id"`
	TokenSecret string `json:"token_secret"`
}

// Obsidian holds the vault location.
type Obsidian struct {
	VaultPath string `json:"vault_path"`
}

// Transfer holds the structure-mapping toggles and display names.
type Transfer struct {
	BookName          string `json:"book_name"`
	ShelfName         string `json:"shelf_name"`
	CreateChapters    bool   `json:"create_chapters_from_folders"`
	PreserveStructure bool   `json:"preserve_folder_structure"`
	MetadataParser    string `json:"metadata_parser"` // "yaml" or "basic"
}

// Config is the flat configuration record consumed by the commands.
type Config struct {
	BookStack BookStack `json:"bookstack"`
	Obsidian  Obsidian  `json:"obsidian"`
	Transfer  Transfer  `json:"transfer"`
}

// Default returns a config with every optional field filled in.
func Default() Config {
	return Config{
		Transfer: Transfer{
			BookName:          DefaultBookName,
			ShelfName:         DefaultShelfName,
			CreateChapters:    true,
			PreserveStructure: true,
			MetadataParser:    "yaml",
		},
	}
}

// DefaultPath returns the config file path from the VAULTSTACK_CONFIG
// env var, falling back to the XDG config directory.
func DefaultPath() string {
	if env := os.Getenv("VAULTSTACK_CONFIG"); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vaultstack", "config.json")
}

// Load reads a config file. The file may carry comments and trailing
// commas (JSONC). Unset optional fields fall back to defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(jsonc.ToJSON(raw), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a config file as indented JSON, creating parent
// directories as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0600)
}

func (c *Config) applyDefaults() {
	if c.Transfer.ShelfName == "" {
		c.Transfer.ShelfName = DefaultShelfName
	}
	if c.Transfer.BookName == "" {
		c.Transfer.BookName = DefaultBookName
	}
	if c.Transfer.MetadataParser == "" {
		c.Transfer.MetadataParser = "yaml"
	}
}

// Validate checks the fields every command needs before any work starts.
func (c *Config) Validate() error {
	if c.BookStack.URL == "" {
		return fmt.Errorf("bookstack.url is required")
	}
	if c.BookStack.TokenID == "" || c.BookStack.TokenSecret == "" {
		return fmt.Errorf("bookstack.token_id and bookstack.token_secret are required")
	}
	if c.Obsidian.VaultPath == "" {
		return fmt.Errorf("obsidian.vault_path is required")
	}
	return nil
}
