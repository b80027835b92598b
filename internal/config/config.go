package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/muralfm/muralcli/internal/chain"
	"github.com/muralfm/muralcli/internal/contest"
)

const (
	configFile  = "config.json"
	walletsFile = "wallets.json"
)

// Config holds all muralcli configuration.
type Config struct {
	// ContractAddress is the deployed MusicContest contract.
	ContractAddress string `json:"contract_address"`

	// Network is the target chain the connect flow forces wallets onto.
	// Defaults to the Ancient8 testnet configuration; a different
	// deployment can point this at another network.
	Network chain.Network `json:"network"`

	// DefaultWallet names the wallet used when none is given.
	DefaultWallet string `json:"default_wallet,omitempty"`

	// Media service endpoints. API keys are never written to disk; they
	// come from the environment (see FromEnv hints per field).
	CloudinaryURL    string `json:"cloudinary_url,omitempty"`    // upload endpoint
	CloudinaryPreset string `json:"cloudinary_preset,omitempty"` // unsigned upload preset

	// internal: config dir path used for Save()
	configDir string
}

// Load reads config from dir (or creates defaults). dir defaults to
// ~/.muralcli; the MURAL_CONFIG_DIR environment variable overrides it.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".muralcli")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir

	if cfg.ContractAddress == "" {
		cfg.ContractAddress = contest.DefaultContractAddress
	}
	if cfg.Network.ChainID == "" {
		cfg.Network = chain.DefaultNetwork()
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// WalletsPath returns the wallet store file path.
func (c *Config) WalletsPath() string {
	return filepath.Join(c.configDir, walletsFile)
}

// GoogleAPIKey returns the generative-text API key from the environment.
func GoogleAPIKey() string { return os.Getenv("MURAL_GOOGLE_API_KEY") }

// HuggingFaceAPIKey returns the audio-generation API key from the
// environment.
func HuggingFaceAPIKey() string { return os.Getenv("MURAL_HUGGINGFACE_API_KEY") }

func defaults(dir string) *Config {
	return &Config{
		ContractAddress: contest.DefaultContractAddress,
		Network:         chain.DefaultNetwork(),
		configDir:       dir,
	}
}
