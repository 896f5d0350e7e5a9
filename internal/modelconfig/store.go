// Package modelconfig persists model-provider credentials and the
// active-provider selection as a TOML file, loaded at startup and
// saved on every change.
package modelconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/minqi/tsgen/internal/llm"
)

// ErrNoActiveModel is returned when no provider has credentials configured
var ErrNoActiveModel = errors.New("no active model configured")

// ModelConfig holds one provider's credentials and generation parameters
type ModelConfig struct {
	Provider         string   `toml:"provider"`
	BaseURL          string   `toml:"base_url"`
	APIKey           string   `toml:"api_key"`
	Model            string   `toml:"model"`
	Temperature      *float64 `toml:"temperature,omitempty"`
	MaxTokens        *int     `toml:"max_tokens,omitempty"`
	TopP             *float64 `toml:"top_p,omitempty"`
	PresencePenalty  *float64 `toml:"presence_penalty,omitempty"`
	FrequencyPenalty *float64 `toml:"frequency_penalty,omitempty"`
	Rules            string   `toml:"rules,omitempty"`
}

// TestResult records the outcome of the last connectivity test
type TestResult struct {
	Provider  string    `toml:"provider"`
	Success   bool      `toml:"success"`
	Message   string    `toml:"message"`
	Timestamp time.Time `toml:"timestamp"`
}

type storeFile struct {
	ActiveProvider string                 `toml:"active_provider"`
	LastTestResult *TestResult            `toml:"last_test_result,omitempty"`
	Configs        map[string]ModelConfig `toml:"configs"`
}

// Store is the in-memory view of the on-disk configuration
type Store struct {
	path string
	data storeFile
}

// DefaultPath returns ~/.tsgen/models.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tsgen", "models.toml"), nil
}

// Load reads the store from path; a missing file yields an empty store
func Load(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: storeFile{
			ActiveProvider: "openai",
			Configs:        map[string]ModelConfig{},
		},
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("model config path %s is a directory", path)
	}
	if _, err := toml.DecodeFile(path, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse model config %s: %w", path, err)
	}
	if s.data.Configs == nil {
		s.data.Configs = map[string]ModelConfig{}
	}
	return s, nil
}

// Save writes the store back to its file, creating the directory if needed
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to write model config: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s.data)
}

// Update stores a provider's configuration and makes it the active one
func (s *Store) Update(provider string, cfg ModelConfig) error {
	cfg.Provider = provider
	if cfg.BaseURL == "" {
		if p, ok := LookupProvider(provider); ok {
			cfg.BaseURL = p.BaseURL
		}
	}
	s.data.Configs[provider] = cfg
	s.data.ActiveProvider = provider
	return s.Save()
}

// Remove deletes a provider's configuration
func (s *Store) Remove(provider string) error {
	delete(s.data.Configs, provider)
	return s.Save()
}

// SetActive switches the active provider; it must already be configured
func (s *Store) SetActive(provider string) error {
	if _, ok := s.data.Configs[provider]; !ok {
		return fmt.Errorf("provider %s is not configured", provider)
	}
	s.data.ActiveProvider = provider
	return s.Save()
}

// ActiveProvider returns the currently selected provider id
func (s *Store) ActiveProvider() string {
	return s.data.ActiveProvider
}

// Configs returns all stored provider configurations
func (s *Store) Configs() map[string]ModelConfig {
	return s.data.Configs
}

// Active returns the active provider's configuration
func (s *Store) Active() (ModelConfig, error) {
	cfg, ok := s.data.Configs[s.data.ActiveProvider]
	if !ok || cfg.APIKey == "" {
		return ModelConfig{}, ErrNoActiveModel
	}
	return cfg, nil
}

// RecordTest stores the latest connectivity test outcome
func (s *Store) RecordTest(provider string, success bool, message string) error {
	s.data.LastTestResult = &TestResult{
		Provider:  provider,
		Success:   success,
		Message:   message,
		Timestamp: time.Now(),
	}
	return s.Save()
}

// LastTest returns the most recent connectivity test outcome, if any
func (s *Store) LastTest() *TestResult {
	return s.data.LastTestResult
}

// ActiveClient builds an llm.Client from the active configuration.
// Returns nil (without error) when nothing is configured so that
// callers can degrade to deterministic behavior.
func (s *Store) ActiveClient() *llm.Client {
	cfg, err := s.Active()
	if err != nil {
		return nil
	}
	return llm.NewClient(llm.Config{
		Provider:         cfg.Provider,
		BaseURL:          cfg.BaseURL,
		APIKey:           cfg.APIKey,
		Model:            cfg.Model,
		Temperature:      cfg.Temperature,
		MaxTokens:        cfg.MaxTokens,
		TopP:             cfg.TopP,
		PresencePenalty:  cfg.PresencePenalty,
		FrequencyPenalty: cfg.FrequencyPenalty,
		Rules:            cfg.Rules,
	})
}
