package modelconfig_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/minqi/tsgen/internal/modelconfig"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "models.toml")
}

func TestLoadMissingFileGivesEmptyStore(t *testing.T) {
	s, err := modelconfig.Load(tempStorePath(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.ActiveProvider() != "openai" {
		t.Errorf("default active provider = %q", s.ActiveProvider())
	}
	if _, err := s.Active(); !errors.Is(err, modelconfig.ErrNoActiveModel) {
		t.Errorf("Active on empty store: err = %v", err)
	}
	if s.ActiveClient() != nil {
		t.Error("ActiveClient should be nil without credentials")
	}
}

func TestUpdateAndRoundTrip(t *testing.T) {
	path := tempStorePath(t)
	s, err := modelconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	temp := 0.3
	if err := s.Update("deepseek", modelconfig.ModelConfig{
		APIKey:      "sk-abc",
		Model:       "deepseek-chat",
		Temperature: &temp,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded, err := modelconfig.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.ActiveProvider() != "deepseek" {
		t.Errorf("active = %q, want deepseek", reloaded.ActiveProvider())
	}
	cfg, err := reloaded.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if cfg.APIKey != "sk-abc" || cfg.Model != "deepseek-chat" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.BaseURL != "https://api.deepseek.com/v1" {
		t.Errorf("base URL not filled from registry: %q", cfg.BaseURL)
	}
	if cfg.Temperature == nil || *cfg.Temperature != 0.3 {
		t.Errorf("temperature not round-tripped: %v", cfg.Temperature)
	}
}

func TestSetActiveRequiresConfiguredProvider(t *testing.T) {
	s, err := modelconfig.Load(tempStorePath(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.SetActive("zhipu"); err == nil {
		t.Error("expected error switching to unconfigured provider")
	}
	if err := s.Update("zhipu", modelconfig.ModelConfig{APIKey: "k", Model: "glm-4"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := s.SetActive("zhipu"); err != nil {
		t.Errorf("SetActive: %v", err)
	}
}

func TestRecordTestPersists(t *testing.T) {
	path := tempStorePath(t)
	s, err := modelconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := s.RecordTest("openai", false, "invalid API key"); err != nil {
		t.Fatalf("RecordTest: %v", err)
	}
	reloaded, err := modelconfig.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	last := reloaded.LastTest()
	if last == nil || last.Provider != "openai" || last.Success || last.Message != "invalid API key" {
		t.Errorf("last test = %+v", last)
	}
}

func TestLookupProvider(t *testing.T) {
	p, ok := modelconfig.LookupProvider("moonshot")
	if !ok || p.BaseURL != "https://api.moonshot.cn/v1" {
		t.Errorf("LookupProvider moonshot = %+v ok=%v", p, ok)
	}
	if _, ok := modelconfig.LookupProvider("nope"); ok {
		t.Error("unexpected hit for unknown provider")
	}
}
