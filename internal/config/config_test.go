package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/zhubert/chatty/internal/errors"
)

func TestLoad_NewConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !strings.HasSuffix(cfg.Path(), filepath.Join(".chatty", "config.yaml")) {
		t.Errorf("unexpected config path %q", cfg.Path())
	}
	if cfg.Platform != PlatformTerminal {
		t.Errorf("Platform = %q, want terminal", cfg.Platform)
	}
	if !cfg.Haptics || !cfg.ReplyEnabled || !cfg.NativeContextMenu {
		t.Error("defaults should enable haptics, reply and the native menu")
	}
	if len(cfg.Actions) != len(DefaultActions) {
		t.Errorf("Actions = %v, want %v", cfg.Actions, DefaultActions)
	}
	if cfg.AutoScrollDelay() != 100*time.Millisecond {
		t.Errorf("AutoScrollDelay = %v, want 100ms", cfg.AutoScrollDelay())
	}
}

func TestDefault_ActionsAreCopied(t *testing.T) {
	cfg := Default()
	cfg.Actions[0] = "Mutated"
	if DefaultActions[0] != "Copy" {
		t.Error("Default should not share the DefaultActions backing array")
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "theme: nord\nhaptics: false\ndate_header:\n  relative: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.Theme)
	}
	if cfg.Haptics {
		t.Error("haptics should be disabled by the file")
	}
	if !cfg.DateHeader.Relative {
		t.Error("relative dates should be enabled by the file")
	}
	if cfg.DateHeader.Format != DefaultDateFormat {
		t.Errorf("DateHeader.Format = %q, want default", cfg.DateHeader.Format)
	}
	if !cfg.ShowScrollToBottom {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !apperrors.Is(err, apperrors.KindConfig) {
		t.Errorf("error kind = %v, want config", apperrors.GetKind(err))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"web platform", func(c *Config) { c.Platform = PlatformWeb }, false},
		{"unknown platform", func(c *Config) { c.Platform = "watch" }, true},
		{"negative threshold", func(c *Config) { c.EndReachedThreshold = -1 }, true},
		{"negative delay", func(c *Config) { c.AutoScrollDelayMS = -5 }, true},
		{"empty action", func(c *Config) { c.Actions = []string{"Copy", ""} }, true},
		{"duplicate action", func(c *Config) { c.Actions = []string{"Copy", "Copy"} }, true},
		{"no actions", func(c *Config) { c.Actions = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperrors.Is(err, apperrors.KindInvalid) {
				t.Errorf("error kind = %v, want invalid", apperrors.GetKind(err))
			}
		})
	}
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	cfg.SetTheme("dracula")
	cfg.SetHaptics(false)
	cfg.Actions = []string{"Copy", "Forward"}
	cfg.Inverted = true

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.GetTheme() != "dracula" {
		t.Errorf("Theme = %q, want dracula", loaded.GetTheme())
	}
	if loaded.Haptics {
		t.Error("haptics should have been saved as false")
	}
	if !loaded.Inverted {
		t.Error("inverted should have been saved")
	}
	if got := loaded.GetActions(); len(got) != 2 || got[1] != "Forward" {
		t.Errorf("Actions = %v", got)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	content := "CHATTY_THEME=gruvbox\nCHATTY_PLATFORM=web\nCHATTY_HAPTICS=false\nCHATTY_NOTIFICATIONS=1\n"
	if err := os.WriteFile(dotenv, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	// The process environment wins over the file.
	t.Setenv(EnvTheme, "nord")
	t.Setenv(EnvHistory, "/tmp/chat.db")

	cfg := Default()
	if err := cfg.ApplyEnv(dotenv); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, want nord from the environment", cfg.Theme)
	}
	if cfg.Platform != PlatformWeb {
		t.Errorf("Platform = %q, want web from .env", cfg.Platform)
	}
	if cfg.Haptics {
		t.Error("haptics should be disabled by .env")
	}
	if !cfg.Notifications {
		t.Error("notifications should be enabled by .env")
	}
	if cfg.HistoryPath != "/tmp/chat.db" {
		t.Errorf("HistoryPath = %q", cfg.HistoryPath)
	}
	if _, ok := os.LookupEnv(EnvPlatform); ok {
		t.Error("ApplyEnv should not export .env values into the process")
	}
}

func TestConfig_ApplyEnv_MissingFile(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestConfig_ApplyEnv_BadBool(t *testing.T) {
	t.Setenv(EnvNativeMenu, "sometimes")

	cfg := Default()
	err := cfg.ApplyEnv("")
	if err == nil {
		t.Fatal("expected error for non-boolean value")
	}
	if !apperrors.Is(err, apperrors.KindInvalid) {
		t.Errorf("error kind = %v, want invalid", apperrors.GetKind(err))
	}
}

func TestConfig_ApplyEnv_InvalidPlatform(t *testing.T) {
	t.Setenv(EnvPlatform, "toaster")

	if err := Default().ApplyEnv(""); err == nil {
		t.Error("expected validation error for unknown platform")
	}
}

func TestConfig_ConcurrentAccess(t *testing.T) {
	cfg := Default()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cfg.SetTheme("nord")
		}()
		go func() {
			defer wg.Done()
			_ = cfg.GetTheme()
			_ = cfg.GetActions()
		}()
	}
	wg.Wait()
}
