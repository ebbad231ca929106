package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/zhubert/chatty/internal/errors"
)

// Platform values understood by the chat list.
const (
	PlatformTerminal = "terminal"
	PlatformWeb      = "web"
)

// Defaults applied when the config file omits a key.
const (
	DefaultDateFormat          = "Mon, Jan 2 2006"
	DefaultScrollToBottomLabel = "↓ new messages"
	DefaultEndReachedThreshold = 0.1
	DefaultAutoScrollDelayMS   = 100
	DefaultUserName            = "me"
)

// DefaultActions are the context menu entries offered when none are configured.
var DefaultActions = []string{"Copy", "Reply", "Delete"}

// DateHeader controls the header drawn above the first message of each day.
type DateHeader struct {
	Format   string `yaml:"format,omitempty"`   // Go time layout for days before yesterday
	Relative bool   `yaml:"relative,omitempty"` // "3 days ago" instead of Format
}

// Config holds the chat list and demo host configuration
type Config struct {
	Theme    string `yaml:"theme,omitempty"`    // UI theme name (e.g., "dark-purple", "nord")
	Platform string `yaml:"platform,omitempty"` // "terminal" or "web"
	UserName string `yaml:"user_name,omitempty"`

	Haptics bool `yaml:"haptics"` // pulse when someone else's message arrives

	// Notifications sends a desktop notification for each peer reply.
	Notifications bool `yaml:"notifications"`

	// NativeContextMenu selects the inline popup menu over the fallback
	// bottom sheet. Terminals that cannot draw overlays should turn it off.
	NativeContextMenu bool     `yaml:"native_context_menu"`
	Actions           []string `yaml:"actions,omitempty"`

	ShowScrollToBottom  bool   `yaml:"show_scroll_to_bottom"`
	ScrollToBottomLabel string `yaml:"scroll_to_bottom_label,omitempty"`

	DateHeader DateHeader `yaml:"date_header"`

	ReplyEnabled    bool `yaml:"reply_enabled"`
	TypingIndicator bool `yaml:"typing_indicator"`
	LoadEarlier     bool `yaml:"load_earlier"`
	Inverted        bool `yaml:"inverted"`

	EndReachedThreshold float64 `yaml:"end_reached_threshold"` // in viewport heights
	AutoScrollDelayMS   int     `yaml:"auto_scroll_delay_ms"`

	HistoryPath string `yaml:"history_path,omitempty"` // sqlite file, empty = ~/.chatty/history.db

	mu       sync.RWMutex
	filePath string
}

// Default returns a config with every option at its default.
func Default() *Config {
	return &Config{
		Platform:            PlatformTerminal,
		UserName:            DefaultUserName,
		Haptics:             true,
		NativeContextMenu:   true,
		Actions:             append([]string(nil), DefaultActions...),
		ShowScrollToBottom:  true,
		ScrollToBottomLabel: DefaultScrollToBottomLabel,
		DateHeader:          DateHeader{Format: DefaultDateFormat},
		ReplyEnabled:        true,
		TypingIndicator:     true,
		LoadEarlier:         true,
		EndReachedThreshold: DefaultEndReachedThreshold,
		AutoScrollDelayMS:   DefaultAutoScrollDelayMS,
	}
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatty"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads ~/.chatty/config.yaml, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, apperrors.ConfigLoadFailed("~/.chatty", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults,
// remembering path so Save creates it.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, apperrors.ConfigLoadFailed(path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.ConfigLoadFailed(path, err)
	}

	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ensureInitialized fills blanks left by a partial file. Not thread-safe;
// only called from LoadFrom before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.Platform == "" {
		c.Platform = PlatformTerminal
	}
	if c.UserName == "" {
		c.UserName = DefaultUserName
	}
	if c.DateHeader.Format == "" {
		c.DateHeader.Format = DefaultDateFormat
	}
	if c.ScrollToBottomLabel == "" {
		c.ScrollToBottomLabel = DefaultScrollToBottomLabel
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Platform != PlatformTerminal && c.Platform != PlatformWeb {
		return apperrors.ConfigInvalid(fmt.Sprintf("unknown platform %q", c.Platform))
	}
	if c.EndReachedThreshold < 0 {
		return apperrors.ConfigInvalid("end_reached_threshold must not be negative")
	}
	if c.AutoScrollDelayMS < 0 {
		return apperrors.ConfigInvalid("auto_scroll_delay_ms must not be negative")
	}

	seen := make(map[string]bool)
	for _, a := range c.Actions {
		if a == "" {
			return apperrors.ConfigInvalid("empty action label")
		}
		if seen[a] {
			return apperrors.ConfigInvalid(fmt.Sprintf("duplicate action: %s", a))
		}
		seen[a] = true
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		p, err := configPath()
		if err != nil {
			return apperrors.ConfigSaveFailed("~/.chatty", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.ConfigSaveFailed(path, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return apperrors.ConfigSaveFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.ConfigSaveFailed(path, err)
	}
	return nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Environment variables that override the file.
const (
	EnvTheme         = "CHATTY_THEME"
	EnvPlatform      = "CHATTY_PLATFORM"
	EnvHaptics       = "CHATTY_HAPTICS"
	EnvNativeMenu    = "CHATTY_NATIVE_MENU"
	EnvNotifications = "CHATTY_NOTIFICATIONS"
	EnvHistory       = "CHATTY_HISTORY"
	EnvUser          = "CHATTY_USER"
)

// ApplyEnv overlays CHATTY_* settings. Values come from the process
// environment first, then from dotenvPath when that file exists. The dotenv
// file is read, not loaded, so the process environment is left untouched.
func (c *Config) ApplyEnv(dotenvPath string) error {
	fileEnv := map[string]string{}
	if dotenvPath != "" {
		m, err := godotenv.Read(dotenvPath)
		if err != nil && !os.IsNotExist(err) {
			return apperrors.ConfigLoadFailed(dotenvPath, err)
		}
		if m != nil {
			fileEnv = m
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	c.mu.Lock()
	if v, ok := lookup(EnvTheme); ok && v != "" {
		c.Theme = v
	}
	if v, ok := lookup(EnvPlatform); ok && v != "" {
		c.Platform = v
	}
	if v, ok := lookup(EnvHistory); ok {
		c.HistoryPath = v
	}
	if v, ok := lookup(EnvUser); ok && v != "" {
		c.UserName = v
	}
	for key, dst := range map[string]*bool{EnvHaptics: &c.Haptics, EnvNativeMenu: &c.NativeContextMenu, EnvNotifications: &c.Notifications} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.mu.Unlock()
			return apperrors.ConfigInvalid(fmt.Sprintf("%s: %q is not a boolean", key, v))
		}
		*dst = b
	}
	c.mu.Unlock()

	return c.Validate()
}

// AutoScrollDelay returns the auto-scroll delay as a duration.
func (c *Config) AutoScrollDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.AutoScrollDelayMS) * time.Millisecond
}

// SetTheme records the chosen theme name.
func (c *Config) SetTheme(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = name
}

// GetTheme returns the configured theme name.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetHaptics turns haptic pulses on or off.
func (c *Config) SetHaptics(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Haptics = enabled
}

// GetActions returns a copy of the context menu labels.
func (c *Config) GetActions() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.Actions...)
}
