package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/ldo-cli/internal/core/domain"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ldo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ldo-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyBaseURL        = "forum.base_url"
	keyStrategy       = "fetch.strategy"
	keyTimeout        = "fetch.timeout_seconds"
	keyRate           = "fetch.rate"
	keyUserAgent      = "fetch.user_agent"
	keyBrowserCommand = "browser.command"
	keyBrowserArgs    = "browser.args"
	keyBrowserTimeout = "browser.timeout_seconds"
	keyLimit          = "display.limit"
	keyReadLimit      = "display.read_limit"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindStrings
)

type settingDef struct {
	key   string
	desc  string
	kind  valueKind
	apply func(s *domain.Settings, v any)
}

var settingDefs = []settingDef{
	{keyBaseURL, "Forum base URL", kindString, func(s *domain.Settings, v any) {
		s.BaseURL = strings.TrimRight(v.(string), "/")
	}},
	{keyStrategy, "Fetch strategy: http, browser or auto", kindString, func(s *domain.Settings, v any) {
		s.Strategy = domain.FetchStrategy(v.(string))
	}},
	{keyTimeout, "HTTP timeout in seconds", kindInt, func(s *domain.Settings, v any) {
		s.Timeout = time.Duration(v.(int)) * time.Second
	}},
	{keyRate, "Maximum requests per second", kindFloat, func(s *domain.Settings, v any) {
		s.RequestsPerSec = v.(float64)
	}},
	{keyUserAgent, "User-Agent header for HTTP requests", kindString, func(s *domain.Settings, v any) {
		s.UserAgent = v.(string)
	}},
	{keyBrowserCommand, "Browser automation command", kindString, func(s *domain.Settings, v any) {
		s.BrowserCommand = v.(string)
	}},
	{keyBrowserArgs, "Browser command arguments ({url} is replaced)", kindStrings, func(s *domain.Settings, v any) {
		s.BrowserArgs = v.([]string)
	}},
	{keyBrowserTimeout, "Browser command timeout in seconds", kindInt, func(s *domain.Settings, v any) {
		s.BrowserTimeout = time.Duration(v.(int)) * time.Second
	}},
	{keyLimit, "Default number of topics to show", kindInt, func(s *domain.Settings, v any) {
		s.Limit = v.(int)
	}},
	{keyReadLimit, "Default number of posts to show", kindInt, func(s *domain.Settings, v any) {
		s.ReadLimit = v.(int)
	}},
}

func lookupDef(key string) (settingDef, bool) {
	for _, def := range settingDefs {
		if def.key == key {
			return def, true
		}
	}
	return settingDef{}, false
}

// SettingsService resolves stored configuration into domain settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing keys take their defaults; a stored
// value of the wrong type, or one that fails validation, is ignored.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	for _, def := range settingDefs {
		raw, ok := s.configStore.Get(def.key)
		if !ok {
			continue
		}
		v, ok := coerce(def.kind, raw)
		if !ok {
			logger.Warn("Ignoring %s: unexpected value %v (%T)", def.key, raw, raw)
			continue
		}

		candidate := settings
		def.apply(&candidate, v)
		if err := candidate.Validate(); err != nil {
			logger.Warn("Ignoring %s: %v", def.key, err)
			continue
		}
		settings = candidate
	}

	return settings, nil
}

// Set parses value for key, validates the result and persists it.
func (s *SettingsService) Set(key, value string) error {
	def, ok := lookupDef(key)
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	v, err := parse(def.kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	def.apply(&settings, v)
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, v); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the settable keys in documentation order.
func (s *SettingsService) Keys() []driving.SettingKey {
	keys := make([]driving.SettingKey, len(settingDefs))
	for i, def := range settingDefs {
		keys[i] = driving.SettingKey{Key: def.key, Description: def.desc}
	}
	return keys
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// parse converts user input into the stored representation of a kind.
func parse(kind valueKind, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", value)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("expected a number, got %q", value)
		}
		return f, nil
	case kindStrings:
		return strings.Fields(value), nil
	default:
		return value, nil
	}
}

// coerce converts a loaded value (TOML gives int64 and []any) into the
// representation apply expects.
func coerce(kind valueKind, raw any) (any, bool) {
	switch kind {
	case kindInt:
		switch v := raw.(type) {
		case int:
			return v, true
		case int64:
			return int(v), true
		case float64:
			return int(v), true
		}
	case kindFloat:
		switch v := raw.(type) {
		case float64:
			return v, true
		case int64:
			return float64(v), true
		case int:
			return float64(v), true
		}
	case kindStrings:
		switch v := raw.(type) {
		case []string:
			return v, true
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				str, ok := item.(string)
				if !ok {
					return nil, false
				}
				out = append(out, str)
			}
			return out, true
		}
	default:
		if v, ok := raw.(string); ok {
			return v, true
		}
	}
	return nil, false
}
