package driving

import "github.com/custodia-labs/ldo-cli/internal/core/domain"

// SettingKey describes one user-settable configuration key.
type SettingKey struct {
	Key         string
	Description string
}

// SettingsService resolves configuration into domain settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() (domain.Settings, error)

	// Set validates and persists a single key from its string form.
	Set(key, value string) error

	// Keys lists the settable keys.
	Keys() []SettingKey

	// Path returns the backing configuration file path.
	Path() string
}
