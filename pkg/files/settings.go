package files

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

// EnvPrefix prefixes environment overrides, e.g. FORMCRAFT_STORAGE_BACKEND
const EnvPrefix = "FORMCRAFT"

// ReadSettings loads settings from defaults, then settings.yaml (when
// present), then FORMCRAFT_* environment variables.
func ReadSettings() (*models.Settings, error) {
	return ReadSettingsFrom(SettingsPath())
}

// ReadSettingsFrom is ReadSettings with an explicit settings file
func ReadSettingsFrom(path string) (*models.Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, models.DefaultSettings())

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat settings %s: %w", path, err)
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	return &settings, nil
}

// WriteSettings saves settings to .formcraft/settings.yaml
func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := WriteFile(SettingsPath(), string(content)); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

func setDefaults(v *viper.Viper, d *models.Settings) {
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.snapshot_key", d.Storage.SnapshotKey)
	v.SetDefault("ui.show_preview", d.UI.ShowPreview)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}
