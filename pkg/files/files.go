package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/formcraft/formcraft-cli/pkg/models"
)

const (
	FormcraftDir = ".formcraft"
	StoreDir     = "store"
	LogsDir      = "logs"
	SettingsFile = "settings.yaml"
	ExportFile   = "FORM.md"
)

// InitProjectStructure creates the .formcraft folder layout in the current
// directory and writes default settings if none exist yet.
func InitProjectStructure() error {
	dirs := []string{
		FormcraftDir,
		filepath.Join(FormcraftDir, StoreDir),
		filepath.Join(FormcraftDir, LogsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if _, err := os.Stat(SettingsPath()); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// ProjectExists reports whether the current directory has been initialised
func ProjectExists() bool {
	info, err := os.Stat(FormcraftDir)
	return err == nil && info.IsDir()
}

// SettingsPath returns the settings file location
func SettingsPath() string {
	return filepath.Join(FormcraftDir, SettingsFile)
}

// ProjectPath joins rel onto the project directory. Absolute paths are
// returned unchanged.
func ProjectPath(rel string) string {
	if rel == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(FormcraftDir, rel)
}

// WriteFile writes content to a file (for FORM.md exports)
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
