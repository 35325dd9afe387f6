package models

// Storage backends understood by storage.Open
const (
	StorageBackendFile   = "file"
	StorageBackendBolt   = "bolt"
	StorageBackendMemory = "memory"
)

// DefaultSnapshotKey is the fixed key the form snapshot is stored under
const DefaultSnapshotKey = "formBuilderState"

// Settings represents the application configuration
type Settings struct {
	Storage StorageSettings `yaml:"storage" mapstructure:"storage"`
	UI      UISettings      `yaml:"ui" mapstructure:"ui"`
	Log     LogSettings     `yaml:"log" mapstructure:"log"`
}

// StorageSettings controls where snapshots are kept
type StorageSettings struct {
	Backend     string `yaml:"backend" mapstructure:"backend"` // "file", "bolt" or "memory"
	SnapshotKey string `yaml:"snapshot_key" mapstructure:"snapshot_key"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview bool   `yaml:"show_preview" mapstructure:"show_preview"`
	Mouse       bool   `yaml:"mouse" mapstructure:"mouse"`
	Title       string `yaml:"title" mapstructure:"title"`
}

// LogSettings controls the debug log written while the TUI owns the terminal
type LogSettings struct {
	Level string `yaml:"level" mapstructure:"level"`
	File  string `yaml:"file" mapstructure:"file"` // relative to the project dir; empty disables logging
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Storage: StorageSettings{
			Backend:     StorageBackendFile,
			SnapshotKey: DefaultSnapshotKey,
		},
		UI: UISettings{
			ShowPreview: true,
			Mouse:       true,
			Title:       "Form Builder",
		},
		Log: LogSettings{
			Level: "info",
			File:  "logs/formcraft.log",
		},
	}
}
