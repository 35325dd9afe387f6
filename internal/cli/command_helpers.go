package cli

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/formcraft/formcraft-cli/internal/logging"
	"github.com/formcraft/formcraft-cli/pkg/files"
	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/storage"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// CommandContext manages project validation and the store a command
// operates on. Commands follow load, mutate, save.
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	Ephemeral   bool
	LogLevel    string

	kv          storage.KV
	store       *store.Store
	closeLogger func()
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() (*CommandContext, error) {
	return &CommandContext{
		ProjectPath: files.FormcraftDir,
	}, nil
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated || c.Ephemeral {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .formcraft directory found. Run 'formcraft init' first")
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		PrintWarning("Using default settings: %v", err)
		settings = models.DefaultSettings()
	}
	if c.Ephemeral {
		settings.Storage.Backend = models.StorageBackendMemory
	}

	c.Settings = settings
	return settings
}

// InitLogging starts the file logger described by the settings. A
// --log-level flag overrides settings.log.level.
func (c *CommandContext) InitLogging() error {
	if c.closeLogger != nil {
		return nil
	}

	settings := c.LoadSettingsWithDefault()
	level := settings.Log.Level
	if c.LogLevel != "" {
		level = c.LogLevel
	}

	path := ""
	if !c.Ephemeral && settings.Log.File != "" {
		path = files.ProjectPath(settings.Log.File)
	}

	closeFn, err := logging.Init(path, level)
	if err != nil {
		return err
	}
	c.closeLogger = closeFn
	return nil
}

// NewStore opens the configured backend and returns an empty store bound
// to it. The saved form is not read.
func (c *CommandContext) NewStore() (*store.Store, error) {
	if c.store != nil {
		return c.store, nil
	}

	if err := c.ValidateProject(); err != nil {
		return nil, err
	}
	if err := c.InitLogging(); err != nil {
		return nil, err
	}

	settings := c.LoadSettingsWithDefault()
	kv, err := storage.Open(settings.Storage, c.ProjectPath)
	if err != nil {
		return nil, err
	}

	c.kv = kv
	c.store = store.New(kv,
		store.WithSnapshotKey(settings.Storage.SnapshotKey),
		store.WithLogger(logging.L()),
	)
	return c.store, nil
}

// OpenStore is NewStore followed by loading the saved form. A missing
// snapshot yields an empty form.
func (c *CommandContext) OpenStore() (*store.Store, error) {
	if c.store != nil {
		return c.store, nil
	}

	s, err := c.NewStore()
	if err != nil {
		return nil, err
	}
	if err := s.LoadSnapshot(); err != nil && !errors.Is(err, store.ErrSnapshotNotFound) {
		c.Close()
		return nil, err
	}
	return s, nil
}

// Save persists the store opened by OpenStore
func (c *CommandContext) Save() error {
	if c.store == nil {
		return store.ErrNoStorage
	}
	return c.store.SaveSnapshot()
}

// Close releases the storage backend and flushes the logger
func (c *CommandContext) Close() {
	if c.kv != nil {
		if err := c.kv.Close(); err != nil {
			logging.Warn("failed to close storage", zap.Error(err))
		}
		c.kv = nil
		c.store = nil
	}
	if c.closeLogger != nil {
		c.closeLogger()
		c.closeLogger = nil
	}
}
