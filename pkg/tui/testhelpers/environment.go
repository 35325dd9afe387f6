package testhelpers

import (
	"fmt"
	"os"
	"testing"

	"github.com/formcraft/formcraft-cli/pkg/files"
	"github.com/formcraft/formcraft-cli/pkg/models"
	"github.com/formcraft/formcraft-cli/pkg/storage"
	"github.com/formcraft/formcraft-cli/pkg/store"
)

// TestEnvironment provides a store backed by memory plus an optional
// project directory for tests that touch disk.
type TestEnvironment struct {
	t       *testing.T
	TempDir string
	KV      *storage.MemoryKV
	nextID  int
}

// NewTestEnvironment creates an environment rooted in a fresh temp dir.
// Cleanup is registered with t.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	return &TestEnvironment{
		t:       t,
		TempDir: t.TempDir(),
		KV:      storage.NewMemoryKV(),
	}
}

// ChangeToTempDir makes the temp dir the working directory until the test ends
func (e *TestEnvironment) ChangeToTempDir() {
	e.t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		e.t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(e.TempDir); err != nil {
		e.t.Fatalf("Failed to change to temp dir: %v", err)
	}
	e.t.Cleanup(func() { _ = os.Chdir(wd) })
}

// InitProjectStructure creates the .formcraft layout in the temp dir
func (e *TestEnvironment) InitProjectStructure() {
	e.t.Helper()
	e.ChangeToTempDir()
	if err := files.InitProjectStructure(); err != nil {
		e.t.Fatalf("Failed to init project: %v", err)
	}
}

// NextID hands out field-1, field-2, ...
func (e *TestEnvironment) NextID() string {
	e.nextID++
	return fmt.Sprintf("field-%d", e.nextID)
}

// NewStore returns a store on the environment's memory KV with
// predictable ids.
func (e *TestEnvironment) NewStore() *store.Store {
	return store.New(e.KV,
		store.WithSnapshotKey(models.DefaultSnapshotKey),
		store.WithIDGenerator(e.NextID))
}

// NewStoreWith is NewStore pre-populated with fields
func (e *TestEnvironment) NewStoreWith(fields ...models.Field) *store.Store {
	s := e.NewStore()
	s.Replace(fields)
	return s
}

// SeedSnapshot writes fields to the KV as a saved snapshot
func (e *TestEnvironment) SeedSnapshot(fields ...models.Field) {
	e.t.Helper()
	text, err := store.EncodeFields(fields)
	if err != nil {
		e.t.Fatalf("Failed to encode snapshot: %v", err)
	}
	if err := e.KV.Set(models.DefaultSnapshotKey, text); err != nil {
		e.t.Fatalf("Failed to seed snapshot: %v", err)
	}
}
