package documents

import (
	"fmt"
	"os"
	"path/filepath"

	"scalehouse/internal/shared/config"
)

// Store keeps rendered documents on disk under a year-partitioned tree.
// Writes are atomic: the bytes land in a temp file first and are renamed
// into place, so a crash never leaves a partial document at the final
// path.
type Store struct {
	root       string
	reportsDir string
}

func NewStore(cfg *config.DocumentsConfig) *Store {
	return &Store{
		root:       cfg.Root,
		reportsDir: cfg.ReportsDir,
	}
}

// PathFor returns the storage path for a ticket document.
func (s *Store) PathFor(year int, number string) string {
	return filepath.Join(s.root, fmt.Sprintf("%d", year), number+".pdf")
}

// ReportPathFor returns the storage path for a generated report.
func (s *Store) ReportPathFor(name string) string {
	return filepath.Join(s.root, s.reportsDir, name)
}

// Write atomically persists data at path, creating parent directories as
// needed.
func (s *Store) Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp document: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close document: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move document into place: %w", err)
	}
	return nil
}

// Read returns the bytes stored at path.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// Remove deletes the document at path. Missing files are not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove document: %w", err)
	}
	return nil
}
