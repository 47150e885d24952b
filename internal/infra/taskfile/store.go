// Package taskfile provides a file-backed implementation of DocumentStore.
package taskfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/okikae/mdtask/internal/domain"
	"github.com/okikae/mdtask/internal/infra/markdown"
)

// Ensure Store implements domain.DocumentStore.
var _ domain.DocumentStore = (*Store)(nil)

// Store reads and writes Markdown task documents on disk.
// Writes are atomic (temp file + rename) and serialized by an advisory
// lock next to the document.
type Store struct{}

// New creates a new Store.
func New() *Store {
	return &Store{}
}

// Exists reports whether a document exists at path.
func (s *Store) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat document: %w", err)
}

// Load parses the document at path.
func (s *Store) Load(path string) (*domain.Document, error) {
	var doc *domain.Document
	err := withLock(path, syscall.LOCK_SH, func() error {
		data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
			}
			return fmt.Errorf("read document: %w", err)
		}
		doc, err = markdown.Parse(path, string(data))
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	})
	return doc, err
}

// Save serializes the document back to doc.Path atomically.
func (s *Store) Save(doc *domain.Document) error {
	return withLock(doc.Path, syscall.LOCK_EX, func() error {
		out, err := markdown.Render(doc)
		if err != nil {
			return fmt.Errorf("render %s: %w", doc.Path, err)
		}

		tmpPath := fmt.Sprintf("%s.tmp.%d", doc.Path, os.Getpid())
		if err := os.WriteFile(tmpPath, []byte(out), 0o644); err != nil { //nolint:gosec // Document is operator-readable by design
			return fmt.Errorf("write temp file: %w", err)
		}
		if err := os.Rename(tmpPath, doc.Path); err != nil {
			_ = os.Remove(tmpPath)
			return fmt.Errorf("rename temp file: %w", err)
		}
		return nil
	})
}

// lockPath returns the advisory lock file for a document.
func lockPath(docPath string) string {
	dir, name := filepath.Split(docPath)
	return filepath.Join(dir, "."+name+".lock")
}

// withLock runs fn while holding an advisory lock on the document.
func withLock(docPath string, lockType int, fn func() error) error {
	lock, err := os.OpenFile(lockPath(docPath), os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer func() {
		_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
		_ = lock.Close()
	}()

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	return fn()
}
