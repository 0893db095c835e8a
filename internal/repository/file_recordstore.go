package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sumitsaluja27/n8n-Workflow/pkg/models"
)

// filePerm is only applied when a record file is recreated; existing files keep
// their mode.
const filePerm = 0o644

// FileRecordStore is a RecordStore backed by the files of a single directory.
type FileRecordStore struct {
	dir    string
	suffix string
}

// NewFileRecordStore creates a new FileRecordStore over the direct entries of
// dir whose name ends with suffix.
func NewFileRecordStore(dir, suffix string) *FileRecordStore {
	return &FileRecordStore{dir: dir, suffix: suffix}
}

// Dir returns the directory the store reads from.
func (s *FileRecordStore) Dir() string {
	return s.dir
}

// Matches reports whether name is a plain file name carrying the store's
// suffix, that is a name List could return.
func (s *FileRecordStore) Matches(name string) bool {
	return name != "" && filepath.Base(name) == name && strings.HasSuffix(name, s.suffix)
}

// List returns the matching file names in directory order. Sub-directories are
// never returned, whatever their name.
func (s *FileRecordStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrDirectoryAccess, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !s.Matches(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Load reads and decodes the named file.
func (s *FileRecordStore) Load(ctx context.Context, name string) (*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrRead, err)
	}
	return models.DecodeRecord(data)
}

// Save encodes the record and overwrites the named file in place.
func (s *FileRecordStore) Save(ctx context.Context, name string, record *models.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := record.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path(name), data, filePerm); err != nil {
		return fmt.Errorf("%w: %w", models.ErrWrite, err)
	}
	return nil
}

func (s *FileRecordStore) path(name string) string {
	return filepath.Join(s.dir, name)
}
