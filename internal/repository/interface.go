package repository

import (
	"context"

	"github.com/sumitsaluja27/n8n-Workflow/pkg/models"
)

// RecordStore is an interface for listing, loading and saving workflow records.
type RecordStore interface {
	// Dir returns the location the store reads from.
	Dir() string
	// List returns the names of the records in the store.
	List(ctx context.Context) ([]string, error)
	// Load reads and decodes the named record.
	Load(ctx context.Context, name string) (*models.Record, error)
	// Save encodes the record and overwrites the named record with it.
	Save(ctx context.Context, name string, record *models.Record) error
}
