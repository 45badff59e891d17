package records

import (
	"context"

	"github.com/dmitrijs2005/roster/internal/roster/models"
)

// Repository loads all persisted records and appends new ones.
type Repository interface {
	// LoadAll returns every persisted record in storage order.
	LoadAll(ctx context.Context) ([]models.Record, error)

	// Append persists one record after all existing ones.
	Append(ctx context.Context, r models.Record) error

	// AppendAll persists several records in order with a single write.
	AppendAll(ctx context.Context, rs []models.Record) error

	// Close releases underlying resources.
	Close() error
}

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)
