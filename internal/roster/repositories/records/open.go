package records

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/roster/internal/logging"
)

// Open returns the repository selected by storage ("file" or "sqlite").
func Open(ctx context.Context, storage, dataFile, dbPath string, log logging.Logger) (Repository, error) {
	switch storage {
	case StorageFile, "":
		return NewFileRepository(dataFile, log), nil
	case StorageSQLite:
		db, err := InitDatabase(ctx, dbPath)
		if err != nil {
			return nil, err
		}
		return NewSQLiteRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", storage)
	}
}
