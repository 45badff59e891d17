package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/roster/internal/filex"
	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster/importexport"
	"github.com/dmitrijs2005/roster/internal/roster/models"
)

// FileRepository keeps records in a text file: one header line followed by
// one importexport line per record. It assumes a single writer.
type FileRepository struct {
	path string
	log  logging.Logger
}

// NewFileRepository returns a repository over the file at path. The file does
// not need to exist yet.
func NewFileRepository(path string, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, log: log.With("path", path)}
}

// Path returns the backing file location.
func (r *FileRepository) Path() string {
	return r.path
}

// LoadAll reads the file, drops the first line as the header and parses the
// rest. Lines with too few fields are skipped; lines with a bad salary are
// kept with salary 0.
func (r *FileRepository) LoadAll(ctx context.Context) ([]models.Record, error) {
	lines, err := filex.ReadLines(r.path)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []models.Record{}, nil
	}

	result := make([]models.Record, 0, len(lines)-1)
	for i, line := range lines[1:] {
		lineNo := i + 2

		rec, err := importexport.ParseLine(line)
		switch {
		case err == nil:
		case errors.Is(err, importexport.ErrInvalidSalary):
			r.log.Warn(ctx, "salary defaulted to 0", "line", lineNo, "err", err)
		default:
			r.log.Debug(ctx, "skipping malformed line", "line", lineNo, "err", err)
			continue
		}
		result = append(result, rec)
	}

	return result, nil
}

// Append adds rec as one line at the end of the file.
func (r *FileRepository) Append(ctx context.Context, rec models.Record) error {
	return r.AppendAll(ctx, []models.Record{rec})
}

// AppendAll adds one line per record in a single write. A missing or empty
// file gets the header first. Nothing is written once ctx is cancelled.
func (r *FileRepository) AppendAll(ctx context.Context, rs []models.Record) error {
	if len(rs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, len(rs))
	for i, rec := range rs {
		lines[i] = importexport.FormatLine(rec)
	}

	if err := filex.AppendLines(r.path, importexport.Header, lines...); err != nil {
		return fmt.Errorf("append to roster file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is opened per call.
func (r *FileRepository) Close() error {
	return nil
}
