// Package records provides persistence for roster records.
//
// # Overview
//
// Repository is the collaborator the roster service loads from at startup and
// appends to when a record is added or generated. Two implementations exist:
//
//   - FileRepository: the header-plus-lines text file (see importexport).
//   - SQLiteRepository: an employees table in a local SQLite database,
//     created by the embedded goose migrations (see InitDatabase).
//
// # Failure handling
//
// Repositories return errors; they do not decide whether a failure is fatal.
// FileRepository skips malformed lines while loading and reports them through
// its logger, because the file format allows them.
//
// Typical Usage
//
//	repo := records.NewFileRepository("Applicants_Form.txt", log)
//	all, err := repo.LoadAll(ctx)
//	err = repo.Append(ctx, rec)
package records
