package records

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/roster/internal/dbx"
	"github.com/dmitrijs2005/roster/internal/roster/models"
)

// SQLiteRepository keeps records in the employees table. Storage order is the
// autoincrement id.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository wraps an open database whose migrations have already
// been applied (see InitDatabase).
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const insertEmployee = `INSERT INTO employees
	(first_name, last_name, gender, email, salary, department, position, job_title, company)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func insertRecord(ctx context.Context, db dbx.DBTX, r models.Record) error {
	_, err := db.ExecContext(ctx, insertEmployee,
		r.FirstName, r.LastName, r.Gender, r.Email, r.Salary,
		r.Department, r.Position, r.JobTitle, r.Company)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// LoadAll returns every stored record in insertion order.
func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]models.Record, error) {
	query := `SELECT first_name, last_name, gender, email, salary, department, position, job_title, company
		FROM employees ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select employees: %w", err)
	}
	defer rows.Close()

	result := make([]models.Record, 0)
	for rows.Next() {
		var rec models.Record
		err := rows.Scan(&rec.FirstName, &rec.LastName, &rec.Gender, &rec.Email, &rec.Salary,
			&rec.Department, &rec.Position, &rec.JobTitle, &rec.Company)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Append inserts a single row.
func (r *SQLiteRepository) Append(ctx context.Context, rec models.Record) error {
	return insertRecord(ctx, r.db, rec)
}

// AppendAll inserts rs in one transaction; either all rows land or none do.
func (r *SQLiteRepository) AppendAll(ctx context.Context, rs []models.Record) error {
	if len(rs) == 0 {
		return nil
	}
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		for _, rec := range rs {
			if err := insertRecord(ctx, tx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close closes the underlying database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
