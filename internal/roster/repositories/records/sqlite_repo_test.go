package records

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/roster/internal/roster/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "roster.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesSchema(t *testing.T) {
	db := setupSQLite(t)

	assert.True(t, tableExists(t, db, "employees"))
	assert.True(t, tableExists(t, db, "goose_db_version"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	db := setupSQLite(t)

	require.NoError(t, RunMigrations(context.Background(), db))
	require.NoError(t, RunMigrations(context.Background(), db))
}

func TestSQLiteRepository_AppendAndLoadInOrder(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))
	ctx := context.Background()

	carl := models.Record{FirstName: "Carl", LastName: "Zee", Salary: 10}
	ann := models.Record{FirstName: "Ann", LastName: "Ng", Salary: 20.25}

	require.NoError(t, repo.Append(ctx, carl))
	require.NoError(t, repo.AppendAll(ctx, []models.Record{ann, ana}))

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Record{carl, ann, ana}, got)
}

func TestSQLiteRepository_LoadAllEmpty(t *testing.T) {
	repo := NewSQLiteRepository(setupSQLite(t))

	got, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteRepository_AppendAllRollsBackOnFailure(t *testing.T) {
	db := setupSQLite(t)
	repo := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`CREATE TRIGGER reject_mallory BEFORE INSERT ON employees
		WHEN NEW.first_name = 'Mallory'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)

	err = repo.AppendAll(ctx, []models.Record{ana, {FirstName: "Mallory", LastName: "X"}})
	require.Error(t, err)

	got, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "batch must be all or nothing")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	log, _ := testLogger(t)

	r, err := Open(ctx, StorageFile, filepath.Join(dir, "r.csv"), "", log)
	require.NoError(t, err)
	assert.IsType(t, &FileRepository{}, r)

	r, err = Open(ctx, StorageSQLite, "", filepath.Join(dir, "r.db"), log)
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepository{}, r)
	require.NoError(t, r.Close())

	_, err = Open(ctx, "postgres", "", "", log)
	require.Error(t, err)
}
