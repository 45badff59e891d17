package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster/generator"
	"github.com/dmitrijs2005/roster/internal/roster/importexport"
	"github.com/dmitrijs2005/roster/internal/roster/models"
	"github.com/dmitrijs2005/roster/internal/roster/repositories/records"
	"github.com/dmitrijs2005/roster/internal/roster/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	loaded    []models.Record
	loadErr   error
	appendErr error
	appended  []models.Record
	closed    bool
}

func (f *fakeRepo) LoadAll(ctx context.Context) ([]models.Record, error) {
	return f.loaded, f.loadErr
}

func (f *fakeRepo) Append(ctx context.Context, r models.Record) error {
	return f.AppendAll(ctx, []models.Record{r})
}

func (f *fakeRepo) AppendAll(ctx context.Context, rs []models.Record) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, rs...)
	return nil
}

func (f *fakeRepo) Close() error {
	f.closed = true
	return nil
}

func rec(first, last string) models.Record {
	return models.Record{FirstName: first, LastName: last}
}

func newService(repo records.Repository, v Validator) RosterService {
	return NewRosterService(repo, generator.New(1, models.DefaultCatalog()), v, logging.NewNop())
}

func TestLoad_EndToEndFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Applicants_Form.txt")
	content := importexport.Header + "\nAna,Silva,Female,a@x.com,50000,IT,Senior,Dev,Acme\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	svc := newService(records.NewFileRepository(path, logging.NewNop()), nil)
	ctx := context.Background()

	require.Equal(t, 1, svc.Load(ctx))
	require.Equal(t, 1, svc.Count())

	got, ok := svc.Search("ana silva")
	require.True(t, ok)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, 50000.0, got.Salary)

	_, ok = svc.Search("bob jones")
	assert.False(t, ok)
}

func TestLoad_ReadFailureStartsEmpty(t *testing.T) {
	svc := newService(&fakeRepo{loadErr: os.ErrPermission}, nil)

	assert.Equal(t, 0, svc.Load(context.Background()))
	assert.Equal(t, 0, svc.Count())
	_, ok := svc.Search("anyone")
	assert.False(t, ok)
}

func TestLoad_StrictSkipsOutOfCatalog(t *testing.T) {
	good := models.Record{FirstName: "Ana", LastName: "Silva", Gender: "Female", Department: "IT", Position: "Senior"}
	bad := models.Record{FirstName: "Bob", LastName: "Jones", Gender: "Male", Department: "Legal", Position: "Senior"}
	svc := newService(&fakeRepo{loaded: []models.Record{good, bad}}, validation.New(models.DefaultCatalog()))

	assert.Equal(t, 1, svc.Load(context.Background()))
	assert.Equal(t, []models.Record{good}, svc.All())
}

func TestAdd_StoresAndPersists(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, nil)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, rec("Carl", "Zee")))
	require.NoError(t, svc.Add(ctx, rec("Ann", "Ng")))
	require.NoError(t, svc.Add(ctx, rec("Bea", "Ng")))

	assert.Equal(t, []models.Record{rec("Carl", "Zee"), rec("Ann", "Ng"), rec("Bea", "Ng")}, repo.appended)

	top := svc.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"Ann Ng", "Bea Ng", "Carl Zee"},
		[]string{top[0].FullName(), top[1].FullName(), top[2].FullName()})
}

func TestAdd_PersistFailureKeepsRecordInMemory(t *testing.T) {
	diskFull := errors.New("disk full")
	svc := newService(&fakeRepo{appendErr: diskFull}, nil)

	err := svc.Add(context.Background(), rec("Ana", "Silva"))
	require.ErrorIs(t, err, common.ErrorNotPersisted)
	require.ErrorIs(t, err, diskFull)

	_, ok := svc.Search("Ana Silva")
	assert.True(t, ok)
}

func TestAdd_CancelledContextStoresNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	log := logging.NewNop()
	svc := NewRosterService(records.NewFileRepository(path, log), generator.New(1, models.DefaultCatalog()), nil, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Add(ctx, rec("Ana", "Silva"))
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, common.ErrorNotPersisted)
	assert.Equal(t, 0, svc.Count())

	rs, err := svc.Generate(ctx, 2)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rs)
	assert.Equal(t, 0, svc.Count())

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestAdd_StrictRejects(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, validation.New(models.DefaultCatalog()))

	err := svc.Add(context.Background(), models.Record{FirstName: "Ana", LastName: "Silva", Gender: "Female", Department: "Legal", Position: "Senior"})
	require.ErrorIs(t, err, common.ErrorCategoryNotAllowed)
	assert.Equal(t, 0, svc.Count())
	assert.Empty(t, repo.appended)
}

func TestGenerate(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(repo, nil)
	ctx := context.Background()

	rs, err := svc.Generate(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rs, 5)
	assert.Equal(t, rs, repo.appended)
	assert.Equal(t, 5, svc.Count())

	for _, r := range rs {
		_, ok := svc.Search(r.FullName())
		assert.True(t, ok)
	}

	rs, err = svc.Generate(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, rs)
}

func TestGenerate_PersistFailure(t *testing.T) {
	svc := newService(&fakeRepo{appendErr: os.ErrPermission}, nil)

	rs, err := svc.Generate(context.Background(), 2)
	require.ErrorIs(t, err, common.ErrorNotPersisted)
	assert.Len(t, rs, 2)
	assert.Equal(t, 2, svc.Count())
}

func TestTop_LimitsAndAllKeepsOrder(t *testing.T) {
	svc := newService(&fakeRepo{loaded: []models.Record{rec("Carl", "Zee"), rec("Ann", "Ng")}}, nil)
	svc.Load(context.Background())

	assert.Equal(t, []models.Record{rec("Carl", "Zee"), rec("Ann", "Ng")}, svc.All())
	assert.Equal(t, []models.Record{rec("Ann", "Ng")}, svc.Top(1))
	assert.Equal(t, []models.Record{rec("Ann", "Ng"), rec("Carl", "Zee")}, svc.All())
}

func TestClose(t *testing.T) {
	repo := &fakeRepo{}
	require.NoError(t, newService(repo, nil).Close())
	assert.True(t, repo.closed)
}
