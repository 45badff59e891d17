// Package services ties the in-memory record store to its persistence,
// generation and validation collaborators.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/roster/internal/common"
	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster/models"
	"github.com/dmitrijs2005/roster/internal/roster/repositories/records"
	"github.com/dmitrijs2005/roster/internal/roster/store"
)

// Validator rejects records that do not satisfy a policy.
type Validator interface {
	Validate(r models.Record) error
}

// Generator produces synthetic records.
type Generator interface {
	Record() models.Record
}

// RosterService is the operation set the interactive controller and the
// non-interactive commands run against. It is not safe for concurrent use.
type RosterService interface {
	// Load reads every persisted record into the store and returns how many
	// were added. A repository read failure is logged and treated as an
	// empty roster.
	Load(ctx context.Context) int

	// Add validates (when a validator is configured), stores and persists r.
	// A persistence failure leaves r in memory and returns an error wrapping
	// common.ErrorNotPersisted.
	Add(ctx context.Context, r models.Record) error

	// Generate creates n random records, stores them and persists them in
	// one batch.
	Generate(ctx context.Context, n int) ([]models.Record, error)

	// Top sorts the roster by full name and returns the first n records.
	Top(n int) []models.Record

	// All returns the roster in its current order.
	All() []models.Record

	// Search sorts the roster and looks up a record by full name.
	Search(query string) (models.Record, bool)

	// Count returns the number of records held in memory.
	Count() int

	Close() error
}

type rosterService struct {
	store     *store.RecordStore
	repo      records.Repository
	generator Generator
	validator Validator
	log       logging.Logger
}

// NewRosterService builds a service over an empty store. validator may be nil
// to accept every record.
func NewRosterService(repo records.Repository, gen Generator, v Validator, log logging.Logger) RosterService {
	return &rosterService{
		store:     store.New(),
		repo:      repo,
		generator: gen,
		validator: v,
		log:       log,
	}
}

func (s *rosterService) Load(ctx context.Context) int {
	rs, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.log.Warn(ctx, "could not read roster, starting empty", "err", err)
		return 0
	}

	n := 0
	for _, r := range rs {
		if s.validator != nil {
			if err := s.validator.Validate(r); err != nil {
				s.log.Warn(ctx, "skipping record", "name", r.FullName(), "err", err)
				continue
			}
		}
		s.store.Add(r)
		n++
	}

	s.log.Info(ctx, "roster loaded", "records", n)
	return n
}

func (s *rosterService) Add(ctx context.Context, r models.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.validator != nil {
		if err := s.validator.Validate(r); err != nil {
			return err
		}
	}

	s.store.Add(r)

	if err := s.repo.Append(ctx, r); err != nil {
		s.log.Warn(ctx, "append failed", "name", r.FullName(), "err", err)
		return fmt.Errorf("%w: %w", common.ErrorNotPersisted, err)
	}

	s.log.Debug(ctx, "record added", "name", r.FullName())
	return nil
}

func (s *rosterService) Generate(ctx context.Context, n int) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []models.Record{}, nil
	}

	rs := make([]models.Record, n)
	for i := range rs {
		rs[i] = s.generator.Record()
		s.store.Add(rs[i])
	}

	if err := s.repo.AppendAll(ctx, rs); err != nil {
		s.log.Warn(ctx, "append failed", "records", n, "err", err)
		return rs, fmt.Errorf("%w: %w", common.ErrorNotPersisted, err)
	}

	s.log.Debug(ctx, "records generated", "records", n)
	return rs, nil
}

func (s *rosterService) Top(n int) []models.Record {
	s.store.SortByFullName()
	return s.store.TopN(n)
}

func (s *rosterService) All() []models.Record {
	return s.store.All()
}

func (s *rosterService) Search(query string) (models.Record, bool) {
	return s.store.SearchByFullName(query)
}

func (s *rosterService) Count() int {
	return s.store.Len()
}

func (s *rosterService) Close() error {
	return s.repo.Close()
}
