package store

import (
	"strings"

	"github.com/dmitrijs2005/roster/internal/roster/models"
)

// RecordStore owns the ordered sequence of records for the current run.
// Before the first sort the order is insertion order.
type RecordStore struct {
	records []models.Record
}

// New returns a store seeded with records in the given order.
func New(records ...models.Record) *RecordStore {
	s := &RecordStore{records: make([]models.Record, 0, len(records))}
	s.records = append(s.records, records...)
	return s
}

// Add appends r to the end of the sequence. No deduplication or validation.
func (s *RecordStore) Add(r models.Record) {
	s.records = append(s.records, r)
}

// Len reports the number of stored records.
func (s *RecordStore) Len() int {
	return len(s.records)
}

// SortByFullName reorders the sequence in place by ascending full-name key.
func (s *RecordStore) SortByFullName() {
	for i := 1; i < len(s.records); i++ {
		key := s.records[i]
		keyName := key.FullName()

		j := i - 1
		for j >= 0 && compareIgnoreCase(s.records[j].FullName(), keyName) > 0 {
			s.records[j+1] = s.records[j]
			j--
		}
		s.records[j+1] = key
	}
}

// SearchByFullName sorts the store and then binary-searches it for a record
// whose full name equals query, ignoring case and surrounding whitespace.
// When several records share the name, the one returned depends on the probe
// path.
func (s *RecordStore) SearchByFullName(query string) (models.Record, bool) {
	s.SortByFullName()

	query = strings.TrimSpace(query)
	left, right := 0, len(s.records)-1

	for left <= right {
		mid := left + (right-left)/2
		cmp := compareIgnoreCase(s.records[mid].FullName(), query)

		switch {
		case cmp == 0:
			return s.records[mid], true
		case cmp < 0:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return models.Record{}, false
}

// TopN returns a copy of the first min(n, Len()) records in current order.
// Callers usually sort first.
func (s *RecordStore) TopN(n int) []models.Record {
	if n <= 0 {
		return []models.Record{}
	}
	n = min(n, len(s.records))

	out := make([]models.Record, n)
	copy(out, s.records[:n])
	return out
}

// All returns a copy of the full sequence in current order.
func (s *RecordStore) All() []models.Record {
	return s.TopN(len(s.records))
}
