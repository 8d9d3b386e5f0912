// Package store holds the session's Record Store: the mapping of student
// name to mark that every analysis pass is computed over.
package store

import (
	"sort"

	"gradebook/internal/domain"
)

// Store is an in-memory mapping of student name to mark.
//
// Iteration order is first-encounter order, which makes max/min tie-breaking
// deterministic. Setting an existing name overwrites the mark but keeps the
// original position. The store serves a single interactive session and is not
// safe for concurrent use.
type Store struct {
	marks map[string]int
	names []string
}

// New creates an empty record store
func New() *Store {
	return &Store{
		marks: make(map[string]int),
	}
}

// FromRecords builds a store from a record slice, applying the usual
// overwrite-on-duplicate-name semantics.
func FromRecords(records []domain.Record) *Store {
	s := New()
	for _, r := range records {
		s.Set(r.Name, r.Mark)
	}
	return s
}

// Set adds or overwrites the mark for a student
func (s *Store) Set(name string, mark int) {
	if _, exists := s.marks[name]; !exists {
		s.names = append(s.names, name)
	}
	s.marks[name] = mark
}

// Get returns the mark for a student
func (s *Store) Get(name string) (int, bool) {
	mark, ok := s.marks[name]
	return mark, ok
}

// Len returns the number of students
func (s *Store) Len() int {
	return len(s.marks)
}

// Names returns the student names in first-encounter order
func (s *Store) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Marks returns the marks in first-encounter order
func (s *Store) Marks() []int {
	marks := make([]int, 0, len(s.names))
	for _, name := range s.names {
		marks = append(marks, s.marks[name])
	}
	return marks
}

// SortedNames returns the student names sorted ascending
func (s *Store) SortedNames() []string {
	names := s.Names()
	sort.Strings(names)
	return names
}

// Records returns a snapshot of all records in first-encounter order
func (s *Store) Records() []domain.Record {
	records := make([]domain.Record, 0, len(s.names))
	for _, name := range s.names {
		records = append(records, domain.Record{Name: name, Mark: s.marks[name]})
	}
	return records
}
