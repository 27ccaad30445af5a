// Package memory is an in-memory storage backend with the same contracts as
// the pgsql one. It interprets specifications directly against the domain
// types, which keeps the use cases testable without a database and proves
// the repository contracts are storage-agnostic.
package memory

import (
	"sync"

	"github.com/expensescontrol/expenses_control_app/internal/core/domain"
)

// Store holds all records behind a single lock. It plays the role of the
// storage engine; units of work stage writes against it and flush on commit.
type Store struct {
	mu       sync.RWMutex
	expenses map[string]domain.Expense
	revenues map[string]domain.Revenue
	failures []domain.CommandFailure
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		expenses: make(map[string]domain.Expense),
		revenues: make(map[string]domain.Revenue),
	}
}

// ExpenseCount reports the number of persisted expenses.
func (s *Store) ExpenseCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.expenses)
}

// RevenueCount reports the number of persisted revenues.
func (s *Store) RevenueCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.revenues)
}

// Failures returns a copy of the persisted command failure records.
func (s *Store) Failures() []domain.CommandFailure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CommandFailure, len(s.failures))
	copy(out, s.failures)
	return out
}

func (s *Store) putExpense(e domain.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[e.ExpenseID] = e
}

func (s *Store) putRevenue(r domain.Revenue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenues[r.RevenueID] = r
}

func (s *Store) listExpenses() []domain.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		out = append(out, e)
	}
	return out
}

func (s *Store) listRevenues() []domain.Revenue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Revenue, 0, len(s.revenues))
	for _, r := range s.revenues {
		out = append(out, r)
	}
	return out
}

func (s *Store) appendFailure(f domain.CommandFailure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, f)
}
