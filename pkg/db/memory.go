package db

import (
	"context"
	"fmt"
	"sync"
)

// MemoryDirectory is an in-memory Directory used by tests and examples in
// place of a real customer store.
type MemoryDirectory struct {
	mu        sync.Mutex
	customers map[int]Customer
	lookups   []int
	err       error
}

// NewMemoryDirectory returns a directory holding the given customers.
func NewMemoryDirectory(customers ...Customer) *MemoryDirectory {
	m := &MemoryDirectory{customers: make(map[int]Customer, len(customers))}
	for _, c := range customers {
		m.customers[c.ID] = c
	}
	return m
}

// WithError makes every subsequent lookup fail with err. A nil err restores
// normal behaviour.
func (m *MemoryDirectory) WithError(err error) *MemoryDirectory {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// Put adds or replaces a customer.
func (m *MemoryDirectory) Put(c Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers[c.ID] = c
}

// Lookups returns the ids requested so far, in call order.
func (m *MemoryDirectory) Lookups() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int, len(m.lookups))
	copy(out, m.lookups)
	return out
}

// GetCustomer returns a copy of the stored customer so callers cannot mutate
// the directory through it.
func (m *MemoryDirectory) GetCustomer(ctx context.Context, id int) (*Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookups = append(m.lookups, id)
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return &c, nil
}
