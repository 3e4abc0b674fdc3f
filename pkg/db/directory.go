// Package db is the customer directory seam of the testkit library.
//
// The library never talks to a concrete customer store. It resolves the
// process-wide default Directory at call time, which is a stub until a
// caller (usually a test) installs something else with SetDefaultDirectory.
package db

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable is returned by the stub directory; there is no real
	// backing store behind it.
	ErrUnavailable = errors.New("customer directory unavailable")
	// ErrNotFound is returned when a directory has no customer for an id.
	ErrNotFound = errors.New("customer not found")
	// ErrNotInitialized is returned when the default directory is nil.
	ErrNotInitialized = errors.New("customer directory not initialized")
)

// Customer is a loyalty program member.
type Customer struct {
	ID     int
	Email  string
	Points int
}

// Directory looks customers up by id.
type Directory interface {
	GetCustomer(ctx context.Context, id int) (*Customer, error)
}

// Stub is the placeholder Directory bound by default. It fails every lookup.
type Stub struct{}

// NewStub returns the placeholder directory.
func NewStub() *Stub {
	return &Stub{}
}

// GetCustomer always fails with ErrUnavailable.
func (s *Stub) GetCustomer(ctx context.Context, id int) (*Customer, error) {
	return nil, ErrUnavailable
}

// DirectoryFunc adapts a lookup function to the Directory interface.
type DirectoryFunc func(ctx context.Context, id int) (*Customer, error)

// GetCustomer calls f(ctx, id).
func (f DirectoryFunc) GetCustomer(ctx context.Context, id int) (*Customer, error) {
	return f(ctx, id)
}
