package db

import (
	"context"

	log "github.com/golang/glog"
)

var defaultDirectory Directory = NewStub()

// SetDefaultDirectory replaces the process-wide directory. The change is
// global, so tests must put the previous value back when they finish.
func SetDefaultDirectory(d Directory) {
	defaultDirectory = d
}

// DefaultDirectory returns the process-wide directory, which may be nil.
func DefaultDirectory() Directory {
	return defaultDirectory
}

// GetCustomerSync looks id up in the default directory. Errors from the
// directory are returned as is.
func GetCustomerSync(ctx context.Context, id int) (*Customer, error) {
	d := defaultDirectory
	if d == nil {
		return nil, ErrNotInitialized
	}

	customer, err := d.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	log.V(3).Infof("[GetCustomerSync] resolved customer %d via %T", id, d)
	return customer, nil
}
