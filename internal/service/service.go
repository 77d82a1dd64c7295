// Package service implements the persistence services the entity forms save
// through. Storage failures leave this package as *form.PersistenceError.
package service

import (
	"errors"
	"fmt"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/storage"
)

// persistenceError wraps a storage failure with the message shown to users.
func persistenceError(op string, err error) error {
	msg := "database error: " + err.Error()
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		msg = storage.ErrDuplicate.Error()
	case errors.Is(err, storage.ErrNotFound):
		msg = storage.ErrNotFound.Error()
	case errors.Is(err, storage.ErrInUse):
		msg = storage.ErrInUse.Error()
	}
	return &form.PersistenceError{Message: msg, Err: fmt.Errorf("%s: %w", op, err)}
}
