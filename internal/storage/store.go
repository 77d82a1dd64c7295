// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/gravitrone/salesdesk/internal/models"
)

// Sentinel errors returned (wrapped) by Store implementations.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
	ErrInUse     = errors.New("record in use")
)

// Store defines department and seller storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// InsertDepartment persists a new department and sets its ID.
	InsertDepartment(ctx context.Context, d *models.Department) error
	// UpdateDepartment overwrites an existing department.
	// Returns ErrNotFound if no row has the department's ID.
	UpdateDepartment(ctx context.Context, d *models.Department) error
	// DeleteDepartment removes a department. Returns ErrInUse while sellers reference it.
	DeleteDepartment(ctx context.Context, id int) error
	// ListDepartments returns all departments ordered by name.
	ListDepartments(ctx context.Context) ([]models.Department, error)

	InsertSeller(ctx context.Context, s *models.Seller) error
	UpdateSeller(ctx context.Context, s *models.Seller) error
	DeleteSeller(ctx context.Context, id int) error
	// ListSellers returns all sellers ordered by name with their department loaded.
	ListSellers(ctx context.Context) ([]models.Seller, error)

	// Close releases any resources held by the store.
	Close() error
}
