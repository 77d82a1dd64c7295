package service

import (
	"context"
	"log/slog"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/models"
	"github.com/gravitrone/salesdesk/internal/storage"
)

var _ form.Service[models.Department] = (*DepartmentService)(nil)

// DepartmentService saves and lists departments.
type DepartmentService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewDepartmentService creates a DepartmentService over store.
func NewDepartmentService(store storage.Store, logger *slog.Logger) *DepartmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DepartmentService{store: store, logger: logger}
}

// SaveOrUpdate inserts d when it has no ID and updates it otherwise.
func (s *DepartmentService) SaveOrUpdate(ctx context.Context, d *models.Department) error {
	if d.ID == nil {
		if err := s.store.InsertDepartment(ctx, d); err != nil {
			s.logger.Error("insert department failed", "name", d.Name, "error", err)
			return persistenceError("save department", err)
		}
		s.logger.Info("department created", "id", *d.ID)
		return nil
	}
	if err := s.store.UpdateDepartment(ctx, d); err != nil {
		s.logger.Error("update department failed", "id", *d.ID, "error", err)
		return persistenceError("update department", err)
	}
	s.logger.Info("department updated", "id", *d.ID)
	return nil
}

// FindAll returns every department ordered by name.
func (s *DepartmentService) FindAll(ctx context.Context) ([]models.Department, error) {
	items, err := s.store.ListDepartments(ctx)
	if err != nil {
		return nil, persistenceError("list departments", err)
	}
	return items, nil
}

// Remove deletes the department with the given ID.
func (s *DepartmentService) Remove(ctx context.Context, id int) error {
	if err := s.store.DeleteDepartment(ctx, id); err != nil {
		s.logger.Error("delete department failed", "id", id, "error", err)
		return persistenceError("remove department", err)
	}
	s.logger.Info("department removed", "id", id)
	return nil
}
