package sqlite

import (
	"context"
	"fmt"

	"github.com/gravitrone/salesdesk/internal/models"
)

// InsertDepartment persists a new department and assigns its ID.
func (s *Store) InsertDepartment(ctx context.Context, d *models.Department) error {
	res, err := s.db.ExecContext(ctx, "INSERT INTO departments (name) VALUES (?)", d.Name)
	if err != nil {
		return fmt.Errorf("insert department: %w", classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert department id: %w", err)
	}
	n := int(id)
	d.ID = &n
	s.logger.Debug("department inserted", "id", n)
	return nil
}

// UpdateDepartment overwrites the department's name.
func (s *Store) UpdateDepartment(ctx context.Context, d *models.Department) error {
	if d.ID == nil {
		return fmt.Errorf("update department: %w", errNoID)
	}
	res, err := s.db.ExecContext(ctx, "UPDATE departments SET name = ? WHERE id = ?", d.Name, *d.ID)
	if err != nil {
		return fmt.Errorf("update department: %w", classify(err))
	}
	return requireAffected(res, "department", *d.ID)
}

// DeleteDepartment removes a department that no seller references.
func (s *Store) DeleteDepartment(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM departments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete department: %w", classify(err))
	}
	return requireAffected(res, "department", id)
}

// ListDepartments returns all departments ordered by name.
func (s *Store) ListDepartments(ctx context.Context) ([]models.Department, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM departments ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("query departments: %w", err)
	}
	defer rows.Close()

	var out []models.Department
	for rows.Next() {
		var id int
		var d models.Department
		if err := rows.Scan(&id, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		d.ID = &id
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate departments: %w", err)
	}
	return out, nil
}
