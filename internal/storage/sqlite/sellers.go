package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gravitrone/salesdesk/internal/models"
)

const birthDateLayout = "2006-01-02"

func sellerArgs(sl *models.Seller) []any {
	var birth sql.NullString
	if sl.BirthDate != nil {
		birth = sql.NullString{String: sl.BirthDate.Format(birthDateLayout), Valid: true}
	}
	var salary sql.NullFloat64
	if sl.BaseSalary != nil {
		salary = sql.NullFloat64{Float64: *sl.BaseSalary, Valid: true}
	}
	var dept sql.NullInt64
	if sl.Department != nil {
		dept = nullableInt(sl.Department.ID)
	}
	return []any{sl.Name, sl.Email, birth, salary, dept}
}

// InsertSeller persists a new seller and assigns its ID.
func (s *Store) InsertSeller(ctx context.Context, sl *models.Seller) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO sellers (name, email, birth_date, base_salary, department_id) VALUES (?, ?, ?, ?, ?)",
		sellerArgs(sl)...,
	)
	if err != nil {
		return fmt.Errorf("insert seller: %w", classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert seller id: %w", err)
	}
	n := int(id)
	sl.ID = &n
	s.logger.Debug("seller inserted", "id", n)
	return nil
}

// UpdateSeller overwrites every column of an existing seller.
func (s *Store) UpdateSeller(ctx context.Context, sl *models.Seller) error {
	if sl.ID == nil {
		return fmt.Errorf("update seller: %w", errNoID)
	}
	args := append(sellerArgs(sl), *sl.ID)
	res, err := s.db.ExecContext(ctx,
		"UPDATE sellers SET name = ?, email = ?, birth_date = ?, base_salary = ?, department_id = ? WHERE id = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("update seller: %w", classify(err))
	}
	return requireAffected(res, "seller", *sl.ID)
}

// DeleteSeller removes a seller.
func (s *Store) DeleteSeller(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sellers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	return requireAffected(res, "seller", id)
}

// ListSellers returns all sellers ordered by name with their department joined.
func (s *Store) ListSellers(ctx context.Context) ([]models.Seller, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.name, s.email, s.birth_date, s.base_salary, d.id, d.name
		FROM sellers s
		LEFT JOIN departments d ON d.id = s.department_id
		ORDER BY s.name, s.id`)
	if err != nil {
		return nil, fmt.Errorf("query sellers: %w", err)
	}
	defer rows.Close()

	var out []models.Seller
	for rows.Next() {
		var (
			id       int
			sl       models.Seller
			birth    sql.NullString
			salary   sql.NullFloat64
			deptID   sql.NullInt64
			deptName sql.NullString
		)
		if err := rows.Scan(&id, &sl.Name, &sl.Email, &birth, &salary, &deptID, &deptName); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		sl.ID = &id
		if birth.Valid {
			t, err := time.ParseInLocation(birthDateLayout, birth.String, time.Local)
			if err != nil {
				return nil, fmt.Errorf("parse birth date of seller %d: %w", id, err)
			}
			sl.BirthDate = &t
		}
		if salary.Valid {
			v := salary.Float64
			sl.BaseSalary = &v
		}
		if deptID.Valid {
			did := int(deptID.Int64)
			sl.Department = &models.Department{ID: &did, Name: deptName.String}
		}
		out = append(out, sl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sellers: %w", err)
	}
	return out, nil
}
