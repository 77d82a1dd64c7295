// Package schema defines the field specs and bindings for each entity form.
package schema

import (
	"time"

	"github.com/gravitrone/salesdesk/internal/form"
	"github.com/gravitrone/salesdesk/internal/models"
)

// Field keys shared by the forms, the list screens and the CLI flags.
const (
	KeyID         = "id"
	KeyName       = "name"
	KeyEmail      = "email"
	KeyBirthDate  = "birthDate"
	KeyBaseSalary = "baseSalary"
	KeyDepartment = "department"
)

var zero = 0.0

var idSpec = form.FieldSpec{Key: KeyID, Label: "Id", Kind: form.KindInteger, Identity: true}

func getID(id *int) any {
	if id == nil {
		return nil
	}
	return *id
}

func setID(dst **int, v any) {
	if n, ok := v.(int); ok {
		*dst = &n
	}
}

func getText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Department returns the binder for the department form.
func Department(format form.Format) *form.Binder[models.Department] {
	return form.NewBinder(format,
		form.Binding[models.Department]{
			Spec: idSpec,
			Get:  func(d *models.Department) any { return getID(d.ID) },
			Set:  func(d *models.Department, v any) { setID(&d.ID, v) },
		},
		form.Binding[models.Department]{
			Spec: form.FieldSpec{Key: KeyName, Label: "Name", Kind: form.KindText, Required: true, MaxLen: 30},
			Get:  func(d *models.Department) any { return getText(d.Name) },
			Set:  func(d *models.Department, v any) { d.Name, _ = v.(string) },
		},
	)
}

// Seller returns the binder for the seller form.
func Seller(format form.Format) *form.Binder[models.Seller] {
	return form.NewBinder(format,
		form.Binding[models.Seller]{
			Spec: idSpec,
			Get:  func(s *models.Seller) any { return getID(s.ID) },
			Set:  func(s *models.Seller, v any) { setID(&s.ID, v) },
		},
		form.Binding[models.Seller]{
			Spec: form.FieldSpec{Key: KeyName, Label: "Name", Kind: form.KindText, Required: true, MaxLen: 70},
			Get:  func(s *models.Seller) any { return getText(s.Name) },
			Set:  func(s *models.Seller, v any) { s.Name, _ = v.(string) },
		},
		form.Binding[models.Seller]{
			Spec: form.FieldSpec{Key: KeyEmail, Label: "Email", Kind: form.KindText, Required: true, MaxLen: 50},
			Get:  func(s *models.Seller) any { return getText(s.Email) },
			Set:  func(s *models.Seller, v any) { s.Email, _ = v.(string) },
		},
		form.Binding[models.Seller]{
			Spec: form.FieldSpec{Key: KeyBirthDate, Label: "Birth date", Kind: form.KindDate, Required: true, MaxLen: form.DateInputLen},
			Get: func(s *models.Seller) any {
				if s.BirthDate == nil {
					return nil
				}
				return *s.BirthDate
			},
			Set: func(s *models.Seller, v any) {
				if t, ok := v.(time.Time); ok {
					s.BirthDate = &t
				}
			},
		},
		form.Binding[models.Seller]{
			Spec: form.FieldSpec{Key: KeyBaseSalary, Label: "Base salary", Kind: form.KindDecimal, Required: true, Min: &zero},
			Get: func(s *models.Seller) any {
				if s.BaseSalary == nil {
					return nil
				}
				return *s.BaseSalary
			},
			Set: func(s *models.Seller, v any) {
				if x, ok := v.(float64); ok {
					s.BaseSalary = &x
				}
			},
		},
		form.Binding[models.Seller]{
			Spec: form.FieldSpec{Key: KeyDepartment, Label: "Department", Kind: form.KindReference},
			Get: func(s *models.Seller) any {
				if s.Department == nil {
					return nil
				}
				return s.Department
			},
			Set: func(s *models.Seller, v any) {
				if d, ok := v.(*models.Department); ok {
					s.Department = d
				}
			},
		},
	)
}

// SameDepartment matches department references held by a choice field.
func SameDepartment(a, b any) bool {
	da, _ := a.(*models.Department)
	db, _ := b.(*models.Department)
	return models.SameDepartment(da, db)
}

// DepartmentOptions turns departments into choice options for the seller form.
func DepartmentOptions(departments []models.Department) []form.Option {
	options := make([]form.Option, 0, len(departments))
	for i := range departments {
		d := &departments[i]
		options = append(options, form.Option{Label: d.Name, Value: d})
	}
	return options
}

// SellerFields builds the seller field set with department choices loaded.
func SellerFields(binder *form.Binder[models.Seller], departments []models.Department) form.Fields {
	fields := form.NewFields(binder.Specs())
	if choice, ok := fields[KeyDepartment].(*form.ChoiceField); ok {
		choice.SetEqual(SameDepartment)
		choice.SetOptions(DepartmentOptions(departments))
	}
	return fields
}
