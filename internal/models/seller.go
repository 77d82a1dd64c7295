package models

import "time"

// Seller is a salesperson attached to at most one department.
type Seller struct {
	ID         *int
	Name       string
	Email      string
	BirthDate  *time.Time
	BaseSalary *float64
	Department *Department
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// TimePtr returns a pointer to v.
func TimePtr(v time.Time) *time.Time { return &v }
