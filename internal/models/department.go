package models

// Department groups sellers. ID is nil until the record is persisted.
type Department struct {
	ID   *int
	Name string
}

// Label returns the display text used in choice fields and list rows.
func (d *Department) Label() string {
	if d == nil {
		return ""
	}
	return d.Name
}

// SameDepartment reports whether a and b refer to the same persisted record.
// Unsaved departments only match themselves.
func SameDepartment(a, b *Department) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ID == nil || b.ID == nil {
		return a == b
	}
	return *a.ID == *b.ID
}
