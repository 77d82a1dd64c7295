// Package models contains the plain records edited by salesdesk forms.
// They carry no validation or persistence behavior; a nil pointer field means
// the attribute is absent.
package models
