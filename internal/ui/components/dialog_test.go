package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialog(t *testing.T) {
	out := ConfirmDialog("Delete department", "Remove Books?")
	assert.Contains(t, out, "Delete department")
	assert.Contains(t, out, "Remove Books?")
	assert.Contains(t, out, "y: confirm")
}

func TestAlertDialog(t *testing.T) {
	out := AlertDialog("Error saving object", "duplicate key")
	assert.Contains(t, out, "Error saving object")
	assert.Contains(t, out, "duplicate key")
	assert.Contains(t, out, "press any key")
}
