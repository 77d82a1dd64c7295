package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationResultEmptyHasNoErrors(t *testing.T) {
	r := NewValidationResult()

	assert.False(t, r.HasErrors())
	_, ok := r.ErrorFor("name")
	assert.False(t, ok)
	assert.Empty(t, r.Keys())
	assert.NoError(t, r.Err())
}

func TestValidationResultAddErrorOverwritesWithoutDuplicating(t *testing.T) {
	r := NewValidationResult()
	r.AddError("name", "first")
	r.AddError("email", MsgRequired)
	r.AddError("name", "second")

	assert.True(t, r.HasErrors())
	msg, ok := r.ErrorFor("name")
	require.True(t, ok)
	assert.Equal(t, "second", msg)
	assert.Equal(t, []string{"name", "email"}, r.Keys())
	assert.Len(t, r.Errors(), 2)
}

func TestValidationResultErrorsReturnsCopy(t *testing.T) {
	r := NewValidationResult()
	r.AddError("name", MsgRequired)

	copied := r.Errors()
	copied["email"] = "x"

	_, ok := r.ErrorFor("email")
	assert.False(t, ok)
}

func TestValidationResultErrWrapsValidationSentinel(t *testing.T) {
	r := NewValidationResult()
	r.AddError("name", MsgRequired)
	r.AddError("email", MsgRequired)

	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgRequired, verr.Fields["name"])
	assert.Equal(t, "validation error: email: Field can't be empty; name: Field can't be empty", err.Error())
}

func TestNilValidationResultIsValid(t *testing.T) {
	var r *ValidationResult
	assert.False(t, r.HasErrors())
	assert.Nil(t, r.Keys())
	assert.Empty(t, r.Errors())
}

func TestPersistenceMessagePrefersCarriedMessage(t *testing.T) {
	err := &PersistenceError{Message: "duplicate key", Err: errors.New("UNIQUE constraint failed")}
	assert.Equal(t, "duplicate key", PersistenceMessage(err))
	assert.Equal(t, "boom", PersistenceMessage(errors.New("boom")))
	assert.Equal(t, "", PersistenceMessage(nil))
}
