package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title    string   `json:"title" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Skills   []string `json:"skills" validate:"required,min=1,dive,required"`
	Deadline string   `json:"deadline" validate:"required,datetime=2006-01-02"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()
	err := v.Validate(&sample{Title: "Engineer", Email: "a@b.co", Skills: []string{"go"}, Deadline: "2025-12-31"})
	assert.NoError(t, err)
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	v := New()
	err := v.Validate(&sample{Email: "nope", Skills: []string{}, Deadline: "31/12/2025"})
	require.Error(t, err)

	fields, ok := FieldErrors(err)
	require.True(t, ok)

	byField := map[string]FieldError{}
	for _, f := range fields {
		byField[f.Field] = f
	}
	assert.Equal(t, "required", byField["title"].Rule)
	assert.Equal(t, "title is required", byField["title"].Message)
	assert.Equal(t, "email", byField["email"].Rule)
	assert.Equal(t, "min", byField["skills"].Rule)
	assert.Equal(t, "skills must contain at least 1 item(s)", byField["skills"].Message)
	assert.Equal(t, "datetime", byField["deadline"].Rule)
}

func TestFieldErrors_NotValidation(t *testing.T) {
	_, ok := FieldErrors(errors.New("boom"))
	assert.False(t, ok)
}
