package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldInput struct {
	Name string `validate:"required,min=1,max=255"`
	Type string `validate:"required,fieldtype"`
}

type colorInput struct {
	Color string `validate:"omitempty,hexcolor_optional"`
}

func TestValidateRequired(t *testing.T) {
	v := New()

	err := v.Validate(fieldInput{Name: "", Type: "text"})
	require.Error(t, err)

	var validationErrs ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	require.Len(t, validationErrs, 1)
	assert.Equal(t, "Name", validationErrs[0].Field)
	assert.Equal(t, "required", validationErrs[0].Tag)
	assert.Contains(t, validationErrs[0].Message, "required")
}

func TestValidateFieldTypeTag(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(fieldInput{Name: "Liters", Type: "number"}))
	assert.NoError(t, v.Validate(fieldInput{Name: "Brand", Type: "text"}))

	err := v.Validate(fieldInput{Name: "When", Type: "date"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'text' or 'number'")
}

func TestValidateHexColorTag(t *testing.T) {
	v := New()

	tests := []struct {
		color string
		valid bool
	}{
		{"", true},
		{"#ef4444", true},
		{"#ABCDEF", true},
		{"ef4444", false},
		{"#ef44", false},
		{"#gggggg", false},
		{"#ef4444ff", false},
	}

	for _, tt := range tests {
		err := v.Validate(colorInput{Color: tt.color})
		if tt.valid {
			assert.NoError(t, err, "color %q", tt.color)
		} else {
			assert.Error(t, err, "color %q", tt.color)
		}
	}
}

func TestValidationErrorsMessageJoining(t *testing.T) {
	errs := ValidationErrors{
		{Message: "Name is required"},
		{Message: "Type must be either 'text' or 'number'"},
	}
	assert.Equal(t, "Name is required; Type must be either 'text' or 'number'", errs.Error())
}
