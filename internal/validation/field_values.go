package validation

import (
	"fmt"
	"strconv"
	"strings"

	"action-tracker/internal/domain"
)

// ValidateFieldValues checks recorded values against an action's declared
// fields: every declared field must carry a non-empty value, number
// fields must hold numeric text, and keys outside the declared schema are
// rejected. Entries written before a field was deleted are not re-checked
// on read; this applies at write time only.
func ValidateFieldValues(fields []*domain.ActionField, values domain.FieldValues) error {
	var validationErrs ValidationErrors

	declared := make(map[string]domain.FieldType, len(fields))
	for _, field := range fields {
		declared[field.FieldName] = field.FieldType
	}

	for _, field := range fields {
		value, ok := values[field.FieldName]
		if !ok || strings.TrimSpace(value) == "" {
			validationErrs = append(validationErrs, ValidationError{
				Field:   field.FieldName,
				Message: fmt.Sprintf("%s is required", field.FieldName),
				Tag:     "required",
			})
			continue
		}
		if field.FieldType == domain.FieldTypeNumber {
			if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
				validationErrs = append(validationErrs, ValidationError{
					Field:   field.FieldName,
					Message: fmt.Sprintf("%s must be a number", field.FieldName),
					Tag:     "number",
					Value:   value,
				})
			}
		}
	}

	for key := range values {
		if _, ok := declared[key]; !ok {
			validationErrs = append(validationErrs, ValidationError{
				Field:   key,
				Message: fmt.Sprintf("%s is not a field of this action", key),
				Tag:     "unknown",
			})
		}
	}

	if len(validationErrs) > 0 {
		return validationErrs
	}
	return nil
}
