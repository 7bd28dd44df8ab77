package domain

import (
	"encoding/json"

	"action-tracker/internal/logging"
)

// FieldValues maps an action field's name to the value recorded for it.
// Values are kept as entered; number fields are validated at write time
// but stored as strings. A nil map means the entry carries no values.
type FieldValues map[string]string

// IsEmpty reports whether there are no recorded values.
func (fv FieldValues) IsEmpty() bool {
	return len(fv) == 0
}

// Encode serializes the values to the JSON text stored in the database.
// Returns nil for an empty map so the column stays NULL.
func (fv FieldValues) Encode() (*string, error) {
	if fv.IsEmpty() {
		return nil, nil
	}
	data, err := json.Marshal(fv)
	if err != nil {
		return nil, err
	}
	encoded := string(data)
	return &encoded, nil
}

// ParseFieldValues decodes a stored field_values blob. Malformed content
// is logged and treated as absent rather than propagated as an error:
// historical entries must stay readable even if the blob is corrupt.
func ParseFieldValues(raw *string) FieldValues {
	if raw == nil || *raw == "" {
		return nil
	}
	var values FieldValues
	if err := json.Unmarshal([]byte(*raw), &values); err != nil {
		logging.Debugf("discarding malformed field_values blob: %v\n", err)
		return nil
	}
	if len(values) == 0 {
		return nil
	}
	return values
}
