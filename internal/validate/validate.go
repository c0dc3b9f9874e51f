// Package validate provides required-field validation for submitted records.
package validate

import "strings"

// Required reports which of the given fields are absent from the record or
// empty after trimming surrounding whitespace. The returned names preserve
// the order of fields. An empty result means the record is valid.
func Required(record map[string]string, fields []string) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(record[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Error is a validation failure naming every missing required field, not
// just the first one found.
type Error struct {
	Missing []string
}

func (e *Error) Error() string {
	return "missing fields: " + strings.Join(e.Missing, ", ")
}
