package models

import (
	"fmt"
	"strings"
)

// ValidateStringLength checks that a string field meets the minimum trimmed
// length. A nil value is accepted only when allowNull is set. The value itself
// is never trimmed or modified; trimming applies to the length check only.
func ValidateStringLength(field string, value *string, minLength int, allowNull bool) error {
	if value == nil {
		if allowNull {
			return nil
		}
		return fmt.Errorf("%s cannot be empty", field)
	}

	if len(strings.TrimSpace(*value)) < minLength {
		return fmt.Errorf("%s must be at least %d characters", field, minLength)
	}

	return nil
}
