package field

import (
	"errors"
	"fmt"
)

// ErrUnknownField matches any *UnknownFieldError through errors.Is.
var ErrUnknownField = errors.New("field: unknown field")

// UnknownFieldError reports a field name that no value kind answers for.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("field: unknown field %q", e.Field)
}

// Is reports whether target is ErrUnknownField.
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}
