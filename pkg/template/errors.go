package template

import "errors"

// ErrInvalidFormat reports template text the grammar cannot accept.
var ErrInvalidFormat = errors.New("template: invalid format")
