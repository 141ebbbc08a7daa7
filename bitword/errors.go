package bitword

import "github.com/cockroachdb/errors"

// ErrEmptyInput is returned when a parse operation receives an empty string.
var ErrEmptyInput = errors.New("empty input")
