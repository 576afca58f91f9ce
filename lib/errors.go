package lib

import "errors"

// ErrInvalid means the source could not be read to completion or is not
// valid UTF-8.
var ErrInvalid = errors.New("invalid input")

// ErrEmpty is reserved. No construction path returns it: empty input is
// accepted and lexes to an immediate EOF token.
var ErrEmpty = errors.New("empty input")
