package schema

import "errors"

// ErrSchema is returned when the catalog source is missing or malformed.
var ErrSchema = errors.New("invalid player data schema")
