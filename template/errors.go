// Package template rewrites query templates written in the ?, ?a, ?#, ?_name
// placeholder grammar, with {...} conditional macro blocks, into driver-ready
// SQL plus an aligned positional parameter list.
package template

import "errors"

// Sentinel errors for template processing. All are fatal to the current
// call; the engine never recovers or retries.
var (
	// ErrMissingParameter indicates a ?, ?a or ?# token had no parameter
	// left at its resolved position.
	ErrMissingParameter = errors.New("missing parameter for placeholder")

	// ErrArrayParam indicates a ?a token's parameter was not a slice or
	// string-keyed map, or was empty.
	ErrArrayParam = errors.New("?a placeholder requires a non-empty slice or map")

	// ErrIdentifierType indicates a ?# token's parameter was not a string.
	ErrIdentifierType = errors.New("?# placeholder requires a string parameter")
)
