// core/motif/errors.go
package motif

import "errors"

// ErrInvalidMotif is returned for an empty motif or a position whose base set
// is empty or malformed. It is reported before any scanning starts.
var ErrInvalidMotif = errors.New("motif: invalid motif")

// ErrInvalidConfig is returned by New when a Config field is out of range.
var ErrInvalidConfig = errors.New("motif: invalid scanner config")

// ErrNegativeMismatches is returned when a mismatch budget is below zero.
var ErrNegativeMismatches = errors.New("motif: negative mismatch budget")
