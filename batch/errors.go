package batch

import "errors"

// ErrNilAlphabet indicates a Request without an alphabet.
var ErrNilAlphabet = errors.New("batch: alphabet is nil")

// ErrInvalidCount indicates a negative Count.
var ErrInvalidCount = errors.New("batch: count must be non-negative")

// ErrInvalidLength indicates a Length below MidpointLength.
var ErrInvalidLength = errors.New("batch: invalid length")
