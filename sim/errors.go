package sim

import "errors"

var (
	ErrUnknownPolicy = errors.New("unknown policy kind")
	ErrInvalidPolicy = errors.New("invalid policy parameter")
	ErrInvalidRun    = errors.New("invalid run parameter")
)
