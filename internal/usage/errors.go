package usage

import "errors"

var (
	// ErrInvalidPeriod indicates an unknown stats period.
	ErrInvalidPeriod = errors.New("invalid period")
)
