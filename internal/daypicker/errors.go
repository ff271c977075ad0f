package daypicker

import "errors"

var (
	ErrInvalidMonth          = errors.New("invalid month")
	ErrInvalidBounds         = errors.New("from month is after to month")
	ErrInvalidNumberOfMonths = errors.New("number of months must be at least 1")
)
