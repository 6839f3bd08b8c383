package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid date format: use dd-mm-yyyy")
)
