package leave

import "errors"

var (
	ErrLeaveNotFound      = errors.New("leave not found")
	ErrInvalidLeaveStatus = errors.New("invalid leave status")
)
