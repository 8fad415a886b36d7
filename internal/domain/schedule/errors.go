package schedule

import "errors"

var (
	ErrShiftNotFound = errors.New("no work shift assigned to employee")
)
