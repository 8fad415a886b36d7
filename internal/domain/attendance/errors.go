package attendance

import "errors"

var (
	ErrPolicyNotFound = errors.New("no attendance policy assigned to employee")
)
