package component

import "errors"

var (
	ErrComponentNotFound   = errors.New("payroll component not found")
	ErrComponentCodeExists = errors.New("component with this code already exists")
	ErrInvalidThresholds   = errors.New("minimum salary threshold must not exceed maximum cap")
)
