package designation

import "errors"

var (
	ErrDesignationNotFound   = errors.New("designation not found")
	ErrDesignationCodeExists = errors.New("designation with this code already exists")
	ErrDesignationInUse      = errors.New("designation has employees and cannot be deleted")
)
