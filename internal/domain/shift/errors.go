package shift

import "errors"

var (
	ErrShiftNotFound   = errors.New("shift not found")
	ErrShiftCodeExists = errors.New("shift with this code already exists")
	ErrShiftInUse      = errors.New("shift is assigned to employees and cannot be deleted")
)
