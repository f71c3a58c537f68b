package shift

import (
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ShiftResponse struct {
	ID                   string          `json:"id"`
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	Description          *string         `json:"description,omitempty"`
	StartTime            string          `json:"start_time"`
	EndTime              string          `json:"end_time"`
	BreakDurationMinutes int             `json:"break_duration_minutes"`
	GracePeriodMinutes   int             `json:"grace_period_minutes"`
	LateMarkAfterMinutes int             `json:"late_mark_after_minutes"`
	HalfDayHours         decimal.Decimal `json:"half_day_hours"`
	FullDayHours         decimal.Decimal `json:"full_day_hours"`
	IsNightShift         bool            `json:"is_night_shift"`
	IsWeekendShift       bool            `json:"is_weekend_shift"`
	Status               string          `json:"status"`
	AssignedEmployees    int64           `json:"assigned_employees"`
}

type CreateShiftRequest struct {
	Code                 string          `json:"code"`
	Name                 string          `json:"name"`
	Description          *string         `json:"description,omitempty"`
	StartTime            string          `json:"start_time"` // "HH:MM"
	EndTime              string          `json:"end_time"`   // "HH:MM"
	BreakDurationMinutes int             `json:"break_duration_minutes"`
	GracePeriodMinutes   int             `json:"grace_period_minutes"`
	LateMarkAfterMinutes int             `json:"late_mark_after_minutes"`
	HalfDayHours         decimal.Decimal `json:"half_day_hours"`
	FullDayHours         decimal.Decimal `json:"full_day_hours"`
	IsNightShift         bool            `json:"is_night_shift"`
	IsWeekendShift       bool            `json:"is_weekend_shift"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if len(r.Code) > 20 {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must not exceed 20 characters"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}

	startTime, startOK := validator.IsValidClockTime(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid HH:MM time"})
	}
	endTime, endOK := validator.IsValidClockTime(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid HH:MM time"})
	}
	// Non-night shifts must end after they start
	if startOK && endOK && !r.IsNightShift && !endTime.After(startTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be after start_time for non-night shifts"})
	}

	if r.BreakDurationMinutes < 0 || r.BreakDurationMinutes > 480 {
		errs = append(errs, validator.ValidationError{Field: "break_duration_minutes", Message: "must be between 0 and 480"})
	}
	if r.GracePeriodMinutes < 0 || r.GracePeriodMinutes > 60 {
		errs = append(errs, validator.ValidationError{Field: "grace_period_minutes", Message: "must be between 0 and 60"})
	}
	if r.LateMarkAfterMinutes < 0 || r.LateMarkAfterMinutes > 120 {
		errs = append(errs, validator.ValidationError{Field: "late_mark_after_minutes", Message: "must be between 0 and 120"})
	}
	if r.HalfDayHours.IsNegative() || r.HalfDayHours.GreaterThan(decimal.NewFromInt(12)) {
		errs = append(errs, validator.ValidationError{Field: "half_day_hours", Message: "must be between 0 and 12"})
	}
	if r.FullDayHours.IsNegative() || r.FullDayHours.GreaterThan(decimal.NewFromInt(24)) {
		errs = append(errs, validator.ValidationError{Field: "full_day_hours", Message: "must be between 0 and 24"})
	}
	if r.HalfDayHours.GreaterThan(r.FullDayHours) {
		errs = append(errs, validator.ValidationError{Field: "half_day_hours", Message: "must not exceed full_day_hours"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID                   string           `json:"-"`
	Name                 *string          `json:"name,omitempty"`
	Description          *string          `json:"description,omitempty"`
	StartTime            *string          `json:"start_time,omitempty"`
	EndTime              *string          `json:"end_time,omitempty"`
	BreakDurationMinutes *int             `json:"break_duration_minutes,omitempty"`
	GracePeriodMinutes   *int             `json:"grace_period_minutes,omitempty"`
	LateMarkAfterMinutes *int             `json:"late_mark_after_minutes,omitempty"`
	HalfDayHours         *decimal.Decimal `json:"half_day_hours,omitempty"`
	FullDayHours         *decimal.Decimal `json:"full_day_hours,omitempty"`
	IsNightShift         *bool            `json:"is_night_shift,omitempty"`
	IsWeekendShift       *bool            `json:"is_weekend_shift,omitempty"`
	Status               *string          `json:"status,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.StartTime != nil {
		if _, ok := validator.IsValidClockTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid HH:MM time"})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidClockTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid HH:MM time"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, ShiftStatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of: active, inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
