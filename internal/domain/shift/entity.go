package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShiftStatus string

const (
	ShiftStatusActive   ShiftStatus = "active"
	ShiftStatusInactive ShiftStatus = "inactive"
)

var ShiftStatusValues = []string{
	string(ShiftStatusActive),
	string(ShiftStatusInactive),
}

// Shift is the per-shift working-time configuration. StartTime and EndTime
// carry only a time of day; for night shifts the end time is numerically
// before the start time and checkout falls on the following calendar day.
type Shift struct {
	ID                   string
	Code                 string
	Name                 string
	Description          *string
	StartTime            time.Time
	EndTime              time.Time
	BreakDurationMinutes int
	GracePeriodMinutes   int
	LateMarkAfterMinutes int
	HalfDayHours         decimal.Decimal
	FullDayHours         decimal.Decimal
	IsNightShift         bool
	IsWeekendShift       bool
	Status               ShiftStatus
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Query-time aggregate, never stored
	AssignedEmployees int64
}
