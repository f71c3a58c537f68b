package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusOnLeave Status = "on_leave"
	StatusHalfDay Status = "half_day"
	StatusHoliday Status = "holiday"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusOnLeave),
	string(StatusHalfDay),
	string(StatusHoliday),
}

// Attendance is one record per (employee, calendar date). CheckIn and
// CheckOut carry only a time of day; Date carries the work day. The
// metric fields (IsLate, LateByMinutes, IsHalfDay, TotalHours,
// OvertimeHours) are derived by the metrics calculator at create/edit
// time and are never mutated afterward except through an explicit edit.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckIn       time.Time
	CheckOut      *time.Time
	Status        Status
	IsLate        bool
	LateByMinutes *int
	IsHalfDay     bool
	TotalHours    *decimal.Decimal
	OvertimeHours *decimal.Decimal
	Remarks       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
