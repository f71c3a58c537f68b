package attendance

import (
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

var sixty = decimal.NewFromInt(60)

// Metrics holds the fields derived from one check-in/check-out pair and
// the employee's shift configuration.
type Metrics struct {
	Status        attendance.Status
	IsLate        bool
	LateByMinutes *int
	IsHalfDay     bool
	TotalHours    *decimal.Decimal
	OvertimeHours *decimal.Decimal
}

// ComputeMetrics derives lateness, worked hours, half-day and overtime
// from a raw punch pair. It is a pure function of its inputs: editing a
// record re-runs it wholesale and yields the same result for the same
// punches.
//
// Policy notes (see also the shift configuration):
//   - the late cutoff is StartTime + LateMarkAfterMinutes; the grace
//     period field is informational for this calculation
//   - TotalHours already has the break netted out, so the overtime
//     baseline is FullDayHours unmodified
func ComputeMetrics(checkIn time.Time, checkOut *time.Time, status attendance.Status, shiftCfg *shift.Shift) Metrics {
	m := Metrics{Status: status}

	// No shift assigned: keep raw values.
	if shiftCfg == nil {
		return m
	}

	inMinutes := minutesOfDay(checkIn)
	startMinutes := minutesOfDay(shiftCfg.StartTime)

	if m.Status == attendance.StatusPresent {
		cutoff := startMinutes + shiftCfg.LateMarkAfterMinutes
		if inMinutes > cutoff {
			lateBy := inMinutes - startMinutes
			m.IsLate = true
			m.LateByMinutes = &lateBy
			m.Status = attendance.StatusLate
		}
	}

	if checkOut == nil {
		return m
	}

	worked := minutesOfDay(*checkOut) - inMinutes
	// Checkout on the following day: night shifts by design, and any
	// punch pair where the checkout clock value precedes check-in.
	if worked < 0 {
		worked += minutesPerDay
	}
	worked -= shiftCfg.BreakDurationMinutes
	if worked < 0 {
		worked = 0
	}

	totalHours := decimal.NewFromInt(int64(worked)).Div(sixty)
	m.TotalHours = &totalHours

	if totalHours.LessThan(shiftCfg.HalfDayHours) && m.Status == attendance.StatusPresent {
		m.IsHalfDay = true
		m.Status = attendance.StatusHalfDay
	}

	expected := shiftCfg.FullDayHours
	if totalHours.GreaterThan(expected) {
		overtime := totalHours.Sub(expected)
		m.OvertimeHours = &overtime
	}

	return m
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
