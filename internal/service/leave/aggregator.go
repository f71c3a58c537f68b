package leave

import (
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

var halfDayWeight = decimal.NewFromFloat(0.5)

// Tally is the paid/unpaid leave-day split consumed by payroll
// generation. Counters are decimal so a half-day application carries
// exactly 0.5.
type Tally struct {
	PaidDays   decimal.Decimal
	UnpaidDays decimal.Decimal
}

func (t Tally) Total() decimal.Decimal {
	return t.PaidDays.Add(t.UnpaidDays)
}

// Aggregate splits approved leave into paid and unpaid day counts for
// one payroll period. A leave spanning the period boundary is clamped
// to [periodStart, periodEnd] and only the days inside the period are
// counted.
func Aggregate(records []leave.Leave, periodStart, periodEnd time.Time) Tally {
	var tally Tally

	for _, record := range records {
		if record.Status != leave.LeaveStatusApproved {
			continue
		}

		start := record.StartDate
		if start.Before(periodStart) {
			start = periodStart
		}
		end := record.EndDate
		if end.After(periodEnd) {
			end = periodEnd
		}
		if end.Before(start) {
			continue
		}

		var days decimal.Decimal
		if record.IsHalfDay {
			days = halfDayWeight
		} else {
			days = decimal.NewFromInt(int64(daysInclusive(start, end)))
		}

		if record.LeaveType.IsPaid() {
			tally.PaidDays = tally.PaidDays.Add(days)
		} else {
			tally.UnpaidDays = tally.UnpaidDays.Add(days)
		}
	}

	return tally
}

func daysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
