package leave

import (
	"testing"
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestAggregateSplitsPaidAndUnpaid(t *testing.T) {
	records := []leave.Leave{
		{
			LeaveType: leave.LeaveTypeAnnual,
			StartDate: date(t, "2025-06-02"),
			EndDate:   date(t, "2025-06-04"),
			Status:    leave.LeaveStatusApproved,
		},
		{
			LeaveType: leave.LeaveTypeUnpaid,
			StartDate: date(t, "2025-06-10"),
			EndDate:   date(t, "2025-06-11"),
			Status:    leave.LeaveStatusApproved,
		},
	}

	tally := Aggregate(records, date(t, "2025-06-01"), date(t, "2025-06-30"))

	assert.True(t, tally.PaidDays.Equal(decimal.NewFromInt(3)), "paid: %s", tally.PaidDays)
	assert.True(t, tally.UnpaidDays.Equal(decimal.NewFromInt(2)), "unpaid: %s", tally.UnpaidDays)
	assert.True(t, tally.Total().Equal(decimal.NewFromInt(5)))
}

func TestAggregateClampsToPeriod(t *testing.T) {
	// Leave runs 28 May to 3 June; only 1-3 June fall in the period.
	records := []leave.Leave{
		{
			LeaveType: leave.LeaveTypeSick,
			StartDate: date(t, "2025-05-28"),
			EndDate:   date(t, "2025-06-03"),
			Status:    leave.LeaveStatusApproved,
		},
	}

	tally := Aggregate(records, date(t, "2025-06-01"), date(t, "2025-06-30"))

	assert.True(t, tally.PaidDays.Equal(decimal.NewFromInt(3)), "paid: %s", tally.PaidDays)
}

func TestAggregateHalfDayCountsHalf(t *testing.T) {
	records := []leave.Leave{
		{
			LeaveType: leave.LeaveTypeCasual,
			StartDate: date(t, "2025-06-05"),
			EndDate:   date(t, "2025-06-05"),
			IsHalfDay: true,
			Status:    leave.LeaveStatusApproved,
		},
	}

	tally := Aggregate(records, date(t, "2025-06-01"), date(t, "2025-06-30"))

	assert.True(t, tally.PaidDays.Equal(decimal.NewFromFloat(0.5)), "paid: %s", tally.PaidDays)
	assert.True(t, tally.UnpaidDays.IsZero())
}

func TestAggregateIgnoresUnapproved(t *testing.T) {
	records := []leave.Leave{
		{
			LeaveType: leave.LeaveTypeAnnual,
			StartDate: date(t, "2025-06-09"),
			EndDate:   date(t, "2025-06-13"),
			Status:    leave.LeaveStatusPending,
		},
		{
			LeaveType: leave.LeaveTypeAnnual,
			StartDate: date(t, "2025-06-16"),
			EndDate:   date(t, "2025-06-17"),
			Status:    leave.LeaveStatusRejected,
		},
	}

	tally := Aggregate(records, date(t, "2025-06-01"), date(t, "2025-06-30"))

	assert.True(t, tally.Total().IsZero())
}

func TestAggregateLeaveOutsidePeriod(t *testing.T) {
	records := []leave.Leave{
		{
			LeaveType: leave.LeaveTypeAnnual,
			StartDate: date(t, "2025-07-01"),
			EndDate:   date(t, "2025-07-03"),
			Status:    leave.LeaveStatusApproved,
		},
	}

	tally := Aggregate(records, date(t, "2025-06-01"), date(t, "2025-06-30"))

	assert.True(t, tally.Total().IsZero())
}
