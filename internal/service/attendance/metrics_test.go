package attendance

import (
	"testing"
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", value)
	require.NoError(t, err)
	return parsed
}

func clockPtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed := clock(t, value)
	return &parsed
}

func dayShift(t *testing.T) *shift.Shift {
	t.Helper()
	return &shift.Shift{
		StartTime:            clock(t, "09:00"),
		EndTime:              clock(t, "18:00"),
		BreakDurationMinutes: 60,
		GracePeriodMinutes:   10,
		LateMarkAfterMinutes: 15,
		HalfDayHours:         decimal.NewFromInt(4),
		FullDayHours:         decimal.NewFromInt(8),
	}
}

func TestComputeMetricsOnTime(t *testing.T) {
	m := ComputeMetrics(clock(t, "09:00"), clockPtr(t, "18:00"), attendance.StatusPresent, dayShift(t))

	assert.Equal(t, attendance.StatusPresent, m.Status)
	assert.False(t, m.IsLate)
	assert.Nil(t, m.LateByMinutes)
	require.NotNil(t, m.TotalHours)
	// 9 hours on the clock minus the 60 minute break
	assert.True(t, m.TotalHours.Equal(decimal.NewFromInt(8)), "got %s", m.TotalHours)
	assert.Nil(t, m.OvertimeHours)
	assert.False(t, m.IsHalfDay)
}

func TestComputeMetricsWithinLateWindow(t *testing.T) {
	// 09:15 is exactly the cutoff: not late
	m := ComputeMetrics(clock(t, "09:15"), nil, attendance.StatusPresent, dayShift(t))

	assert.False(t, m.IsLate)
	assert.Equal(t, attendance.StatusPresent, m.Status)
}

func TestComputeMetricsLate(t *testing.T) {
	m := ComputeMetrics(clock(t, "09:25"), clockPtr(t, "18:00"), attendance.StatusPresent, dayShift(t))

	assert.True(t, m.IsLate)
	require.NotNil(t, m.LateByMinutes)
	// Lateness counts from shift start, not from the cutoff
	assert.Equal(t, 25, *m.LateByMinutes)
	assert.Equal(t, attendance.StatusLate, m.Status)
}

func TestComputeMetricsNightShift(t *testing.T) {
	night := &shift.Shift{
		StartTime:            clock(t, "22:00"),
		EndTime:              clock(t, "06:00"),
		BreakDurationMinutes: 60,
		LateMarkAfterMinutes: 15,
		HalfDayHours:         decimal.NewFromInt(4),
		FullDayHours:         decimal.NewFromInt(7),
		IsNightShift:         true,
	}

	m := ComputeMetrics(clock(t, "22:00"), clockPtr(t, "06:00"), attendance.StatusPresent, night)

	require.NotNil(t, m.TotalHours)
	// 22:00 -> 06:00 is 8 clock hours, minus the break
	assert.True(t, m.TotalHours.Equal(decimal.NewFromInt(7)), "got %s", m.TotalHours)
	assert.False(t, m.IsLate)
}

func TestComputeMetricsHalfDay(t *testing.T) {
	m := ComputeMetrics(clock(t, "09:00"), clockPtr(t, "12:30"), attendance.StatusPresent, dayShift(t))

	require.NotNil(t, m.TotalHours)
	assert.True(t, m.TotalHours.Equal(decimal.NewFromFloat(2.5)), "got %s", m.TotalHours)
	assert.True(t, m.IsHalfDay)
	assert.Equal(t, attendance.StatusHalfDay, m.Status)
}

func TestComputeMetricsLateNotUpgradedToHalfDay(t *testing.T) {
	// A late arrival with short hours stays late; half-day only applies
	// to records still in present state.
	m := ComputeMetrics(clock(t, "10:00"), clockPtr(t, "12:00"), attendance.StatusPresent, dayShift(t))

	assert.True(t, m.IsLate)
	assert.False(t, m.IsHalfDay)
	assert.Equal(t, attendance.StatusLate, m.Status)
}

func TestComputeMetricsOvertime(t *testing.T) {
	m := ComputeMetrics(clock(t, "09:00"), clockPtr(t, "20:00"), attendance.StatusPresent, dayShift(t))

	require.NotNil(t, m.TotalHours)
	assert.True(t, m.TotalHours.Equal(decimal.NewFromInt(10)), "got %s", m.TotalHours)
	require.NotNil(t, m.OvertimeHours)
	assert.True(t, m.OvertimeHours.Equal(decimal.NewFromInt(2)), "got %s", m.OvertimeHours)
}

func TestComputeMetricsBreakLongerThanWorked(t *testing.T) {
	m := ComputeMetrics(clock(t, "09:00"), clockPtr(t, "09:30"), attendance.StatusPresent, dayShift(t))

	require.NotNil(t, m.TotalHours)
	assert.True(t, m.TotalHours.IsZero(), "got %s", m.TotalHours)
}

func TestComputeMetricsNoShift(t *testing.T) {
	m := ComputeMetrics(clock(t, "11:00"), clockPtr(t, "15:00"), attendance.StatusPresent, nil)

	assert.Equal(t, attendance.StatusPresent, m.Status)
	assert.False(t, m.IsLate)
	assert.Nil(t, m.TotalHours)
	assert.Nil(t, m.OvertimeHours)
}

func TestComputeMetricsNonPresentStatusKept(t *testing.T) {
	m := ComputeMetrics(clock(t, "11:00"), clockPtr(t, "12:00"), attendance.StatusOnLeave, dayShift(t))

	assert.Equal(t, attendance.StatusOnLeave, m.Status)
	assert.False(t, m.IsLate)
	assert.False(t, m.IsHalfDay)
}

func TestComputeMetricsDeterministic(t *testing.T) {
	in := clock(t, "09:40")
	out := clockPtr(t, "17:10")

	first := ComputeMetrics(in, out, attendance.StatusPresent, dayShift(t))
	second := ComputeMetrics(in, out, attendance.StatusPresent, dayShift(t))

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.IsLate, second.IsLate)
	require.NotNil(t, first.TotalHours)
	require.NotNil(t, second.TotalHours)
	assert.True(t, first.TotalHours.Equal(*second.TotalHours))
}
