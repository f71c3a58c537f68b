package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/config"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/component"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/employee"
	leavedomain "github.com/paygrid-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeTx struct{}

func (fakeTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePayrollRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]payroll.PayrollRecord
	failFor map[string]bool
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		records: map[string]payroll.PayrollRecord{},
		failFor: map[string]bool{},
	}
}

func (r *fakePayrollRepo) CreateRecord(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failFor[record.EmployeeID] {
		return payroll.PayrollRecord{}, errors.New("storage unavailable")
	}
	for _, existing := range r.records {
		if existing.EmployeeID == record.EmployeeID && existing.Month == record.Month && existing.Year == record.Year {
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyExists
		}
	}

	r.seq++
	record.ID = fmt.Sprintf("pr-%d", r.seq)
	r.records[record.ID] = record
	return record, nil
}

func (r *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
	}
	return record, nil
}

func (r *fakePayrollRepo) GetByEmployeePeriod(_ context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.Month == month && record.Year == year {
			return record, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
}

func (r *fakePayrollRepo) ListEmployeeIDsForPeriod(_ context.Context, month, year int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, record := range r.records {
		if record.Month == month && record.Year == year {
			ids = append(ids, record.EmployeeID)
		}
	}
	return ids, nil
}

func (r *fakePayrollRepo) List(_ context.Context, _ payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var records []payroll.PayrollRecord
	for _, record := range r.records {
		records = append(records, record)
	}
	return records, int64(len(records)), nil
}

func (r *fakePayrollRepo) GetDetails(_ context.Context, payrollID string) ([]payroll.PayrollDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records[payrollID].Details, nil
}

func (r *fakePayrollRepo) UpdateStatus(_ context.Context, id string, status payroll.PayrollStatus, actedBy *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	record.Status = status
	now := time.Now()
	switch status {
	case payroll.PayrollStatusApproved:
		record.ApprovedBy = actedBy
		record.ApprovedAt = &now
	case payroll.PayrollStatusPaid:
		record.PaidAt = &now
	}
	r.records[id] = record
	return nil
}

func (r *fakePayrollRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return payroll.ErrPayrollNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakePayrollRepo) GetSummary(_ context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summary := payroll.PayrollSummaryResponse{Month: month, Year: year, CountByStatus: map[string]int64{}}
	for _, record := range r.records {
		if record.Month != month || record.Year != year {
			continue
		}
		summary.RecordCount++
		summary.TotalBasic = summary.TotalBasic.Add(record.BasicSalary)
		summary.TotalAllowances = summary.TotalAllowances.Add(record.TotalAllowances)
		summary.TotalDeductions = summary.TotalDeductions.Add(record.TotalDeductions)
		summary.TotalGross = summary.TotalGross.Add(record.GrossSalary)
		summary.TotalNet = summary.TotalNet.Add(record.NetSalary)
		summary.CountByStatus[string(record.Status)]++
	}
	return summary, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var active []employee.Employee
	for _, e := range r.employees {
		if e.Status == employee.EmploymentStatusActive {
			active = append(active, e)
		}
	}
	return active, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeAttendanceRepo struct {
	byEmployee map[string][]attendance.Attendance
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for _, a := range r.byEmployee[employeeID] {
		if !a.Date.Before(start) && !a.Date.After(end) {
			records = append(records, a)
		}
	}
	return records, nil
}

func (r *fakeAttendanceRepo) ListEmployeeIDsForDate(_ context.Context, _ time.Time) ([]string, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, _ attendance.Attendance) error { return nil }
func (r *fakeAttendanceRepo) Delete(_ context.Context, _ string) error                { return nil }

type fakeLeaveRepo struct {
	byEmployee map[string][]leavedomain.Leave
}

func (r *fakeLeaveRepo) Create(_ context.Context, l leavedomain.Leave) (leavedomain.Leave, error) {
	return l, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, _ string) (leavedomain.Leave, error) {
	return leavedomain.Leave{}, leavedomain.ErrLeaveNotFound
}

func (r *fakeLeaveRepo) GetApprovedInRange(_ context.Context, employeeID string, start, end time.Time) ([]leavedomain.Leave, error) {
	var leaves []leavedomain.Leave
	for _, l := range r.byEmployee[employeeID] {
		if l.Status == leavedomain.LeaveStatusApproved && !l.StartDate.After(end) && !l.EndDate.Before(start) {
			leaves = append(leaves, l)
		}
	}
	return leaves, nil
}

func (r *fakeLeaveRepo) HasApprovedOnDate(_ context.Context, _ string, _ time.Time) (bool, error) {
	return false, nil
}

func (r *fakeLeaveRepo) HasOverlapping(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return false, nil
}

func (r *fakeLeaveRepo) List(_ context.Context, _ leavedomain.LeaveFilter) ([]leavedomain.Leave, int64, error) {
	return nil, 0, nil
}

func (r *fakeLeaveRepo) UpdateStatus(_ context.Context, _ string, _ leavedomain.LeaveStatus, _ string, _ *string) error {
	return nil
}

func (r *fakeLeaveRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeComponentRepo struct {
	components []component.Component
}

func (r *fakeComponentRepo) Create(_ context.Context, c component.Component) (component.Component, error) {
	return c, nil
}

func (r *fakeComponentRepo) GetByID(_ context.Context, _ string) (component.Component, error) {
	return component.Component{}, component.ErrComponentNotFound
}

func (r *fakeComponentRepo) List(_ context.Context, _ bool) ([]component.Component, error) {
	return r.components, nil
}

func (r *fakeComponentRepo) Update(_ context.Context, _ component.UpdateComponentRequest) error {
	return nil
}

func (r *fakeComponentRepo) Delete(_ context.Context, _ string) error { return nil }

// ---- fixture ----

type fixture struct {
	svc         payroll.PayrollService
	payrolls    *fakePayrollRepo
	employees   *fakeEmployeeRepo
	attendances *fakeAttendanceRepo
	leaves      *fakeLeaveRepo
	components  *fakeComponentRepo
}

func newFixture() *fixture {
	f := &fixture{
		payrolls:    newFakePayrollRepo(),
		employees:   &fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		attendances: &fakeAttendanceRepo{byEmployee: map[string][]attendance.Attendance{}},
		leaves:      &fakeLeaveRepo{byEmployee: map[string][]leavedomain.Leave{}},
		components:  &fakeComponentRepo{},
	}
	f.svc = NewPayrollService(
		fakeTx{},
		f.payrolls,
		f.employees,
		f.attendances,
		f.leaves,
		f.components,
		func(context.Context) string { return "hr.admin" },
		config.PayrollConfig{BulkTimeout: time.Minute, BulkConcurrency: 4},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func (f *fixture) addEmployee(id, code string, salary int64) {
	f.employees.employees[id] = employee.Employee{
		ID:          id,
		Code:        code,
		Name:        "Employee " + code,
		BasicSalary: decimal.NewFromInt(salary),
		Status:      employee.EmploymentStatusActive,
	}
}

func june(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) addAttendance(employeeID string, day int, status attendance.Status) {
	f.attendances.byEmployee[employeeID] = append(f.attendances.byEmployee[employeeID], attendance.Attendance{
		EmployeeID: employeeID,
		Date:       june(day),
		Status:     status,
	})
}

func standardComponents() []component.Component {
	return []component.Component{
		{
			ID:                "c-hra",
			Name:              "House Rent Allowance",
			Type:              component.ComponentTypeAllowance,
			CalculationMethod: component.CalculationPercentageOfBasic,
			Value:             decimal.NewFromInt(10),
			DisplayOrder:      1,
		},
		{
			ID:                "c-transport",
			Name:              "Transport Allowance",
			Type:              component.ComponentTypeAllowance,
			CalculationMethod: component.CalculationFixedAmount,
			Value:             decimal.NewFromInt(1000),
			DisplayOrder:      2,
		},
		{
			ID:                "c-tax",
			Name:              "Income Tax",
			Type:              component.ComponentTypeDeduction,
			CalculationMethod: component.CalculationPercentageOfGross,
			Value:             decimal.NewFromInt(5),
			DisplayOrder:      3,
		},
	}
}

// ---- tests ----

func TestGeneratePayrollMath(t *testing.T) {
	f := newFixture()
	f.addEmployee("e1", "EMP-001", 30000)
	f.components.components = standardComponents()

	for day := 1; day <= 20; day++ {
		f.addAttendance("e1", day, attendance.StatusPresent)
	}
	f.addAttendance("e1", 23, attendance.StatusLate)
	f.addAttendance("e1", 24, attendance.StatusLate)
	f.addAttendance("e1", 25, attendance.StatusAbsent)

	f.leaves.byEmployee["e1"] = []leavedomain.Leave{
		{
			LeaveType: leavedomain.LeaveTypeAnnual,
			StartDate: june(26),
			EndDate:   june(27),
			Status:    leavedomain.LeaveStatusApproved,
		},
		{
			LeaveType: leavedomain.LeaveTypeUnpaid,
			StartDate: june(30),
			EndDate:   june(30),
			Status:    leavedomain.LeaveStatusApproved,
		},
	}

	resp, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "e1",
		Month:      6,
		Year:       2025,
	})
	require.NoError(t, err)

	assert.Equal(t, "PAY-202506-EMP-001", resp.PayrollNumber)
	assert.Equal(t, "2025-06-30", resp.PaymentDate)
	assert.Equal(t, string(payroll.PayrollStatusPending), resp.Status)
	assert.Equal(t, "hr.admin", resp.CreatedBy)

	assert.Equal(t, 30, resp.TotalWorkingDays)
	assert.Equal(t, 22, resp.PresentDays)
	assert.Equal(t, 2, resp.LateDays)
	assert.Equal(t, 1, resp.AbsentDays)
	assert.True(t, resp.PaidLeaves.Equal(decimal.NewFromInt(2)), "paid: %s", resp.PaidLeaves)
	assert.True(t, resp.UnpaidLeaves.Equal(decimal.NewFromInt(1)), "unpaid: %s", resp.UnpaidLeaves)
	assert.True(t, resp.LeaveDays.Equal(decimal.NewFromInt(3)))

	// HRA 3000 + transport 1000
	assert.True(t, resp.TotalAllowances.Equal(decimal.NewFromInt(4000)), "allowances: %s", resp.TotalAllowances)
	// Per-day is 1000; one unpaid leave day plus one absent day
	assert.True(t, resp.LeaveDeductionAmount.Equal(decimal.NewFromInt(2000)), "leave deduction: %s", resp.LeaveDeductionAmount)
	// 5% of 34000 gross plus the leave deduction
	assert.True(t, resp.TotalDeductions.Equal(decimal.NewFromInt(3700)), "deductions: %s", resp.TotalDeductions)
	assert.True(t, resp.GrossSalary.Equal(decimal.NewFromInt(34000)), "gross: %s", resp.GrossSalary)
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(30300)), "net: %s", resp.NetSalary)

	// Identities hold
	assert.True(t, resp.GrossSalary.Equal(resp.BasicSalary.Add(resp.TotalAllowances)))
	assert.True(t, resp.NetSalary.Equal(resp.GrossSalary.Sub(resp.TotalDeductions)))

	require.Len(t, resp.Details, 3)
	assert.Equal(t, "House Rent Allowance", resp.Details[0].ComponentName)
	assert.True(t, resp.Details[2].Amount.Equal(decimal.NewFromInt(1700)), "tax: %s", resp.Details[2].Amount)
}

func TestGeneratePayrollNoAttendance(t *testing.T) {
	f := newFixture()
	f.addEmployee("e1", "EMP-001", 31000)

	resp, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "e1",
		Month:      7,
		Year:       2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 31, resp.TotalWorkingDays)
	assert.Equal(t, 0, resp.PresentDays)
	assert.True(t, resp.TotalAllowances.IsZero())
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(31000)))
}

func TestGeneratePayrollDuplicate(t *testing.T) {
	f := newFixture()
	f.addEmployee("e1", "EMP-001", 30000)

	req := payroll.GeneratePayrollRequest{EmployeeID: "e1", Month: 6, Year: 2025}
	_, err := f.svc.Generate(context.Background(), req)
	require.NoError(t, err)

	_, err = f.svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)
}

func TestGeneratePayrollUnknownEmployee(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "ghost", Month: 6, Year: 2025,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGeneratePayrollNoSalary(t *testing.T) {
	f := newFixture()
	f.addEmployee("e1", "EMP-001", 0)

	_, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "e1", Month: 6, Year: 2025,
	})
	assert.ErrorIs(t, err, employee.ErrNoBasicSalary)
}

func TestGenerateBulk(t *testing.T) {
	f := newFixture()
	f.addEmployee("e1", "EMP-001", 30000)
	f.addEmployee("e2", "EMP-002", 25000)
	f.addEmployee("e3", "EMP-003", 0)
	f.addEmployee("e4", "EMP-004", 40000)
	f.payrolls.failFor["e4"] = true

	// e2 already has a payroll for the period
	_, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "e2", Month: 6, Year: 2025,
	})
	require.NoError(t, err)

	result, err := f.svc.GenerateBulk(context.Background(), payroll.GenerateBulkPayrollRequest{
		Month: 6, Year: 2025,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.GeneratedCount)
	assert.Equal(t, 2, result.SkippedCount)
	assert.Equal(t, 1, result.FailedCount)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "e4", result.Failures[0].EmployeeID)
	assert.NotEmpty(t, result.Failures[0].Reason)

	// The successful record really exists
	_, err = f.payrolls.GetByEmployeePeriod(context.Background(), "e1", 6, 2025)
	assert.NoError(t, err)
}

func TestGenerateBulkNoActiveEmployees(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GenerateBulk(context.Background(), payroll.GenerateBulkPayrollRequest{
		Month: 6, Year: 2025,
	})
	assert.ErrorIs(t, err, payroll.ErrNoActiveEmployees)
}

func TestPayrollLifecycle(t *testing.T) {
	f := newFixture()
	f.addEmployee("e1", "EMP-001", 30000)

	created, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "e1", Month: 6, Year: 2025,
	})
	require.NoError(t, err)

	// Pending cannot be paid directly
	_, err = f.svc.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, payroll.ErrNotPayable)

	approved, err := f.svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusApproved), approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "hr.admin", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	// Approving twice is rejected
	_, err = f.svc.Approve(context.Background(), created.ID)
	assert.ErrorIs(t, err, payroll.ErrNotApprovable)

	// Approved records cannot be deleted
	err = f.svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, payroll.ErrCannotDelete)

	paid, err := f.svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusPaid), paid.Status)
	assert.NotNil(t, paid.PaidAt)

	// Paid is terminal
	_, err = f.svc.Cancel(context.Background(), created.ID)
	assert.ErrorIs(t, err, payroll.ErrNotCancellable)
	err = f.svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, payroll.ErrCannotDelete)
}

func TestPayrollCancelBeforePaid(t *testing.T) {
	f := newFixture()
	f.addEmployee("e1", "EMP-001", 30000)

	created, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "e1", Month: 6, Year: 2025,
	})
	require.NoError(t, err)

	approved, err := f.svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(context.Background(), approved.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.PayrollStatusCancelled), cancelled.Status)
}

func TestPayrollDeletePending(t *testing.T) {
	f := newFixture()
	f.addEmployee("e1", "EMP-001", 30000)

	created, err := f.svc.Generate(context.Background(), payroll.GeneratePayrollRequest{
		EmployeeID: "e1", Month: 6, Year: 2025,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), created.ID))
	_, err = f.svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestSummaryInvalidPeriod(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Summary(context.Background(), 13, 2025)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
