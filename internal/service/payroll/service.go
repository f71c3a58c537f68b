package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/config"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/component"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/employee"
	leavedomain "github.com/paygrid-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/payroll"
	leavecalc "github.com/paygrid-hr/payroll-backend-go/internal/service/leave"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// TxManager runs a function with all repository calls inside one
// database transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type service struct {
	tx             TxManager
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leavedomain.LeaveRepository
	componentRepo  component.ComponentRepository
	actor          func(ctx context.Context) string
	cfg            config.PayrollConfig
	logger         *slog.Logger
}

func NewPayrollService(
	tx TxManager,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leavedomain.LeaveRepository,
	componentRepo component.ComponentRepository,
	actor func(ctx context.Context) string,
	cfg config.PayrollConfig,
	logger *slog.Logger,
) payroll.PayrollService {
	return &service{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		componentRepo:  componentRepo,
		actor:          actor,
		cfg:            cfg,
		logger:         logger,
	}
}

func (s *service) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if !emp.BasicSalary.IsPositive() {
		return payroll.PayrollRecordResponse{}, employee.ErrNoBasicSalary
	}

	record, err := s.buildRecord(ctx, emp, req.Month, req.Year, s.actor(ctx))
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	var created payroll.PayrollRecord
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.payrollRepo.CreateRecord(ctx, record)
		return txErr
	})
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return toResponse(created), nil
}

func (s *service) GenerateBulk(ctx context.Context, req payroll.GenerateBulkPayrollRequest) (payroll.BulkGenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkGenerateResponse{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.BulkTimeout)
	defer cancel()

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.BulkGenerateResponse{}, err
	}
	if len(employees) == 0 {
		return payroll.BulkGenerateResponse{}, payroll.ErrNoActiveEmployees
	}

	existingIDs, err := s.payrollRepo.ListEmployeeIDsForPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return payroll.BulkGenerateResponse{}, err
	}
	existing := make(map[string]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	actor := s.actor(ctx)
	result := payroll.BulkGenerateResponse{Month: req.Month, Year: req.Year}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(s.cfg.BulkConcurrency)

	for _, emp := range employees {
		if existing[emp.ID] || !emp.BasicSalary.IsPositive() {
			result.SkippedCount++
			continue
		}

		emp := emp
		g.Go(func() error {
			record, err := s.buildRecord(ctx, emp, req.Month, req.Year, actor)
			if err == nil {
				err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
					_, txErr := s.payrollRepo.CreateRecord(ctx, record)
					return txErr
				})
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// One employee failing must not sink the batch.
				result.FailedCount++
				result.Failures = append(result.Failures, payroll.BulkFailure{
					EmployeeID: emp.ID,
					Reason:     err.Error(),
				})
				s.logger.Error("bulk payroll generation failed",
					"employee_id", emp.ID,
					"month", req.Month,
					"year", req.Year,
					"error", err)
				return nil
			}
			result.GeneratedCount++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return payroll.BulkGenerateResponse{}, err
	}

	return result, nil
}

// buildRecord assembles one payroll record: attendance counts, the
// leave tally, component valuations and the final totals. It does not
// persist anything.
func (s *service) buildRecord(ctx context.Context, emp employee.Employee, month, year int, createdBy string) (payroll.PayrollRecord, error) {
	if _, err := s.payrollRepo.GetByEmployeePeriod(ctx, emp.ID, month, year); err == nil {
		return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyExists
	} else if !errors.Is(err, payroll.ErrPayrollNotFound) {
		return payroll.PayrollRecord{}, err
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)
	totalWorkingDays := periodEnd.Day()

	records, err := s.attendanceRepo.GetByEmployeeAndRange(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	var presentDays, absentDays, lateDays int
	for _, record := range records {
		switch record.Status {
		case attendance.StatusPresent:
			presentDays++
		case attendance.StatusLate:
			presentDays++
			lateDays++
		case attendance.StatusAbsent:
			absentDays++
		}
	}

	leaves, err := s.leaveRepo.GetApprovedInRange(ctx, emp.ID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	tally := leavecalc.Aggregate(leaves, periodStart, periodEnd)

	basic := emp.BasicSalary
	perDay := basic.Div(decimal.NewFromInt(int64(totalWorkingDays)))
	leaveDeduction := tally.UnpaidDays.
		Add(decimal.NewFromInt(int64(absentDays))).
		Mul(perDay)

	components, err := s.componentRepo.List(ctx, true)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	totalAllowances := decimal.Zero
	totalDeductions := decimal.Zero
	details := make([]payroll.PayrollDetail, 0, len(components))
	for _, comp := range components {
		grossSoFar := basic.Add(totalAllowances)
		amount := ValuateComponent(comp, basic, grossSoFar)

		componentID := comp.ID
		details = append(details, payroll.PayrollDetail{
			ComponentID:       &componentID,
			ComponentName:     comp.Name,
			ComponentType:     comp.Type,
			CalculationMethod: comp.CalculationMethod,
			ComponentValue:    comp.Value,
			Amount:            amount,
			IsTaxable:         comp.IsTaxable,
		})

		if comp.Type == component.ComponentTypeAllowance {
			totalAllowances = totalAllowances.Add(amount)
		} else {
			totalDeductions = totalDeductions.Add(amount)
		}
	}

	totalDeductions = totalDeductions.Add(leaveDeduction)
	gross := basic.Add(totalAllowances)
	net := gross.Sub(totalDeductions)

	return payroll.PayrollRecord{
		PayrollNumber: fmt.Sprintf("PAY-%04d%02d-%s", year, month, emp.Code),
		EmployeeID:    emp.ID,
		Month:         month,
		Year:          year,
		PaymentDate:   periodEnd,

		BasicSalary:     basic,
		TotalAllowances: totalAllowances,
		TotalDeductions: totalDeductions,
		GrossSalary:     gross,
		NetSalary:       net,

		TotalWorkingDays: totalWorkingDays,
		PresentDays:      presentDays,
		AbsentDays:       absentDays,
		LateDays:         lateDays,
		LeaveDays:        tally.Total(),
		PaidLeaves:       tally.PaidDays,
		UnpaidLeaves:     tally.UnpaidDays,

		LeaveDeductionAmount: leaveDeduction,

		Status:    payroll.PayrollStatusPending,
		CreatedBy: createdBy,
		Details:   details,
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toResponse(record), nil
}

func (s *service) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	resp := payroll.ListPayrollResponse{
		Data:       make([]payroll.PayrollRecordResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, record := range records {
		resp.Data = append(resp.Data, toResponse(record))
	}

	return resp, nil
}

func (s *service) Approve(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if record.Status != payroll.PayrollStatusPending && record.Status != payroll.PayrollStatusDraft {
		return payroll.PayrollRecordResponse{}, payroll.ErrNotApprovable
	}

	actor := s.actor(ctx)
	if err := s.payrollRepo.UpdateStatus(ctx, id, payroll.PayrollStatusApproved, &actor); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *service) MarkPaid(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if record.Status != payroll.PayrollStatusApproved {
		return payroll.PayrollRecordResponse{}, payroll.ErrNotPayable
	}

	if err := s.payrollRepo.UpdateStatus(ctx, id, payroll.PayrollStatusPaid, nil); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *service) Cancel(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if record.Status == payroll.PayrollStatusPaid {
		return payroll.PayrollRecordResponse{}, payroll.ErrNotCancellable
	}

	if err := s.payrollRepo.UpdateStatus(ctx, id, payroll.PayrollStatusCancelled, nil); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if record.Status == payroll.PayrollStatusApproved || record.Status == payroll.PayrollStatusPaid {
		return payroll.ErrCannotDelete
	}

	return s.payrollRepo.Delete(ctx, id)
}

func (s *service) Summary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}
	return s.payrollRepo.GetSummary(ctx, month, year)
}

func toResponse(p payroll.PayrollRecord) payroll.PayrollRecordResponse {
	resp := payroll.PayrollRecordResponse{
		ID:            p.ID,
		PayrollNumber: p.PayrollNumber,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		EmployeeCode:  p.EmployeeCode,
		Month:         p.Month,
		Year:          p.Year,
		PaymentDate:   p.PaymentDate.Format("2006-01-02"),

		BasicSalary:     p.BasicSalary,
		TotalAllowances: p.TotalAllowances,
		TotalDeductions: p.TotalDeductions,
		GrossSalary:     p.GrossSalary,
		NetSalary:       p.NetSalary,

		TotalWorkingDays: p.TotalWorkingDays,
		PresentDays:      p.PresentDays,
		AbsentDays:       p.AbsentDays,
		LateDays:         p.LateDays,
		LeaveDays:        p.LeaveDays,
		PaidLeaves:       p.PaidLeaves,
		UnpaidLeaves:     p.UnpaidLeaves,

		LeaveDeductionAmount: p.LeaveDeductionAmount,

		Status:     string(p.Status),
		Remarks:    p.Remarks,
		CreatedBy:  p.CreatedBy,
		ApprovedBy: p.ApprovedBy,
	}
	if p.ApprovedAt != nil {
		approvedAt := p.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	if p.PaidAt != nil {
		paidAt := p.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &paidAt
	}
	for _, d := range p.Details {
		resp.Details = append(resp.Details, payroll.PayrollDetailResponse{
			ID:                d.ID,
			ComponentID:       d.ComponentID,
			ComponentName:     d.ComponentName,
			ComponentType:     string(d.ComponentType),
			CalculationMethod: string(d.CalculationMethod),
			ComponentValue:    d.ComponentValue,
			Amount:            d.Amount,
			IsTaxable:         d.IsTaxable,
		})
	}
	return resp
}
