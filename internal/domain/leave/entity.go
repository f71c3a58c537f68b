package leave

import "time"

type LeaveType string

const (
	LeaveTypeCasual    LeaveType = "casual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypeUnpaid    LeaveType = "unpaid"
)

var LeaveTypeValues = []string{
	string(LeaveTypeCasual),
	string(LeaveTypeSick),
	string(LeaveTypeAnnual),
	string(LeaveTypeMaternity),
	string(LeaveTypeUnpaid),
}

// IsPaid reports whether days of this leave type are paid out in payroll.
func (t LeaveType) IsPaid() bool {
	switch t {
	case LeaveTypeCasual, LeaveTypeSick, LeaveTypeAnnual:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusCancelled LeaveStatus = "cancelled"
)

var LeaveStatusValues = []string{
	string(LeaveStatusPending),
	string(LeaveStatusApproved),
	string(LeaveStatusRejected),
	string(LeaveStatusCancelled),
}

// Leave is one leave application. Only approved records are consumed by
// the payroll leave aggregation.
type Leave struct {
	ID           string
	EmployeeID   string
	LeaveType    LeaveType
	StartDate    time.Time
	EndDate      time.Time
	IsHalfDay    bool
	Reason       string
	Status       LeaveStatus
	AdminRemarks *string
	ActedBy      *string
	ActedAt      *time.Time
	AppliedAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
