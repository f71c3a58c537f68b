package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)

var EmploymentStatusValues = []string{
	string(EmploymentStatusActive),
	string(EmploymentStatusInactive),
	string(EmploymentStatusResigned),
}

type Employee struct {
	ID            string
	Code          string
	Name          string
	Email         *string
	Phone         *string
	DepartmentID  *string
	DesignationID *string
	ShiftID       *string
	BasicSalary   decimal.Decimal
	JoinDate      time.Time
	Status        EmploymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	DepartmentName  *string
	DesignationName *string
	ShiftName       *string
}
