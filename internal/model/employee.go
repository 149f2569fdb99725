package model

import "time"

type Employee struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EmployeeID string    `json:"employee_id" gorm:"size:50;uniqueIndex;not null"`
	FullName   string    `json:"full_name" gorm:"size:255;not null"`
	Email      string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Department *string   `json:"department" gorm:"size:100"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null;autoCreateTime"`

	// Relasi: an employee owns its attendance rows
	AttendanceRecords []Attendance `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (Employee) TableName() string {
	return "employees"
}

type CreateEmployeeRequest struct {
	EmployeeID string  `json:"employee_id" validate:"required,min=1,max=50"`
	FullName   string  `json:"full_name" validate:"required,min=1,max=255"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// UpdateEmployeeRequest uses pointers so an omitted field can be told apart
// from one explicitly set to empty. employee_id is immutable and has no field.
type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name" validate:"omitempty,max=255"`
	Email      *string `json:"email" validate:"omitempty,email,max=255"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// EmployeeFilter collects the list query parameters. All predicates are
// combined with AND; FullName matches as a case-insensitive substring.
type EmployeeFilter struct {
	ID         *uint
	EmployeeID string
	FullName   string
	Email      string
	Department string
	Skip       int
	Limit      int
}
