package model

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
)

func (s AttendanceStatus) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

type Attendance struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	EmployeeID uint             `json:"employee_id" gorm:"not null;uniqueIndex:uq_employee_date"`
	Date       DateOnly         `json:"date" gorm:"not null;uniqueIndex:uq_employee_date"`
	Status     AttendanceStatus `json:"status" gorm:"size:10;not null"`

	Employee *Employee `json:"-" gorm:"foreignKey:EmployeeID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type CreateAttendanceRequest struct {
	EmployeeID uint     `json:"employee_id" validate:"required"`
	Date       DateOnly `json:"date" validate:"required"`
	Status     string   `json:"status" validate:"required,oneof=Present Absent"`
}

type UpdateAttendanceRequest struct {
	Status string `json:"status" validate:"required,oneof=Present Absent"`
}

type AttendanceFilter struct {
	EmployeeID *uint
	Date       *DateOnly
	Status     AttendanceStatus
}
