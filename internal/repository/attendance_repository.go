package repository

import (
	"hrms-lite-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(attendance *model.Attendance) error
	FindByID(id uint) (*model.Attendance, error)
	FindByEmployeeAndDate(employeeID uint, date model.DateOnly) (*model.Attendance, error)
	GetAll(filter model.AttendanceFilter) ([]model.Attendance, error)
	GetByEmployeeID(employeeID uint) ([]model.Attendance, error)
	Update(attendance *model.Attendance) error
	Delete(id uint) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(attendance *model.Attendance) error {
	return r.db.Create(attendance).Error
}

func (r *attendanceRepository) FindByID(id uint) (*model.Attendance, error) {
	var attendance model.Attendance
	if err := r.db.First(&attendance, id).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindByEmployeeAndDate(employeeID uint, date model.DateOnly) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.Where("employee_id = ? AND date = ?", employeeID, date).First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepository) GetAll(filter model.AttendanceFilter) ([]model.Attendance, error) {
	records := []model.Attendance{}
	query := r.db.Model(&model.Attendance{})

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Date != nil {
		query = query.Where("date = ?", *filter.Date)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	err := query.Order("date desc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) GetByEmployeeID(employeeID uint) ([]model.Attendance, error) {
	records := []model.Attendance{}
	err := r.db.Where("employee_id = ?", employeeID).Order("date desc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) Update(attendance *model.Attendance) error {
	return r.db.Save(attendance).Error
}

func (r *attendanceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Attendance{}, id).Error
}
