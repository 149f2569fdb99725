package repository

import (
	"strings"

	"hrms-lite-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *model.Employee) error
	FindByID(id uint) (*model.Employee, error)
	FindByEmployeeID(employeeID string) (*model.Employee, error)
	FindByEmail(email string) (*model.Employee, error)
	GetAll(filter model.EmployeeFilter) ([]model.Employee, error)
	Update(employee *model.Employee) error
	Delete(id uint) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByEmployeeID(employeeID string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.Where("employee_id = ?", employeeID).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByEmail(email string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.Where("email = ?", email).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetAll(filter model.EmployeeFilter) ([]model.Employee, error) {
	employees := []model.Employee{}
	query := r.db.Model(&model.Employee{})

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.FullName != "" {
		pattern := "%" + strings.ToLower(filter.FullName) + "%"
		query = query.Where("LOWER(full_name) LIKE ?", pattern)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}

	err := query.Order("created_at desc").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

// Delete removes the employee and every attendance row referencing it in one
// transaction; a failure rolls back both deletes.
func (r *employeeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Employee{}, id).Error
	})
}
