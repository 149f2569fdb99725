package handler

import (
	"errors"
	"strconv"

	"hrms-lite-backend/internal/errs"
	"hrms-lite-backend/internal/model"
	"hrms-lite-backend/internal/repository"
	"hrms-lite-backend/internal/sqlerr"
	"hrms-lite-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req model.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewBadRequest("Invalid request body"))
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	// 1. Uniqueness checks before touching storage
	if _, err := h.repo.FindByEmployeeID(req.EmployeeID); err == nil {
		return respondError(c, errs.NewDuplicateKey("Employee ID already exists"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, sqlerr.Handle(err))
	}
	if _, err := h.repo.FindByEmail(req.Email); err == nil {
		return respondError(c, errs.NewDuplicateKey("Email is already in use"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, sqlerr.Handle(err))
	}

	employee := model.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}

	// 2. Insert; a concurrent create with the same key loses here and the
	// unique index turns it into a duplicate-key error
	if err := h.repo.Create(&employee); err != nil {
		return respondError(c, sqlerr.Handle(err))
	}

	return c.Status(fiber.StatusCreated).JSON(employee)
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req model.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewBadRequest("Invalid request body"))
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	employee, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, errs.NewNotFound("Employee not found"))
		}
		return respondError(c, sqlerr.Handle(err))
	}

	// A changed email must stay unique across employees
	if req.Email != nil && *req.Email != employee.Email {
		if _, err := h.repo.FindByEmail(*req.Email); err == nil {
			return respondError(c, errs.NewDuplicateKey("Email is already in use"))
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, sqlerr.Handle(err))
		}
	}

	// Apply only the fields present in the payload
	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Department != nil {
		employee.Department = req.Department
	}

	if err := h.repo.Update(employee); err != nil {
		return respondError(c, sqlerr.Handle(err))
	}

	return c.JSON(employee)
}

func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	filter := model.EmployeeFilter{
		EmployeeID: c.Query("employee_id"),
		FullName:   c.Query("full_name"),
		Email:      c.Query("email"),
		Department: c.Query("department"),
		Skip:       c.QueryInt("skip", 0),
		Limit:      c.QueryInt("limit", 100),
	}

	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return respondError(c, errs.NewBadRequest("Invalid id filter"))
		}
		filterID := uint(id)
		filter.ID = &filterID
	}

	employees, err := h.repo.GetAll(filter)
	if err != nil {
		return respondError(c, sqlerr.Handle(err))
	}

	return c.JSON(employees)
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, errs.NewNotFound("Employee not found"))
		}
		return respondError(c, sqlerr.Handle(err))
	}

	// Cascades to the employee's attendance rows
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, sqlerr.Handle(err))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
