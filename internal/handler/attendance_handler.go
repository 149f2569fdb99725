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

type AttendanceHandler struct {
	repo         repository.AttendanceRepository
	employeeRepo repository.EmployeeRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, employeeRepo: employeeRepo}
}

func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var req model.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewBadRequest("Invalid request body"))
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	// 1. The referenced employee must exist
	if _, err := h.employeeRepo.FindByID(req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, errs.NewNotFound("Employee not found"))
		}
		return respondError(c, sqlerr.Handle(err))
	}

	// 2. One record per employee per calendar day
	if _, err := h.repo.FindByEmployeeAndDate(req.EmployeeID, req.Date); err == nil {
		return respondError(c, errs.NewDuplicateKey("Attendance already recorded for this employee and date"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, sqlerr.Handle(err))
	}

	attendance := model.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     model.AttendanceStatus(req.Status),
	}

	if err := h.repo.Create(&attendance); err != nil {
		return respondError(c, sqlerr.Handle(err))
	}

	return c.Status(fiber.StatusCreated).JSON(attendance)
}

func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	var filter model.AttendanceFilter

	if raw := c.Query("employee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return respondError(c, errs.NewBadRequest("Invalid employee_id filter"))
		}
		employeeID := uint(id)
		filter.EmployeeID = &employeeID
	}
	if raw := c.Query("date"); raw != "" {
		date, err := model.ParseDateOnly(raw)
		if err != nil {
			return respondError(c, errs.NewBadRequest("Invalid date filter, expected YYYY-MM-DD"))
		}
		filter.Date = &date
	}
	if raw := c.Query("status"); raw != "" {
		status := model.AttendanceStatus(raw)
		if !status.Valid() {
			return respondError(c, errs.NewBadRequest("Invalid status filter, expected Present or Absent"))
		}
		filter.Status = status
	}

	records, err := h.repo.GetAll(filter)
	if err != nil {
		return respondError(c, sqlerr.Handle(err))
	}

	return c.JSON(records)
}

func (h *AttendanceHandler) ListByEmployee(c *fiber.Ctx) error {
	employeeID, err := parseIDParam(c, "employeeId")
	if err != nil {
		return respondError(c, err)
	}

	if _, err := h.employeeRepo.FindByID(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, errs.NewNotFound("Employee not found"))
		}
		return respondError(c, sqlerr.Handle(err))
	}

	records, err := h.repo.GetByEmployeeID(employeeID)
	if err != nil {
		return respondError(c, sqlerr.Handle(err))
	}

	return c.JSON(records)
}

func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req model.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewBadRequest("Invalid request body"))
	}
	if err := validation.Struct(&req); err != nil {
		return respondError(c, err)
	}

	attendance, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, errs.NewNotFound("Attendance record not found"))
		}
		return respondError(c, sqlerr.Handle(err))
	}

	attendance.Status = model.AttendanceStatus(req.Status)

	if err := h.repo.Update(attendance); err != nil {
		return respondError(c, sqlerr.Handle(err))
	}

	return c.JSON(attendance)
}

func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if _, err := h.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, errs.NewNotFound("Attendance record not found"))
		}
		return respondError(c, sqlerr.Handle(err))
	}

	if err := h.repo.Delete(id); err != nil {
		return respondError(c, sqlerr.Handle(err))
	}

	return c.SendStatus(fiber.StatusNoContent)
}
