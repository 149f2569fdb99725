package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"hrms-lite-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStore backs the fake repositories with in-memory slices, reproducing
// the storage behavior the handlers rely on: assigned ids and timestamps,
// unique indexes surfacing gorm.ErrDuplicatedKey, and cascade delete.
type fakeStore struct {
	employees  []*model.Employee
	attendance []*model.Attendance
	employeeID uint
	recordID   uint
	clock      time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{clock: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
}

// nextCreatedAt hands out strictly increasing timestamps so created-at
// ordering is deterministic in tests.
func (s *fakeStore) nextCreatedAt() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

type fakeEmployeeRepo struct {
	store *fakeStore
}

func (f *fakeEmployeeRepo) Create(employee *model.Employee) error {
	for _, e := range f.store.employees {
		if e.EmployeeID == employee.EmployeeID || e.Email == employee.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	f.store.employeeID++
	employee.ID = f.store.employeeID
	employee.CreatedAt = f.store.nextCreatedAt()
	stored := *employee
	f.store.employees = append(f.store.employees, &stored)
	return nil
}

func (f *fakeEmployeeRepo) FindByID(id uint) (*model.Employee, error) {
	for _, e := range f.store.employees {
		if e.ID == id {
			found := *e
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByEmployeeID(employeeID string) (*model.Employee, error) {
	for _, e := range f.store.employees {
		if e.EmployeeID == employeeID {
			found := *e
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByEmail(email string) (*model.Employee, error) {
	for _, e := range f.store.employees {
		if e.Email == email {
			found := *e
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) GetAll(filter model.EmployeeFilter) ([]model.Employee, error) {
	matches := []model.Employee{}
	for _, e := range f.store.employees {
		if filter.ID != nil && e.ID != *filter.ID {
			continue
		}
		if filter.EmployeeID != "" && e.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.FullName != "" && !strings.Contains(strings.ToLower(e.FullName), strings.ToLower(filter.FullName)) {
			continue
		}
		if filter.Email != "" && e.Email != filter.Email {
			continue
		}
		if filter.Department != "" && (e.Department == nil || *e.Department != filter.Department) {
			continue
		}
		matches = append(matches, *e)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	if filter.Skip >= len(matches) {
		return []model.Employee{}, nil
	}
	matches = matches[filter.Skip:]
	if filter.Limit < len(matches) {
		matches = matches[:filter.Limit]
	}
	return matches, nil
}

func (f *fakeEmployeeRepo) Update(employee *model.Employee) error {
	for i, e := range f.store.employees {
		if e.ID == employee.ID {
			stored := *employee
			f.store.employees[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) Delete(id uint) error {
	kept := f.store.attendance[:0]
	for _, a := range f.store.attendance {
		if a.EmployeeID != id {
			kept = append(kept, a)
		}
	}
	f.store.attendance = kept
	for i, e := range f.store.employees {
		if e.ID == id {
			f.store.employees = append(f.store.employees[:i], f.store.employees[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeAttendanceRepo struct {
	store *fakeStore
}

func (f *fakeAttendanceRepo) Create(attendance *model.Attendance) error {
	for _, a := range f.store.attendance {
		if a.EmployeeID == attendance.EmployeeID && a.Date.Equal(attendance.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	f.store.recordID++
	attendance.ID = f.store.recordID
	stored := *attendance
	f.store.attendance = append(f.store.attendance, &stored)
	return nil
}

func (f *fakeAttendanceRepo) FindByID(id uint) (*model.Attendance, error) {
	for _, a := range f.store.attendance {
		if a.ID == id {
			found := *a
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) FindByEmployeeAndDate(employeeID uint, date model.DateOnly) (*model.Attendance, error) {
	for _, a := range f.store.attendance {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			found := *a
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) GetAll(filter model.AttendanceFilter) ([]model.Attendance, error) {
	matches := []model.Attendance{}
	for _, a := range f.store.attendance {
		if filter.EmployeeID != nil && a.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Date != nil && !a.Date.Equal(*filter.Date) {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		matches = append(matches, *a)
	}
	sortByDateDesc(matches)
	return matches, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeID(employeeID uint) ([]model.Attendance, error) {
	matches := []model.Attendance{}
	for _, a := range f.store.attendance {
		if a.EmployeeID == employeeID {
			matches = append(matches, *a)
		}
	}
	sortByDateDesc(matches)
	return matches, nil
}

func (f *fakeAttendanceRepo) Update(attendance *model.Attendance) error {
	for i, a := range f.store.attendance {
		if a.ID == attendance.ID {
			stored := *attendance
			f.store.attendance[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Delete(id uint) error {
	for i, a := range f.store.attendance {
		if a.ID == id {
			f.store.attendance = append(f.store.attendance[:i], f.store.attendance[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func sortByDateDesc(records []model.Attendance) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date.Time)
	})
}

// newTestApp wires the handlers onto a Fiber app against the fake store,
// mirroring the route layout in internal/routes.
func newTestApp() (*fiber.App, *fakeStore) {
	store := newFakeStore()
	employeeRepo := &fakeEmployeeRepo{store: store}
	attendanceRepo := &fakeAttendanceRepo{store: store}

	app := fiber.New()

	app.Get("/health", Health)

	emp := NewEmployeeHandler(employeeRepo)
	employees := app.Group("/api/employees")
	employees.Post("/", emp.Create)
	employees.Get("/", emp.List)
	employees.Put("/:id", emp.Update)
	employees.Delete("/:id", emp.Delete)

	att := NewAttendanceHandler(attendanceRepo, employeeRepo)
	attendance := app.Group("/api/attendance")
	attendance.Post("/", att.Create)
	attendance.Get("/", att.List)
	attendance.Get("/:employeeId", att.ListByEmployee)
	attendance.Put("/:id", att.Update)
	attendance.Delete("/:id", att.Delete)

	return app, store
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Errors  []struct {
		Field string `json:"field"`
		Error string `json:"error"`
	} `json:"errors"`
}

func createTestEmployee(t *testing.T, app *fiber.App, employeeID, fullName, email string) model.Employee {
	t.Helper()
	resp := doRequest(t, app, fiber.MethodPost, "/api/employees", model.CreateEmployeeRequest{
		EmployeeID: employeeID,
		FullName:   fullName,
		Email:      email,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created model.Employee
	decodeJSON(t, resp, &created)
	return created
}
