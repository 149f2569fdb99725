package handler

import (
	"errors"
	"strconv"

	"hrms-lite-backend/internal/errs"

	"github.com/gofiber/fiber/v2"
)

// respondError renders a typed HTTPError, falling back to a generic 500 for
// anything unclassified.
func respondError(c *fiber.Ctx, err error) error {
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = errs.NewInternal()
	}
	return c.Status(httpErr.Status).JSON(httpErr)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, errs.NewBadRequest("Invalid " + name + " parameter")
	}
	return uint(id), nil
}
