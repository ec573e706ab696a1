package http

import (
	"errors"
	"net/http"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error to the API's error contract.
// Not-found lookups become 404, validation failures 400, pickup code
// mismatches 401, everything else 500. The body is always {"error": "..."}.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrPickupCodeMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
