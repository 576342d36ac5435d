package http

import (
	"errors"
	"net/http"

	"farmfreight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse maps the error taxonomy onto HTTP status codes. Messages pass
// through unchanged, so a capacity failure tells the caller the available and
// required weight and a transition failure names the allowed next status.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateKey):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInsufficientCapacity),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
