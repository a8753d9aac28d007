package http

import (
	"errors"
	"net/http"

	"freightbid/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON body of every non-2xx reply.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain and application errors onto HTTP statuses. The
// original error message is passed through; domain errors carry no
// internals.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrDuplicateBid),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrShipmentNotBiddable):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrVehicleMismatch):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrGateway),
		errors.Is(err, errs.ErrStorage):
		status = http.StatusBadGateway
	}

	return c.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
