package http

import (
	"errors"
	"net/http"

	"smart-reminders/internal/reminder"
	pkgErrors "smart-reminders/pkg/errors"
)

var errInvalidReferenceTime = pkgErrors.NewHTTPError(http.StatusBadRequest, "reference_time must be RFC 3339")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, reminder.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, reminder.ErrEmptyInput.Error())
	case errors.Is(err, reminder.ErrInputTooShort):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, reminder.ErrInputTooShort.Error())
	case errors.Is(err, reminder.ErrTooManySegments):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, reminder.ErrUnsupportedFormat):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
