package http

import (
	"errors"
	"net/http"

	"primering/internal/event"
	pkgErrors "primering/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong query, from/to must be RFC3339")
	errMissingID  = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, event.ErrTitleRequired),
		errors.Is(err, event.ErrInvalidTimeRange),
		errors.Is(err, event.ErrInvalidPriority),
		errors.Is(err, event.ErrInvalidRecurrence):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
