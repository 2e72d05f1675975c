package http

import (
	"errors"
	"net/http"

	"primering/internal/quickentry"
	pkgErrors "primering/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")

// mapError translates domain errors into HTTP errors. A failed commit is
// reported with a generic message so the client keeps its draft and retries.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, quickentry.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, quickentry.ErrNoDateFound):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return err
}
