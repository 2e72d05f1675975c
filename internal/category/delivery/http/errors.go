package http

import (
	"errors"
	"net/http"

	"primering/internal/category"
	pkgErrors "primering/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errMissingID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain errors into HTTP errors. Unknown errors pass
// through and are reported as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, category.ErrNameRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, category.ErrDuplicateName):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	}
	return err
}
