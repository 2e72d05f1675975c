package http

import (
	"errors"
	"net/http"

	"primering/internal/diary"
	pkgErrors "primering/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong query, from/to must be YYYY-MM-DD")
	errMissingID  = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, diary.ErrDiaryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, diary.ErrTitleRequired),
		errors.Is(err, diary.ErrContentRequired),
		errors.Is(err, diary.ErrInvalidMood),
		errors.Is(err, diary.ErrInvalidDateRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
