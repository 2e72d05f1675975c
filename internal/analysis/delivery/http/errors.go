package http

import (
	"errors"
	"net/http"

	"primering/internal/analysis"
	"primering/internal/diary"
	pkgErrors "primering/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong body, date must be YYYY-MM-DD")
	errMissingID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates domain errors into HTTP errors. Provider failures are
// reported without their cause.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrContentRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, diary.ErrDiaryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, analysis.ErrAnalysisSuperseded):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, analysis.ErrUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, analysis.ErrAnalysisFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, analysis.ErrAnalysisFailed.Error())
	}
	return err
}
