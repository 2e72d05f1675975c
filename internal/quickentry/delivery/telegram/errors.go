package telegram

import (
	"net/http"

	pkgErrors "primering/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "wrong update body")
