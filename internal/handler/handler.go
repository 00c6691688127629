package handler

import (
	"errors"
	"net/http"

	"receiptpro/internal/apperr"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// httpError maps the error taxonomy onto HTTP responses. Validation and
// business-rule rejections carry their specific message; storage and other
// unexpected failures are logged in full and surfaced generically.
func httpError(c echo.Context, err error) error {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	case errors.Is(err, apperr.ErrInsufficientCredits):
		return echo.NewHTTPError(http.StatusBadRequest, "Insufficient credits")
	case errors.Is(err, apperr.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, apperr.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	default:
		log.WithError(err).WithField("path", c.Path()).Error("Request failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
