// Package api holds the response envelope and request-parameter parsing
// shared by every controller and by the action dispatcher.
package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/pkg/apperr"
	"github.com/villageboy09/kiosk/pkg/logger"
)

// OK writes {"success": true, key: data}.
func OK(c echo.Context, key string, data any) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, key: data})
}

// Fail writes {"success": false, "error": ..., "code": ...} with the status
// mapped from the error kind. Errors without a kind are logged and reported
// as internal.
func Fail(c echo.Context, log *logger.Logger, err error) error {
	kind := apperr.KindOf(err)
	status := apperr.HTTPStatus(kind)
	msg := message(err)
	code := string(kind)
	switch {
	case kind == "":
		log.Error("unhandled error", "path", c.Path(), "error", err)
		msg, code = "internal error", "internal"
	case kind == apperr.DataUnavailable:
		log.Warn("data unavailable", "path", c.Path(), "error", err)
		msg = "data temporarily unavailable"
	}
	return c.JSON(status, echo.Map{"success": false, "error": msg, "code": code})
}

// message drops the operation prefix so clients see only the cause.
func message(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	return err.Error()
}

// ErrorHandler renders echo's own errors (unknown route, bad method, panics
// recovered upstream) in the same envelope.
func ErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			if he.Code >= http.StatusInternalServerError {
				log.Error("http error", "path", c.Path(), "error", err)
			}
			_ = c.JSON(he.Code, echo.Map{"success": false, "error": msg, "code": "http"})
			return
		}
		_ = Fail(c, log, err)
	}
}
