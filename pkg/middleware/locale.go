package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/pkg/api"
)

// Locale resolves the request language once from the lang parameter.
// Nothing is remembered between calls; an absent lang means Telugu.
func Locale() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(api.LocaleKey, api.Locale(c))
			return next(c)
		}
	}
}
