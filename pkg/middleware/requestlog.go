package middleware

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/villageboy09/kiosk/pkg/logger"
)

// RequestLog writes one zap line per request. Query strings are left out
// since they can carry user ids.
func RequestLog(log *logger.Logger) echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			kv := []interface{}{
				"method", v.Method,
				"path", v.URIPath,
				"route", v.RoutePath,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			}
			if action := c.QueryParam("action"); action != "" {
				kv = append(kv, "action", action)
			}
			switch {
			case v.Error != nil:
				log.Warn("request failed", append(kv, "error", v.Error)...)
			case v.Status >= 500:
				log.Warn("request", kv...)
			default:
				log.Info("request", kv...)
			}
			return nil
		},
	})
}
