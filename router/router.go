package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/villageboy09/kiosk/pkg/api"
	"github.com/villageboy09/kiosk/pkg/logger"
	"github.com/villageboy09/kiosk/pkg/middleware"
)

// Controllers is every handler the router mounts.
type Controllers struct {
	Crop interface {
		List(echo.Context) error
		Varieties(echo.Context) error
		StageDurations(echo.Context) error
	}
	Stage      interface{ List(echo.Context) error }
	Problem    interface{ List(echo.Context) error }
	Advisory   interface{ Get(echo.Context) error }
	Component  interface{ List(echo.Context) error }
	Identified interface {
		Save(echo.Context) error
		History(echo.Context) error
	}
	Health interface{ Health(echo.Context) error }
}

func New(e *echo.Echo, ctl Controllers, log *logger.Logger, corsOrigins []string) *echo.Echo {
	e.HideBanner = true
	e.HTTPErrorHandler = api.ErrorHandler(log)

	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(log))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(middleware.Locale())

	e.GET("/health", ctl.Health.Health)

	// action-style entry point used by the mobile app
	actions := newActionTable(ctl)
	log.Debug("actions registered", "actions", actions.names())
	for _, path := range []string{"/api.php", "/api"} {
		e.Match([]string{http.MethodGet, http.MethodPost}, path, actions.dispatch(log))
	}

	v1 := e.Group("/v1")
	v1.GET("/crops", ctl.Crop.List)
	v1.GET("/crops/:crop_id/stages", ctl.Stage.List)
	v1.GET("/crops/:crop_id/varieties", ctl.Crop.Varieties)
	v1.GET("/crops/:crop_id/stage-durations", ctl.Crop.StageDurations)
	v1.GET("/problems", ctl.Problem.List)
	v1.GET("/problems/:problem_id/advisory", ctl.Advisory.Get)
	v1.GET("/advisories/:advisory_id/components", ctl.Component.List)
	v1.POST("/identified-problems", ctl.Identified.Save)
	v1.GET("/identified-problems", ctl.Identified.History)
	return e
}
