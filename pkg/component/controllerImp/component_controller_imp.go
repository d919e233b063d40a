package controllerImp

import (
	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/pkg/api"
	"github.com/villageboy09/kiosk/pkg/component/service"
	"github.com/villageboy09/kiosk/pkg/logger"
)

type ComponentCtrl struct {
	svc service.ComponentService
	log *logger.Logger
}

func NewComponentCtrl(svc service.ComponentService, baseLog *logger.Logger) *ComponentCtrl {
	return &ComponentCtrl{svc: svc, log: baseLog.With("ctrl", "component")}
}

func (h *ComponentCtrl) List(c echo.Context) error {
	advisoryID, err := api.RequiredID(c, "advisory_id")
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	link, err := api.StageLink(c)
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	scope, err := api.Scope(c)
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	q := service.Query{AdvisoryID: advisoryID, Link: link, Scope: scope}
	out, err := h.svc.ListComponents(c.Request().Context(), q, api.Locale(c))
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	return api.OK(c, "components", out)
}
