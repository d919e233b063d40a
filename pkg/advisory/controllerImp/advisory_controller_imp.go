package controllerImp

import (
	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/pkg/advisory/service"
	"github.com/villageboy09/kiosk/pkg/api"
	"github.com/villageboy09/kiosk/pkg/logger"
)

type AdvisoryCtrl struct {
	svc service.AdvisoryService
	log *logger.Logger
}

func NewAdvisoryCtrl(svc service.AdvisoryService, baseLog *logger.Logger) *AdvisoryCtrl {
	return &AdvisoryCtrl{svc: svc, log: baseLog.With("ctrl", "advisory")}
}

func (h *AdvisoryCtrl) Get(c echo.Context) error {
	problemID, err := api.RequiredID(c, "problem_id")
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	stageID, err := api.OptionalID(c, "stage_id")
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	out, err := h.svc.GetAdvisory(c.Request().Context(), problemID, stageID, api.Locale(c))
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	return api.OK(c, "advisory", out)
}
