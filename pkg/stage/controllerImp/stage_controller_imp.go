package controllerImp

import (
	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/pkg/api"
	"github.com/villageboy09/kiosk/pkg/logger"
	"github.com/villageboy09/kiosk/pkg/stage/service"
)

type StageCtrl struct {
	svc service.StageService
	log *logger.Logger
}

func NewStageCtrl(svc service.StageService, baseLog *logger.Logger) *StageCtrl {
	return &StageCtrl{svc: svc, log: baseLog.With("ctrl", "stage")}
}

func (h *StageCtrl) List(c echo.Context) error {
	cropID, err := api.RequiredID(c, "crop_id")
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	out, err := h.svc.ListStages(c.Request().Context(), cropID, api.Locale(c))
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	return api.OK(c, "stages", out)
}
