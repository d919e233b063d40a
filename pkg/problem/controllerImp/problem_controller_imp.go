package controllerImp

import (
	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/pkg/api"
	"github.com/villageboy09/kiosk/pkg/logger"
	"github.com/villageboy09/kiosk/pkg/problem/service"
)

type ProblemCtrl struct {
	svc service.ProblemService
	log *logger.Logger
}

func NewProblemCtrl(svc service.ProblemService, baseLog *logger.Logger) *ProblemCtrl {
	return &ProblemCtrl{svc: svc, log: baseLog.With("ctrl", "problem")}
}

func (h *ProblemCtrl) List(c echo.Context) error {
	cropID, err := api.OptionalID(c, "crop_id")
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	stageID, err := api.OptionalID(c, "stage_id")
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	out, err := h.svc.ListProblems(c.Request().Context(), service.NewQuery(cropID, stageID), api.Locale(c))
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	return api.OK(c, "problems", out)
}
