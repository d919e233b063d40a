package controllerImp

import (
	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/pkg/api"
	"github.com/villageboy09/kiosk/pkg/crop/service"
	"github.com/villageboy09/kiosk/pkg/logger"
)

type CropCtrl struct {
	svc service.CropService
	log *logger.Logger
}

func NewCropCtrl(svc service.CropService, baseLog *logger.Logger) *CropCtrl {
	return &CropCtrl{svc: svc, log: baseLog.With("ctrl", "crop")}
}

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.svc.ListCrops(c.Request().Context(), api.Locale(c))
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	return api.OK(c, "crops", out)
}

func (h *CropCtrl) Varieties(c echo.Context) error {
	cropID, err := api.RequiredID(c, "crop_id")
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	out, err := h.svc.ListVarieties(c.Request().Context(), cropID)
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	return api.OK(c, "varieties", out)
}

func (h *CropCtrl) StageDurations(c echo.Context) error {
	varietyID, err := api.OptionalID(c, "variety_id")
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	var cropID uint
	if varietyID == nil {
		if cropID, err = api.RequiredID(c, "crop_id"); err != nil {
			return api.Fail(c, h.log, err)
		}
	}
	out, err := h.svc.ListStageDurations(c.Request().Context(), cropID, varietyID)
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	return api.OK(c, "durations", out)
}
