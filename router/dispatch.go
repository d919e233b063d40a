package router

import (
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/pkg/api"
	"github.com/villageboy09/kiosk/pkg/apperr"
	"github.com/villageboy09/kiosk/pkg/logger"
)

// actionTable maps the legacy ?action= names to handlers. It is built once
// and never mutated.
type actionTable map[string]echo.HandlerFunc

func newActionTable(ctl Controllers) actionTable {
	return actionTable{
		"get_crops":               ctl.Crop.List,
		"get_varieties":           ctl.Crop.Varieties,
		"get_stage_duration":      ctl.Crop.StageDurations,
		"get_crop_stages":         ctl.Stage.List,
		"get_problems":            ctl.Problem.List,
		"get_advisories":          ctl.Advisory.Get,
		"get_advisory_components": ctl.Component.List,
		"save_identified_problem": ctl.Identified.Save,
	}
}

func (t actionTable) names() []string {
	out := make([]string, 0, len(t))
	for name := range t {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (t actionTable) dispatch(log *logger.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		action := c.QueryParam("action")
		h, ok := t[action]
		if !ok {
			log.Debug("unknown action", "action", action)
			return api.Fail(c, log, apperr.Invalidf("router.dispatch", "Invalid action"))
		}
		return h(c)
	}
}
