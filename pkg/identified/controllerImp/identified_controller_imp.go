package controllerImp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/pkg/api"
	"github.com/villageboy09/kiosk/pkg/apperr"
	"github.com/villageboy09/kiosk/pkg/identified/service"
	"github.com/villageboy09/kiosk/pkg/logger"
)

type IdentifiedCtrl struct {
	svc service.IdentifiedService
	log *logger.Logger
}

func NewIdentifiedCtrl(svc service.IdentifiedService, baseLog *logger.Logger) *IdentifiedCtrl {
	return &IdentifiedCtrl{svc: svc, log: baseLog.With("ctrl", "identified")}
}

// flexString accepts a JSON string or number; the mobile client sends both.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f *flexString) UnmarshalParam(s string) error {
	*f = flexString(s)
	return nil
}

type identifyReq struct {
	UserID    flexString `json:"user_id" form:"user_id" query:"user_id"`
	ProblemID flexString `json:"problem_id" form:"problem_id" query:"problem_id"`
}

func (h *IdentifiedCtrl) Save(c echo.Context) error {
	var req identifyReq
	if err := c.Bind(&req); err != nil {
		return api.Fail(c, h.log, apperr.Invalidf("identified.Save", "bad request body"))
	}
	var problemID uint
	if s := strings.TrimSpace(string(req.ProblemID)); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return api.Fail(c, h.log, apperr.Invalidf("identified.Save", "problem_id must be a positive integer"))
		}
		problemID = uint(n)
	}
	rec, err := h.svc.Record(c.Request().Context(), string(req.UserID), problemID)
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "id": rec.ID, "created": rec.Created, "message": rec.Message})
}

func (h *IdentifiedCtrl) History(c echo.Context) error {
	out, err := h.svc.History(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return api.Fail(c, h.log, err)
	}
	return api.OK(c, "identified_problems", out)
}
