package api

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/apperr"
	component "github.com/villageboy09/kiosk/pkg/component/service"
	"github.com/villageboy09/kiosk/pkg/locale"
)

// LocaleKey is the echo context key the locale middleware stores under.
const LocaleKey = "lang"

// raw looks a parameter up in the route path first, then the query string,
// then a submitted form.
func raw(c echo.Context, name string) (string, bool) {
	if v := c.Param(name); v != "" {
		return v, true
	}
	if vs, ok := c.QueryParams()[name]; ok {
		if len(vs) == 0 {
			return "", true
		}
		return vs[0], true
	}
	if v := c.FormValue(name); v != "" {
		return v, true
	}
	return "", false
}

func parseID(name, s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, apperr.Invalidf("api.param", "%s must be a positive integer", name)
	}
	return uint(n), nil
}

// RequiredID parses a positive id parameter; absent or empty is InvalidInput.
func RequiredID(c echo.Context, name string) (uint, error) {
	s, ok := raw(c, name)
	if !ok || strings.TrimSpace(s) == "" {
		return 0, apperr.Invalidf("api.param", "%s is required", name)
	}
	return parseID(name, s)
}

// OptionalID returns nil when the parameter is absent or empty.
func OptionalID(c echo.Context, name string) (*uint, error) {
	s, ok := raw(c, name)
	if !ok || strings.TrimSpace(s) == "" {
		return nil, nil
	}
	n, err := parseID(name, s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// StageLink reads stage_link_id (or its legacy name problem_stage_id).
// Absent means no narrowing; empty or "null" means stage-agnostic only.
func StageLink(c echo.Context) (component.StageLinkFilter, error) {
	name := "stage_link_id"
	s, ok := raw(c, name)
	if !ok {
		name = "problem_stage_id"
		s, ok = raw(c, name)
	}
	if !ok {
		return component.AnyStageLink{}, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "null", "none":
		return component.NoStageLink{}, nil
	}
	n, err := parseID(name, s)
	if err != nil {
		return nil, err
	}
	return component.StageLinkID(n), nil
}

// Scope parses stage_scope; empty is nil, an unknown label is InvalidInput.
func Scope(c echo.Context) (*entities.StageScope, error) {
	s, _ := raw(c, "stage_scope")
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	sc, ok := entities.ParseStageScope(s)
	if !ok {
		return nil, apperr.Invalidf("api.param", "unknown stage_scope %q", s)
	}
	return &sc, nil
}

// Locale returns the request locale set by the middleware, parsing the
// lang parameter directly when the middleware is not installed.
func Locale(c echo.Context) locale.Locale {
	if l, ok := c.Get(LocaleKey).(locale.Locale); ok {
		return l
	}
	s, _ := raw(c, "lang")
	return locale.Parse(s)
}
