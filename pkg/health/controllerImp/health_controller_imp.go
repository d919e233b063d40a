package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/villageboy09/kiosk/pkg/logger"
)

const pingTimeout = 800 * time.Millisecond

type HealthCtrl struct {
	db      *gorm.DB
	log     *logger.Logger
	started time.Time
}

func NewHealthCtrl(db *gorm.DB, baseLog *logger.Logger) *HealthCtrl {
	return &HealthCtrl{db: db, log: baseLog.With("ctrl", "health"), started: time.Now()}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) ping(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	db := h.ping(ctx)
	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
		h.log.Warn("health check failed", "database", db.Err)
	}

	return c.JSON(status, echo.Map{
		"status":     echo.Map{"ok": db.OK},
		"uptime_sec": int(time.Since(h.started).Seconds()),
		"checks":     echo.Map{"database": db},
		"time":       time.Now().Format(time.RFC3339),
	})
}
