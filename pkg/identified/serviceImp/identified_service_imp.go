package serviceImp

import (
	"context"
	"strings"
	"time"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/apperr"
	"github.com/villageboy09/kiosk/pkg/identified/repository"
	"github.com/villageboy09/kiosk/pkg/identified/service"
	"github.com/villageboy09/kiosk/pkg/logger"
)

const (
	msgCreated = "Problem marked as identified"
	msgExists  = "Already identified"
)

type identifiedSvc struct {
	r   repository.IdentifiedRepository
	log *logger.Logger
	now func() time.Time
}

func NewIdentifiedService(r repository.IdentifiedRepository, baseLog *logger.Logger) service.IdentifiedService {
	return &identifiedSvc{r: r, log: baseLog.With("service", "IdentifiedProblemLog"), now: time.Now}
}

func (s *identifiedSvc) Record(ctx context.Context, userID string, problemID uint) (service.Recorded, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || problemID == 0 {
		return service.Recorded{}, apperr.Invalidf("identified.Record", "Missing required fields")
	}
	if existing, err := s.r.Find(ctx, userID, problemID); err != nil {
		return service.Recorded{}, err
	} else if existing != nil {
		return service.Recorded{ID: existing.ID, Message: msgExists}, nil
	}

	m := &entities.IdentifiedProblem{UserID: userID, ProblemID: problemID, CreatedAt: s.now()}
	created, err := s.r.Create(ctx, m)
	if err != nil {
		s.log.Error("record identified problem", "user_id", userID, "problem_id", problemID, "error", err)
		return service.Recorded{}, err
	}
	if !created {
		return service.Recorded{ID: m.ID, Message: msgExists}, nil
	}
	s.log.Info("problem identified", "user_id", userID, "problem_id", problemID, "id", m.ID)
	return service.Recorded{ID: m.ID, Created: true, Message: msgCreated}, nil
}

func (s *identifiedSvc) History(ctx context.Context, userID string) ([]entities.IdentifiedProblem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, apperr.Invalidf("identified.History", "user_id is required")
	}
	return s.r.ByUser(ctx, userID)
}
