package serviceImp

import (
	"context"
	"fmt"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/apperr"
	catalog "github.com/villageboy09/kiosk/pkg/catalog/repository"
	"github.com/villageboy09/kiosk/pkg/locale"
	"github.com/villageboy09/kiosk/pkg/logger"
	"github.com/villageboy09/kiosk/pkg/problem/service"
)

type problemSvc struct {
	r   catalog.CatalogRepository
	log *logger.Logger
}

func NewProblemService(r catalog.CatalogRepository, baseLog *logger.Logger) service.ProblemService {
	return &problemSvc{r: r, log: baseLog.With("service", "ProblemResolver")}
}

func (s *problemSvc) ListProblems(ctx context.Context, q service.Query, lang locale.Locale) ([]service.ProblemView, error) {
	out, err := s.list(ctx, q, lang)
	if err != nil {
		return nil, err
	}
	s.log.Debug("problems resolved", "query", describe(q), "count", len(out))
	return out, nil
}

func (s *problemSvc) list(ctx context.Context, q service.Query, lang locale.Locale) ([]service.ProblemView, error) {
	switch q := q.(type) {
	case service.ByStage:
		return s.byStage(ctx, q, lang)
	case service.ByCrop:
		if q.CropID == 0 {
			return nil, apperr.Invalidf("problem.ListProblems", "crop_id must be positive")
		}
		rows, err := s.r.ProblemsByCrop(ctx, q.CropID)
		if err != nil {
			return nil, err
		}
		return unlinked(rows, lang), nil
	case service.Unfiltered:
		rows, err := s.r.AllProblems(ctx)
		if err != nil {
			return nil, err
		}
		return unlinked(rows, lang), nil
	default:
		return nil, apperr.Invalidf("problem.ListProblems", "unsupported query %T", q)
	}
}

func (s *problemSvc) byStage(ctx context.Context, q service.ByStage, lang locale.Locale) ([]service.ProblemView, error) {
	if q.StageID == 0 {
		return nil, apperr.Invalidf("problem.ListProblems", "stage_id must be positive")
	}
	rows, err := s.r.ProblemsByStage(ctx, q.StageID, q.CropID)
	if err != nil {
		return nil, err
	}
	// one entry per problem; rows arrive ordered by link id within a
	// problem, so the earliest link wins
	seen := make(map[uint]struct{}, len(rows))
	out := make([]service.ProblemView, 0, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.ID]; dup {
			continue
		}
		seen[row.ID] = struct{}{}
		v := view(row.Problem, lang)
		linkID, stageID := row.StageLinkID, row.StageID
		v.StageLinkID, v.StageID = &linkID, &stageID
		out = append(out, v)
	}
	if dups := len(rows) - len(out); dups > 0 {
		s.log.Debug("duplicate stage links collapsed", "stage_id", q.StageID, "dropped", dups)
	}
	return out, nil
}

func unlinked(rows []entities.Problem, lang locale.Locale) []service.ProblemView {
	out := make([]service.ProblemView, 0, len(rows))
	for _, p := range rows {
		out = append(out, view(p, lang))
	}
	return out
}

func view(p entities.Problem, lang locale.Locale) service.ProblemView {
	return service.ProblemView{
		ID:        p.ID,
		Name:      locale.NewText(p.NameTe, p.NameEn).Resolve(lang),
		NameTe:    p.NameTe,
		NameEn:    p.NameEn,
		Category:  p.Category,
		CropID:    p.CropID,
		ImageURL1: p.ImageURL1,
		ImageURL2: p.ImageURL2,
		ImageURL3: p.ImageURL3,
	}
}

func describe(q service.Query) string {
	switch q := q.(type) {
	case service.ByStage:
		if q.CropID != nil {
			return fmt.Sprintf("stage=%d crop=%d", q.StageID, *q.CropID)
		}
		return fmt.Sprintf("stage=%d", q.StageID)
	case service.ByCrop:
		return fmt.Sprintf("crop=%d", q.CropID)
	default:
		return "all"
	}
}
