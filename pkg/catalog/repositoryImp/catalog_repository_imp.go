package repositoryImp

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/apperr"
	"github.com/villageboy09/kiosk/pkg/catalog/repository"
	"github.com/villageboy09/kiosk/pkg/logger"
)

type catalogRepo struct {
	db      *gorm.DB
	log     *logger.Logger
	timeout time.Duration
}

// New returns the gorm-backed gateway. A positive timeout bounds every query.
func New(db *gorm.DB, baseLog *logger.Logger, timeout time.Duration) repository.CatalogRepository {
	return &catalogRepo{db: db, log: baseLog.With("repo", "CatalogRepository"), timeout: timeout}
}

// fetchRows runs one read and wraps any failure as DataUnavailable. It
// never returns a nil slice on success.
func fetchRows[T any](ctx context.Context, r *catalogRepo, op string, build func(*gorm.DB) *gorm.DB) ([]T, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	out := make([]T, 0)
	if err := build(r.db.WithContext(ctx)).Find(&out).Error; err != nil {
		r.log.Warn("query failed", "op", op, "error", err)
		return nil, apperr.Unavailable(op, err)
	}
	return out, nil
}

func first[T any](rows []T) *T {
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

func orderBy(col string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: col}}
}

func (r *catalogRepo) Crops(ctx context.Context) ([]entities.Crop, error) {
	return fetchRows[entities.Crop](ctx, r, "catalog.Crops", func(q *gorm.DB) *gorm.DB {
		return q.Order("id")
	})
}

func (r *catalogRepo) StagesByCrop(ctx context.Context, cropID uint) ([]entities.Stage, error) {
	return fetchRows[entities.Stage](ctx, r, "catalog.StagesByCrop", func(q *gorm.DB) *gorm.DB {
		return q.Where("crop_id = ?", cropID).Order(orderBy("StageID"))
	})
}

func (r *catalogRepo) VarietiesByCrop(ctx context.Context, cropID uint) ([]entities.Variety, error) {
	return fetchRows[entities.Variety](ctx, r, "catalog.VarietiesByCrop", func(q *gorm.DB) *gorm.DB {
		return q.Where("crop_id = ?", cropID).Order("id")
	})
}

func (r *catalogRepo) StageDurations(ctx context.Context, f repository.DurationFilter) ([]entities.StageDuration, error) {
	return fetchRows[entities.StageDuration](ctx, r, "catalog.StageDurations", func(q *gorm.DB) *gorm.DB {
		if f.VarietyID != nil {
			q = q.Where("variety_id = ?", *f.VarietyID)
		} else {
			varieties := r.db.Model(&entities.Variety{}).Select("id").Where("crop_id = ?", f.CropID)
			q = q.Where("variety_id IN (?)", varieties)
		}
		return q.Order("variety_id").Order("id")
	})
}

func (r *catalogRepo) ProblemsByStage(ctx context.Context, stageID uint, cropID *uint) ([]repository.LinkedProblem, error) {
	return fetchRows[repository.LinkedProblem](ctx, r, "catalog.ProblemsByStage", func(q *gorm.DB) *gorm.DB {
		q = q.Table("rice_problems").
			Select("rice_problems.*, problem_stages.id AS stage_link_id, problem_stages.stage_id AS link_stage_id").
			Joins("JOIN problem_stages ON problem_stages.problem_id = rice_problems.id").
			Where("problem_stages.stage_id = ?", stageID)
		if cropID != nil {
			q = q.Where("rice_problems.crop_id = ?", *cropID)
		}
		return q.Order("rice_problems.category, rice_problems.id, problem_stages.id")
	})
}

func (r *catalogRepo) ProblemsByCrop(ctx context.Context, cropID uint) ([]entities.Problem, error) {
	return fetchRows[entities.Problem](ctx, r, "catalog.ProblemsByCrop", func(q *gorm.DB) *gorm.DB {
		return q.Where("crop_id = ?", cropID).Order("category, id")
	})
}

func (r *catalogRepo) AllProblems(ctx context.Context) ([]entities.Problem, error) {
	return fetchRows[entities.Problem](ctx, r, "catalog.AllProblems", func(q *gorm.DB) *gorm.DB {
		return q.Order("category, id")
	})
}

func (r *catalogRepo) FirstAdvisory(ctx context.Context, problemID uint) (*entities.Advisory, error) {
	rows, err := fetchRows[entities.Advisory](ctx, r, "catalog.FirstAdvisory", func(q *gorm.DB) *gorm.DB {
		return q.Where("problem_id = ?", problemID).Order("id").Limit(1)
	})
	if err != nil {
		return nil, err
	}
	return first(rows), nil
}

func (r *catalogRepo) StageLink(ctx context.Context, problemID, stageID uint) (*entities.StageLink, error) {
	rows, err := fetchRows[entities.StageLink](ctx, r, "catalog.StageLink", func(q *gorm.DB) *gorm.DB {
		return q.Where("problem_id = ? AND stage_id = ?", problemID, stageID).Order("id").Limit(1)
	})
	if err != nil {
		return nil, err
	}
	return first(rows), nil
}

func (r *catalogRepo) Components(ctx context.Context, f repository.ComponentFilter) ([]entities.Component, error) {
	return fetchRows[entities.Component](ctx, r, "catalog.Components", func(q *gorm.DB) *gorm.DB {
		q = q.Where("advisory_id = ?", f.AdvisoryID)
		var conds []string
		var args []any
		switch f.Link {
		case repository.ExactOrAgnostic:
			conds = append(conds, "problem_stage_id = ? OR problem_stage_id IS NULL")
			args = append(args, f.StageLinkID)
		case repository.AgnosticOnly:
			conds = append(conds, "problem_stage_id IS NULL")
		}
		if f.Scope != nil {
			conds = append(conds, "stage_scope = ? OR stage_scope = ?")
			args = append(args, string(*f.Scope), string(entities.ScopeAllStages))
		}
		// a component passing either the link match or the scope match is visible
		if len(conds) > 0 {
			q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
		}
		return q.Order("component_type, id")
	})
}
