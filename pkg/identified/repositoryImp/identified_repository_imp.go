package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/apperr"
	"github.com/villageboy09/kiosk/pkg/identified/repository"
)

type identifiedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IdentifiedRepository { return &identifiedRepo{db} }

func (r *identifiedRepo) Find(ctx context.Context, userID string, problemID uint) (*entities.IdentifiedProblem, error) {
	var m entities.IdentifiedProblem
	err := r.db.WithContext(ctx).Where("user_id = ? AND problem_id = ?", userID, problemID).First(&m).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, apperr.Unavailable("identified.Find", err)
	}
	return &m, nil
}

func (r *identifiedRepo) Create(ctx context.Context, m *entities.IdentifiedProblem) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}, {Name: "problem_id"}}, DoNothing: true}).
		Create(m)
	if res.Error != nil {
		return false, apperr.Unavailable("identified.Create", res.Error)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	existing, err := r.Find(ctx, m.UserID, m.ProblemID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, apperr.Unavailable("identified.Create", errors.New("conflicting row vanished"))
	}
	*m = *existing
	return false, nil
}

func (r *identifiedRepo) ByUser(ctx context.Context, userID string) ([]entities.IdentifiedProblem, error) {
	out := make([]entities.IdentifiedProblem, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, apperr.Unavailable("identified.ByUser", err)
	}
	return out, nil
}
