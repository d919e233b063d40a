package serviceImp

import (
	"context"

	"github.com/villageboy09/kiosk/pkg/apperr"
	catalog "github.com/villageboy09/kiosk/pkg/catalog/repository"
	"github.com/villageboy09/kiosk/pkg/locale"
	"github.com/villageboy09/kiosk/pkg/logger"
	"github.com/villageboy09/kiosk/pkg/stage/service"
)

type stageSvc struct {
	r   catalog.CatalogRepository
	log *logger.Logger
}

func NewStageService(r catalog.CatalogRepository, baseLog *logger.Logger) service.StageService {
	return &stageSvc{r: r, log: baseLog.With("service", "StageResolver")}
}

func (s *stageSvc) ListStages(ctx context.Context, cropID uint, lang locale.Locale) ([]service.StageView, error) {
	if cropID == 0 {
		return nil, apperr.Invalidf("stage.ListStages", "crop_id is required")
	}
	rows, err := s.r.StagesByCrop(ctx, cropID)
	if err != nil {
		return nil, err
	}
	out := make([]service.StageView, 0, len(rows))
	for _, st := range rows {
		name := st.Name
		out = append(out, service.StageView{
			ID:          st.ID,
			Name:        locale.NewText(&name, st.NameEn).Resolve(lang),
			NameTe:      st.Name,
			NameEn:      st.NameEn,
			Description: st.Description,
			ImageURL:    st.ImageURL,
		})
	}
	s.log.Debug("stages resolved", "crop_id", cropID, "count", len(out))
	return out, nil
}
