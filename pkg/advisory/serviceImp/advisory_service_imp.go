package serviceImp

import (
	"context"

	"github.com/villageboy09/kiosk/pkg/advisory/service"
	"github.com/villageboy09/kiosk/pkg/apperr"
	catalog "github.com/villageboy09/kiosk/pkg/catalog/repository"
	"github.com/villageboy09/kiosk/pkg/locale"
	"github.com/villageboy09/kiosk/pkg/logger"
)

type advisorySvc struct {
	r   catalog.CatalogRepository
	log *logger.Logger
}

func NewAdvisoryService(r catalog.CatalogRepository, baseLog *logger.Logger) service.AdvisoryService {
	return &advisorySvc{r: r, log: baseLog.With("service", "AdvisoryResolver")}
}

func (s *advisorySvc) GetAdvisory(ctx context.Context, problemID uint, stageID *uint, lang locale.Locale) (*service.AdvisoryView, error) {
	const op = "advisory.GetAdvisory"
	if problemID == 0 {
		return nil, apperr.Invalidf(op, "problem_id is required")
	}
	adv, err := s.r.FirstAdvisory(ctx, problemID)
	if err != nil {
		return nil, err
	}
	if adv == nil {
		return nil, apperr.NotFoundf(op, "Advisory not found for problem %d", problemID)
	}

	v := &service.AdvisoryView{
		ID:         adv.ID,
		ProblemID:  adv.ProblemID,
		Title:      locale.NewText(adv.TitleTe, adv.TitleEn).Resolve(lang),
		TitleTe:    adv.TitleTe,
		TitleEn:    adv.TitleEn,
		Symptoms:   locale.NewText(adv.SymptomsTe, adv.SymptomsEn).Resolve(lang),
		SymptomsTe: adv.SymptomsTe,
		SymptomsEn: adv.SymptomsEn,
	}
	if stageID == nil {
		return v, nil
	}

	link, err := s.r.StageLink(ctx, problemID, *stageID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		// an unlinked stage is not an error; components fall back to the
		// stage-agnostic set
		s.log.Debug("no stage link", "problem_id", problemID, "stage_id", *stageID)
		return v, nil
	}
	linkID, sid := link.ID, link.StageID
	v.StageLinkID, v.StageID = &linkID, &sid
	return v, nil
}
