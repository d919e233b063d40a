package serviceImp

import (
	"context"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/apperr"
	catalog "github.com/villageboy09/kiosk/pkg/catalog/repository"
	"github.com/villageboy09/kiosk/pkg/component/service"
	"github.com/villageboy09/kiosk/pkg/locale"
	"github.com/villageboy09/kiosk/pkg/logger"
)

type componentSvc struct {
	r   catalog.CatalogRepository
	log *logger.Logger
}

func NewComponentService(r catalog.CatalogRepository, baseLog *logger.Logger) service.ComponentService {
	return &componentSvc{r: r, log: baseLog.With("service", "ComponentResolver")}
}

func (s *componentSvc) ListComponents(ctx context.Context, q service.Query, lang locale.Locale) ([]service.ComponentView, error) {
	const op = "component.ListComponents"
	if q.AdvisoryID == 0 {
		return nil, apperr.Invalidf(op, "advisory_id is required")
	}
	f := catalog.ComponentFilter{AdvisoryID: q.AdvisoryID, Scope: q.Scope}
	switch l := q.Link.(type) {
	case nil, service.AnyStageLink:
		f.Link = catalog.AnyLink
	case service.NoStageLink:
		f.Link = catalog.AgnosticOnly
	case service.StageLinkID:
		if l == 0 {
			return nil, apperr.Invalidf(op, "stage_link_id must be positive")
		}
		f.Link, f.StageLinkID = catalog.ExactOrAgnostic, uint(l)
	default:
		return nil, apperr.Invalidf(op, "unsupported stage link filter %T", l)
	}

	rows, err := s.r.Components(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]service.ComponentView, 0, len(rows))
	for _, c := range rows {
		out = append(out, view(c, lang))
	}
	s.log.Debug("components resolved", "advisory_id", q.AdvisoryID, "link_mode", f.Link, "count", len(out))
	return out, nil
}

func view(c entities.Component, lang locale.Locale) service.ComponentView {
	return service.ComponentView{
		ID:                  c.ID,
		AdvisoryID:          c.AdvisoryID,
		StageLinkID:         c.StageLinkID,
		ComponentType:       c.ComponentType,
		StageScope:          c.StageScope,
		ComponentName:       locale.NewText(c.NameTe, c.NameEn).Resolve(lang),
		ComponentNameEn:     c.NameEn,
		ComponentNameTe:     c.NameTe,
		AltComponentName:    locale.NewText(c.AltNameTe, c.AltNameEn).Resolve(lang),
		AltComponentNameEn:  c.AltNameEn,
		AltComponentNameTe:  c.AltNameTe,
		Dose:                locale.NewText(c.DoseTe, c.DoseEn).Resolve(lang),
		DoseEn:              c.DoseEn,
		DoseTe:              c.DoseTe,
		ApplicationMethod:   locale.NewText(c.MethodTe, c.MethodEn).Resolve(lang),
		ApplicationMethodEn: c.MethodEn,
		ApplicationMethodTe: c.MethodTe,
		ImageURL:            c.ImageURL,
	}
}
