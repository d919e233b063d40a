package serviceImp

import (
	"context"

	"github.com/villageboy09/kiosk/pkg/apperr"
	catalog "github.com/villageboy09/kiosk/pkg/catalog/repository"
	"github.com/villageboy09/kiosk/pkg/crop/service"
	"github.com/villageboy09/kiosk/pkg/locale"
	"github.com/villageboy09/kiosk/pkg/logger"
)

type cropSvc struct {
	r   catalog.CatalogRepository
	log *logger.Logger
}

func NewCropService(r catalog.CatalogRepository, baseLog *logger.Logger) service.CropService {
	return &cropSvc{r: r, log: baseLog.With("service", "CropCatalog")}
}

func (s *cropSvc) ListCrops(ctx context.Context, lang locale.Locale) ([]service.CropView, error) {
	rows, err := s.r.Crops(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]service.CropView, 0, len(rows))
	for _, c := range rows {
		name := c.Name
		out = append(out, service.CropView{
			ID:       c.ID,
			Name:     locale.NewText(&name, c.NameEn).Resolve(lang),
			NameTe:   c.Name,
			NameEn:   c.NameEn,
			ImageURL: c.ImageURL,
		})
	}
	return out, nil
}

func (s *cropSvc) ListVarieties(ctx context.Context, cropID uint) ([]service.VarietyView, error) {
	if cropID == 0 {
		return nil, apperr.Invalidf("crop.ListVarieties", "crop_id is required")
	}
	rows, err := s.r.VarietiesByCrop(ctx, cropID)
	if err != nil {
		return nil, err
	}
	out := make([]service.VarietyView, 0, len(rows))
	for _, v := range rows {
		out = append(out, service.VarietyView{
			ID:             v.ID,
			VarietyName:    v.VarietyName,
			PacketImageURL: v.PacketImageURL,
			GrowthDuration: v.GrowthDuration,
		})
	}
	return out, nil
}

func (s *cropSvc) ListStageDurations(ctx context.Context, cropID uint, varietyID *uint) ([]service.DurationView, error) {
	const op = "crop.ListStageDurations"
	switch {
	case varietyID != nil && *varietyID == 0:
		return nil, apperr.Invalidf(op, "variety_id must be positive")
	case varietyID == nil && cropID == 0:
		return nil, apperr.Invalidf(op, "crop_id or variety_id is required")
	}
	rows, err := s.r.StageDurations(ctx, catalog.DurationFilter{CropID: cropID, VarietyID: varietyID})
	if err != nil {
		return nil, err
	}
	out := make([]service.DurationView, 0, len(rows))
	for _, d := range rows {
		out = append(out, service.DurationView{
			ID:                 d.ID,
			VarietyID:          d.VarietyID,
			StageID:            d.StageID,
			StartDayFromSowing: d.StartDayFromSowing,
			EndDayFromSowing:   d.EndDayFromSowing,
		})
	}
	s.log.Debug("stage durations resolved", "crop_id", cropID, "count", len(out))
	return out, nil
}
