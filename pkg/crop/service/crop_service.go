package service

import (
	"context"

	"github.com/villageboy09/kiosk/pkg/locale"
)

type CropService interface {
	ListCrops(ctx context.Context, lang locale.Locale) ([]CropView, error)
	ListVarieties(ctx context.Context, cropID uint) ([]VarietyView, error)
	// ListStageDurations filters by varietyID when set, otherwise by every
	// variety of cropID.
	ListStageDurations(ctx context.Context, cropID uint, varietyID *uint) ([]DurationView, error)
}

type CropView struct {
	ID       uint    `json:"id"`
	Name     *string `json:"name"`
	NameTe   string  `json:"name_te"`
	NameEn   *string `json:"name_en"`
	ImageURL *string `json:"image_url"`
}

type VarietyView struct {
	ID             uint    `json:"id"`
	VarietyName    string  `json:"variety_name"`
	PacketImageURL *string `json:"packet_image_url"`
	GrowthDuration *int    `json:"growth_duration"`
}

type DurationView struct {
	ID                 uint `json:"id"`
	VarietyID          uint `json:"variety_id"`
	StageID            uint `json:"stage_id"`
	StartDayFromSowing int  `json:"start_day_from_sowing"`
	EndDayFromSowing   int  `json:"end_day_from_sowing"`
}
