package service

import (
	"context"

	"github.com/villageboy09/kiosk/pkg/locale"
)

type StageService interface {
	// ListStages returns the crop's stages in growth order. An unknown crop
	// yields an empty list.
	ListStages(ctx context.Context, cropID uint, lang locale.Locale) ([]StageView, error)
}

type StageView struct {
	ID          uint    `json:"id"`
	Name        *string `json:"name"`
	NameTe      string  `json:"name_te"`
	NameEn      *string `json:"name_en"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}
