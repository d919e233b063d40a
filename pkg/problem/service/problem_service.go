package service

import (
	"context"

	"github.com/villageboy09/kiosk/pkg/locale"
)

type ProblemService interface {
	// ListProblems returns problems grouped by category, id ascending within
	// each category. Stage-filtered results carry the stage-link id.
	ListProblems(ctx context.Context, q Query, lang locale.Locale) ([]ProblemView, error)
}

// Query selects one of the listing modes.
type Query interface{ isProblemQuery() }

// ByStage lists problems linked to StageID, optionally restricted to a crop.
type ByStage struct {
	StageID uint
	CropID  *uint
}

// ByCrop lists every problem of a crop regardless of stage.
type ByCrop struct{ CropID uint }

// Unfiltered lists the whole catalog.
type Unfiltered struct{}

func (ByStage) isProblemQuery()    {}
func (ByCrop) isProblemQuery()     {}
func (Unfiltered) isProblemQuery() {}

// NewQuery picks the mode from which optional filters are present.
func NewQuery(cropID, stageID *uint) Query {
	switch {
	case stageID != nil:
		return ByStage{StageID: *stageID, CropID: cropID}
	case cropID != nil:
		return ByCrop{CropID: *cropID}
	default:
		return Unfiltered{}
	}
}

type ProblemView struct {
	ID          uint    `json:"id"`
	Name        *string `json:"name"`
	NameTe      *string `json:"name_te"`
	NameEn      *string `json:"name_en"`
	Category    string  `json:"category"`
	CropID      uint    `json:"crop_id"`
	ImageURL1   *string `json:"image_url1"`
	ImageURL2   *string `json:"image_url2"`
	ImageURL3   *string `json:"image_url3"`
	StageLinkID *uint   `json:"stage_link_id"`
	StageID     *uint   `json:"stage_id"`
}
