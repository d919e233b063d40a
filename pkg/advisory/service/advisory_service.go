package service

import (
	"context"

	"github.com/villageboy09/kiosk/pkg/locale"
)

type AdvisoryService interface {
	// GetAdvisory returns the first advisory of a problem. When stageID is
	// set and the problem is linked to that stage, the view carries the
	// stage-link id for the component lookup that follows.
	GetAdvisory(ctx context.Context, problemID uint, stageID *uint, lang locale.Locale) (*AdvisoryView, error)
}

type AdvisoryView struct {
	ID          uint    `json:"id"`
	ProblemID   uint    `json:"problem_id"`
	Title       *string `json:"title"`
	TitleTe     *string `json:"title_te"`
	TitleEn     *string `json:"title_en"`
	Symptoms    *string `json:"symptoms"`
	SymptomsTe  *string `json:"symptoms_te"`
	SymptomsEn  *string `json:"symptoms_en"`
	StageLinkID *uint   `json:"stage_link_id"`
	StageID     *uint   `json:"stage_id"`
}
