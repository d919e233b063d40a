package service

import (
	"context"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/locale"
)

type ComponentService interface {
	// ListComponents returns the remedies of an advisory ordered by
	// component type, then id. Link and Scope each admit their own match
	// plus the stage-agnostic rows; with both set the two matches are unioned.
	ListComponents(ctx context.Context, q Query, lang locale.Locale) ([]ComponentView, error)
}

type Query struct {
	AdvisoryID uint
	Link       StageLinkFilter
	Scope      *entities.StageScope
}

// StageLinkFilter is how the caller's stage-link context narrows components.
type StageLinkFilter interface{ isStageLinkFilter() }

// AnyStageLink applies no stage-link narrowing.
type AnyStageLink struct{}

// NoStageLink is an explicit null stage link: only stage-agnostic components.
type NoStageLink struct{}

// StageLinkID keeps components linked to this id or to no stage.
type StageLinkID uint

func (AnyStageLink) isStageLinkFilter() {}
func (NoStageLink) isStageLinkFilter()  {}
func (StageLinkID) isStageLinkFilter()  {}

type ComponentView struct {
	ID                  uint                 `json:"id"`
	AdvisoryID          uint                 `json:"advisory_id"`
	StageLinkID         *uint                `json:"stage_link_id"`
	ComponentType       string               `json:"component_type"`
	StageScope          *entities.StageScope `json:"stage_scope"`
	ComponentName       *string              `json:"component_name"`
	ComponentNameEn     *string              `json:"component_name_en"`
	ComponentNameTe     *string              `json:"component_name_te"`
	AltComponentName    *string              `json:"alt_component_name"`
	AltComponentNameEn  *string              `json:"alt_component_name_en"`
	AltComponentNameTe  *string              `json:"alt_component_name_te"`
	Dose                *string              `json:"dose"`
	DoseEn              *string              `json:"dose_en"`
	DoseTe              *string              `json:"dose_te"`
	ApplicationMethod   *string              `json:"application_method"`
	ApplicationMethodEn *string              `json:"application_method_en"`
	ApplicationMethodTe *string              `json:"application_method_te"`
	ImageURL            *string              `json:"image_url"`
}
