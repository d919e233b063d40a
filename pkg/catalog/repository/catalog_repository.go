package repository

import (
	"context"

	"github.com/villageboy09/kiosk/entities"
)

// CatalogRepository is the read gateway over the advisory content tables.
// Every failure to execute a query surfaces as apperr.DataUnavailable;
// collection reads return an empty, non-nil slice when nothing matches.
type CatalogRepository interface {
	Crops(ctx context.Context) ([]entities.Crop, error)
	StagesByCrop(ctx context.Context, cropID uint) ([]entities.Stage, error)
	VarietiesByCrop(ctx context.Context, cropID uint) ([]entities.Variety, error)
	StageDurations(ctx context.Context, f DurationFilter) ([]entities.StageDuration, error)

	ProblemsByStage(ctx context.Context, stageID uint, cropID *uint) ([]LinkedProblem, error)
	ProblemsByCrop(ctx context.Context, cropID uint) ([]entities.Problem, error)
	AllProblems(ctx context.Context) ([]entities.Problem, error)

	// FirstAdvisory and StageLink return nil, nil when no row matches.
	FirstAdvisory(ctx context.Context, problemID uint) (*entities.Advisory, error)
	StageLink(ctx context.Context, problemID, stageID uint) (*entities.StageLink, error)

	Components(ctx context.Context, f ComponentFilter) ([]entities.Component, error)
}

// LinkedProblem is a problem row joined to one of its problem_stages rows.
type LinkedProblem struct {
	entities.Problem
	StageLinkID uint `gorm:"column:stage_link_id"`
	StageID     uint `gorm:"column:link_stage_id"`
}

type LinkMode int

const (
	// AnyLink applies no stage-link narrowing.
	AnyLink LinkMode = iota
	// AgnosticOnly keeps components whose stage link is NULL.
	AgnosticOnly
	// ExactOrAgnostic keeps components linked to StageLinkID or to nothing.
	ExactOrAgnostic
)

// ComponentFilter narrows the components of one advisory. With both a link
// mode and a Scope, a component is kept when it passes either of them.
// The legacy get_advisory_components query required both; do not restore
// that, it hides stage-tagged components linked to another stage.
type ComponentFilter struct {
	AdvisoryID  uint
	Link        LinkMode
	StageLinkID uint
	// Scope, when set, keeps components tagged with it or with All Stages.
	Scope *entities.StageScope
}

// DurationFilter selects by variety when VarietyID is set, otherwise by
// every variety of CropID.
type DurationFilter struct {
	CropID    uint
	VarietyID *uint
}
