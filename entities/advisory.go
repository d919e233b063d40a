package entities

import "strings"

type Problem struct {
	ID        uint    `gorm:"column:id;primaryKey" json:"id"`
	CropID    uint    `gorm:"column:crop_id;index" json:"crop_id"`
	Category  string  `gorm:"column:category;size:64" json:"category"`
	NameTe    *string `gorm:"column:problem_name_te" json:"name_te"`
	NameEn    *string `gorm:"column:problem_name_en" json:"name_en"`
	ImageURL1 *string `gorm:"column:image_url1" json:"image_url1"`
	ImageURL2 *string `gorm:"column:image_url2" json:"image_url2"`
	ImageURL3 *string `gorm:"column:image_url3" json:"image_url3"`
}

func (Problem) TableName() string { return "rice_problems" }

// StageLink is the problem_stages junction row. Its ID is the stage-link id
// threaded from problem listing through advisory lookup into components.
type StageLink struct {
	ID        uint `gorm:"column:id;primaryKey" json:"id"`
	ProblemID uint `gorm:"column:problem_id;index" json:"problem_id"`
	StageID   uint `gorm:"column:stage_id;index" json:"stage_id"`
}

func (StageLink) TableName() string { return "problem_stages" }

type Advisory struct {
	ID         uint    `gorm:"column:id;primaryKey" json:"id"`
	ProblemID  uint    `gorm:"column:problem_id;index" json:"problem_id"`
	TitleTe    *string `gorm:"column:advisory_title_te" json:"title_te"`
	TitleEn    *string `gorm:"column:advisory_title_en" json:"title_en"`
	SymptomsTe *string `gorm:"column:symptoms_te" json:"symptoms_te"`
	SymptomsEn *string `gorm:"column:symptoms_en" json:"symptoms_en"`
}

func (Advisory) TableName() string { return "crop_advisories" }

// Component is one remedy of an advisory. A nil StageLinkID applies at
// every stage.
type Component struct {
	ID            uint        `gorm:"column:id;primaryKey" json:"id"`
	AdvisoryID    uint        `gorm:"column:advisory_id;index" json:"advisory_id"`
	StageLinkID   *uint       `gorm:"column:problem_stage_id;index" json:"stage_link_id"`
	ComponentType string      `gorm:"column:component_type;size:32" json:"component_type"`
	StageScope    *StageScope `gorm:"column:stage_scope;size:32" json:"stage_scope"`
	NameTe        *string     `gorm:"column:component_name_te"`
	NameEn        *string     `gorm:"column:component_name_en"`
	AltNameTe     *string     `gorm:"column:alt_component_name_te"`
	AltNameEn     *string     `gorm:"column:alt_component_name_en"`
	DoseTe        *string     `gorm:"column:dose_te"`
	DoseEn        *string     `gorm:"column:dose_en"`
	MethodTe      *string     `gorm:"column:application_method_te"`
	MethodEn      *string     `gorm:"column:application_method_en"`
	ImageURL      *string     `gorm:"column:image_url"`
}

func (Component) TableName() string { return "advisory_components" }

// StageScope is the coarse phenological bucket a component applies to.
type StageScope string

const (
	ScopeNursery      StageScope = "Nursery"
	ScopeVegetative   StageScope = "Vegetative"
	ScopeReproductive StageScope = "Reproductive"
	ScopeRipening     StageScope = "Ripening"
	ScopeAllStages    StageScope = "All Stages"
)

var stageScopes = []StageScope{ScopeNursery, ScopeVegetative, ScopeReproductive, ScopeRipening, ScopeAllStages}

// ParseStageScope accepts the canonical labels case-insensitively, with
// "all", "all_stages" and "all-stages" as spellings of All Stages.
func ParseStageScope(s string) (StageScope, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	if key == "all" {
		return ScopeAllStages, true
	}
	for _, sc := range stageScopes {
		if strings.ToLower(string(sc)) == key {
			return sc, true
		}
	}
	return "", false
}
