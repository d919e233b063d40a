package entities

import "time"

// Crop is the root of the advisory hierarchy. Name holds the Telugu label.
type Crop struct {
	ID       uint    `gorm:"column:id;primaryKey" json:"id"`
	Name     string  `gorm:"column:name" json:"name"`
	NameEn   *string `gorm:"column:name_en" json:"name_en"`
	ImageURL *string `gorm:"column:image_url" json:"image_url"`
}

func (Crop) TableName() string { return "crops" }

// Stage is one phenological stage of a crop. Authoring order (StageID) is
// the growth order.
type Stage struct {
	ID          uint    `gorm:"column:StageID;primaryKey" json:"id"`
	CropID      uint    `gorm:"column:crop_id;index" json:"crop_id"`
	Name        string  `gorm:"column:StageName" json:"name"`
	NameEn      *string `gorm:"column:StageName_en" json:"name_en"`
	Description *string `gorm:"column:Description" json:"description"`
	ImageURL    *string `gorm:"column:StageImageURL" json:"image_url"`
}

func (Stage) TableName() string { return "CropStages" }

type Variety struct {
	ID             uint    `gorm:"column:id;primaryKey" json:"id"`
	CropID         uint    `gorm:"column:crop_id;index" json:"crop_id"`
	VarietyName    string  `gorm:"column:variety_name" json:"variety_name"`
	PacketImageURL *string `gorm:"column:packet_image_url" json:"packet_image_url"`
	GrowthDuration *int    `gorm:"column:growth_duration" json:"growth_duration"`
}

func (Variety) TableName() string { return "crop_varieties" }

// StageDuration places a stage on the sowing timeline of one variety.
type StageDuration struct {
	ID                 uint `gorm:"column:id;primaryKey" json:"id"`
	VarietyID          uint `gorm:"column:variety_id;index" json:"variety_id"`
	StageID            uint `gorm:"column:stage_id" json:"stage_id"`
	StartDayFromSowing int  `gorm:"column:StartDayFromSowing" json:"start_day_from_sowing"`
	EndDayFromSowing   int  `gorm:"column:EndDayFromSowing" json:"end_day_from_sowing"`
}

func (StageDuration) TableName() string { return "crop_stage_durations" }

// IdentifiedProblem records that a farmer recognised a problem in the field.
type IdentifiedProblem struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;size:64;uniqueIndex:idx_fip_user_problem" json:"user_id"`
	ProblemID uint      `gorm:"column:problem_id;uniqueIndex:idx_fip_user_problem" json:"problem_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (IdentifiedProblem) TableName() string { return "farmer_identified_problems" }
