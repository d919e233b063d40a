// Package locale owns the mapping from a requested language to the per-locale
// columns of the content tables. Callers never build column names from the
// lang parameter; they go through Column or Text.Resolve.
package locale

import "strings"

type Locale string

const (
	Telugu  Locale = "te"
	English Locale = "en"
	Hindi   Locale = "hi"

	Default = Telugu
)

// Parse maps a lang parameter to a known Locale. Empty or unrecognized
// values resolve to Default.
func Parse(s string) Locale {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English
	case Hindi:
		return Hindi
	default:
		return Default
	}
}

// Field identifies one localized attribute of an entity kind.
type Field string

const (
	CropName         Field = "crop.name"
	StageName        Field = "stage.name"
	ProblemName      Field = "problem.name"
	AdvisoryTitle    Field = "advisory.title"
	AdvisorySymptoms Field = "advisory.symptoms"
	ComponentName    Field = "component.name"
	ComponentAltName Field = "component.alt_name"
	ComponentDose    Field = "component.dose"
	ComponentMethod  Field = "component.application_method"
)

// columns is the allow-list of physical column names. No table carries a
// Hindi column yet, so Hindi resolves through the default.
var columns = map[Field]map[Locale]string{
	CropName:         {Telugu: "name", English: "name_en"},
	StageName:        {Telugu: "StageName", English: "StageName_en"},
	ProblemName:      {Telugu: "problem_name_te", English: "problem_name_en"},
	AdvisoryTitle:    {Telugu: "advisory_title_te", English: "advisory_title_en"},
	AdvisorySymptoms: {Telugu: "symptoms_te", English: "symptoms_en"},
	ComponentName:    {Telugu: "component_name_te", English: "component_name_en"},
	ComponentAltName: {Telugu: "alt_component_name_te", English: "alt_component_name_en"},
	ComponentDose:    {Telugu: "dose_te", English: "dose_en"},
	ComponentMethod:  {Telugu: "application_method_te", English: "application_method_en"},
}

// Column returns the column holding f in locale l, falling back to the
// default-locale column. Unknown fields yield "".
func Column(f Field, l Locale) string {
	byLocale, ok := columns[f]
	if !ok {
		return ""
	}
	if c, ok := byLocale[l]; ok {
		return c
	}
	return byLocale[Default]
}

// Fields lists every localized field, for callers that walk the allow-list.
func Fields() []Field {
	return []Field{CropName, StageName, ProblemName, AdvisoryTitle, AdvisorySymptoms,
		ComponentName, ComponentAltName, ComponentDose, ComponentMethod}
}

// Text holds the per-locale values of one field as read from a row.
type Text struct {
	Te *string
	En *string
}

func NewText(te, en *string) Text { return Text{Te: te, En: en} }

// Resolve picks the value for l. A missing or blank value falls back to
// the Telugu value.
func (t Text) Resolve(l Locale) *string {
	var v *string
	switch l {
	case English:
		v = t.En
	case Telugu:
		v = t.Te
	}
	if v == nil || strings.TrimSpace(*v) == "" {
		return t.Te
	}
	return v
}
