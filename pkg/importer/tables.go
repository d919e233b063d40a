package importer

import (
	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/locale"
)

// table maps one sheet onto one entity. Tables are listed parents first so
// a single transaction can load a whole workbook.
type table struct {
	name    string
	aliases []string
	build   func(r *row) any
}

func te(f locale.Field) string { return locale.Column(f, locale.Telugu) }
func en(f locale.Field) string { return locale.Column(f, locale.English) }

var tables = []table{
	{
		name: "crops",
		build: func(r *row) any {
			return &entities.Crop{
				ID:       r.id("id", "crop_id"),
				Name:     r.text(te(locale.CropName), "name_te", "crop_name"),
				NameEn:   r.optText(en(locale.CropName)),
				ImageURL: r.optText("image_url", "image"),
			}
		},
	},
	{
		name:    "CropStages",
		aliases: []string{"stages", "crop_stages"},
		build: func(r *row) any {
			return &entities.Stage{
				ID:          r.id("StageID", "stage_id", "id"),
				CropID:      r.id("crop_id", "CropID"),
				Name:        r.text(te(locale.StageName), "stage_name_te", "name"),
				NameEn:      r.optText(en(locale.StageName), "stage_name_en"),
				Description: r.optText("Description"),
				ImageURL:    r.optText("StageImageURL", "image_url"),
			}
		},
	},
	{
		name:    "crop_varieties",
		aliases: []string{"varieties"},
		build: func(r *row) any {
			return &entities.Variety{
				ID:             r.id("id", "variety_id"),
				CropID:         r.id("crop_id"),
				VarietyName:    r.text("variety_name", "name"),
				PacketImageURL: r.optText("packet_image_url"),
				GrowthDuration: r.optNum("growth_duration", "duration_days"),
			}
		},
	},
	{
		name:    "crop_stage_durations",
		aliases: []string{"stage_durations", "durations"},
		build: func(r *row) any {
			return &entities.StageDuration{
				ID:                 r.optID("id"),
				VarietyID:          r.id("variety_id"),
				StageID:            r.id("stage_id", "StageID"),
				StartDayFromSowing: r.num("StartDayFromSowing", "start_day_from_sowing", "start_day"),
				EndDayFromSowing:   r.num("EndDayFromSowing", "end_day_from_sowing", "end_day"),
			}
		},
	},
	{
		name:    "rice_problems",
		aliases: []string{"problems"},
		build: func(r *row) any {
			return &entities.Problem{
				ID:        r.id("id", "problem_id"),
				CropID:    r.id("crop_id"),
				Category:  r.text("category"),
				NameTe:    r.optText(te(locale.ProblemName)),
				NameEn:    r.optText(en(locale.ProblemName)),
				ImageURL1: r.optText("image_url1", "image_url"),
				ImageURL2: r.optText("image_url2"),
				ImageURL3: r.optText("image_url3"),
			}
		},
	},
	{
		name:    "problem_stages",
		aliases: []string{"stage_links"},
		build: func(r *row) any {
			return &entities.StageLink{
				ID:        r.optID("id", "problem_stage_id", "stage_link_id"),
				ProblemID: r.id("problem_id"),
				StageID:   r.id("stage_id"),
			}
		},
	},
	{
		name:    "crop_advisories",
		aliases: []string{"advisories"},
		build: func(r *row) any {
			return &entities.Advisory{
				ID:         r.id("id", "advisory_id"),
				ProblemID:  r.id("problem_id"),
				TitleTe:    r.optText(te(locale.AdvisoryTitle), "title_te"),
				TitleEn:    r.optText(en(locale.AdvisoryTitle), "title_en"),
				SymptomsTe: r.optText(te(locale.AdvisorySymptoms)),
				SymptomsEn: r.optText(en(locale.AdvisorySymptoms)),
			}
		},
	},
	{
		name:    "advisory_components",
		aliases: []string{"components"},
		build: func(r *row) any {
			c := &entities.Component{
				ID:            r.id("id", "component_id"),
				AdvisoryID:    r.id("advisory_id"),
				StageLinkID:   r.nullableID("problem_stage_id", "stage_link_id"),
				ComponentType: r.text("component_type", "type"),
				NameTe:        r.optText(te(locale.ComponentName)),
				NameEn:        r.optText(en(locale.ComponentName)),
				AltNameTe:     r.optText(te(locale.ComponentAltName)),
				AltNameEn:     r.optText(en(locale.ComponentAltName)),
				DoseTe:        r.optText(te(locale.ComponentDose)),
				DoseEn:        r.optText(en(locale.ComponentDose)),
				MethodTe:      r.optText(te(locale.ComponentMethod)),
				MethodEn:      r.optText(en(locale.ComponentMethod)),
				ImageURL:      r.optText("image_url"),
			}
			if s := r.text("stage_scope"); s != "" {
				sc, ok := entities.ParseStageScope(s)
				if !ok {
					r.fail("column stage_scope: unknown scope %q", s)
				}
				c.StageScope = &sc
			}
			return c
		},
	},
}

// lookup matches a sheet name against table names and aliases.
func lookup(sheet string) (table, bool) {
	key := norm(sheet)
	for _, t := range tables {
		if norm(t.name) == key {
			return t, true
		}
		for _, a := range t.aliases {
			if norm(a) == key {
				return t, true
			}
		}
	}
	return table{}, false
}
