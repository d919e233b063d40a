package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/apperr"
	"github.com/villageboy09/kiosk/pkg/testutil"
)

var workbook = map[string][][]any{
	"crops": {
		{"id", "name", "name_en", "image_url"},
		{1, "వరి", "Paddy", "https://img.example/paddy.png"},
	},
	"CropStages": {
		{"StageID", "crop_id", "StageName", "StageName_en", "Description"},
		{10, 1, "నారుమడి", "Nursery", "0-25 days"},
		{11, 1, "పిలకలు", "Tillering", ""},
	},
	"Problems": {
		{"ID", "Crop ID", "Category", "problem_name_te", "problem_name_en"},
		{100, 1, "Disease", "అగ్గి తెగులు", "Blast"},
	},
	"problem_stages": {
		{"id", "problem_id", "stage_id"},
		{500, 100, 10},
	},
	"advisories": {
		{"id", "problem_id", "advisory_title_te", "advisory_title_en", "symptoms_te", "symptoms_en"},
		{7, 100, "అగ్గి నివారణ", "Blast control", "ఆకులపై మచ్చలు", "Spindle-shaped spots"},
	},
	"advisory_components": {
		{"id", "advisory_id", "problem_stage_id", "component_type", "stage_scope", "component_name_te", "component_name_en", "dose_en"},
		{1, 7, 500, "chemical", "nursery", "ట్రైసైక్లాజోల్", "Tricyclazole", "0.6 g/l"},
		{2, 7, "", "mechanical", "All Stages", "నీరు తీసివేయండి", "Drain field", ""},
	},
	"notes": {
		{"anything"},
		{"ignored"},
	},
}

func writeWorkbook(t *testing.T, sheets map[string][][]any) string {
	t.Helper()
	x := excelize.NewFile()
	defer x.Close()
	for name, rows := range sheets {
		_, err := x.NewSheet(name)
		require.NoError(t, err)
		for i, r := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			row := r
			require.NoError(t, x.SetSheetRow(name, cell, &row))
		}
	}
	require.NoError(t, x.DeleteSheet("Sheet1"))
	path := filepath.Join(t.TempDir(), "content.xlsx")
	require.NoError(t, x.SaveAs(path))
	return path
}

func TestImportWorkbook(t *testing.T) {
	db := testutil.DB(t)
	im := New(db, testutil.Logger(t))

	sheets, err := Load(writeWorkbook(t, workbook))
	require.NoError(t, err)
	rep, err := im.Import(context.Background(), sheets)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Rows["crops"])
	assert.Equal(t, 2, rep.Rows["CropStages"])
	assert.Equal(t, 2, rep.Rows["advisory_components"])
	assert.Equal(t, []string{"notes"}, rep.Skipped)
	assert.Equal(t, 8, rep.Total())

	var stage entities.Stage
	require.NoError(t, db.First(&stage, 10).Error)
	assert.Equal(t, "నారుమడి", stage.Name)
	assert.Equal(t, "Nursery", *stage.NameEn)

	var link entities.StageLink
	require.NoError(t, db.First(&link, 500).Error)
	assert.Equal(t, uint(100), link.ProblemID)

	var comps []entities.Component
	require.NoError(t, db.Order("id").Find(&comps).Error)
	require.Len(t, comps, 2)
	assert.Equal(t, uint(500), *comps[0].StageLinkID)
	assert.Equal(t, entities.ScopeNursery, *comps[0].StageScope)
	assert.Nil(t, comps[1].StageLinkID)
	assert.Equal(t, entities.ScopeAllStages, *comps[1].StageScope)
	assert.Nil(t, comps[1].DoseEn)
}

func TestReimportUpdatesInPlace(t *testing.T) {
	db := testutil.DB(t)
	im := New(db, testutil.Logger(t))
	ctx := context.Background()

	sheets, err := Load(writeWorkbook(t, workbook))
	require.NoError(t, err)
	_, err = im.Import(ctx, sheets)
	require.NoError(t, err)

	_, err = im.Import(ctx, []Sheet{{
		Name:   "crops",
		Header: []string{"id", "name", "name_en"},
		Rows:   [][]string{{"1", "వరి", "Rice"}},
	}})
	require.NoError(t, err)

	var crops []entities.Crop
	require.NoError(t, db.Find(&crops).Error)
	require.Len(t, crops, 1)
	assert.Equal(t, "Rice", *crops[0].NameEn)
}

func TestBadRowRollsBack(t *testing.T) {
	db := testutil.DB(t)
	im := New(db, testutil.Logger(t))

	_, err := im.Import(context.Background(), []Sheet{
		{Name: "crops", Header: []string{"id", "name"}, Rows: [][]string{{"1", "వరి"}}},
		{
			Name:   "advisory_components",
			Header: []string{"id", "advisory_id", "component_type", "stage_scope"},
			Rows:   [][]string{{"1", "7", "chemical", "Flowering"}},
		},
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.InvalidInput))
	assert.Contains(t, err.Error(), "advisory_components line 2")

	var n int64
	require.NoError(t, db.Model(&entities.Crop{}).Count(&n).Error)
	assert.Zero(t, n)

	_, err = im.Import(context.Background(), []Sheet{
		{Name: "crops", Header: []string{"id", "name"}, Rows: [][]string{{"x", "వరి"}}},
	})
	assert.True(t, apperr.Is(err, apperr.InvalidInput))
}

func TestCSVDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("crops.csv", "\uFEFFid,name,name_en\n1,వరి,Paddy\n2,పత్తి,Cotton\n")
	write("crop_varieties.csv", "id,crop_id,variety_name,growth_duration\n3,1,BPT 5204,135\n")
	write("crop_stage_durations.csv", "variety_id,stage_id,Start Day From Sowing,End-Day-From-Sowing\n3,10,0,25\n\n")
	write("README.txt", "not a table")

	sheets, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, sheets, 3)

	db := testutil.DB(t)
	rep, err := New(db, testutil.Logger(t)).Import(context.Background(), sheets)
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Rows["crops"])
	assert.Equal(t, 1, rep.Rows["crop_stage_durations"])

	var d entities.StageDuration
	require.NoError(t, db.First(&d).Error)
	assert.Equal(t, 25, d.EndDayFromSowing)

	var v entities.Variety
	require.NoError(t, db.First(&v, 3).Error)
	assert.Equal(t, 135, *v.GrowthDuration)
}

func TestHTMLExport(t *testing.T) {
	page := `<html><body>
<table id="rice_problems">
  <thead><tr><th>id</th><th>crop_id</th><th>category</th><th>problem_name_en</th></tr></thead>
  <tbody>
    <tr><td>4</td><td>1</td><td>Pest</td><td> Stem borer </td></tr>
    <tr><td>5</td><td>1</td><td>Pest</td><td>Leaf folder</td></tr>
  </tbody>
</table>
<table><tr><td>layout only</td></tr></table>
</body></html>`
	path := filepath.Join(t.TempDir(), "export.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o644))

	sheets, err := Load(path)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, []string{"id", "crop_id", "category", "problem_name_en"}, sheets[0].Header)
	assert.Equal(t, "Stem borer", sheets[0].Rows[0][3])

	db := testutil.DB(t)
	_, err = New(db, testutil.Logger(t)).Import(context.Background(), sheets)
	require.NoError(t, err)

	var p entities.Problem
	require.NoError(t, db.First(&p, 4).Error)
	assert.Equal(t, "Stem borer", *p.NameEn)
	assert.Nil(t, p.NameTe)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
