package repositoryImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/apperr"
	"github.com/villageboy09/kiosk/pkg/catalog/repository"
	"github.com/villageboy09/kiosk/pkg/testutil"
)

func TestStagesByCropOrdered(t *testing.T) {
	db := testutil.DB(t)
	seed := testutil.Seed(t, db)
	rice := seed.Crop("వరి", "Paddy")
	other := seed.Crop("పత్తి", "Cotton")
	nursery := seed.Stage(rice.ID, "నారుమడి", "Nursery")
	seed.Stage(other.ID, "x", "Other")
	tillering := seed.Stage(rice.ID, "పిలకలు", "Tillering")

	repo := New(db, testutil.Logger(t), 0)
	got, err := repo.StagesByCrop(context.Background(), rice.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, nursery.ID, got[0].ID)
	assert.Equal(t, tillering.ID, got[1].ID)

	none, err := repo.StagesByCrop(context.Background(), 9999999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestProblemsByStageCarriesLink(t *testing.T) {
	db := testutil.DB(t)
	seed := testutil.Seed(t, db)
	rice := seed.Crop("వరి", "Paddy")
	stage := seed.Stage(rice.ID, "నారుమడి", "Nursery")
	blast := seed.Problem(rice.ID, "Disease", "అగ్గి తెగులు", "Blast")
	seed.Link(700, blast.ID, stage.ID)

	repo := New(db, testutil.Logger(t), 0)
	got, err := repo.ProblemsByStage(context.Background(), stage.ID, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, blast.ID, got[0].ID)
	assert.Equal(t, "Blast", *got[0].NameEn)
	assert.Equal(t, uint(700), got[0].StageLinkID)
	assert.Equal(t, stage.ID, got[0].StageID)

	other := seed.Crop("పత్తి", "Cotton")
	filtered, err := repo.ProblemsByStage(context.Background(), stage.ID, &other.ID)
	require.NoError(t, err)
	assert.Empty(t, filtered)
}

func TestFirstAdvisoryAndStageLink(t *testing.T) {
	db := testutil.DB(t)
	seed := testutil.Seed(t, db)
	rice := seed.Crop("వరి", "Paddy")
	stage := seed.Stage(rice.ID, "నారుమడి", "Nursery")
	p := seed.Problem(rice.ID, "Pest", "కాండం తొలుచు పురుగు", "Stem borer")
	a1 := seed.Advisory(p.ID, "మొదటి", "First")
	seed.Advisory(p.ID, "రెండవ", "Second")

	repo := New(db, testutil.Logger(t), 0)
	ctx := context.Background()

	adv, err := repo.FirstAdvisory(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, adv)
	assert.Equal(t, a1.ID, adv.ID)

	missing, err := repo.FirstAdvisory(ctx, p.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)

	link, err := repo.StageLink(ctx, p.ID, stage.ID)
	require.NoError(t, err)
	assert.Nil(t, link)

	seed.Link(41, p.ID, stage.ID)
	link, err = repo.StageLink(ctx, p.ID, stage.ID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, uint(41), link.ID)
}

func TestComponentsFilterModes(t *testing.T) {
	db := testutil.DB(t)
	seed := testutil.Seed(t, db)
	rice := seed.Crop("వరి", "Paddy")
	p := seed.Problem(rice.ID, "Disease", "అగ్గి తెగులు", "Blast")
	adv := seed.Advisory(p.ID, "అగ్గి", "Blast")

	linked := seed.Component(adv.ID, testutil.Uint(5), testutil.Scope(entities.ScopeNursery), "chemical", "linked")
	agnostic := seed.Component(adv.ID, nil, testutil.Scope(entities.ScopeVegetative), "organic", "agnostic")
	elsewhere := seed.Component(adv.ID, testutil.Uint(6), testutil.Scope(entities.ScopeAllStages), "chemical", "elsewhere")

	repo := New(db, testutil.Logger(t), 0)
	ctx := context.Background()
	ids := func(cs []entities.Component) []uint {
		out := make([]uint, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	all, err := repo.Components(ctx, repository.ComponentFilter{AdvisoryID: adv.ID})
	require.NoError(t, err)
	// component_type, then id
	assert.Equal(t, []uint{linked.ID, elsewhere.ID, agnostic.ID}, ids(all))

	exact, err := repo.Components(ctx, repository.ComponentFilter{AdvisoryID: adv.ID, Link: repository.ExactOrAgnostic, StageLinkID: 5})
	require.NoError(t, err)
	assert.Equal(t, []uint{linked.ID, agnostic.ID}, ids(exact))

	bare, err := repo.Components(ctx, repository.ComponentFilter{AdvisoryID: adv.ID, Link: repository.AgnosticOnly})
	require.NoError(t, err)
	assert.Equal(t, []uint{agnostic.ID}, ids(bare))

	scoped, err := repo.Components(ctx, repository.ComponentFilter{AdvisoryID: adv.ID, Scope: testutil.Scope(entities.ScopeNursery)})
	require.NoError(t, err)
	assert.Equal(t, []uint{linked.ID, elsewhere.ID}, ids(scoped))

	// link 6 pulls in elsewhere, Vegetative pulls in agnostic, linked matches neither
	both, err := repo.Components(ctx, repository.ComponentFilter{
		AdvisoryID: adv.ID, Link: repository.ExactOrAgnostic, StageLinkID: 6,
		Scope: testutil.Scope(entities.ScopeVegetative),
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{elsewhere.ID, agnostic.ID}, ids(both))
}

func TestStageDurations(t *testing.T) {
	db := testutil.DB(t)
	seed := testutil.Seed(t, db)
	rice := seed.Crop("వరి", "Paddy")
	cotton := seed.Crop("పత్తి", "Cotton")
	v1 := entities.Variety{CropID: rice.ID, VarietyName: "BPT 5204"}
	v2 := entities.Variety{CropID: rice.ID, VarietyName: "MTU 1010"}
	v3 := entities.Variety{CropID: cotton.ID, VarietyName: "Bunny"}
	require.NoError(t, db.Create(&[]*entities.Variety{&v1, &v2, &v3}).Error)
	require.NoError(t, db.Create(&[]entities.StageDuration{
		{VarietyID: v1.ID, StageID: 1, StartDayFromSowing: 0, EndDayFromSowing: 25},
		{VarietyID: v2.ID, StageID: 1, StartDayFromSowing: 0, EndDayFromSowing: 20},
		{VarietyID: v3.ID, StageID: 9, StartDayFromSowing: 0, EndDayFromSowing: 30},
	}).Error)

	repo := New(db, testutil.Logger(t), 0)
	ctx := context.Background()

	byCrop, err := repo.StageDurations(ctx, repository.DurationFilter{CropID: rice.ID})
	require.NoError(t, err)
	assert.Len(t, byCrop, 2)

	byVariety, err := repo.StageDurations(ctx, repository.DurationFilter{CropID: rice.ID, VarietyID: &v2.ID})
	require.NoError(t, err)
	require.Len(t, byVariety, 1)
	assert.Equal(t, 20, byVariety[0].EndDayFromSowing)

	varieties, err := repo.VarietiesByCrop(ctx, rice.ID)
	require.NoError(t, err)
	assert.Len(t, varieties, 2)
}

func TestQueryFailureIsDataUnavailable(t *testing.T) {
	db := testutil.DB(t)
	repo := New(db, testutil.Logger(t), 0)
	testutil.Close(t, db)

	_, err := repo.StagesByCrop(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.DataUnavailable))

	_, err = repo.FirstAdvisory(context.Background(), 1)
	assert.True(t, apperr.Is(err, apperr.DataUnavailable))
}
