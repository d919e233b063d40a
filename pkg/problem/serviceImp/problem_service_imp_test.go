package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/villageboy09/kiosk/entities"
	"github.com/villageboy09/kiosk/pkg/apperr"
	catalogImp "github.com/villageboy09/kiosk/pkg/catalog/repositoryImp"
	"github.com/villageboy09/kiosk/pkg/locale"
	"github.com/villageboy09/kiosk/pkg/problem/service"
	"github.com/villageboy09/kiosk/pkg/testutil"
)

type world struct {
	db                 *gorm.DB
	svc                service.ProblemService
	rice, cotton       entities.Crop
	nursery, tiller    entities.Stage
	blast, borer, leaf entities.Problem
	bollworm           entities.Problem
}

// newWorld seeds two crops; link ids start at 900 so they never coincide
// with stage or problem ids.
func newWorld(t *testing.T) *world {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	seed := testutil.Seed(t, db)
	w := &world{db: db, svc: NewProblemService(catalogImp.New(db, log, 0), log)}

	w.rice = seed.Crop("వరి", "Paddy")
	w.cotton = seed.Crop("పత్తి", "Cotton")
	w.nursery = seed.Stage(w.rice.ID, "నారుమడి", "Nursery")
	w.tiller = seed.Stage(w.rice.ID, "పిలకలు", "Tillering")

	w.borer = seed.Problem(w.rice.ID, "Pest", "కాండం తొలుచు పురుగు", "Stem borer")
	w.blast = seed.Problem(w.rice.ID, "Disease", "అగ్గి తెగులు", "Blast")
	w.leaf = seed.Problem(w.rice.ID, "Disease", "ఆకు ఎండు తెగులు", "Leaf blight")
	w.bollworm = seed.Problem(w.cotton.ID, "Pest", "కాయ తొలుచు పురుగు", "Bollworm")

	seed.Link(900, w.borer.ID, w.nursery.ID)
	seed.Link(901, w.blast.ID, w.nursery.ID)
	seed.Link(902, w.blast.ID, w.tiller.ID)
	seed.Link(903, w.leaf.ID, w.tiller.ID)
	// cross-crop link to a rice stage; crop filter must drop it
	seed.Link(904, w.bollworm.ID, w.nursery.ID)
	return w
}

func ids(vs []service.ProblemView) []uint {
	out := make([]uint, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}

func TestNewQueryModes(t *testing.T) {
	crop, stage := uint(1), uint(2)
	assert.Equal(t, service.ByStage{StageID: 2, CropID: &crop}, service.NewQuery(&crop, &stage))
	assert.Equal(t, service.ByStage{StageID: 2}, service.NewQuery(nil, &stage))
	assert.Equal(t, service.ByCrop{CropID: 1}, service.NewQuery(&crop, nil))
	assert.Equal(t, service.Unfiltered{}, service.NewQuery(nil, nil))
}

func TestStageLinkPropagation(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	got, err := w.svc.ListProblems(ctx, service.ByStage{StageID: w.nursery.ID, CropID: &w.rice.ID}, locale.English)
	require.NoError(t, err)
	require.Equal(t, []uint{w.blast.ID, w.borer.ID}, ids(got))

	for _, p := range got {
		var link entities.StageLink
		require.NoError(t, w.db.Where("problem_id = ? AND stage_id = ?", p.ID, w.nursery.ID).First(&link).Error)
		require.NotNil(t, p.StageLinkID)
		assert.Equal(t, link.ID, *p.StageLinkID)
		assert.NotEqual(t, w.nursery.ID, *p.StageLinkID)
		assert.NotEqual(t, p.ID, *p.StageLinkID)
		require.NotNil(t, p.StageID)
		assert.Equal(t, w.nursery.ID, *p.StageID)
	}
}

func TestStageWithoutCropFilter(t *testing.T) {
	w := newWorld(t)
	got, err := w.svc.ListProblems(context.Background(), service.ByStage{StageID: w.nursery.ID}, locale.English)
	require.NoError(t, err)
	// Disease before Pest, id order inside Pest
	assert.Equal(t, []uint{w.blast.ID, w.borer.ID, w.bollworm.ID}, ids(got))
}

func TestDuplicateLinksCollapsed(t *testing.T) {
	w := newWorld(t)
	testutil.Seed(t, w.db).Link(950, w.blast.ID, w.nursery.ID)

	got, err := w.svc.ListProblems(context.Background(), service.ByStage{StageID: w.nursery.ID, CropID: &w.rice.ID}, locale.Telugu)
	require.NoError(t, err)
	assert.Equal(t, []uint{w.blast.ID, w.borer.ID}, ids(got))
	assert.Equal(t, uint(901), *got[0].StageLinkID)
}

func TestByCropAndUnfilteredShape(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	byCrop, err := w.svc.ListProblems(ctx, service.ByCrop{CropID: w.rice.ID}, locale.English)
	require.NoError(t, err)
	assert.Equal(t, []uint{w.blast.ID, w.leaf.ID, w.borer.ID}, ids(byCrop))
	for _, p := range byCrop {
		assert.Nil(t, p.StageLinkID)
		assert.Nil(t, p.StageID)
	}

	all, err := w.svc.ListProblems(ctx, service.Unfiltered{}, locale.English)
	require.NoError(t, err)
	assert.Equal(t, []uint{w.blast.ID, w.leaf.ID, w.borer.ID, w.bollworm.ID}, ids(all))

	again, err := w.svc.ListProblems(ctx, service.Unfiltered{}, locale.English)
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func TestLocaleResolution(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	q := service.ByCrop{CropID: w.cotton.ID}

	en, err := w.svc.ListProblems(ctx, q, locale.English)
	require.NoError(t, err)
	te, err := w.svc.ListProblems(ctx, q, locale.Telugu)
	require.NoError(t, err)
	hi, err := w.svc.ListProblems(ctx, q, locale.Parse("hi"))
	require.NoError(t, err)

	assert.Equal(t, "Bollworm", *en[0].Name)
	assert.Equal(t, "కాయ తొలుచు పురుగు", *te[0].Name)
	assert.Equal(t, te, hi)
	assert.Equal(t, "Bollworm", *te[0].NameEn)
}

func TestEmptyAndInvalid(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	none, err := w.svc.ListProblems(ctx, service.ByStage{StageID: 424242}, locale.Telugu)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = w.svc.ListProblems(ctx, service.ByStage{}, locale.Telugu)
	assert.True(t, apperr.Is(err, apperr.InvalidInput))
	_, err = w.svc.ListProblems(ctx, nil, locale.Telugu)
	assert.True(t, apperr.Is(err, apperr.InvalidInput))
}

func TestDataUnavailablePropagates(t *testing.T) {
	w := newWorld(t)
	testutil.Close(t, w.db)
	_, err := w.svc.ListProblems(context.Background(), service.Unfiltered{}, locale.Telugu)
	assert.True(t, apperr.Is(err, apperr.DataUnavailable))
}
