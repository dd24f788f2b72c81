package place

import (
	"testing"

	"github.com/npillmayer/cnc25d"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const eps = cnc25d.Epsilon

var (
	flips        = []Flip{FlipI, FlipX, FlipY, FlipZ}
	orientations = []Orientation{OrientXY, OrientXZ, OrientYX, OrientYZ, OrientZX, OrientZY}
)

func assertVec(t *testing.T, want, got r3.Vec, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, eps, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, eps, msgAndArgs...)
}

func TestPlaceXZ(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pr := Prism{Size: r3.Vec{X: 20, Y: 4, Z: 2}}
	m, err := Place(pr, FlipI, OrientXZ, r3.Vec{}, "ERR600")
	require.NoError(t, err)
	assertVec(t, r3.Vec{Y: 2}, m.Apply(r3.Vec{}))
	assertVec(t, r3.Vec{X: 20, Y: 0, Z: 4}, m.Apply(r3.Vec{X: 20, Y: 4, Z: 2}))
}

func TestOrientationTable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	size := r3.Vec{X: 20, Y: 4, Z: 2}
	// image of the local corner (X,Y,Z) for every orientation
	far := map[Orientation]r3.Vec{
		OrientXY: {X: 20, Y: 4, Z: 2},
		OrientXZ: {X: 20, Y: 0, Z: 4},
		OrientYX: {X: 0, Y: 20, Z: 2},
		OrientYZ: {X: 2, Y: 20, Z: 4},
		OrientZX: {X: 4, Y: 2, Z: 20},
		OrientZY: {X: 0, Y: 4, Z: 20},
	}
	for o, want := range far {
		m, err := o.Motion(size, "ERR601")
		require.NoError(t, err)
		assertVec(t, want, m.Apply(size), "orientation %s", o)
	}
}

func TestPlacementStaysInPositiveOctant(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pr := Prism{Zero: cnc25d.P(3, 1), Size: r3.Vec{X: 20, Y: 4, Z: 2}}
	for _, f := range flips {
		for _, o := range orientations {
			m, err := Place(pr, f, o, r3.Vec{}, "ERR602")
			require.NoError(t, err)
			box := PlacedBox(pr, m)
			assert.GreaterOrEqual(t, box.Min.X, -eps, "%s/%s", f, o)
			assert.GreaterOrEqual(t, box.Min.Y, -eps, "%s/%s", f, o)
			assert.GreaterOrEqual(t, box.Min.Z, -eps, "%s/%s", f, o)
			assertVec(t, r3.Vec{}, box.Min, "%s/%s", f, o)
			extent := r3.Sub(box.Max, box.Min)
			assert.InDelta(t, 26.0, extent.X+extent.Y+extent.Z, eps, "%s/%s", f, o)
		}
	}
}

func TestPlacementTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pr := Prism{Zero: cnc25d.P(-5, 5), Size: r3.Vec{X: 10, Y: 10, Z: 3}}
	tr := r3.Vec{X: 100, Y: -50, Z: 7}
	m, err := Place(pr, FlipY, OrientZX, tr, "ERR603")
	require.NoError(t, err)
	assertVec(t, tr, PlacedBox(pr, m).Min)
}

func TestDoubleFlipIsIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	size := r3.Vec{X: 20, Y: 4, Z: 2}
	p := r3.Vec{X: 3, Y: 1, Z: 0.5}
	for _, f := range flips {
		m, err := f.Motion(size, "ERR604")
		require.NoError(t, err)
		assertVec(t, p, m.Then(m).Apply(p), "flip %s", f)
	}
	m, _ := FlipX.Motion(size, "ERR604")
	assertVec(t, r3.Vec{X: 3, Y: 3, Z: 1.5}, m.Apply(p))
}

func TestMotionComposition(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Rotation(0.7, r3.Vec{X: 1, Y: 2, Z: 3}).Then(Translation(r3.Vec{X: 1}))
	b := Translation(r3.Vec{Z: -4}).Then(Rotation(-1.1, r3.Vec{Y: 1}))
	p := r3.Vec{X: 2, Y: -1, Z: 5}
	assertVec(t, b.Apply(a.Apply(p)), a.Then(b).Apply(p))
}

func TestBadTags(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := ParseFlip("w", "ERR610")
	assert.ErrorIs(t, err, cnc25d.ErrBadFlip)
	_, err = ParseOrientation("xx", "ERR611")
	assert.ErrorIs(t, err, cnc25d.ErrBadOrientation)
	_, err = Place(Prism{Size: r3.Vec{X: 1, Y: 1, Z: 1}}, Flip("q"), OrientXY, r3.Vec{}, "ERR612")
	assert.ErrorIs(t, err, cnc25d.ErrBadFlip)
	_, err = Place(Prism{Size: r3.Vec{X: 1, Y: 1, Z: 1}}, FlipI, Orientation("zz"), r3.Vec{}, "ERR613")
	assert.ErrorIs(t, err, cnc25d.ErrBadOrientation)
	f, err := ParseFlip("z", "ERR614")
	require.NoError(t, err)
	assert.Equal(t, FlipZ, f)
}
