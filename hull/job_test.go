package hull

import (
	"math"
	"math/rand"
	"testing"

	"github.com/osuushi/frontier/geom"
	"github.com/osuushi/frontier/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Far more micro-steps than any of these inputs need. Hitting it means the
// job is looping.
const stepCeiling = 2_000_000

func runToCompletion(t *testing.T, j *Job, budget int) geom.Polygon {
	t.Helper()
	for j.Steps() < stepCeiling {
		before := j.Steps()
		done, hull := j.Step(budget)
		require.LessOrEqual(t, j.Steps()-before, budget, "step exceeded its budget")
		if done {
			return hull
		}
	}
	t.Fatalf("job did not finish within %d micro-steps: %s", stepCeiling, j)
	return nil
}

func assertContainsAll(t *testing.T, hull geom.Polygon, points []geom.Point) {
	t.Helper()
	for _, p := range points {
		assert.True(t, hull.Contains(p), "point %v is outside the hull %v", p, hull)
	}
}

func randomCloud(rng *rand.Rand, n int, size float64) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{
			X: math.Round(rng.Float64() * size),
			Y: math.Round(rng.Float64() * size),
		}
	}
	return points
}

func TestJob_SquareWithInteriorPoint(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2}}
	square := geom.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}

	j := Start(points, 3, 10)
	hull := runToCompletion(t, j, 25)
	assert.Equal(t, PhaseDone, j.Phase())
	assert.False(t, j.Fallback())
	assert.Equal(t, 1, j.Attempts())
	assert.Equal(t, square, hull)
	assert.Equal(t, square, geom.ConvexHull(points))
}

func TestJob_Degenerate(t *testing.T) {
	t.Run("no points", func(t *testing.T) {
		j := Start(nil, 3, 10)
		done, hull := j.Step(1)
		assert.True(t, done)
		assert.Empty(t, hull)
		assert.Equal(t, 0, j.Steps())
	})

	t.Run("two points", func(t *testing.T) {
		j := Start([]geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, 3, 10)
		assert.True(t, j.Done())
		assert.Equal(t, geom.Polygon{{X: 1, Y: 1}, {X: 2, Y: 2}}, j.Result())
	})

	t.Run("duplicates collapse below three", func(t *testing.T) {
		j := Start([]geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 3, Y: 0}, {X: 3, Y: 0}}, 3, 10)
		assert.True(t, j.Done())
		assert.Equal(t, 2, j.Len())
	})

	t.Run("collinear", func(t *testing.T) {
		points := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 0}}
		j := Start(points, 3, 10)
		hull := runToCompletion(t, j, 25)
		assertContainsAll(t, hull, points)
		assert.True(t, j.Fallback())
		assert.Equal(t, geom.Polygon{{X: 0, Y: 0}, {X: 3, Y: 0}}, hull)
	})

	t.Run("three collinear points never close into a flat polygon", func(t *testing.T) {
		points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
		j := Start(points, 3, 10)
		hull := runToCompletion(t, j, 25)
		assert.Equal(t, PhaseFallbackDone, j.Phase())
		assert.Equal(t, geom.Polygon{{X: 0, Y: 0}, {X: 2, Y: 0}}, hull)
	})
}

func TestJob_GuardLimit(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	points := randomCloud(rng, 30, 20)

	// An attempt needs at least three gatherings before it can close, so a
	// limit of two abandons every attempt.
	j := Start(points, 3, 6)
	j.guardLimit = 2
	hull := runToCompletion(t, j, 25)

	assert.Equal(t, PhaseFallbackDone, j.Phase())
	assert.Equal(t, 7, j.K())
	assert.Equal(t, 4, j.Attempts())
	assert.Equal(t, geom.ConvexHull(j.Points()), hull)
	assertContainsAll(t, hull, points)
}

func TestJob_Fallback(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2}, {X: 1, Y: 3}}

	j := Start(points, 3, 2)
	done, hull := j.Step(1)
	assert.True(t, done)
	assert.True(t, j.Fallback())
	assert.Equal(t, PhaseFallbackDone, j.Phase())
	assert.Equal(t, geom.ConvexHull(points), hull)
	assert.Equal(t, 0, j.Attempts())
}

func TestJob_NotDoneReturnsNil(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	j := Start(randomCloud(rng, 40, 30), 3, 20)
	done, hull := j.Step(1)
	assert.False(t, done)
	assert.Nil(t, hull)
	assert.Nil(t, j.Result())
	assert.Equal(t, PhaseBuild, j.Phase())

	done, hull = j.Step(0)
	assert.False(t, done)
	assert.Nil(t, hull)
	assert.Equal(t, 1, j.Steps())
}

func TestJob_RandomClouds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 30; round++ {
		points := randomCloud(rng, 3+rng.Intn(80), 40)
		for _, budget := range []int{1, 7, 25} {
			j := Start(points, 3, 12)
			hull := runToCompletion(t, j, budget)
			require.True(t, j.Done())
			assertContainsAll(t, hull, points)
			if len(hull) >= 3 {
				assert.GreaterOrEqual(t, hull.SignedArea(), 0.0, "hull must not wind clockwise")
				assert.LessOrEqual(t, hull.Area(), geom.ConvexHull(points).Area()+geom.Tolerance)
			}
		}
	}
}

func TestJob_IncrementalMatchesBatch(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 10; round++ {
		points := randomCloud(rng, 10+rng.Intn(50), 25)

		batch, err := Build(points, 4, 15)
		require.NoError(t, err)

		for _, budget := range []int{1, 3, 25, 1000} {
			j := Start(points, 4, 15)
			assert.Equal(t, batch, runToCompletion(t, j, budget), "budget %d", budget)
		}
	}
}

func TestJob_Escalates(t *testing.T) {
	// A ring with a single point at the centre. No trace with few neighbours
	// can reach every point, so the job has to escalate before it settles.
	var points []geom.Point
	for i := 0; i < 16; i++ {
		angle := 2 * math.Pi * float64(i) / 16
		points = append(points, geom.Point{X: math.Round(10 * math.Cos(angle)), Y: math.Round(10 * math.Sin(angle))})
	}
	points = append(points, geom.Point{X: 0, Y: 0})

	j := Start(points, 3, 30)
	hull := runToCompletion(t, j, 25)
	assertContainsAll(t, hull, points)
	assert.GreaterOrEqual(t, j.K(), 3)
}

func TestJob_Fixtures(t *testing.T) {
	for _, name := range []string{"crescent", "scatter"} {
		t.Run(name, func(t *testing.T) {
			points := fixture.MustLoad(name)
			j := Start(points, 3, 24)
			hull := runToCompletion(t, j, 25)
			assertContainsAll(t, hull, points)
			assert.LessOrEqual(t, hull.Area(), geom.ConvexHull(points).Area()+geom.Tolerance)
		})
	}
}

func TestJob_Outline(t *testing.T) {
	points := fixture.MustLoad("ell")
	outline, err := fixture.Outline("ell")
	require.NoError(t, err)

	hull, err := Build(points, 3, 20)
	require.NoError(t, err)
	assertContainsAll(t, hull, points)
	for _, v := range hull {
		assert.True(t, outline.Contains(v), "vertex %v outside the sampled shape", v)
	}
}

func TestBuild(t *testing.T) {
	hull, err := Build([]geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, geom.Polygon{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}, hull)
}

func TestBuild_BrokenInvariant(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	j := Start(points, 3, 10)
	j.Step(1)
	require.Equal(t, PhaseBuild, j.Phase())

	// Validation that has already run off the end of the point set
	j.polygon = geom.Polygon(points)
	j.cursor = j.n
	j.phase = PhaseValidate

	hull, err := finish(j)
	assert.Nil(t, hull)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating point 4 of 4")

	var hullErr *HullError
	assert.ErrorAs(t, err, &hullErr)
}

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})

	t.Run("runtime errors are not swallowed", func(t *testing.T) {
		assert.Panics(t, func() {
			defer func() {
				HandlePanicRecover(recover())
			}()
			var empty []int
			_ = empty[len(empty)+3]
		})
	})
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "Validate", PhaseValidate.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
	assert.True(t, PhaseFallbackDone.Terminal())
	assert.False(t, PhaseBuild.Terminal())
}
