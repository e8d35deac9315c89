package pointset

import (
	"math/rand"
	"testing"

	"github.com/osuushi/frontier/geom"
	"github.com/stretchr/testify/assert"
)

func TestQuantize(t *testing.T) {
	assert.Equal(t, 1.5, Quantize(1.4, 0.5))
	assert.Equal(t, 1.0, Quantize(1.2, 0.5))
	assert.Equal(t, -2.0, Quantize(-1.8, 1))
	assert.Equal(t, 3.3, Quantize(3.3, 0), "non-positive step is the identity")

	q := Quantizer{Step: 0.5}
	assert.Equal(t, geom.Point{X: 2, Y: -0.5}, q.Point(geom.Point{X: 2.1, Y: -0.6}))
	assert.Equal(t, Key{4, -1}, q.Key(geom.Point{X: 2, Y: -0.5}))
	assert.Equal(t, geom.Point{X: 2, Y: -0.5}, q.PointOf(Key{4, -1}))

	// Keys map back onto the quantized point exactly
	for _, v := range []float64{0.3, -7.74, 123.26, 1e6 + 0.2} {
		p := q.Point(geom.Point{X: v, Y: -v})
		assert.Equal(t, p, q.PointOf(q.Key(p)))
	}
}

func TestDedupe(t *testing.T) {
	points := []geom.Point{{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 0, Y: 0}}
	assert.Equal(t, []geom.Point{{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 2, Y: 0}}, Dedupe(points))
	assert.Empty(t, Dedupe(nil))
}

func TestFingerprint(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 2}, {X: -3, Y: 7.5}}
	base := FingerprintOf(points, 0.5)
	assert.Equal(t, uint64(len(points)), base.Count)

	t.Run("permutations agree", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 20; i++ {
			shuffled := append([]geom.Point(nil), points...)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			assert.Equal(t, base, FingerprintOf(shuffled, 0.5))
		}
	})

	t.Run("duplicates are counted once", func(t *testing.T) {
		doubled := append(append([]geom.Point(nil), points...), points...)
		assert.Equal(t, base, FingerprintOf(doubled, 0.5))
	})

	t.Run("near duplicates collapse", func(t *testing.T) {
		jittered := append(append([]geom.Point(nil), points...), geom.Point{X: 4.1, Y: 3.9})
		assert.Equal(t, base, FingerprintOf(jittered, 0.5))
	})

	t.Run("new point changes it", func(t *testing.T) {
		more := append(append([]geom.Point(nil), points...), geom.Point{X: 9, Y: 9})
		changed := FingerprintOf(more, 0.5)
		assert.NotEqual(t, base, changed)
		assert.Equal(t, base.Count+1, changed.Count)
	})

	assert.Equal(t, Fingerprint{}, FingerprintOf(nil, 1))
}

func TestKeySet(t *testing.T) {
	a := make(KeySet)
	a.Add(Key{1, 2})
	a.Add(Key{3, 4})
	b := a.Clone()
	assert.Empty(t, b.Diff(a))
	b.Add(Key{5, 6})
	assert.Equal(t, []Key{{5, 6}}, b.Diff(a))
	assert.Empty(t, a.Diff(b))
	assert.Equal(t, 2, a.Len())
}

func TestCollection(t *testing.T) {
	c := NewCollection(1)
	assert.True(t, c.Add(0.2, 0.1))
	assert.True(t, c.Add(5, 5))
	assert.False(t, c.Add(0.4, -0.3), "within a quantization step of a known point")
	assert.False(t, c.Add(4.9, 5.2))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}, c.Points())

	added := c.AddPoints([]geom.Point{{X: 5, Y: 5}, {X: 7, Y: 1}, {X: 7.2, Y: 0.9}})
	assert.Equal(t, 1, added)
	assert.Equal(t, FingerprintOf(c.Points(), 1), c.Fingerprint())

	snapshot := c.Points()
	c.Add(20, 20)
	assert.Len(t, snapshot, 3, "snapshots do not see later additions")
	assert.Equal(t, 4, c.Len())
}
