package pointset

import (
	"fmt"

	"github.com/osuushi/frontier/geom"
)

// Hash multipliers. All arithmetic is mod 2^32.
const (
	keyPrimeX  uint32 = 73856093
	keyPrimeY  uint32 = 19349663
	combineOdd uint32 = 2654435761
)

// A cheap summary of a point set. Two sets with the same quantized points have
// equal fingerprints no matter the order they were observed in. The converse
// only holds probabilistically, which is good enough for change detection.
type Fingerprint struct {
	Count uint64
	Hash  uint64
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("%d/%08x", f.Count, f.Hash)
}

func (k Key) hash() uint32 {
	return uint32(k.X)*keyPrimeX + uint32(k.Y)*keyPrimeY
}

// Fold one more unique key into the fingerprint. Addition commutes, which is
// what makes the result order independent.
func (f Fingerprint) With(k Key) Fingerprint {
	h := uint32(f.Hash) + k.hash()*combineOdd
	return Fingerprint{Count: f.Count + 1, Hash: uint64(h)}
}

// Fingerprint of a point list after quantizing it with step. Repeated points
// are counted once.
func FingerprintOf(points []geom.Point, step float64) Fingerprint {
	q := Quantizer{Step: step}
	seen := make(KeySet, len(points))
	var f Fingerprint
	for _, p := range points {
		k := q.Key(q.Point(p))
		if seen.Has(k) {
			continue
		}
		seen.Add(k)
		f = f.With(k)
	}
	return f
}
