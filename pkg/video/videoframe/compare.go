package videoframe

import (
	"math"

	"github.com/tauraamui/xerror"
)

// linear holds (v/255)^2 for every byte value, a cheap stand-in for
// decoding gamma encoded samples to linear light.
var linear = func() [256]float64 {
	var t [256]float64
	for i := range t {
		v := float64(i) / 255
		t[i] = v * v
	}
	return t
}()

// Equal reports whether no pixel of a differs from the same pixel of b by
// threshold or more after squaring both normalised values. It stops at the
// first pixel which does. Pixels with identical values never count as a
// difference, so a frame always equals itself. At a threshold of 0 only
// bytes which actually differ are detected as a change.
func Equal(a, b Frame, threshold float64) (bool, error) {
	if a.Len() != b.Len() {
		return false, xerror.Errorf(
			"%w: cannot compare %d bytes against %d bytes", ErrFrameLengthMismatch, a.Len(), b.Len(),
		)
	}

	ad, bd := a.data, b.data
	for i := range ad {
		if ad[i] == bd[i] {
			continue
		}
		if math.Abs(linear[ad[i]]-linear[bd[i]]) >= threshold {
			return false, nil
		}
	}
	return true, nil
}

// Difference returns the squared-normalised distance between two byte
// values, the quantity Equal compares against its threshold.
func Difference(a, b byte) float64 {
	return math.Abs(linear[a] - linear[b])
}
