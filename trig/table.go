package trig

import (
	"math/bits"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"

	"github.com/calebcase/foc/fixed"
	"github.com/calebcase/foc/frame"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("trig")

// invTwoPi is 2^64 / 2π.
const invTwoPi = 0x28be60db9391054a

// quarterTurn is 90 degrees as a binary angle.
const quarterTurn = 1 << 30

// maxNewton bounds Sqrt. From an initial guess at or above the root Newton
// at least halves the error per step, so a 64 bit value converges well
// within this.
const maxNewton = 80

// quarterSine is sin over [0, π/2] in 64 steps, scaled by 2^15.
var quarterSine = [65]int32{
	0, 804, 1608, 2411, 3212, 4011, 4808, 5602,
	6393, 7180, 7962, 8740, 9512, 10279, 11039, 11793,
	12540, 13279, 14010, 14733, 15447, 16151, 16846, 17531,
	18205, 18868, 19520, 20160, 20788, 21403, 22006, 22595,
	23170, 23732, 24279, 24812, 25330, 25833, 26320, 26791,
	27246, 27684, 28106, 28511, 28899, 29269, 29622, 29957,
	30274, 30572, 30853, 31114, 31357, 31581, 31786, 31972,
	32138, 32286, 32413, 32522, 32610, 32679, 32729, 32758,
	32768,
}

// Table computes sine, cosine and square root of fixed point values.
type Table[T constraints.Signed, S fixed.Scale] struct {
	format fixed.Format[T, S]
	one    fixed.Value[T, S]
}

// NewTable returns a Table for f. The format needs room for the value 3,
// which frame.Precompute takes the root of.
func NewTable[T constraints.Signed, S fixed.Scale](f fixed.Format[T, S]) (t Table[T, S], err error) {
	if f.Width()-f.Bits() < 3 {
		return t, Error.New(
			"too few integer bits: width=%d bits=%d",
			f.Width(),
			f.Bits(),
		)
	}

	return Table[T, S]{
		format: f,
		one:    f.New(1),
	}, nil
}

var (
	_ frame.Sqrter[fixed.Value[int32, fixed.Q16]]   = Table[int32, fixed.Q16]{}
	_ frame.SinCoser[fixed.Value[int32, fixed.Q16]] = Table[int32, fixed.Q16]{}
)

// Format returns the format of the table's values.
func (t Table[T, S]) Format() fixed.Format[T, S] {
	return t.format
}

// SinCos implements frame.SinCoser.
func (t Table[T, S]) SinCos(angle fixed.Value[T, S]) (sin, cos fixed.Value[T, S]) {
	b := turns(angle.Bits(), angle.Scale())

	return t.fromQ15(sine(b)), t.fromQ15(sine(b + quarterTurn))
}

// Sqrt implements frame.Sqrter. It returns zero for x <= 0.
func (t Table[T, S]) Sqrt(x fixed.Value[T, S]) fixed.Value[T, S] {
	zero := t.format.Raw(0)
	if x.Cmp(zero) <= 0 {
		return zero
	}

	g := x
	if x.Cmp(t.one) < 0 {
		g = t.one
	}

	for i := 0; i < maxNewton; i++ {
		// g + (x/g - g)/2; x/g <= g while g is above the root, so the
		// difference cannot overflow.
		next := g.Add(x.Div(g).Sub(g).Shr(1))
		if next.Cmp(g) >= 0 {
			break
		}

		g = next
	}

	return g
}

func (t Table[T, S]) fromQ15(s int32) fixed.Value[T, S] {
	q := t.format.Bits()
	if q >= 15 {
		return t.format.Raw(T(int64(s) << (q - 15)))
	}

	shift := 15 - q

	return t.format.Raw(T((int64(s) + 1<<(shift-1)) >> shift))
}

// turns converts raw/2^q radians to a binary angle: one full turn is 2^32.
func turns[T constraints.Signed](raw T, q int) uint32 {
	u := uint64(raw)
	neg := raw < 0
	if neg {
		u = -u
	}

	hi, lo := bits.Mul64(u, invTwoPi)

	var b uint64
	if shift := q + 32; shift >= 64 {
		b = hi >> (shift - 64)
	} else {
		b = lo>>shift | hi<<(64-shift)
	}

	r := uint32(b)
	if neg {
		r = -r
	}

	return r
}

// sine returns the sine of a binary angle scaled by 2^15.
func sine(b uint32) int32 {
	x := b & (quarterTurn - 1)

	switch b >> 30 {
	case 0:
		return quarter(x)
	case 1:
		return quarter(quarterTurn - x)
	case 2:
		return -quarter(x)
	default:
		return -quarter(quarterTurn - x)
	}
}

// quarter interpolates quarterSine for x in [0, quarterTurn].
func quarter(x uint32) int32 {
	i := x >> 24
	if i == 64 {
		return quarterSine[64]
	}

	f := int64(x & (1<<24 - 1))
	lo, hi := int64(quarterSine[i]), int64(quarterSine[i+1])

	return int32(lo + (hi-lo)*f>>24)
}
