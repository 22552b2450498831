package fixed

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Value is a fixed point number stored in T with S fractional bits.
type Value[T constraints.Integer, S Scale] struct {
	bits T
}

// Bits returns the stored integer.
func (v Value[T, S]) Bits() T {
	return v.bits
}

// Scale returns the number of fractional bits.
func (v Value[T, S]) Scale() int {
	var s S

	return s.Bits()
}

// Add returns v + w.
func (v Value[T, S]) Add(w Value[T, S]) Value[T, S] {
	return Value[T, S]{bits: v.bits + w.bits}
}

// Sub returns v - w.
func (v Value[T, S]) Sub(w Value[T, S]) Value[T, S] {
	return Value[T, S]{bits: v.bits - w.bits}
}

// AddAssign adds w to v in place.
func (v *Value[T, S]) AddAssign(w Value[T, S]) {
	v.bits += w.bits
}

// SubAssign subtracts w from v in place.
func (v *Value[T, S]) SubAssign(w Value[T, S]) {
	v.bits -= w.bits
}

// Neg returns -v.
func (v Value[T, S]) Neg() Value[T, S] {
	return Value[T, S]{bits: -v.bits}
}

// Mul returns v * w in the same format.
func (v Value[T, S]) Mul(w Value[T, S]) Value[T, S] {
	return Value[T, S]{bits: mulShift(v.bits, w.bits, v.Scale())}
}

// Div returns v / w in the same format.
func (v Value[T, S]) Div(w Value[T, S]) Value[T, S] {
	return Value[T, S]{bits: divShift(v.bits, w.bits, v.Scale())}
}

// Shl returns v with its stored integer shifted left by n.
func (v Value[T, S]) Shl(n uint) Value[T, S] {
	return Value[T, S]{bits: v.bits << n}
}

// Shr returns v with its stored integer shifted right by n. Signed values
// shift arithmetically.
func (v Value[T, S]) Shr(n uint) Value[T, S] {
	return Value[T, S]{bits: v.bits >> n}
}

// Cmp returns -1, 0 or +1 as v is less than, equal to or greater than w.
func (v Value[T, S]) Cmp(w Value[T, S]) int {
	switch {
	case v.bits < w.bits:
		return -1
	case v.bits > w.bits:
		return 1
	}

	return 0
}

// FromInt returns n in the format of v. The receiver's value is ignored.
func (v Value[T, S]) FromInt(n int) Value[T, S] {
	return Value[T, S]{bits: T(n) << v.Scale()}
}

// Float64 returns the nearest float64. It is meant for host side tooling.
func (v Value[T, S]) Float64() float64 {
	return math.Ldexp(float64(v.bits), -v.Scale())
}

// magnitude splits x into its absolute value and sign.
func magnitude[T constraints.Integer](x T) (u uint64, neg bool) {
	u = uint64(x)
	if signed[T]() && x < 0 {
		return -u, true
	}

	return u, false
}

func mulShift[T constraints.Integer](a, b T, q int) T {
	ua, na := magnitude(a)
	ub, nb := magnitude(b)

	hi, lo := bits.Mul64(ua, ub)
	r := lo>>q | hi<<(64-q)

	if na != nb {
		r = -r
	}

	return T(r)
}

func divShift[T constraints.Integer](a, b T, q int) T {
	ua, na := magnitude(a)
	ub, nb := magnitude(b)

	hi := ua >> (64 - q)
	lo := ua << q

	// The high word of the quotient is discarded: the result wraps.
	r, _ := bits.Div64(hi%ub, lo, ub)

	if na != nb {
		r = -r
	}

	return T(r)
}
