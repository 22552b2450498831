package fixed

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("fixed")

func width[T constraints.Integer]() int {
	var z T

	return int(unsafe.Sizeof(z)) * 8
}

func signed[T constraints.Integer]() bool {
	var z T
	z--

	return z < 0
}

func typeName[T constraints.Integer]() string {
	var z T

	return fmt.Sprintf("%T", z)
}

// Check returns an error if the scale S does not fit the storage type T.
func Check[T constraints.Integer, S Scale]() error {
	var s S

	bits := s.Bits()

	switch {
	case bits < 0:
		return Error.New("negative scale: type=%s bits=%d", typeName[T](), bits)
	case bits > width[T]():
		return Error.New(
			"scale exceeds width: type=%s width=%d bits=%d",
			typeName[T](),
			width[T](),
			bits,
		)
	}

	return nil
}

// Format is a validated storage and scale pairing. The zero Format is not
// valid; use NewFormat or MustFormat. Constructing a value through a zero
// Format panics, and handles built from one are rejected.
type Format[T constraints.Integer, S Scale] struct {
	width  int
	signed bool
	ok     bool
}

// NewFormat returns the format for T and S or an error if S does not fit T.
func NewFormat[T constraints.Integer, S Scale]() (f Format[T, S], err error) {
	err = Check[T, S]()
	if err != nil {
		return f, err
	}

	return Format[T, S]{
		width:  width[T](),
		signed: signed[T](),
		ok:     true,
	}, nil
}

// validate returns an error if f did not come from NewFormat.
func (f Format[T, S]) validate() error {
	if !f.ok {
		return Error.New(
			"zero format: type=%s bits=%d (use NewFormat or MustFormat)",
			typeName[T](),
			f.Bits(),
		)
	}

	return nil
}

// check panics if f did not come from NewFormat.
func (f Format[T, S]) check() {
	err := f.validate()
	if err != nil {
		panic(err)
	}
}

// MustFormat is like NewFormat but panics on error. It is meant for package
// level variables.
func MustFormat[T constraints.Integer, S Scale]() Format[T, S] {
	f, err := NewFormat[T, S]()
	if err != nil {
		panic(err)
	}

	return f
}

// Bits returns the number of fractional bits.
func (f Format[T, S]) Bits() int {
	var s S

	return s.Bits()
}

// Width returns the bit width of the storage type.
func (f Format[T, S]) Width() int {
	return f.width
}

// Signed reports whether the storage type is signed.
func (f Format[T, S]) Signed() bool {
	return f.signed
}

// New returns the value representing whole (whole << bits).
func (f Format[T, S]) New(whole T) Value[T, S] {
	f.check()

	return Value[T, S]{bits: whole << f.Bits()}
}

// Raw returns the value whose stored integer is bits. There is no range
// check.
func (f Format[T, S]) Raw(bits T) Value[T, S] {
	f.check()

	return Value[T, S]{bits: bits}
}

// FromFloat converts x, rounding to nearest and saturating at the limits of
// the storage type. It is meant for host side tooling.
func (f Format[T, S]) FromFloat(x float64) Value[T, S] {
	f.check()

	scaled := math.Round(math.Ldexp(x, f.Bits()))

	var lo, hi float64
	if f.signed {
		lo = -math.Ldexp(1, f.width-1)
		hi = math.Ldexp(1, f.width-1)
	} else {
		hi = math.Ldexp(1, f.width)
	}

	switch {
	case math.IsNaN(scaled):
		return Value[T, S]{}
	case scaled < lo:
		return Value[T, S]{bits: minOf[T]()}
	case scaled >= hi:
		return Value[T, S]{bits: maxOf[T]()}
	}

	return Value[T, S]{bits: T(scaled)}
}

func maxOf[T constraints.Integer]() T {
	var z T
	if signed[T]() {
		return T(uint64(1)<<(width[T]()-1) - 1)
	}

	return ^z
}

func minOf[T constraints.Integer]() T {
	if signed[T]() {
		return -maxOf[T]() - 1
	}

	return 0
}

// Multiplier multiplies a Value[T, A] by a Value[T, B].
type Multiplier[T constraints.Integer, A, B Scale] struct {
	out Format[T, Sum[A, B]]
}

// Product returns a Multiplier for the two formats or an error if the result
// scale A+B does not fit T.
func Product[T constraints.Integer, A, B Scale](
	fa Format[T, A],
	fb Format[T, B],
) (m Multiplier[T, A, B], err error) {
	err = errs.Combine(fa.validate(), fb.validate())
	if err != nil {
		return m, err
	}

	out, err := NewFormat[T, Sum[A, B]]()
	if err != nil {
		return m, err
	}

	return Multiplier[T, A, B]{out: out}, nil
}

// Format returns the result format.
func (m Multiplier[T, A, B]) Format() Format[T, Sum[A, B]] {
	return m.out
}

// Mul returns x * y. The raw integers are multiplied and the scales add.
// It panics on the zero Multiplier.
func (m Multiplier[T, A, B]) Mul(x Value[T, A], y Value[T, B]) Value[T, Sum[A, B]] {
	m.out.check()

	return Value[T, Sum[A, B]]{bits: x.bits * y.bits}
}

// Divider divides a Value[T, A] by a Value[T, B].
type Divider[T constraints.Integer, A, B Scale] struct {
	out Format[T, Diff[A, B]]
}

// Quotient returns a Divider for the two formats or an error if the result
// scale A-B is negative.
func Quotient[T constraints.Integer, A, B Scale](
	fa Format[T, A],
	fb Format[T, B],
) (d Divider[T, A, B], err error) {
	err = errs.Combine(fa.validate(), fb.validate())
	if err != nil {
		return d, err
	}

	out, err := NewFormat[T, Diff[A, B]]()
	if err != nil {
		return d, err
	}

	return Divider[T, A, B]{out: out}, nil
}

// Format returns the result format.
func (d Divider[T, A, B]) Format() Format[T, Diff[A, B]] {
	return d.out
}

// Div returns x / y. The raw integers are divided (truncating) and the scales
// subtract. It panics on the zero Divider.
func (d Divider[T, A, B]) Div(x Value[T, A], y Value[T, B]) Value[T, Diff[A, B]] {
	d.out.check()

	return Value[T, Diff[A, B]]{bits: x.bits / y.bits}
}

// Widener converts Value[T, S] to the wider storage U with the same scale.
type Widener[T, U constraints.Integer, S Scale] struct {
	out Format[U, S]
}

// Widening returns a Widener from f to storage U or an error if U cannot hold
// every value of T. A signed T needs a signed U at least as wide; an unsigned
// T needs an unsigned U at least as wide or a signed U strictly wider.
func Widening[U, T constraints.Integer, S Scale](f Format[T, S]) (w Widener[T, U, S], err error) {
	err = f.validate()
	if err != nil {
		return w, err
	}

	switch {
	case width[U]() < width[T]():
		return w, Error.New(
			"narrowing cast: from=%s to=%s",
			typeName[T](),
			typeName[U](),
		)
	case signed[T]() && !signed[U]():
		return w, Error.New(
			"signed to unsigned cast: from=%s to=%s",
			typeName[T](),
			typeName[U](),
		)
	case !signed[T]() && signed[U]() && width[U]() == width[T]():
		return w, Error.New(
			"unsigned to signed cast of the same width: from=%s to=%s",
			typeName[T](),
			typeName[U](),
		)
	}

	out, err := NewFormat[U, S]()
	if err != nil {
		return w, err
	}

	return Widener[T, U, S]{out: out}, nil
}

// Format returns the target format.
func (w Widener[T, U, S]) Format() Format[U, S] {
	return w.out
}

// Cast returns v stored as U. It panics on the zero Widener.
func (w Widener[T, U, S]) Cast(v Value[T, S]) Value[U, S] {
	w.out.check()

	return Value[U, S]{bits: U(v.bits)}
}
