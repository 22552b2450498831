package trig

import (
	"math"

	"github.com/calebcase/foc/frame"
)

// Float is a float64 with the arithmetic frame.Scalar needs.
type Float float64

func (x Float) Add(y Float) Float { return x + y }
func (x Float) Sub(y Float) Float { return x - y }
func (x Float) Mul(y Float) Float { return x * y }
func (x Float) Div(y Float) Float { return x / y }
func (x Float) Neg() Float        { return -x }

// FromInt implements frame.Scalar.
func (Float) FromInt(n int) Float { return Float(n) }

// Native uses the math package.
type Native struct{}

var (
	_ frame.Sqrter[Float]   = Native{}
	_ frame.SinCoser[Float] = Native{}
)

// Sqrt implements frame.Sqrter.
func (Native) Sqrt(x Float) Float {
	return Float(math.Sqrt(float64(x)))
}

// SinCos implements frame.SinCoser.
func (Native) SinCos(angle Float) (sin, cos Float) {
	s, c := math.Sincos(float64(angle))

	return Float(s), Float(c)
}
