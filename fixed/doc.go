// Package fixed provides a binary fixed point number.
//
// The equation for a fixed point number is:
//
//  number = raw / 2 ^ bits
//
// Where number is the semantic value, raw is the stored integer, and bits is
// the count of fractional bits (the scale). For example, with 16 fractional
// bits:
//
//  1.5 = 98304 / 2^16
//
// Scale
//
// The scale is part of the type. Value[int32, Q16] and Value[int32, Q8] are
// different Go types, so adding values of different scales does not compile.
// Multiplication and division change the scale and the result type says how:
//
//  Value[T, A] * Value[T, B] = Value[T, Sum[A, B]]
//  Value[T, A] / Value[T, B] = Value[T, Diff[A, B]]
//
// A scale may not exceed the bit width of its storage integer. A Q40 scale in
// an int32 cannot hold a single whole bit and every value built from it would
// be silently truncated. Go cannot compare a type's width against a type
// parameter at compile time, so the check is done once, when a Format is
// created:
//
//  var q16 = fixed.MustFormat[int32, fixed.Q16]()
//
//  x := q16.New(3)          // 3.0, raw = 3 << 16
//  y := q16.Raw(0x8000)     // 0.5
//  z := x.Add(y)            // 3.5
//
// Values are only made through a Format (or through arithmetic on values that
// were), so an invalid pairing never reaches a control loop. A Format declared
// as a package variable with MustFormat fails during program initialization.
// The composite rules have their own handles: Product, Quotient and Widening
// validate the result scale or target width once and then provide Mul, Div and
// Cast. Widening only accepts storage that holds every value of the source, so
// a cast never changes a value or its sign.
//
// The zero value of a Format or a handle was never validated. Making a value
// through one panics and Product, Quotient, Widening and Parse return an error
// for a zero Format.
//
// Overflow
//
// Arithmetic is plain integer arithmetic on the raw value. Overflow wraps
// exactly as Go's integer types wrap; this package does not detect, saturate
// or trap it. Division by zero panics as Go integer division does.
//
// The same-format Mul and Div (used when a computation must stay in one Q
// format, e.g. inside a control loop) go through a 128 bit intermediate so
// the product or shifted dividend itself does not overflow before it is
// rescaled. The final result is truncated toward zero and then wraps into the
// storage type.
//
// Rendering
//
// String renders base 10 using only integer arithmetic. The whole part is
// written by repeated division by ten. The fractional part is written by
// repeatedly multiplying the remaining fraction by ten and taking the carry
// out of the fractional bits as the next digit, producing exactly bits digits
// (which is the exact expansion, since 2^-n has n decimal digits).
//
// The multiply by ten is done in a 64 bit register. For scales above 60 bits
// the fraction is clamped to its top 60 bits first, so the trailing digits of
// those very fine scales come out as zeros rather than wrapped garbage. A scale
// outside [0, width] is rendered as if clamped into that range. Rendering never
// panics.
//
// Binary renders the raw two's complement pattern as width-bits integer
// digits, a point, and bits fractional digits:
//
//  Value[int8, Q3] of -1.5  =>  11110.100
//
// A Q0 value has no fractional digits and is written without a point in both
// forms, like an integer:
//
//  Value[uint8, Q0] of 5  =>  00000101
//
// The fmt verbs honor a width and the '-' and '0' flags; %b is Binary and
// every other verb is Decimal.
//
// Parse is the inverse of String.
package fixed
