package frame

// Scalar is the arithmetic a number type must provide. FromInt ignores its
// receiver and converts n to the receiver's type.
type Scalar[N any] interface {
	Add(N) N
	Sub(N) N
	Mul(N) N
	Div(N) N
	Neg() N
	FromInt(n int) N
}

// Sqrter provides square roots.
type Sqrter[N any] interface {
	Sqrt(x N) N
}

// SinCoser provides the sine and cosine of an angle in radians.
type SinCoser[N any] interface {
	SinCos(angle N) (sin, cos N)
}

// Vec2 is a column vector.
type Vec2[N Scalar[N]] [2]N

// Row2 is a row vector.
type Row2[N Scalar[N]] [2]N

// Dot returns the inner product of r and v.
func (r Row2[N]) Dot(v Vec2[N]) N {
	return r[0].Mul(v[0]).Add(r[1].Mul(v[1]))
}

// Mat2 is a 2x2 matrix stored by rows.
type Mat2[N Scalar[N]] [2]Row2[N]

// Apply returns m·v.
func (m Mat2[N]) Apply(v Vec2[N]) Vec2[N] {
	return Vec2[N]{m[0].Dot(v), m[1].Dot(v)}
}

// Transpose returns the transpose of m.
func (m Mat2[N]) Transpose() Mat2[N] {
	return Mat2[N]{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

// Rotation returns the rotation matrix for an angle with the given sine and
// cosine.
func Rotation[N Scalar[N]](sin, cos N) Mat2[N] {
	return Mat2[N]{
		{cos, sin.Neg()},
		{sin, cos},
	}
}

// AlphaBetaGamma holds the constants that derive the stationary frame from
// two phase samples.
type AlphaBetaGamma[N Scalar[N]] struct {
	row Row2[N]
}

// Precompute derives the constants (1/√3, 2/√3). It calls p.Sqrt once; keep
// the result instead of calling Precompute per sample.
func Precompute[N Scalar[N]](p Sqrter[N]) AlphaBetaGamma[N] {
	var zero N

	inv := zero.FromInt(1).Div(p.Sqrt(zero.FromInt(3)))

	return AlphaBetaGamma[N]{
		row: Row2[N]{inv, inv.Add(inv)},
	}
}

// Row returns the constants.
func (c AlphaBetaGamma[N]) Row() Row2[N] {
	return c.row
}

// Apply returns (v[0], Row·v).
func (c AlphaBetaGamma[N]) Apply(v Vec2[N]) Vec2[N] {
	return Vec2[N]{v[0], c.row.Dot(v)}
}

// Rotate rotates the stationary vector v by angle.
func Rotate[N Scalar[N]](p SinCoser[N], v Vec2[N], angle N) Vec2[N] {
	sin, cos := p.SinCos(angle)

	return Rotation(sin, cos).Apply(v)
}

// Unrotate is the inverse of Rotate for the same angle.
func Unrotate[N Scalar[N]](p SinCoser[N], v Vec2[N], angle N) Vec2[N] {
	sin, cos := p.SinCos(angle)

	return Rotation(sin, cos).Transpose().Apply(v)
}
