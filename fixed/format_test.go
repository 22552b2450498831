package fixed_test

import (
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/foc/fixed"
)

// negative is a scale no storage type can hold.
type negative struct{}

func (negative) Bits() int { return -1 }

func TestCheck(t *testing.T) {
	type TC struct {
		name string
		err  error
		ok   bool
		Mark error
	}

	tcs := []TC{
		{"int8/Q0", fixed.Check[int8, fixed.Q0](), true, oops.New("unexpected")},
		{"int8/Q8", fixed.Check[int8, fixed.Q8](), true, oops.New("unexpected")},
		{"int8/Q9", fixed.Check[int8, fixed.Q9](), false, oops.New("unexpected")},
		{"uint8/Q8", fixed.Check[uint8, fixed.Q8](), true, oops.New("unexpected")},
		{"int16/Q16", fixed.Check[int16, fixed.Q16](), true, oops.New("unexpected")},
		{"int16/Q17", fixed.Check[int16, fixed.Q17](), false, oops.New("unexpected")},
		{"int32/Q31", fixed.Check[int32, fixed.Q31](), true, oops.New("unexpected")},
		{"int32/Q33", fixed.Check[int32, fixed.Q33](), false, oops.New("unexpected")},
		{"uint64/Q64", fixed.Check[uint64, fixed.Q64](), true, oops.New("unexpected")},
		{"int64/sum", fixed.Check[int64, fixed.Sum[fixed.Q32, fixed.Q32]](), true, oops.New("unexpected")},
		{"int64/sum-over", fixed.Check[int64, fixed.Sum[fixed.Q33, fixed.Q32]](), false, oops.New("unexpected")},
		{"int64/diff-under", fixed.Check[int64, fixed.Diff[fixed.Q3, fixed.Q4]](), false, oops.New("unexpected")},
		{"int32/negative", fixed.Check[int32, negative](), false, oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if tc.ok {
				require.NoError(t, tc.err, tc.Mark)

				return
			}

			require.Error(t, tc.err, tc.Mark)
			require.True(t, fixed.Error.Has(tc.err), tc.Mark)
			t.Logf("err=%v", tc.err)
		})
	}
}

func TestMustFormat(t *testing.T) {
	require.Panics(t, func() {
		fixed.MustFormat[int16, fixed.Q20]()
	})

	f := fixed.MustFormat[int16, fixed.Q12]()
	require.Equal(t, 12, f.Bits())
	require.Equal(t, 16, f.Width())
	require.True(t, f.Signed())

	u := fixed.MustFormat[uint32, fixed.Q12]()
	require.Equal(t, 32, u.Width())
	require.False(t, u.Signed())
}

func TestProduct(t *testing.T) {
	q8 := fixed.MustFormat[int32, fixed.Q8]()
	q12 := fixed.MustFormat[int32, fixed.Q12]()
	q24 := fixed.MustFormat[int32, fixed.Q24]()

	m, err := fixed.Product(q8, q12)
	require.NoError(t, err)
	require.Equal(t, 20, m.Format().Bits())

	// 1.5 * 2.25 = 3.375
	p := m.Mul(q8.Raw(384), q12.Raw(9216))
	require.Equal(t, 20, p.Scale())
	require.Equal(t, int32(3538944), p.Bits())
	require.Equal(t, 3.375, p.Float64())

	_, err = fixed.Product(q24, q12)
	require.Error(t, err)
	require.True(t, fixed.Error.Has(err))
}

func TestQuotient(t *testing.T) {
	q4 := fixed.MustFormat[int32, fixed.Q4]()
	q20 := fixed.MustFormat[int32, fixed.Q20]()

	d, err := fixed.Quotient(q20, q4)
	require.NoError(t, err)
	require.Equal(t, 16, d.Format().Bits())

	// 6 / 4 = 1.5
	r := d.Div(q20.New(6), q4.New(4))
	require.Equal(t, 16, r.Scale())
	require.Equal(t, 1.5, r.Float64())

	_, err = fixed.Quotient(q4, q20)
	require.Error(t, err)
}

func TestWidening(t *testing.T) {
	q6 := fixed.MustFormat[int8, fixed.Q6]()

	w, err := fixed.Widening[int32](q6)
	require.NoError(t, err)
	require.Equal(t, 32, w.Format().Width())

	v := w.Cast(q6.Raw(-96)) // -1.5
	require.Equal(t, int32(-96), v.Bits())
	require.Equal(t, 6, v.Scale())
	require.Equal(t, "-1.500000", v.String())

	same, err := fixed.Widening[int8](q6)
	require.NoError(t, err)
	require.Equal(t, int8(5), same.Cast(q6.Raw(5)).Bits())

	q16 := fixed.MustFormat[int64, fixed.Q16]()
	_, err = fixed.Widening[int32](q16)
	require.Error(t, err)
	require.True(t, fixed.Error.Has(err))

	// Casts that would change a value or its sign.
	type TC struct {
		name string
		err  error
		Mark error
	}

	u16 := fixed.MustFormat[uint32, fixed.Q16]()

	_, errInt8Uint32 := fixed.Widening[uint32](q6)
	_, errInt64Uint64 := fixed.Widening[uint64](q16)
	_, errUint32Int32 := fixed.Widening[int32](u16)
	_, errInt8Uint8 := fixed.Widening[uint8](q6)

	tcs := []TC{
		{"int8/uint32", errInt8Uint32, oops.New("unexpected")},
		{"int64/uint64", errInt64Uint64, oops.New("unexpected")},
		{"uint32/int32", errUint32Int32, oops.New("unexpected")},
		{"int8/uint8", errInt8Uint8, oops.New("unexpected")},
	}

	for _, tc := range tcs {
		require.Error(t, tc.err, tc.Mark)
		require.True(t, fixed.Error.Has(tc.err), tc.Mark)
		t.Logf("%s: %v", tc.name, tc.err)
	}

	// Unsigned to a strictly wider signed type holds every value.
	wide, err := fixed.Widening[int64](u16)
	require.NoError(t, err)

	top := wide.Cast(u16.Raw(0xffffffff))
	require.Equal(t, int64(0xffffffff), top.Bits())
	require.Equal(t, u16.Raw(0xffffffff).String(), top.String())

	u8 := fixed.MustFormat[uint8, fixed.Q4]()

	uw, err := fixed.Widening[uint16](u8)
	require.NoError(t, err)
	require.Equal(t, uint16(0xff), uw.Cast(u8.Raw(0xff)).Bits())
}

func TestZeroHandles(t *testing.T) {
	var zero fixed.Format[int8, fixed.Q20]

	require.Panics(t, func() { zero.New(1) })
	require.Panics(t, func() { zero.Raw(1) })
	require.Panics(t, func() { zero.FromFloat(1) })

	_, err := zero.Parse("1")
	require.Error(t, err)
	require.True(t, fixed.Error.Has(err))

	var z16 fixed.Format[int32, fixed.Q16]
	q8 := fixed.MustFormat[int32, fixed.Q8]()

	_, err = fixed.Product(z16, q8)
	require.Error(t, err)
	require.True(t, fixed.Error.Has(err))

	_, err = fixed.Quotient(z16, q8)
	require.Error(t, err)
	require.True(t, fixed.Error.Has(err))

	_, err = fixed.Widening[int64](z16)
	require.Error(t, err)
	require.True(t, fixed.Error.Has(err))

	var m fixed.Multiplier[int32, fixed.Q8, fixed.Q8]
	var d fixed.Divider[int32, fixed.Q0, fixed.Q8]
	var w fixed.Widener[int32, int64, fixed.Q8]

	q0 := fixed.MustFormat[int32, fixed.Q0]()

	require.Panics(t, func() { m.Mul(q8.New(1), q8.New(1)) })
	require.Panics(t, func() { d.Div(q0.New(1), q8.New(1)) })
	require.Panics(t, func() { w.Cast(q8.New(1)) })
}

func TestFromFloat(t *testing.T) {
	q8 := fixed.MustFormat[int16, fixed.Q8]()

	require.Equal(t, int16(384), q8.FromFloat(1.5).Bits())
	require.Equal(t, int16(-384), q8.FromFloat(-1.5).Bits())
	require.Equal(t, int16(32767), q8.FromFloat(1000).Bits())
	require.Equal(t, int16(-32768), q8.FromFloat(-1000).Bits())

	u := fixed.MustFormat[uint8, fixed.Q4]()
	require.Equal(t, uint8(0), u.FromFloat(-1).Bits())
	require.Equal(t, uint8(255), u.FromFloat(100).Bits())
}
