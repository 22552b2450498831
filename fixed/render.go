package fixed

import (
	"fmt"
	"io"
)

// maxFracBits is the widest fraction that can be multiplied by ten in a
// uint64 without overflow.
const maxFracBits = 60

// appendUint appends the base 10 digits of n.
func appendUint(dst []byte, n uint64) []byte {
	if n == 0 {
		return append(dst, '0')
	}

	var buf [20]byte
	pos := len(buf)

	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}

	return append(dst, buf[pos:]...)
}

// renderScale is the scale of v clamped to [0, width]. Only a value built
// outside a validated Format can have a scale out of that range.
func (v Value[T, S]) renderScale() int {
	q := v.Scale()

	switch w := width[T](); {
	case q < 0:
		return 0
	case q > w:
		return w
	}

	return q
}

// AppendDecimal appends the base 10 form of v to dst.
func (v Value[T, S]) AppendDecimal(dst []byte) []byte {
	q := v.renderScale()

	u, neg := magnitude(v.bits)
	if neg {
		dst = append(dst, '-')
	}

	dst = appendUint(dst, u>>q)
	if q == 0 {
		return dst
	}

	dst = append(dst, '.')

	frac := u & (uint64(1)<<q - 1)

	fq := q
	if fq > maxFracBits {
		frac >>= fq - maxFracBits
		fq = maxFracBits
	}
	mask := uint64(1)<<fq - 1

	for i := 0; i < q; i++ {
		frac *= 10
		dst = append(dst, byte('0'+frac>>fq))
		frac &= mask
	}

	return dst
}

// Decimal returns the base 10 form of v.
func (v Value[T, S]) Decimal() string {
	return string(v.AppendDecimal(make([]byte, 0, 24+v.renderScale())))
}

// String implements fmt.Stringer.
func (v Value[T, S]) String() string {
	return v.Decimal()
}

// AppendBinary appends the raw bit pattern of v to dst with a point before
// the fractional bits.
func (v Value[T, S]) AppendBinary(dst []byte) []byte {
	q := v.renderScale()
	u := uint64(v.bits)

	for i := width[T]() - 1; i >= 0; i-- {
		if i == q-1 {
			dst = append(dst, '.')
		}

		dst = append(dst, byte('0'+u>>i&1))
	}

	return dst
}

// Binary returns the raw bit pattern of v with a point before the fractional
// bits.
func (v Value[T, S]) Binary() string {
	return string(v.AppendBinary(make([]byte, 0, width[T]()+1)))
}

// Format implements fmt.Formatter. The b verb renders Binary, every other
// verb renders Decimal. A width pads with spaces on the left, or on the right
// with the '-' flag; the '0' flag pads with zeros after any sign. Precision is
// ignored: Decimal always writes every fractional digit.
func (v Value[T, S]) Format(f fmt.State, verb rune) {
	var buf [96]byte

	var text []byte
	switch verb {
	case 'b':
		text = v.AppendBinary(buf[:0])
	default:
		text = v.AppendDecimal(buf[:0])
	}

	pad, ok := f.Width()
	pad -= len(text)
	if !ok || pad <= 0 {
		_, _ = f.Write(text)

		return
	}

	switch {
	case f.Flag('-'):
		_, _ = f.Write(text)
		writeRepeat(f, ' ', pad)
	case f.Flag('0'):
		if text[0] == '-' {
			_, _ = f.Write(text[:1])
			text = text[1:]
		}

		writeRepeat(f, '0', pad)
		_, _ = f.Write(text)
	default:
		writeRepeat(f, ' ', pad)
		_, _ = f.Write(text)
	}
}

func writeRepeat(w io.Writer, c byte, n int) {
	var buf [16]byte
	for i := range buf {
		buf[i] = c
	}

	for n > 0 {
		k := min(n, len(buf))
		_, _ = w.Write(buf[:k])
		n -= k
	}
}
