package fixed

import (
	"math"
	"math/bits"
	"strings"
)

// Parse reads the base 10 form written by String. Fractional digits beyond
// the precision of the format are truncated.
func (f Format[T, S]) Parse(s string) (v Value[T, S], err error) {
	err = f.validate()
	if err != nil {
		return v, err
	}

	if s == "" {
		return v, Error.New("empty input")
	}

	text := s

	var neg bool
	switch text[0] {
	case '-':
		neg = true
		text = text[1:]
	case '+':
		text = text[1:]
	}

	if neg && !f.signed {
		return v, Error.New("negative value for unsigned storage: %q", s)
	}

	whole, frac, dot := strings.Cut(text, ".")
	if whole == "" || (dot && frac == "") {
		return v, Error.New("missing digits: %q", s)
	}

	var w uint64
	for i := 0; i < len(whole); i++ {
		d, ok := digit(whole[i])
		if !ok {
			return v, Error.New("invalid digit: %q", s)
		}

		if w > (math.MaxUint64-d)/10 {
			return v, Error.New("out of range: %q", s)
		}

		w = w*10 + d
	}

	q := f.Bits()

	// Working from the last digit, r = floor((d * 2^q + r) / 10) leaves r as
	// floor(0.frac * 2^q).
	var r uint64
	for i := len(frac) - 1; i >= 0; i-- {
		d, ok := digit(frac[i])
		if !ok {
			return v, Error.New("invalid digit: %q", s)
		}

		hi := d >> (64 - q)
		lo, carry := bits.Add64(d<<q, r, 0)
		r, _ = bits.Div64(hi+carry, lo, 10)
	}

	limit := maxOf[T]()
	maxMag := uint64(limit)
	if neg {
		maxMag++
	}

	if w > maxMag>>q {
		return v, Error.New("out of range: %q", s)
	}

	mag := w<<q | r
	if mag > maxMag {
		return v, Error.New("out of range: %q", s)
	}

	raw := T(mag)
	if neg {
		raw = -raw
	}

	return Value[T, S]{bits: raw}, nil
}

func digit(c byte) (uint64, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}

	return uint64(c - '0'), true
}
