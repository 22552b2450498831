package fixed

// Scale is the number of fractional bits of a Value. It is a type rather than
// a field so that mismatched scales are a compile error.
type Scale interface {
	Bits() int
}

// Sum is the scale of a product: A.Bits() + B.Bits().
type Sum[A, B Scale] struct{}

// Bits implements Scale.
func (Sum[A, B]) Bits() int {
	var a A
	var b B

	return a.Bits() + b.Bits()
}

// Diff is the scale of a quotient: A.Bits() - B.Bits().
type Diff[A, B Scale] struct{}

// Bits implements Scale.
func (Diff[A, B]) Bits() int {
	var a A
	var b B

	return a.Bits() - b.Bits()
}

// Predeclared scales. Any zero size type with a Bits method works as well.
type (
	Q0 struct{}
	Q1 struct{}
	Q2 struct{}
	Q3 struct{}
	Q4 struct{}
	Q5 struct{}
	Q6 struct{}
	Q7 struct{}
	Q8 struct{}
	Q9 struct{}
	Q10 struct{}
	Q11 struct{}
	Q12 struct{}
	Q13 struct{}
	Q14 struct{}
	Q15 struct{}
	Q16 struct{}
	Q17 struct{}
	Q18 struct{}
	Q19 struct{}
	Q20 struct{}
	Q21 struct{}
	Q22 struct{}
	Q23 struct{}
	Q24 struct{}
	Q25 struct{}
	Q26 struct{}
	Q27 struct{}
	Q28 struct{}
	Q29 struct{}
	Q30 struct{}
	Q31 struct{}
	Q32 struct{}
	Q33 struct{}
	Q34 struct{}
	Q35 struct{}
	Q36 struct{}
	Q37 struct{}
	Q38 struct{}
	Q39 struct{}
	Q40 struct{}
	Q41 struct{}
	Q42 struct{}
	Q43 struct{}
	Q44 struct{}
	Q45 struct{}
	Q46 struct{}
	Q47 struct{}
	Q48 struct{}
	Q49 struct{}
	Q50 struct{}
	Q51 struct{}
	Q52 struct{}
	Q53 struct{}
	Q54 struct{}
	Q55 struct{}
	Q56 struct{}
	Q57 struct{}
	Q58 struct{}
	Q59 struct{}
	Q60 struct{}
	Q61 struct{}
	Q62 struct{}
	Q63 struct{}
	Q64 struct{}
)

func (Q0) Bits() int { return 0 }
func (Q1) Bits() int { return 1 }
func (Q2) Bits() int { return 2 }
func (Q3) Bits() int { return 3 }
func (Q4) Bits() int { return 4 }
func (Q5) Bits() int { return 5 }
func (Q6) Bits() int { return 6 }
func (Q7) Bits() int { return 7 }
func (Q8) Bits() int { return 8 }
func (Q9) Bits() int { return 9 }
func (Q10) Bits() int { return 10 }
func (Q11) Bits() int { return 11 }
func (Q12) Bits() int { return 12 }
func (Q13) Bits() int { return 13 }
func (Q14) Bits() int { return 14 }
func (Q15) Bits() int { return 15 }
func (Q16) Bits() int { return 16 }
func (Q17) Bits() int { return 17 }
func (Q18) Bits() int { return 18 }
func (Q19) Bits() int { return 19 }
func (Q20) Bits() int { return 20 }
func (Q21) Bits() int { return 21 }
func (Q22) Bits() int { return 22 }
func (Q23) Bits() int { return 23 }
func (Q24) Bits() int { return 24 }
func (Q25) Bits() int { return 25 }
func (Q26) Bits() int { return 26 }
func (Q27) Bits() int { return 27 }
func (Q28) Bits() int { return 28 }
func (Q29) Bits() int { return 29 }
func (Q30) Bits() int { return 30 }
func (Q31) Bits() int { return 31 }
func (Q32) Bits() int { return 32 }
func (Q33) Bits() int { return 33 }
func (Q34) Bits() int { return 34 }
func (Q35) Bits() int { return 35 }
func (Q36) Bits() int { return 36 }
func (Q37) Bits() int { return 37 }
func (Q38) Bits() int { return 38 }
func (Q39) Bits() int { return 39 }
func (Q40) Bits() int { return 40 }
func (Q41) Bits() int { return 41 }
func (Q42) Bits() int { return 42 }
func (Q43) Bits() int { return 43 }
func (Q44) Bits() int { return 44 }
func (Q45) Bits() int { return 45 }
func (Q46) Bits() int { return 46 }
func (Q47) Bits() int { return 47 }
func (Q48) Bits() int { return 48 }
func (Q49) Bits() int { return 49 }
func (Q50) Bits() int { return 50 }
func (Q51) Bits() int { return 51 }
func (Q52) Bits() int { return 52 }
func (Q53) Bits() int { return 53 }
func (Q54) Bits() int { return 54 }
func (Q55) Bits() int { return 55 }
func (Q56) Bits() int { return 56 }
func (Q57) Bits() int { return 57 }
func (Q58) Bits() int { return 58 }
func (Q59) Bits() int { return 59 }
func (Q60) Bits() int { return 60 }
func (Q61) Bits() int { return 61 }
func (Q62) Bits() int { return 62 }
func (Q63) Bits() int { return 63 }
func (Q64) Bits() int { return 64 }
