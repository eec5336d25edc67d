package indicator

// Value 파생 지표 값 (워밍업 구간은 missing)
//
// A derived field is undefined for any bar earlier than its window
// requires. Rules must treat a missing value as "condition fails" -
// Value makes that explicit instead of smuggling a zero through
// ratio and threshold comparisons.
type Value struct {
	val   float64
	valid bool
}

// Some 유효한 값
func Some(v float64) Value {
	return Value{val: v, valid: true}
}

// None 미정의 값
func None() Value {
	return Value{}
}

// Valid reports whether the value is defined.
func (v Value) Valid() bool {
	return v.valid
}

// Get returns the value and whether it is defined.
func (v Value) Get() (float64, bool) {
	return v.val, v.valid
}

// GreaterThan 두 값 비교 (둘 중 하나라도 missing이면 false)
func (v Value) GreaterThan(o Value) bool {
	return v.valid && o.valid && v.val > o.val
}

// AllValid 모든 값이 정의되어 있는지
func AllValid(vs ...Value) bool {
	for _, v := range vs {
		if !v.valid {
			return false
		}
	}
	return true
}
