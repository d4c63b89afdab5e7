package models

import "strconv"

// Number is a numeric cell value that remembers whether the source string
// carried a decimal point, so integer volumes serialize as 4873623 and
// percentage changes as 3.3. A nil *Number is the null value.
type Number struct {
	isFloat bool
	i       int64
	f       float64
}

// Int wraps an integer cell value.
func Int(v int64) *Number {
	return &Number{i: v}
}

// Float wraps a floating-point cell value.
func Float(v float64) *Number {
	return &Number{isFloat: true, f: v}
}

// IsFloat reports whether the source string carried a decimal point.
func (n *Number) IsFloat() bool {
	return n != nil && n.isFloat
}

// Float64 returns the value widened to float64. Nil receivers return 0.
func (n *Number) Float64() float64 {
	if n == nil {
		return 0
	}
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// Int64 returns the integer value, truncating floats.
func (n *Number) Int64() int64 {
	if n == nil {
		return 0
	}
	if n.isFloat {
		return int64(n.f)
	}
	return n.i
}

func (n *Number) String() string {
	if n == nil {
		return "null"
	}
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

// MarshalJSON emits the bare numeric literal.
func (n *Number) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return []byte(n.String()), nil
}

// UnmarshalJSON accepts integer and floating-point literals as well as null.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		n.isFloat = false
		n.i = i
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	n.isFloat = true
	n.f = f
	return nil
}

// Arg converts a Number to a database parameter, preserving SQL NULL.
func (n *Number) Arg() interface{} {
	if n == nil {
		return nil
	}
	if n.isFloat {
		return n.f
	}
	return n.i
}

// Equal compares two nullable numbers by kind and value.
func (n *Number) Equal(other *Number) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.isFloat != other.isFloat {
		return false
	}
	if n.isFloat {
		return n.f == other.f
	}
	return n.i == other.i
}
