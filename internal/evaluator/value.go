package evaluator

import (
	"math"
	"math/big"
	"strconv"

	"github.com/nukata/goarith"
)

// Value is the single numeric kind: an exact Int of any size or a real Dec.
type Value interface{ repr() string }

type (
	// Int wraps a goarith number, which widens to a big integer instead
	// of overflowing.
	Int struct{ N goarith.Number }
	Dec struct{ V float64 }
)

func NewInt(v int64) Int { return Int{N: goarith.AsNumber(big.NewInt(v))} }

func newBigInt(z *big.Int) Int { return Int{N: goarith.AsNumber(new(big.Int).Set(z))} }

func (v Int) repr() string { return v.N.String() }
func (v Dec) repr() string { return formatDecimal(v.V) }

// Format produces the printed representation for a value.
func Format(v Value) string { return v.repr() }

// formatDecimal prints the shortest digits that read back as f. Whole
// reals such as 22.0 print without a fraction; magnitudes below 1e-4 or
// from 1e16 up use exponent form.
func formatDecimal(f float64) string {
	if f == 0 {
		return "0"
	}
	if a := math.Abs(f); a < 1e-4 || a >= 1e16 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var zero = NewInt(0)

func (v Int) bigInt() *big.Int {
	z, _ := new(big.Int).SetString(v.N.String(), 10)
	return z
}

func toFloat(v Value) float64 {
	switch x := v.(type) {
	case Int:
		f, _ := new(big.Float).SetInt(x.bigInt()).Float64()
		return f
	case Dec:
		return x.V
	}
	return 0
}

// Equal compares two values numerically, so NewInt(2) equals Dec{2}.
func Equal(a, b Value) bool {
	if x, ok := a.(Int); ok {
		if y, ok := b.(Int); ok {
			return x.N.Cmp(y.N) == 0
		}
	}
	return toFloat(a) == toFloat(b)
}

func ints(a, b Value) (Int, Int, bool) {
	x, ok1 := a.(Int)
	y, ok2 := b.(Int)
	return x, y, ok1 && ok2
}

func add(a, b Value) Value {
	if x, y, ok := ints(a, b); ok {
		return Int{N: x.N.Add(y.N)}
	}
	return Dec{V: toFloat(a) + toFloat(b)}
}

func sub(a, b Value) Value {
	if x, y, ok := ints(a, b); ok {
		return Int{N: x.N.Sub(y.N)}
	}
	return Dec{V: toFloat(a) - toFloat(b)}
}

func mul(a, b Value) Value {
	if x, y, ok := ints(a, b); ok {
		return Int{N: x.N.Mul(y.N)}
	}
	return Dec{V: toFloat(a) * toFloat(b)}
}

// div is true division; the result is always a Dec. Two Ints are divided
// exactly and rounded once.
func div(a, b Value) (Value, error) {
	if x, y, ok := ints(a, b); ok {
		if y.N.Cmp(zero.N) == 0 {
			return nil, &ArithmeticError{Msg: "division by zero"}
		}
		f, _ := new(big.Rat).SetFrac(x.bigInt(), y.bigInt()).Float64()
		return Dec{V: f}, nil
	}
	d := toFloat(b)
	if d == 0 {
		return nil, &ArithmeticError{Msg: "division by zero"}
	}
	return Dec{V: toFloat(a) / d}, nil
}

func neg(v Value) Value {
	switch x := v.(type) {
	case Int:
		return Int{N: zero.N.Sub(x.N)}
	case Dec:
		return Dec{V: -x.V}
	}
	return v
}
