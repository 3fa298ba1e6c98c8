package eval

import (
	"math/big"
	"strconv"
)

// Value is the result of evaluating a tree. Sums, differences and
// products of integers stay exact at any size; any quotient is real.
type Value struct {
	i    *big.Int
	f    float64
	real bool
}

// Int returns an exact integer value.
func Int(v int64) Value {
	return Value{i: big.NewInt(v)}
}

// Real returns a real value.
func Real(v float64) Value {
	return Value{f: v, real: true}
}

// IsReal reports whether v came from a division.
func (v Value) IsReal() bool {
	return v.real
}

// BigInt returns the exact integer of a non-real value, or nil.
func (v Value) BigInt() *big.Int {
	if v.real {
		return nil
	}
	return new(big.Int).Set(v.exact())
}

// Float returns v as a float64, rounding large integers.
func (v Value) Float() float64 {
	if v.real {
		return v.f
	}
	f, _ := new(big.Float).SetInt(v.exact()).Float64()
	return f
}

// IsZero reports whether v equals zero.
func (v Value) IsZero() bool {
	if v.real {
		return v.f == 0
	}
	return v.exact().Sign() == 0
}

func (v Value) String() string {
	if v.real {
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return v.exact().String()
}

func (v Value) exact() *big.Int {
	if v.i == nil {
		return new(big.Int)
	}
	return v.i
}

func add(a, b Value) Value {
	if a.real || b.real {
		return Real(a.Float() + b.Float())
	}
	return Value{i: new(big.Int).Add(a.exact(), b.exact())}
}

func sub(a, b Value) Value {
	if a.real || b.real {
		return Real(a.Float() - b.Float())
	}
	return Value{i: new(big.Int).Sub(a.exact(), b.exact())}
}

func mul(a, b Value) Value {
	if a.real || b.real {
		return Real(a.Float() * b.Float())
	}
	return Value{i: new(big.Int).Mul(a.exact(), b.exact())}
}

func div(a, b Value) Value {
	return Real(a.Float() / b.Float())
}
