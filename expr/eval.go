package expr

import (
	"math"
	"math/big"
)

// Evaluate parses s and reduces it to a number. Every failure matches
// ErrInvalidExpression.
func Evaluate(s string) (Value, error) {
	n, err := Parse(s)
	if err != nil {
		return Value{}, err
	}
	return Reduce(n)
}

// Reduce computes the value of the tree rooted at n.
func Reduce(n Node) (Value, error) {
	switch n := n.(type) {
	case *Literal:
		if n.Value.kind == KindInvalid {
			return Value{}, unsupportedf("empty literal")
		}
		return n.Value, nil

	case *BinaryOp:
		left, err := Reduce(n.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := Reduce(n.Right)
		if err != nil {
			return Value{}, err
		}
		return apply(n.Op, left, right)

	case *UnaryOp:
		if n.Op != Neg {
			return Value{}, unsupportedf("unary operator %c", n.Op)
		}
		x, err := Reduce(n.Operand)
		if err != nil {
			return Value{}, err
		}
		return negate(x), nil

	default:
		return Value{}, unsupportedf("node %T", n)
	}
}

func apply(op Op, a, b Value) (Value, error) {
	if op == Div {
		return quo(a, b)
	}

	if a.IsInt() && b.IsInt() {
		r := new(big.Int)
		switch op {
		case Add:
			r.Add(a.i, b.i)
		case Sub:
			r.Sub(a.i, b.i)
		case Mul:
			r.Mul(a.i, b.i)
		default:
			return Value{}, unsupportedf("operator %c", op)
		}
		return BigInt(r), nil
	}

	x, y, err := floatOperands(a, b)
	if err != nil {
		return Value{}, err
	}
	switch op {
	case Add:
		return Float(x + y), nil
	case Sub:
		return Float(x - y), nil
	case Mul:
		return Float(x * y), nil
	}
	return Value{}, unsupportedf("operator %c", op)
}

// quo is true division: the result is always a float.
func quo(a, b Value) (Value, error) {
	if b.isZero() {
		return Value{}, ErrDivisionByZero
	}
	if a.IsInt() && b.IsInt() {
		f, _ := new(big.Rat).SetFrac(a.i, b.i).Float64()
		if math.IsInf(f, 0) {
			return Value{}, overflowf("integer division result too large for a float")
		}
		return Float(f), nil
	}
	x, y, err := floatOperands(a, b)
	if err != nil {
		return Value{}, err
	}
	return Float(x / y), nil
}

func negate(v Value) Value {
	if v.IsInt() {
		return BigInt(new(big.Int).Neg(v.i))
	}
	return Float(-v.f)
}

func floatOperands(a, b Value) (float64, float64, error) {
	x, err := a.Float64()
	if err != nil {
		return 0, 0, err
	}
	y, err := b.Float64()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
