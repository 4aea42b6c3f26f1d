package expr

import "testing"

func TestNodeStrings(t *testing.T) {
	lit := func(i int64) Node { return &Literal{Value: Int(i)} }

	exprs := []Node{
		&BinaryOp{Op: Mul, Left: lit(2), Right: lit(3)},
		&BinaryOp{
			Op:    Add,
			Left:  &BinaryOp{Op: Mul, Left: lit(2), Right: lit(3)},
			Right: &BinaryOp{Op: Div, Left: lit(3), Right: lit(2)},
		},
		&BinaryOp{
			Op:    Div,
			Left:  &BinaryOp{Op: Sub, Left: lit(2), Right: lit(3)},
			Right: &BinaryOp{Op: Mul, Left: lit(3), Right: lit(2)},
		},
		&BinaryOp{
			Op:    Sub,
			Left:  lit(1),
			Right: &BinaryOp{Op: Sub, Left: lit(2), Right: lit(3)},
		},
		&UnaryOp{Op: Neg, Operand: &BinaryOp{Op: Add, Left: lit(1), Right: lit(2)}},
		&UnaryOp{Op: Neg, Operand: &UnaryOp{Op: Neg, Operand: lit(4)}},
		&BinaryOp{Op: Mul, Left: &UnaryOp{Op: Neg, Operand: lit(2)}, Right: lit(5)},
	}
	strs := []string{
		"2*3",
		"2*3+3/2",
		"(2-3)/(3*2)",
		"1-(2-3)",
		"-(1+2)",
		"-(-4)",
		"-2*5",
	}
	for i, x := range exprs {
		if got := x.String(); got != strs[i] {
			t.Errorf("expr %d: expected %s got %s", i, strs[i], got)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, in := range []string{"1+2*3", "(1+2)*3", "1-(2-3)", "-(1+2)", "2.5/0.5"} {
		n, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		if got := n.String(); got != in {
			t.Fatalf("Parse(%q).String()=%q", in, got)
		}
	}
}
