package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2+3", want: "5"},
		{in: "2*3", want: "6"},
		{in: "1+2*3", want: "7"},
		{in: "2*3+4", want: "10"},
		{in: "10-4-3", want: "3"},
		{in: "2*3-4/2", want: "4.0"},
		{in: "4/2", want: "2.0"},
		{in: "7/2", want: "3.5"},
		{in: "1/3", want: "0.3333333333333333"},
		{in: "8/2/2", want: "2.0"},
		{in: "-3", want: "-3"},
		{in: "-3*-3", want: "9"},
		{in: "2--3", want: "5"},
		{in: "--4", want: "4"},
		{in: "1.5+1", want: "2.5"},
		{in: "0.1+0.2", want: "0.30000000000000004"},
		{in: ".5*4", want: "2.0"},
		{in: "5.", want: "5.0"},
		{in: "00", want: "0"},
		{in: "(2+3)*4", want: "20"},
		{in: " 2 + 3 ", want: "5"},
		{in: "99999999999999999999*10", want: "999999999999999999990"},
		{in: "10000000000000000.0", want: "1e+16"},
		{in: "0.00001", want: "1e-05"},
		{in: "0.0001", want: "0.0001"},
		{in: "-0.0", want: "-0.0"},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.in)
		require.NoError(t, err, "Evaluate(%q)", tt.in)
		assert.Equal(t, tt.want, got.String(), "Evaluate(%q)", tt.in)
	}
}

func TestEvaluate_KeepsIntegersExact(t *testing.T) {
	v, err := Evaluate("6*7")
	require.NoError(t, err)
	assert.True(t, v.IsInt())

	v, err = Evaluate("6/3")
	require.NoError(t, err)
	assert.True(t, v.IsFloat())

	v, err = Evaluate("6*1.0")
	require.NoError(t, err)
	assert.True(t, v.IsFloat())
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "", want: ErrSyntax},
		{in: "   ", want: ErrSyntax},
		{in: "2+", want: ErrSyntax},
		{in: "*2", want: ErrUnsupported},
		{in: "2 3", want: ErrSyntax},
		{in: "1.2.3", want: ErrSyntax},
		{in: "(2+3", want: ErrSyntax},
		{in: "2+3)", want: ErrSyntax},
		{in: "8//2", want: ErrSyntax},
		{in: "08", want: ErrSyntax},
		{in: "Wrong Input", want: ErrSyntax},
		{in: "x", want: ErrUnsupported},
		{in: "x+1", want: ErrUnsupported},
		{in: "sqrt(4)", want: ErrUnsupported},
		{in: "1 < 2", want: ErrUnsupported},
		{in: "2**3", want: ErrUnsupported},
		{in: "+2", want: ErrUnsupported},
		{in: "2++3", want: ErrUnsupported},
		{in: "7%2", want: ErrUnsupported},
		{in: "007", want: ErrUnsupported},
		{in: "0x1F", want: ErrUnsupported},
		{in: "1_000", want: ErrUnsupported},
		{in: "1e3", want: ErrUnsupported},
		{in: "2i", want: ErrUnsupported},
		{in: `"2"`, want: ErrUnsupported},
		{in: "3/0", want: ErrDivisionByZero},
		{in: "7/0", want: ErrDivisionByZero},
		{in: "3.0/0", want: ErrDivisionByZero},
		{in: "3/0.0", want: ErrDivisionByZero},
		{in: "1/(2-2)", want: ErrDivisionByZero},
	}

	for _, tt := range tests {
		_, err := Evaluate(tt.in)
		require.Error(t, err, "Evaluate(%q)", tt.in)
		assert.True(t, errors.Is(err, tt.want), "Evaluate(%q) err=%v, want %v", tt.in, err, tt.want)
		assert.True(t, errors.Is(err, ErrInvalidExpression), "Evaluate(%q) err=%v", tt.in, err)
	}
}

func TestEvaluate_Overflow(t *testing.T) {
	huge := "1" + repeat("0", 400)

	_, err := Evaluate(huge + "/1")
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Evaluate(huge + "*1.0")
	assert.ErrorIs(t, err, ErrOverflow)

	// Exact integers are unbounded.
	v, err := Evaluate(huge + "*" + huge)
	require.NoError(t, err)
	assert.Equal(t, "1"+repeat("0", 800), v.String())

	// Float arithmetic saturates instead of failing.
	v, err = Evaluate(repeat("9", 200) + ".0*" + repeat("9", 200) + ".0")
	require.NoError(t, err)
	assert.Equal(t, "inf", v.String())
}

func TestReduce_RejectsUnknownNodes(t *testing.T) {
	_, err := Reduce(nil)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Reduce(&BinaryOp{Op: '%', Left: &Literal{Value: Int(1)}, Right: &Literal{Value: Int(2)}})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Reduce(&UnaryOp{Op: '+', Operand: &Literal{Value: Int(1)}})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Reduce(&Literal{})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
