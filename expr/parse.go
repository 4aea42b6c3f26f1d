package expr

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math/big"
	"strconv"
	"strings"
)

// Operators are padded so the Go scanner never sees "--", "++" or "//":
// "2--3" is 2-(-3), "8//2" is a syntax error rather than a comment.
var operatorSpacer = strings.NewReplacer(
	"+", " + ",
	"-", " - ",
	"*", " * ",
	"/", " / ",
)

var binaryOps = map[token.Token]Op{
	token.ADD: Add,
	token.SUB: Sub,
	token.MUL: Mul,
	token.QUO: Div,
}

// Parse reads s and returns its syntax tree.
func Parse(s string) (Node, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	e, err := parser.ParseExpr(operatorSpacer.Replace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return lower(e)
}

func lower(e ast.Expr) (Node, error) {
	switch n := e.(type) {
	case *ast.BasicLit:
		v, err := parseLiteral(n)
		if err != nil {
			return nil, err
		}
		return &Literal{Value: v}, nil

	case *ast.ParenExpr:
		return lower(n.X)

	case *ast.BinaryExpr:
		op, ok := binaryOps[n.Op]
		if !ok {
			return nil, unsupportedf("operator %s", n.Op)
		}
		left, err := lower(n.X)
		if err != nil {
			return nil, err
		}
		right, err := lower(n.Y)
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Op: op, Left: left, Right: right}, nil

	case *ast.UnaryExpr:
		if n.Op != token.SUB {
			return nil, unsupportedf("unary operator %s", n.Op)
		}
		x, err := lower(n.X)
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: Neg, Operand: x}, nil

	case *ast.Ident:
		return nil, unsupportedf("identifier %q", n.Name)
	case *ast.CallExpr:
		return nil, unsupportedf("function call")
	default:
		return nil, unsupportedf("%T", e)
	}
}

// parseLiteral accepts plain decimal numerals only. Integers keep their exact
// value; anything with a decimal point is a float.
func parseLiteral(lit *ast.BasicLit) (Value, error) {
	s := lit.Value
	switch lit.Kind {
	case token.INT:
		if !isDigits(s) {
			return Value{}, unsupportedf("integer literal %q", s)
		}
		if len(s) > 1 && s[0] == '0' && strings.Trim(s, "0") != "" {
			return Value{}, unsupportedf("leading zeros in %q", s)
		}
		i, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return Value{}, fmt.Errorf("%w: bad integer %q", ErrSyntax, s)
		}
		return BigInt(i), nil

	case token.FLOAT:
		whole, frac, ok := strings.Cut(s, ".")
		if !ok || !isDigits(whole+frac) {
			return Value{}, unsupportedf("float literal %q", s)
		}
		f, err := strconv.ParseFloat(s, 64)
		// Out of range literals round to ±Inf, as IEEE parsing does.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Value{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return Float(f), nil

	default:
		return Value{}, unsupportedf("%s literal %s", strings.ToLower(lit.Kind.String()), s)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
