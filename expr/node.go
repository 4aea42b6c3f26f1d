package expr

// Op is an arithmetic operator.
type Op byte

const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'

	// Neg is the only unary operator.
	Neg Op = '-'
)

type precedence int

const (
	addPrecedence precedence = iota + 1
	mulPrecedence
	negPrecedence
	atomicPrecedence
)

// A Node is one of *Literal, *BinaryOp or *UnaryOp.
type Node interface {
	// String returns the expression with only the parentheses its
	// structure requires.
	String() string

	precedence() precedence
}

// Literal is a numeric constant.
type Literal struct {
	Value Value
}

func (l *Literal) String() string { return l.Value.String() }

func (l *Literal) precedence() precedence {
	// "-2" must be wrapped when it appears as an operand of "*", "/" etc.
	if s := l.Value.String(); len(s) > 0 && s[0] == '-' {
		return negPrecedence
	}
	return atomicPrecedence
}

// BinaryOp applies Op to Left and Right.
type BinaryOp struct {
	Op    Op
	Left  Node
	Right Node
}

func (b *BinaryOp) precedence() precedence {
	switch b.Op {
	case Mul, Div:
		return mulPrecedence
	default:
		return addPrecedence
	}
}

func (b *BinaryOp) String() string {
	prec := b.precedence()
	left := b.Left.String()
	right := b.Right.String()
	if b.Left.precedence() < prec {
		left = "(" + left + ")"
	}
	// Binary operators are left associative, so an equal-precedence right
	// operand needs parentheses: 1-(2-3).
	if b.Right.precedence() <= prec {
		right = "(" + right + ")"
	}
	return left + string(b.Op) + right
}

// UnaryOp negates Operand.
type UnaryOp struct {
	Op      Op
	Operand Node
}

func (u *UnaryOp) precedence() precedence { return negPrecedence }

func (u *UnaryOp) String() string {
	if u.Operand.precedence() < atomicPrecedence {
		return string(u.Op) + "(" + u.Operand.String() + ")"
	}
	return string(u.Op) + u.Operand.String()
}
