// Package expr evaluates the arithmetic typed into the calculator.
//
// Input is read by the Go expression grammar (go/parser), so precedence and
// associativity are the usual ones. The resulting syntax tree is lowered
// onto three node kinds only: numeric literals, the binary operators
// + - * / and unary negation. Any other construct the grammar accepts is
// rejected with ErrUnsupported.
package expr
