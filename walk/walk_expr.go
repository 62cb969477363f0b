package walk

import (
	"strconv"

	"github.com/ImGajeed76/bfscript/ast"
	"github.com/ImGajeed76/bfscript/common"
	"github.com/ImGajeed76/bfscript/ir"
	"github.com/ImGajeed76/bfscript/report"
)

// walkExpr walks an expression node and produces its IR, folding
// compile-time-computable subtrees into constants as it goes.
func (w *Walker) walkExpr(expr ast.Expr) ir.Expr {
	switch v := expr.(type) {
	case *ast.NumberLit:
		return &ir.Const{Value: w.parseNumber(v)}
	case *ast.CharLit:
		return &ir.Const{Value: uint64(v.Value) & w.mask}
	case *ast.Identifier:
		return w.walkIdentifier(v)
	case *ast.BinaryOp:
		return w.walkBinaryOp(v)
	case *ast.UnaryOp:
		return w.walkUnaryOp(v)
	case *ast.FuncCall:
		report.Raise(v.Span(), report.ErrUnsupported, "function calls are not supported")
	default:
		report.RaiseInternal("unknown expression node %T", expr)
	}

	// unreachable
	return nil
}

// parseNumber converts a number literal to a cell value, wrapping at the
// configured cell width.
func (w *Walker) parseNumber(lit *ast.NumberLit) uint64 {
	value, err := strconv.ParseUint(lit.Text, 10, 64)
	if err != nil {
		report.Raise(lit.Span(), report.ErrSyntax, "invalid number literal `%s`", lit.Text)
	}

	return value & w.mask
}

// walkIdentifier walks a name reference.  The macro table is consulted first:
// a resolved macro becomes a constant.  Otherwise the name resolves through
// the scope chain.
func (w *Walker) walkIdentifier(ident *ast.Identifier) ir.Expr {
	if lit, ok := w.defines[ident.Name]; ok {
		return &ir.Const{Value: w.macroValue(ident, lit)}
	}

	sym := w.currScope.Lookup(ident.Name)
	if sym == nil {
		report.Raise(ident.Span(), report.ErrName, "`%s` is not defined", ident.Name)
	}

	if sym.Kind != common.KindScalar {
		report.Raise(
			ident.Span(),
			report.ErrUnsupported,
			"cannot use %s `%s` in an expression",
			common.KindName(sym.Kind),
			ident.Name,
		)
	}

	return &ir.Load{Addr: sym.Addr}
}

// macroValue converts a macro's literal text to a cell value.  A macro is
// either a decimal number or a single-character literal.
func (w *Walker) macroValue(ident *ast.Identifier, lit string) uint64 {
	if value, err := strconv.ParseUint(lit, 10, 64); err == nil {
		return value & w.mask
	}

	runes := []rune(lit)
	if len(runes) == 3 && runes[0] == '\'' && runes[2] == '\'' {
		return uint64(runes[1]) & w.mask
	}

	report.Raise(ident.Span(), report.ErrSyntax, "define `%s` has invalid literal `%s`", ident.Name, lit)

	// unreachable
	return 0
}

// -----------------------------------------------------------------------------

// binaryOps is the set of recognized binary operator symbols.
var binaryOps = map[string]struct{}{
	"+": {}, "-": {}, "*": {}, "/": {},
	"==": {}, "!=": {}, "<": {}, ">": {}, "<=": {}, ">=": {},
}

// walkBinaryOp walks a binary operator application, folding it if both
// operands are constants.
func (w *Walker) walkBinaryOp(bop *ast.BinaryOp) ir.Expr {
	if _, ok := binaryOps[bop.Op]; !ok {
		report.RaiseInternal("unrecognized binary operator `%s`", bop.Op)
	}

	lhs := w.walkExpr(bop.Lhs)
	rhs := w.walkExpr(bop.Rhs)

	lc, lok := lhs.(*ir.Const)
	rc, rok := rhs.(*ir.Const)
	if lok && rok {
		return &ir.Const{Value: w.foldBinary(bop, lc.Value, rc.Value)}
	}

	// Multiplication and division only exist at compile time.
	if bop.Op == "*" || bop.Op == "/" {
		report.Raise(
			bop.OpSpan,
			report.ErrUnsupported,
			"`%s` on non-constant operands is not supported",
			bop.Op,
		)
	}

	return &ir.Binary{Op: bop.Op, Lhs: lhs, Rhs: rhs}
}

// foldBinary computes a binary operation on two constants.  Arithmetic wraps
// at the configured cell width so folding agrees bit-for-bit with what runtime
// execution of the unfolded expression would produce.
func (w *Walker) foldBinary(bop *ast.BinaryOp, a, b uint64) uint64 {
	switch bop.Op {
	case "+":
		return (a + b) & w.mask
	case "-":
		return (a - b) & w.mask
	case "*":
		return (a * b) & w.mask
	case "/":
		if b == 0 {
			report.Raise(bop.OpSpan, report.ErrArithmetic, "division by constant zero")
		}
		return a / b
	case "==":
		return boolValue(a == b)
	case "!=":
		return boolValue(a != b)
	case "<":
		return boolValue(a < b)
	case ">":
		return boolValue(a > b)
	case "<=":
		return boolValue(a <= b)
	case ">=":
		return boolValue(a >= b)
	default:
		report.RaiseInternal("unrecognized binary operator `%s`", bop.Op)
	}

	// unreachable
	return 0
}

// walkUnaryOp walks a prefix operator application.
func (w *Walker) walkUnaryOp(uop *ast.UnaryOp) ir.Expr {
	operand := w.walkExpr(uop.Operand)
	c, isConst := operand.(*ir.Const)

	switch uop.Op {
	case "+":
		return operand
	case "-":
		if isConst {
			return &ir.Const{Value: (-c.Value) & w.mask}
		}

		// There is no run-time encoding for unary negation: only non-negative
		// immediates are directly representable.
		report.Raise(uop.Span(), report.ErrUnsupported, "unary `-` on a non-constant operand is not supported")
	case "!":
		if isConst {
			return &ir.Const{Value: boolValue(c.Value == 0)}
		}

		return &ir.Not{Operand: operand}
	default:
		report.RaiseInternal("unrecognized unary operator `%s`", uop.Op)
	}

	// unreachable
	return nil
}

// boolValue converts a Go boolean to the cell encoding of truth.
func boolValue(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}
