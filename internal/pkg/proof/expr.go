package proof

import (
	"fmt"
	"strconv"
	"strings"

	"truej-proof/internal/pkg/ast"
	"truej-proof/internal/pkg/common"
)

// translateExpr is the Expression Rewriter (spec §2/§4.2): it reconstructs
// expr as a fully parenthesized prover term, substituting the result into
// the rewrite table so later reads of expr's span see the translated text
// rather than the surface syntax.
func (w *walker) translateExpr(expr ast.Node, scope *ast.Scope) string {
	text := w.renderExpr(expr, scope)
	w.rewrite.Substitute(expr, text)
	return text
}

func (w *walker) renderExpr(expr ast.Node, scope *ast.Scope) string {
	switch n := expr.(type) {
	case *ast.Literal:
		return normalizeLiteral(n.Kind, n.Text)

	case *ast.Identifier:
		// Undecorated identifiers are left untouched; the visitor is a
		// no-op so the walker does not recurse into them (spec §4.1).
		return n.Name

	case *ast.DecoratedName:
		return translateName(n, scope, w.types)

	case *ast.Unary:
		operand := w.translateExpr(n.Operand, scope)
		boolOperand := hasBooleanTerms(n.Operand, scope, w.types)
		return fmt.Sprintf("(%s%s)", translateOperator(n.Op, boolOperand), operand)

	case *ast.Binary:
		boolOperands := hasBooleanTerms(n.Left, scope, w.types) && hasBooleanTerms(n.Right, scope, w.types)
		left := w.translateExpr(n.Left, scope)
		right := w.translateExpr(n.Right, scope)
		return fmt.Sprintf("(%s %s %s)", left, translateOperator(n.Op, boolOperands), right)

	case *ast.Conditional:
		cond := w.translateExpr(n.Cond, scope)
		then := w.translateExpr(n.Then, scope)
		els := w.translateExpr(n.Else, scope)
		return fmt.Sprintf("((%s /\\ %s) \\/ (-%s /\\ %s))", cond, then, cond, els)

	case *ast.InstanceOf:
		operand := w.translateExpr(n.Operand, scope)
		return fmt.Sprintf("instanceof(%s, %s)", strconv.Quote(n.Type), operand)

	case *ast.Index:
		base := w.translateExpr(n.Base, scope)
		idx := w.translateExpr(n.Idx, scope)
		return fmt.Sprintf("%s[%s]", base, idx)

	case *ast.FieldAccess:
		base := w.translateExpr(n.Base, scope)
		return fmt.Sprintf("%s.%s", base, n.Field)

	case *ast.Call:
		callee := w.translateExpr(n.Callee, scope)
		args := common.Map(func(a ast.Node) string { return w.translateExpr(a, scope) }, n.Args)
		return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", "))

	case *ast.DotExpression:
		base := w.translateExpr(n.Base, scope)
		return fmt.Sprintf("%s.%s", base, n.Selector)

	default:
		return w.fail(expr, "expression")
	}
}
