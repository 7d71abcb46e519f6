package proof

import (
	"truej-proof/internal/pkg/ast"
	"truej-proof/internal/pkg/common"
)

// translateOperator maps a surface operator token to its prover token
// (spec §4.2). boolOperands selects the boolean column for "=" and "!=" —
// every other row is identical in both columns, so the table only branches
// there.
func translateOperator(op string, boolOperands bool) string {
	switch op {
	case "<", ">", ">=", "===", "==>", "<==":
		return op
	case "<=":
		return "=<"
	case "=":
		if boolOperands {
			return "==="
		}
		return "="
	case "!=":
		if boolOperands {
			return "=#="
		}
		return "#="
	case "=!=":
		return "=#="
	case "!":
		return "-"
	case "&", "&&":
		return "/\\"
	case "|", "||":
		return "\\/"
	default:
		return op
	}
}

// hasBooleanTerms decides whether expr is recognized as boolean-valued,
// structurally (spec §4.2). Calls and unresolved dot-expressions default
// to non-boolean — the open question of spec §9, left unresolved here on
// purpose rather than guessed at.
func hasBooleanTerms(expr ast.Node, scope *ast.Scope, types ast.TypeOracle) bool {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Kind == ast.LiteralBool
	case *ast.Identifier:
		info, ok := types.Lookup(scope, n.Name)
		return ok && common.IsBooleanTypeSpelling(info.Type)
	case *ast.DecoratedName:
		info, ok := types.Lookup(scope, n.Name)
		return ok && common.IsBooleanTypeSpelling(info.Type)
	case *ast.Unary:
		return n.Op == "!"
	case *ast.Binary:
		return isBooleanOperator(n.Op)
	case *ast.InstanceOf:
		return true
	case *ast.Conditional:
		return hasBooleanTerms(n.Then, scope, types)
	case *ast.Index:
		return hasBooleanTerms(n.Base, scope, types)
	case *ast.FieldAccess:
		return fieldIsBoolean(n, scope, types)
	case *ast.Call, *ast.DotExpression:
		return false
	default:
		return false
	}
}

// isBooleanOperator reports whether op, once translated, only ever
// produces a boolean result — including "=" and "!=" themselves: a
// comparison is boolean-valued regardless of what it compares. Callers
// asking about a Binary node always want to know about the comparison
// itself, never about its operands' own types.
func isBooleanOperator(op string) bool {
	switch op {
	case "<", ">", ">=", "<=", "=", "!=", "&", "&&", "|", "||", "===", "==>", "<==", "=!=":
		return true
	default:
		return false
	}
}

// fieldIsBoolean answers whether the accessed field's declared type is
// boolean — a field access `this.x` asks whether `x` is boolean, not
// whether `this` is. The field name is looked up from the access site's
// scope and its ancestors; the base expression is not consulted.
func fieldIsBoolean(f *ast.FieldAccess, scope *ast.Scope, types ast.TypeOracle) bool {
	info, ok := types.Lookup(scope, f.Field)
	return ok && common.IsBooleanTypeSpelling(info.Type)
}
