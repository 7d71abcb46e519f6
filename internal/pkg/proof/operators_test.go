package proof

import (
	"testing"

	"truej-proof/internal/pkg/ast"
)

func Test_TranslateOperator_RelationalAndPassthroughTokens(t *testing.T) {
	cases := map[string]string{
		"<": "<", ">": ">", ">=": ">=", "===": "===", "==>": "==>", "<==": "<==",
		"<=": "=<", "!": "-",
	}
	for op, want := range cases {
		if got := translateOperator(op, false); got != want {
			t.Errorf("translateOperator(%q, false) = %q, want %q", op, got, want)
		}
	}
}

func Test_TranslateOperator_EqualityLiftsOnBooleanOperands(t *testing.T) {
	if got := translateOperator("=", false); got != "=" {
		t.Errorf(`translateOperator("=", false) = %q, want "="`, got)
	}
	if got := translateOperator("=", true); got != "===" {
		t.Errorf(`translateOperator("=", true) = %q, want "==="`, got)
	}
	if got := translateOperator("!=", false); got != "#=" {
		t.Errorf(`translateOperator("!=", false) = %q, want "#="`, got)
	}
	if got := translateOperator("!=", true); got != "=#=" {
		t.Errorf(`translateOperator("!=", true) = %q, want "=#="`, got)
	}
	if got := translateOperator("=!=", true); got != "=#=" {
		t.Errorf(`translateOperator("=!=", true) = %q, want "=#="`, got)
	}
}

func Test_TranslateOperator_LogicalConnectives(t *testing.T) {
	if got := translateOperator("&", false); got != `/\` {
		t.Errorf(`translateOperator("&", false) = %q, want "/\\"`, got)
	}
	if got := translateOperator("&&", false); got != `/\` {
		t.Errorf(`translateOperator("&&", false) = %q, want "/\\"`, got)
	}
	if got := translateOperator("|", false); got != `\/` {
		t.Errorf(`translateOperator("|", false) = %q, want "\\/"`, got)
	}
}

func Test_HasBooleanTerms_Literals(t *testing.T) {
	scope := flatScope(nil)
	types := ast.NewScopeOracle()
	boolLit := &ast.Literal{Kind: ast.LiteralBool, Text: "true"}
	intLit := &ast.Literal{Kind: ast.LiteralInt, Text: "1"}
	if !hasBooleanTerms(boolLit, scope, types) {
		t.Error("boolean literal should be boolean")
	}
	if hasBooleanTerms(intLit, scope, types) {
		t.Error("int literal should not be boolean")
	}
}

func Test_HasBooleanTerms_DecoratedNameFollowsDeclaredType(t *testing.T) {
	types := ast.NewScopeOracle()
	boolScope := flatScope(map[string]string{"ok": "boolean"})
	intScope := flatScope(map[string]string{"n": "int"})
	if !hasBooleanTerms(post("ok"), boolScope, types) {
		t.Error("decorated boolean-typed name should be boolean")
	}
	if hasBooleanTerms(post("n"), intScope, types) {
		t.Error("decorated int-typed name should not be boolean")
	}
}

func Test_HasBooleanTerms_RelationalBinaryIsAlwaysBoolean(t *testing.T) {
	scope := flatScope(map[string]string{"a": "int", "b": "int"})
	types := ast.NewScopeOracle()
	cmp := &ast.Binary{Op: "<", Left: post("a"), Right: pre("b")}
	if !hasBooleanTerms(cmp, scope, types) {
		t.Error("a relational binary should be boolean regardless of operand types")
	}
}

// A comparison is boolean-valued regardless of what it compares — nesting
// an equality inside another expression (e.g. as the left operand of an
// outer "=") must see it as boolean, matching the original visitor's
// ConjRelationExprContext case, which answers true unconditionally for
// every relational and equality operator it covers.
func Test_HasBooleanTerms_EqualityBinaryIsAlwaysBooleanRegardlessOfOperandTypes(t *testing.T) {
	scope := flatScope(map[string]string{"a": "int"})
	types := ast.NewScopeOracle()
	eq := &ast.Binary{Op: "=", Left: post("a"), Right: pre("a")}
	if !hasBooleanTerms(eq, scope, types) {
		t.Error("an equality expression is itself boolean-valued, regardless of its operands' types")
	}
}

// Call and DotExpression default to non-boolean: the open question of
// hasBooleanTerms's incompleteness, deliberately left unresolved.
func Test_HasBooleanTerms_CallAndDotExpressionDefaultFalse(t *testing.T) {
	scope := flatScope(nil)
	types := ast.NewScopeOracle()
	call := &ast.Call{Callee: ident("isValid"), Args: nil}
	dot := &ast.DotExpression{Base: ident("x"), Selector: "frob"}
	if hasBooleanTerms(call, scope, types) {
		t.Error("Call should default to non-boolean")
	}
	if hasBooleanTerms(dot, scope, types) {
		t.Error("DotExpression should default to non-boolean")
	}
}

func Test_HasBooleanTerms_FieldAccessAsksOnlyAboutTheField(t *testing.T) {
	scope := flatScope(map[string]string{"flag": "boolean"})
	types := ast.NewScopeOracle()
	field := &ast.FieldAccess{Base: ident("this"), Field: "flag"}
	if !hasBooleanTerms(field, scope, types) {
		t.Error("field access to a boolean field should be boolean regardless of the base's own type")
	}
}
