package proof

import (
	"testing"

	"truej-proof/internal/pkg/ast"
)

func Test_TranslateName_PreDecoration_QuotesWithCaretBeforeName(t *testing.T) {
	scope := flatScope(map[string]string{"a": "int"})
	got := translateName(pre("a"), scope, ast.NewScopeOracle())
	want := "'^a'"
	if got != want {
		t.Fatalf("translateName(pre a) = %q, want %q", got, want)
	}
}

func Test_TranslateName_PostDecoration_QuotesWithCaretAfterName(t *testing.T) {
	scope := flatScope(map[string]string{"a": "int"})
	got := translateName(post("a"), scope, ast.NewScopeOracle())
	want := "'a^'"
	if got != want {
		t.Fatalf("translateName(post a) = %q, want %q", got, want)
	}
}

func Test_TranslateName_MidDecoration_PutsCaretAndTagAfterName(t *testing.T) {
	scope := flatScope(map[string]string{"a": "int"})
	got := translateName(mid("a", "loop1"), scope, ast.NewScopeOracle())
	want := "'a^loop1'"
	if got != want {
		t.Fatalf("translateName(mid a loop1) = %q, want %q", got, want)
	}
}

// A variable declared in a labeled scope (an instance field reached via
// "this") gets that label as a dotted prefix ahead of the decoration.
func Test_TranslateName_FieldScope_GetsDottedPrefix(t *testing.T) {
	fieldScope := &ast.Scope{Label: "this", Vars: map[string]ast.VarInfo{}}
	fieldScope.Vars["x"] = ast.VarInfo{DeclaredIn: fieldScope, Type: "int"}
	methodScope := &ast.Scope{Parent: fieldScope, Vars: map[string]ast.VarInfo{}}

	got := translateName(post("x"), methodScope, ast.NewScopeOracle())
	want := "'this.x^'"
	if got != want {
		t.Fatalf("translateName(post x in this-scope) = %q, want %q", got, want)
	}
}

func Test_VarName_RoundTrips_EveryDecorationKind(t *testing.T) {
	scope := flatScope(map[string]string{"value": "int"})
	types := ast.NewScopeOracle()

	for _, name := range []*ast.DecoratedName{pre("value"), post("value"), mid("value", "k")} {
		atom := translateName(name, scope, types)
		if got := varName(atom); got != "value" {
			t.Fatalf("varName(translateName(%v)) = %q, want %q", name, got, "value")
		}
	}
}

func Test_VarName_StripsScopePrefix(t *testing.T) {
	if got := varName("'this.rate^'"); got != "rate" {
		t.Fatalf("varName(this.rate^) = %q, want %q", got, "rate")
	}
}
