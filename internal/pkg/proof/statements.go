package proof

import (
	"fmt"

	"truej-proof/internal/pkg/ast"
	"truej-proof/internal/pkg/common"
)

// translateStatement is the Statement Translator (spec §4.3): it gives the
// statement its formula, performs whatever KB side-effect the statement
// form requires, and records the rewritten text in the rewrite table. The
// returned formula is what the Block Summarizer folds into its block-level
// meaning — it is not necessarily what got asserted (means-statements, for
// instance, return the discharged claim but assert nothing new of their
// own beyond what the Proof Engine already committed).
func (w *walker) translateStatement(stmt ast.Node, scope *ast.Scope) string {
	switch n := stmt.(type) {
	case *ast.LocalDecl:
		return w.translateLocalDecl(n, scope)

	case *ast.Assignment:
		formula := w.translateAssignmentFormula(n, scope)
		w.rewrite.Substitute(n, formula)
		if err := w.stack.Current().Assume(formula); err != nil {
			panic(common.NewSystemError(err))
		}
		return formula

	case *ast.Empty:
		w.rewrite.Substitute(n, "true")
		return "true"

	case *ast.Return:
		formula := w.translateReturn(n, scope)
		w.rewrite.Substitute(n, formula)
		return formula

	case *ast.If:
		formula := w.translateIf(n, scope)
		w.rewrite.Substitute(n, formula)
		return formula

	case *ast.While:
		formula := w.translateWhile(n, scope)
		w.rewrite.Substitute(n, formula)
		return formula

	case *ast.Means:
		formula := w.translateMeans(n, scope)
		w.rewrite.Substitute(n, formula)
		return formula

	case *ast.Block:
		return w.translateBlock(n, scope)

	default:
		return w.fail(stmt, "statement")
	}
}

// translateLocalDecl emits a type fact per declarator and, for an
// initialized declarator, the assumption `(v' = e)` (or boolean-lifted
// `===`) — spec §4.3. The returned text is the declaration's own rewritten
// form (the conjoined initializer equalities, or "true" when there are
// none); the Block Summarizer (spec §4.4 rule 1) reads this same text back
// from the rewrite table and folds it in only while the block is still
// active. The type facts are asserted here unconditionally and never
// appear in that text.
func (w *walker) translateLocalDecl(decl *ast.LocalDecl, scope *ast.Scope) string {
	// Every declarator contributes its type fact regardless of whether it
	// has an initializer; MapIf keeps that side effect unconditional while
	// only the initialized declarators contribute a formula to the result.
	formulas := common.MapIf(func(d ast.Declarator) (string, bool) {
		v := declaratorAtom(d.Name, scope, w.types)
		if err := w.stack.Current().Assume(fmt.Sprintf("type(%s, %s)", decl.Type, v)); err != nil {
			panic(common.NewSystemError(err))
		}
		if d.Init == nil {
			return "", false
		}
		boolTarget := common.IsBooleanTypeSpelling(decl.Type)
		value := w.translateExpr(d.Init, scope)
		formula := fmt.Sprintf("(%s %s %s)", v, translateOperator("=", boolTarget), value)
		if err := w.stack.Current().Assume(formula); err != nil {
			panic(common.NewSystemError(err))
		}
		return formula, true
	}, decl.Declarators)
	text := "true"
	if len(formulas) > 0 {
		text = conjoin(formulas)
	}
	w.rewrite.Substitute(decl, text)
	return text
}

// declaratorAtom renders a declarator's name node as a prover atom the way
// translateName would for its post-decorated form, since a freshly
// declared local is always referred to by its final value at the point of
// declaration.
func declaratorAtom(name ast.Node, scope *ast.Scope, types ast.TypeOracle) string {
	switch n := name.(type) {
	case *ast.DecoratedName:
		return translateName(n, scope, types)
	case *ast.Identifier:
		return translateName(&ast.DecoratedName{Location: n.Location, Mark: ast.DecorationPost, Name: n.Name}, scope, types)
	default:
		panic(common.NewCompilerError("local declarator name is neither an Identifier nor a DecoratedName"))
	}
}

// translateAssignmentFormula renders `(t = e)`, boolean-lifted per §4.2.
func (w *walker) translateAssignmentFormula(a *ast.Assignment, scope *ast.Scope) string {
	boolTarget := hasBooleanTerms(a.Target, scope, w.types)
	target := w.translateExpr(a.Target, scope)
	value := w.translateExpr(a.Value, scope)
	return fmt.Sprintf("(%s %s %s)", target, translateOperator("=", boolTarget), value)
}

// translateReturn renders `(return^' = e)`, additionally conjoined with
// `(return = e)` when the compatibility switch of spec §6 is off.
func (w *walker) translateReturn(r *ast.Return, scope *ast.Scope) string {
	if r.Value == nil {
		return "true"
	}
	value := w.translateExpr(r.Value, scope)
	decorated := fmt.Sprintf("('return^' = %s)", value)
	if w.cfg.RequireDecoratedFinalValue {
		return decorated
	}
	return conjoin([]string{decorated, fmt.Sprintf("(return = %s)", value)})
}

// translateIf implements spec §4.3's if-translation: each branch is
// type-checked inside a child KB that first assumes its guard, so an
// assignment inside a branch has its guard visible to the prover; the
// formula is the disjunction of guarded branch meanings.
func (w *walker) translateIf(stmt *ast.If, scope *ast.Scope) string {
	cond := w.translateExpr(stmt.Cond, scope)
	negCond := fmt.Sprintf("-%s", cond)

	thenScope := w.scopeFor(stmt.Then, scope)
	thenFormula := w.translateBlockWithGuards(stmt.Then, thenScope, []string{cond})

	elseFormula := negCond
	if stmt.Else != nil {
		elseScope := w.scopeFor(stmt.Else, scope)
		elseBodyFormula := w.translateBlockWithGuards(stmt.Else, elseScope, []string{negCond})
		elseFormula = fmt.Sprintf("(%s /\\ %s)", negCond, elseBodyFormula)
	}

	return fmt.Sprintf("((%s /\\ %s) \\/ %s)", cond, thenFormula, elseFormula)
}

// translateWhile implements spec §4.3's deliberately limited loop
// translation `(c /\ [[S]])` — no invariant synthesis (spec §9 open
// question; callers requiring total-correctness proofs must reject loops
// themselves, this pass does not).
func (w *walker) translateWhile(stmt *ast.While, scope *ast.Scope) string {
	cond := w.translateExpr(stmt.Cond, scope)
	bodyScope := w.scopeFor(stmt.Body, scope)
	body := w.translateBlockWithGuards(stmt.Body, bodyScope, []string{cond})
	return fmt.Sprintf("(%s /\\ %s)", cond, body)
}

// translateMeans discharges the means-statement through the Proof Engine
// (spec §4.5) and returns the claim it ultimately committed — for a
// provable claim, substituteIfProven's effect has already replaced the
// current KB's prior assumptions with it by the time this returns.
func (w *walker) translateMeans(m *ast.Means, scope *ast.Scope) string {
	claim := w.translateExpr(m.Expr, scope)
	w.dischargeMeans(claim, m.Expr, scope)
	return claim
}

// conjoin joins formulas with the prover's conjunction token, left-nested
// with every pairing parenthesized — matching the Expression Rewriter's own
// parenthesization discipline. A single formula is returned unchanged.
func conjoin(formulas []string) string {
	if len(formulas) == 1 {
		return formulas[0]
	}
	out := formulas[0]
	for _, f := range formulas[1:] {
		out = fmt.Sprintf("(%s /\\ %s)", out, f)
	}
	return out
}
