package proof

import (
	"truej-proof/internal/pkg/ast"
	"truej-proof/internal/pkg/common"
	"truej-proof/internal/pkg/prover"
)

// dischargeMeans is the Proof Engine (spec §4.5): it attempts claim as a
// single query against the current KB and, on failure, decomposes expr's
// conjunctive structure and blames the first conjunct the prover cannot
// discharge.
func (w *walker) dischargeMeans(claim string, expr ast.Node, scope *ast.Scope) {
	verdict, err := w.stack.Current().SubstituteIfProven(claim)
	if err != nil {
		panic(common.NewSystemError(err))
	}
	if verdict == prover.ProvenTrue {
		return
	}
	w.decomposeConjunct(expr, scope)
}

// decomposeConjunct walks /\ (surface `&`, `&&`) conjunctions left to
// right, proving each leaf against the current KB and assuming it so later
// conjuncts of the same claim may depend on earlier ones, stopping at the
// first conjunct that cannot be discharged — spec §4.5's "first failing
// conjunct" property. It reports at most one error per means-statement,
// since the decomposition stops there.
func (w *walker) decomposeConjunct(expr ast.Node, scope *ast.Scope) bool {
	if b, ok := expr.(*ast.Binary); ok && (b.Op == "&" || b.Op == "&&") {
		if !w.decomposeConjunct(b.Left, scope) {
			return false
		}
		return w.decomposeConjunct(b.Right, scope)
	}

	formula := w.rewrite.Source(expr)
	verdict, err := w.stack.Current().AssumeIfProven(formula)
	if err != nil {
		panic(common.NewSystemError(err))
	}
	switch verdict {
	case prover.ProvenTrue:
		return true
	case prover.ReachedLimit:
		w.userError(common.NewResourceLimitError(expr.GetLocation(), w.rewrite.OriginalSource(expr)))
		return false
	default:
		w.userError(common.NewUnsupportedProofError(expr.GetLocation(), w.rewrite.OriginalSource(expr)))
		return false
	}
}
