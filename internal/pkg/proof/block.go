package proof

import (
	"fmt"

	"truej-proof/internal/pkg/ast"
	"truej-proof/internal/pkg/common"
	"truej-proof/internal/pkg/prover"
)

// translateBlock is the Block Summarizer (spec §4.4). It pushes a fresh
// child KB (spec §5: "each block introduces a fresh child KB and
// guarantees its release on every exit path"), walks its statements
// top-down so inner proofs see the correct accumulating KB, then collapses
// the block into a single formula with a bottom-up scan and assumes that
// formula into the parent KB before returning.
func (w *walker) translateBlock(block *ast.Block, scope *ast.Scope) string {
	return w.translateBlockWithGuards(block, scope, nil)
}

// translateBlockWithGuards is translateBlock generalized with guard
// formulas an if/while branch assumes before the block's own statements
// are visited — spec §4.3: "each branch is type-checked inside a child KB
// that first assumes its guard". This avoids giving a guarded branch two
// nested child KBs (one for the guard, one for the block) when one
// suffices to hold both.
func (w *walker) translateBlockWithGuards(block *ast.Block, scope *ast.Scope, guards []string) string {
	var meaning string
	err := w.stack.WithChild(func(child prover.KB) error {
		for _, g := range guards {
			if err := child.Assume(g); err != nil {
				return err
			}
		}
		for _, stmt := range block.Statements {
			w.translateStatement(stmt, w.scopeFor(stmt, scope))
		}
		meaning = w.summarize(block)
		return nil
	})
	if err != nil {
		panic(common.NewSystemError(err))
	}

	w.rewrite.Substitute(block, fmt.Sprintf("(%s)", meaning))

	// A guarded branch's meaning only holds under its guard; asserting it
	// bare into the parent would leak it as if it held unconditionally. It
	// still reaches the parent, correctly guarded, through the enclosing
	// if/while statement's own disjunction formula, folded in by the next
	// unguarded block up the tree to pop. Only an unguarded block (guards
	// == nil, i.e. a plain sequential block) asserts its meaning directly.
	if len(guards) == 0 {
		if err := w.stack.Current().Assume(meaning); err != nil {
			panic(common.NewSystemError(err))
		}
	}
	return meaning
}

// summarize runs the bottom-up two-state scan of spec §4.4 over a block
// whose statements have already been visited (and so already have current
// rewrite-table text) and produces its "meaning" conjunction.
//
// States: active (no means-statement seen yet from below) or quenched (one
// has; earlier statements contribute only type facts, never a formula).
func (w *walker) summarize(block *ast.Block) string {
	quenched := false
	meaning := "true"
	prepend := func(formula string) {
		if meaning == "true" {
			meaning = formula
			return
		}
		meaning = fmt.Sprintf("(%s /\\ %s)", formula, meaning)
	}

	common.ReverseEach(func(stmt ast.Node) {
		switch n := stmt.(type) {
		case *ast.LocalDecl:
			// Type facts survive quenching unconditionally (spec §4.4 rule
			// 4); only an initialized declarator's meaning is gated by the
			// active/quenched state. The type facts themselves were
			// already asserted into the KB by translateLocalDecl, so here
			// we only need the initializer's contribution to the text.
			if quenched {
				return
			}
			if text := w.rewrite.Source(n); text != "true" {
				prepend(text)
			}

		case *ast.Means:
			if !quenched {
				prepend(w.rewrite.Source(n))
				quenched = true
			}

		default:
			if !quenched {
				prepend(w.rewrite.Source(stmt))
			}
		}
	}, block.Statements)

	return meaning
}
