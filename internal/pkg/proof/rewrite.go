// Package proof implements the proof pass: the tree-walker that turns a
// resolved parse tree into prover queries, decorated-name translation,
// knowledge-base push/pop, and the textual transcript sent to the prover.
package proof

import (
	"sort"
	"strings"

	"truej-proof/internal/pkg/ast"
)

// RewriteTable is the mapping from parse-node identity to the current
// textual rendering of that node's span (spec §3/§4.7). It is seeded from
// the original source and mutated in place as the walker visits nodes;
// Source always returns the latest entry, OriginalSource always returns
// the unmodified span, so the two never alias once a node has been
// rewritten.
type RewriteTable struct {
	current  map[ast.Node]string
	order    map[ast.Node]int
	sequence int
}

func NewRewriteTable() *RewriteTable {
	return &RewriteTable{
		current: map[ast.Node]string{},
		order:   map[ast.Node]int{},
	}
}

// Substitute records s as node's current text. Every node is visited at
// most once by the walker (spec §3 invariant), so this also establishes
// the node's transcript position the first time it is called.
func (t *RewriteTable) Substitute(node ast.Node, s string) {
	if _, seen := t.order[node]; !seen {
		t.order[node] = t.sequence
		t.sequence++
	}
	t.current[node] = s
}

// Source returns the most recent substitution for node, or its unmodified
// span if the node has not been visited yet.
func (t *RewriteTable) Source(node ast.Node) string {
	if s, ok := t.current[node]; ok {
		return s
	}
	return node.GetLocation().Text()
}

// OriginalSource returns the unmodified span regardless of any rewrite —
// used solely for user-facing error messages (spec §4.7).
func (t *RewriteTable) OriginalSource(node ast.Node) string {
	return node.GetLocation().Text()
}

// Transcript is the concatenation of every substitution the table holds,
// one line each in the order nodes were first substituted. It is not
// limited to leaves: statement and block nodes get their own lines next to
// the leaf lines they were built from, and it is not the assume/prove
// script a prover subprocess receives.
func (t *RewriteTable) Transcript() string {
	nodes := make([]ast.Node, 0, len(t.order))
	for n := range t.order {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return t.order[nodes[i]] < t.order[nodes[j]] })
	lines := make([]string, 0, len(nodes))
	for _, n := range nodes {
		lines = append(lines, t.current[n])
	}
	return strings.Join(lines, "\n")
}

// normalizeLiteral applies the §4.7 textual conventions to a literal's raw
// surface spelling: a leading-dot float gets a "0" prefix, and "//" line
// comments (which never reach a literal's own text, but may appear inside
// string/char literals' raw spelling when lifted verbatim) become "%".
func normalizeLiteral(kind ast.LiteralKind, text string) string {
	s := text
	if kind == ast.LiteralFloat && strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.ReplaceAll(s, "//", "%")
	return s
}

// expandForall is the §4.7 stub reserved for future type-fact injection
// inside quantified scopes. Until implemented it is the identity.
func expandForall(formula string) string {
	return formula
}
