package proof

import (
	"strings"

	"truej-proof/internal/pkg/ast"
	"truej-proof/internal/pkg/common"
)

// translateName rewrites a decorated value name into its prover atom
// (spec §4.1): a quoted string built from the scope prefix, the decorator
// `^`, the variable name, and an optional mid-tag. scope is the scope the
// reference occurs in; it is used only to look up the declaring scope of
// the variable, which alone determines the prefix (spec §3 invariant).
func translateName(d *ast.DecoratedName, scope *ast.Scope, types ast.TypeOracle) string {
	info, _ := types.Lookup(scope, d.Name)
	prefix := ast.ScopePrefix(info.DeclaredIn)

	var b strings.Builder
	b.WriteByte('\'')
	switch d.Mark {
	case ast.DecorationPre:
		b.WriteString(prefix)
		b.WriteString(common.ProverDecorator)
		b.WriteString(d.Name)
	case ast.DecorationMid:
		b.WriteString(prefix)
		b.WriteString(d.Name)
		b.WriteString(common.ProverDecorator)
		b.WriteString(d.Tag)
	default: // DecorationPost
		b.WriteString(prefix)
		b.WriteString(d.Name)
		b.WriteString(common.ProverDecorator)
	}
	b.WriteByte('\'')
	return b.String()
}

// varName is the inverse used when carrying type information across a
// translated atom: it strips the quoting, the scope prefix, the `^`
// decorator, and any trailing mid-tag, recovering the bare variable name
// (spec §4.1, and the name-encoding round-trip law of §8).
func varName(atom string) string {
	s := strings.Trim(atom, "'")
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[i+1:]
	}
	i := strings.Index(s, common.ProverDecorator)
	if i < 0 {
		return s
	}
	before, after := s[:i], s[i+1:]
	if before == "" {
		// pre-decorated: ^v
		return after
	}
	// post- or mid-decorated: v^ or v^tag
	return before
}
