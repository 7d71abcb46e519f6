package ast

// VarInfo describes where and as what type a variable was declared, as
// produced by the symbol-table pass. The proof pass only reads this.
type VarInfo struct {
	DeclaredIn *Scope
	Type       string
}

// Scope is a node of the lexical scope tree produced ahead of the proof
// pass. Label is empty for top-of-method locals, "this" for instance
// scope, "super" for the superclass scope, or a type label for a static
// scope — it is the sole input to the scope prefix of a value name (§3/§4.1
// of the spec).
type Scope struct {
	Label  string
	Parent *Scope
	Vars   map[string]VarInfo
}

// Lookup walks this scope and its ancestors for the declaration of name.
func (s *Scope) Lookup(name string) (VarInfo, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if info, ok := sc.Vars[name]; ok {
			return info, true
		}
	}
	return VarInfo{}, false
}

// ScopePrefix is the dotted scope prefix a value name declared in
// declaredIn gets in its prover atom: "" for top-of-method locals (or an
// unknown declaring scope), otherwise "<label>.".
func ScopePrefix(declaredIn *Scope) string {
	if declaredIn == nil || declaredIn.Label == "" {
		return ""
	}
	return declaredIn.Label + "."
}

// ScopeMap is produced by the symbol-table pass: every node that opens or
// participates in a scope is addressable by identity.
type ScopeMap map[Node]*Scope

// TypeOracle answers the variable-type oracle of §6: given the scope a
// reference occurs in and the variable's bare name, its declared VarInfo.
type TypeOracle interface {
	Lookup(scope *Scope, name string) (VarInfo, bool)
}

// scopeOracle is the straightforward TypeOracle backed by the scope tree
// itself — the only implementation the proof pass needs, since the spec
// says the scope map is reachable from the root and scopes carry VarInfo
// directly.
type scopeOracle struct{}

func NewScopeOracle() TypeOracle { return scopeOracle{} }

func (scopeOracle) Lookup(scope *Scope, name string) (VarInfo, bool) {
	if scope == nil {
		return VarInfo{}, false
	}
	return scope.Lookup(name)
}
