// Package truejproof is the public façade over the proof pass, the way
// nar-compiler/pkg re-exports its own internal processors behind a small
// stable surface for cmd/nar to call.
package truejproof

import (
	"truej-proof/internal/pkg/ast"
	"truej-proof/internal/pkg/proof"
	"truej-proof/internal/pkg/prover"
)

type (
	Config       = proof.Config
	Result       = proof.Result
	CompiledUnit = ast.CompiledUnit
	ScopeMap     = ast.ScopeMap
	TypeOracle   = ast.TypeOracle
	KB           = prover.KB
)

// DefaultConfig is the documented default for Config's one flag (spec §6).
func DefaultConfig() Config {
	return proof.DefaultConfig()
}

// Verify runs the proof pass over unit and returns its verdicts and
// transcript. kb is the knowledge base in scope before unit is entered —
// typically the root KB of a prover.SubprocessClient, or prover.NewFakeKB()
// for a self-contained test run.
func Verify(unit *CompiledUnit, scopes ScopeMap, types TypeOracle, kb KB, cfg Config) Result {
	return proof.Run(unit, scopes, types, kb, cfg)
}

// NewScopeOracle is the straightforward TypeOracle every caller needs
// unless it has its own variable-type source.
func NewScopeOracle() TypeOracle {
	return ast.NewScopeOracle()
}

// FormatTranscript renders a Result's rewrite transcript for a driver to
// print, prefixed with the name of the unit it came from.
func FormatTranscript(unitName string, result Result) string {
	return proof.FormatTranscript(unitName, result)
}
