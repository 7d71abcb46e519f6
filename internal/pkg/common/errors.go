package common

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
	"truej-proof/internal/pkg/ast"
)

// Error is the error-sink record of spec §3/§6: a (component, token,
// message) triple, where the token is the span the diagnostic blames.
// Component defaults to "Prover" for every diagnostic this pass raises —
// the only component named in §6.
type Error struct {
	Component string
	Location  ast.Location
	Extra     []ast.Location
	Message   string
}

func (e Error) Error() string {
	component := e.Component
	if component == "" {
		component = "Prover"
	}

	sb := strings.Builder{}
	cursorString := e.Location.CursorString()
	if cursorString != "" {
		sb.WriteString(fmt.Sprintf("%s [%s] %s\n", cursorString, component, e.Message))
	} else {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", component, e.Message))
	}

	var uniqueExtra []ast.Location
	for _, extra := range e.Extra {
		if !slices.ContainsFunc(uniqueExtra, func(x ast.Location) bool { return x.EqualsTo(extra) }) {
			uniqueExtra = append(uniqueExtra, extra)
		}
	}
	for _, extra := range uniqueExtra {
		sb.WriteString(fmt.Sprintf("+ %s\n", extra.CursorString()))
	}

	return sb.String()
}

// NewUnsupportedProofError renders the exact text spec §4.5/§7 requires for
// a conjunct the prover reported provenFalse or unknown for.
func NewUnsupportedProofError(loc ast.Location, originalSource string) error {
	return Error{
		Location: loc,
		Message:  fmt.Sprintf("The code does not support the proof of the statement: %s", originalSource),
	}
}

// NewResourceLimitError renders the exact text spec §4.5/§7 requires when
// the prover reports it hit an internal resource limit.
func NewResourceLimitError(loc ast.Location, originalSource string) error {
	return Error{
		Location: loc,
		Message: fmt.Sprintf(
			"The prover reached an internal limit. Consider adding a lemma to help prove the statement: \n    %s",
			originalSource),
	}
}

// NewSystemError wraps a failure from outside the pass itself (a
// misbehaving prover subprocess, a broken pipe) as opposed to a proof
// failure inside it.
func NewSystemError(err error) error {
	return systemError{inner: err}
}

type systemError struct {
	inner error
}

func (e systemError) Error() string {
	return fmt.Sprintf("system error: %v", e.inner)
}

// NewCompilerError reports an internal translation failure: the walker hit
// a node kind or construct it does not know how to translate. Per §7 this
// is fatal and must never be confused with a user-level proof failure, so
// it records the Go call site rather than a source location.
func NewCompilerError(message string) error {
	_, file, line, _ := runtime.Caller(1)
	return compilerError{message: message, file: file, line: line}
}

type compilerError struct {
	message string
	file    string
	line    int
}

func (e compilerError) Error() string {
	return fmt.Sprintf("internal: %s at %s:%d", e.message, e.file, e.line)
}
