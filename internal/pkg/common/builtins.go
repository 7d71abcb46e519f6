package common

// Well-known primitive type spellings the operator translator (spec §4.2)
// matches literally when deciding whether an operand subtree is
// boolean-valued.
const (
	TypeBoolean      = "boolean"
	TypeBoxedBoolean = "Boolean"
)

// IsBooleanTypeSpelling reports whether t is one of the spellings a
// variable's declared type takes when it is boolean-valued.
func IsBooleanTypeSpelling(t string) bool {
	return t == TypeBoolean || t == TypeBoxedBoolean
}

// Decoration and scope-prefix delimiters the name translator (spec §4.1)
// emits into prover atoms.
const (
	ProverDecorator = "^"
	ScopeSeparator  = "."
)
