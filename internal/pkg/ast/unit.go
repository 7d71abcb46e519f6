package ast

// CompiledUnit names one block the proof pass is asked to verify — a
// method body, with any class-level means-statements appended by the
// earlier pass as if they were its final statements (spec §8 scenario 1
// treats a class-level means-statement exactly this way: it sees the
// method's post-state). The proof pass itself only ever walks a Block; this
// wrapper exists so an error or transcript line can be attributed to a
// named unit in driver output.
type CompiledUnit struct {
	Name  string
	Scope *Scope
	Body  *Block
}
