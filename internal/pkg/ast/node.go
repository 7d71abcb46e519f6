package ast

import "fmt"

// Node is the closed set of executable constructs the proof pass walks.
// Every concrete node embeds its source Location and answers to GetLocation,
// so an error can always be blamed at its original span (see Location.Text
// for the unmodified source text of that span).
type Node interface {
	fmt.Stringer
	_node()
	GetLocation() Location
}

// Block is a sequence of block-statements: each entry is either a
// LocalDecl or any other statement Node.
type Block struct {
	Location
	Statements []Node
}

func (*Block) _node() {}
func (b *Block) GetLocation() Location { return b.Location }
func (b *Block) String() string        { return fmt.Sprintf("Block(%d stmts)", len(b.Statements)) }

// Declarator is one `T v;` or `T v' = e;` entry inside a LocalDecl.
type Declarator struct {
	Name Node // Identifier or DecoratedName
	Init Node // nil when uninitialized
}

type LocalDecl struct {
	Location
	Type        string
	Declarators []Declarator
}

func (*LocalDecl) _node() {}
func (d *LocalDecl) GetLocation() Location { return d.Location }
func (d *LocalDecl) String() string {
	return fmt.Sprintf("LocalDecl(%s, %d declarators)", d.Type, len(d.Declarators))
}

type Assignment struct {
	Location
	Target Node
	Value  Node
}

func (*Assignment) _node() {}
func (a *Assignment) GetLocation() Location { return a.Location }
func (a *Assignment) String() string        { return fmt.Sprintf("Assignment(%v = %v)", a.Target, a.Value) }

type Empty struct {
	Location
}

func (*Empty) _node() {}
func (e *Empty) GetLocation() Location { return e.Location }
func (e *Empty) String() string        { return "Empty" }

type If struct {
	Location
	Cond Node
	Then *Block
	Else *Block // nil when there is no else-branch
}

func (*If) _node() {}
func (i *If) GetLocation() Location { return i.Location }
func (i *If) String() string        { return fmt.Sprintf("If(%v)", i.Cond) }

type While struct {
	Location
	Cond Node
	Body *Block
}

func (*While) _node() {}
func (w *While) GetLocation() Location { return w.Location }
func (w *While) String() string        { return fmt.Sprintf("While(%v)", w.Cond) }

type Return struct {
	Location
	Value Node // nil for a bare `return;`
}

func (*Return) _node() {}
func (r *Return) GetLocation() Location { return r.Location }
func (r *Return) String() string        { return fmt.Sprintf("Return(%v)", r.Value) }

// Means is the spec's means-statement: `means(p);`.
type Means struct {
	Location
	Expr Node
}

func (*Means) _node() {}
func (m *Means) GetLocation() Location { return m.Location }
func (m *Means) String() string        { return fmt.Sprintf("Means(%v)", m.Expr) }

// Binary covers relational, arithmetic, and logical infix operators, plus
// the biconditional/implication forms the surface grammar allows.
type Binary struct {
	Location
	Op    string
	Left  Node
	Right Node
}

func (*Binary) _node() {}
func (b *Binary) GetLocation() Location { return b.Location }
func (b *Binary) String() string        { return fmt.Sprintf("Binary(%v %s %v)", b.Left, b.Op, b.Right) }

// Unary covers prefix `!` and numeric negation.
type Unary struct {
	Location
	Op      string
	Operand Node
}

func (*Unary) _node() {}
func (u *Unary) GetLocation() Location { return u.Location }
func (u *Unary) String() string        { return fmt.Sprintf("Unary(%s%v)", u.Op, u.Operand) }

type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralString
	LiteralChar
)

type Literal struct {
	Location
	Kind LiteralKind
	Text string // raw surface spelling, before the §4.7 textual conventions
}

func (*Literal) _node() {}
func (l *Literal) GetLocation() Location { return l.Location }
func (l *Literal) String() string        { return fmt.Sprintf("Literal(%s)", l.Text) }

// Identifier is a bare, undecorated variable reference (a loop bound, a
// type name used in `instanceof`, …). The Name Translator is a no-op on it.
type Identifier struct {
	Location
	Name string
}

func (*Identifier) _node() {}
func (i *Identifier) GetLocation() Location { return i.Location }
func (i *Identifier) String() string        { return i.Name }

type DecorationKind int

const (
	DecorationPre  DecorationKind = iota // 'x
	DecorationPost                       // x'
	DecorationMid                        // x'tag
)

// DecoratedName is a value name carrying exactly one decoration mark.
type DecoratedName struct {
	Location
	Mark DecorationKind
	Name string
	Tag  string // only set when Mark == DecorationMid
}

func (*DecoratedName) _node() {}
func (d *DecoratedName) GetLocation() Location { return d.Location }
func (d *DecoratedName) String() string {
	switch d.Mark {
	case DecorationPre:
		return "'" + d.Name
	case DecorationMid:
		return d.Name + "'" + d.Tag
	default:
		return d.Name + "'"
	}
}

// Conditional is the ternary `c ? a : b`.
type Conditional struct {
	Location
	Cond Node
	Then Node
	Else Node
}

func (*Conditional) _node() {}
func (c *Conditional) GetLocation() Location { return c.Location }
func (c *Conditional) String() string        { return fmt.Sprintf("Conditional(%v)", c.Cond) }

type InstanceOf struct {
	Location
	Operand Node
	Type    string
}

func (*InstanceOf) _node() {}
func (i *InstanceOf) GetLocation() Location { return i.Location }
func (i *InstanceOf) String() string        { return fmt.Sprintf("InstanceOf(%v, %s)", i.Operand, i.Type) }

// Index is array indexing `base[idx]`.
type Index struct {
	Location
	Base Node
	Idx  Node
}

func (*Index) _node() {}
func (x *Index) GetLocation() Location { return x.Location }
func (x *Index) String() string        { return fmt.Sprintf("Index(%v[%v])", x.Base, x.Idx) }

// FieldAccess is `this.x` or `e.x` (field selection, not a method call).
type FieldAccess struct {
	Location
	Base  Node
	Field string
}

func (*FieldAccess) _node() {}
func (f *FieldAccess) GetLocation() Location { return f.Location }
func (f *FieldAccess) String() string        { return fmt.Sprintf("FieldAccess(%v.%s)", f.Base, f.Field) }

// Call is a function/method call. §4.2 leaves its booleanness undetermined
// (open issue, see §9 of the spec).
type Call struct {
	Location
	Callee Node
	Args   []Node
}

func (*Call) _node() {}
func (c *Call) GetLocation() Location { return c.Location }
func (c *Call) String() string        { return fmt.Sprintf("Call(%v, %d args)", c.Callee, len(c.Args)) }

// DotExpression is a dot-chain the resolver could not fully resolve to a
// FieldAccess or Call (e.g. an explicit-generic method reference). Like
// Call, its booleanness defaults to non-boolean (§4.2/§9).
type DotExpression struct {
	Location
	Base     Node
	Selector string
}

func (*DotExpression) _node() {}
func (d *DotExpression) GetLocation() Location { return d.Location }
func (d *DotExpression) String() string {
	return fmt.Sprintf("DotExpression(%v.%s)", d.Base, d.Selector)
}
