package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"truej-proof/internal/pkg/ast"
)

// fixture is the on-disk shape cmd/truejproof reads in place of a real
// TrueJ front end (out of scope per spec.md §1: "the lexer/parser
// producing the tree ... are external collaborators"). It exists only to
// drive the proof pass from a file on a developer's machine without first
// building the rest of the toolchain.
type fixture struct {
	Name    string            `json:"name"`
	Source  string            `json:"source"`
	Scope   fixtureScope      `json:"scope"`
	Body    fixtureNode       `json:"body"`
	Types   map[string]string `json:"types,omitempty"` // unused; Scope.Vars carries types
}

type fixtureScope struct {
	Label string            `json:"label"`
	Vars  map[string]string `json:"vars"`
}

// fixtureNode mirrors ast.Node as a loosely-typed JSON tree: "kind"
// selects which of the other fields apply. Every node gives "text", the
// exact substring of Source its span covers, and an optional zero-based
// "occurrence" disambiguating a repeated substring.
type fixtureNode struct {
	Kind       string            `json:"kind"`
	Text       string            `json:"text"`
	Occurrence int               `json:"occurrence"`
	Op         string            `json:"op"`
	Type       string            `json:"type"`
	Name       string            `json:"name"`
	Tag        string            `json:"tag"`
	Field      string            `json:"field"`
	Selector   string            `json:"selector"`
	Statements []fixtureNode     `json:"statements"`
	Declarators []fixtureDeclarator `json:"declarators"`
	Cond       *fixtureNode      `json:"cond"`
	Then       *fixtureNode      `json:"then"`
	Else       *fixtureNode      `json:"else"`
	Left       *fixtureNode      `json:"left"`
	Right      *fixtureNode      `json:"right"`
	Operand    *fixtureNode      `json:"operand"`
	Base       *fixtureNode      `json:"base"`
	Idx        *fixtureNode      `json:"idx"`
	Value      *fixtureNode      `json:"value"`
	Callee     *fixtureNode      `json:"callee"`
	Args       []fixtureNode     `json:"args"`
	Expr       *fixtureNode      `json:"expr"`
	Target     *fixtureNode      `json:"target"`
}

type fixtureDeclarator struct {
	Name fixtureNode  `json:"name"`
	Init *fixtureNode `json:"init"`
}

// loadUnit reads and decodes a fixture file into a CompiledUnit whose Scope
// is the fixture's one flat method scope (which is all the seed scenarios
// of spec §8 require), plus an empty ScopeMap and the scope-backed
// TypeOracle.
func loadUnit(path string) (*ast.CompiledUnit, ast.ScopeMap, ast.TypeOracle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil, nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}

	content := []rune(f.Source)
	scope := &ast.Scope{Label: f.Scope.Label, Vars: map[string]ast.VarInfo{}}
	for name, typ := range f.Scope.Vars {
		scope.Vars[name] = ast.VarInfo{DeclaredIn: scope, Type: typ}
	}

	b := &fixtureBuilder{path: path, content: content, seen: map[string]int{}}
	body := b.node(f.Body)
	block, ok := body.(*ast.Block)
	if !ok {
		return nil, nil, nil, fmt.Errorf("fixture %s: body must be a block", path)
	}

	unit := &ast.CompiledUnit{Name: f.Name, Scope: scope, Body: block}
	return unit, ast.ScopeMap{}, ast.NewScopeOracle(), nil
}

type fixtureBuilder struct {
	path    string
	content []rune
	seen    map[string]int
}

// locate finds the nth occurrence (fn.Occurrence) of fn.Text in the
// fixture's source and returns its span.
func (b *fixtureBuilder) locate(fn fixtureNode) ast.Location {
	if fn.Text == "" {
		return ast.EmptyLocation()
	}
	full := string(b.content)
	occurrence := fn.Occurrence
	start := -1
	from := 0
	for i := 0; i <= occurrence; i++ {
		idx := strings.Index(full[from:], fn.Text)
		if idx < 0 {
			start = -1
			break
		}
		start = from + idx
		from = start + 1
	}
	if start < 0 {
		return ast.EmptyLocation()
	}
	return ast.NewLocation(b.path, b.content, uint32(start), uint32(start+len(fn.Text)))
}

func (b *fixtureBuilder) node(fn fixtureNode) ast.Node {
	loc := b.locate(fn)
	switch fn.Kind {
	case "block":
		stmts := make([]ast.Node, len(fn.Statements))
		for i, s := range fn.Statements {
			stmts[i] = b.node(s)
		}
		return &ast.Block{Location: loc, Statements: stmts}

	case "localDecl":
		decls := make([]ast.Declarator, len(fn.Declarators))
		for i, d := range fn.Declarators {
			var init ast.Node
			if d.Init != nil {
				init = b.node(*d.Init)
			}
			decls[i] = ast.Declarator{Name: b.node(d.Name), Init: init}
		}
		return &ast.LocalDecl{Location: loc, Type: fn.Type, Declarators: decls}

	case "assignment":
		return &ast.Assignment{Location: loc, Target: b.node(*fn.Target), Value: b.node(*fn.Value)}

	case "empty":
		return &ast.Empty{Location: loc}

	case "if":
		var elseBlock *ast.Block
		if fn.Else != nil {
			elseBlock = b.node(*fn.Else).(*ast.Block)
		}
		return &ast.If{Location: loc, Cond: b.node(*fn.Cond), Then: b.node(*fn.Then).(*ast.Block), Else: elseBlock}

	case "while":
		return &ast.While{Location: loc, Cond: b.node(*fn.Cond), Body: b.node(*fn.Then).(*ast.Block)}

	case "return":
		var value ast.Node
		if fn.Value != nil {
			value = b.node(*fn.Value)
		}
		return &ast.Return{Location: loc, Value: value}

	case "means":
		return &ast.Means{Location: loc, Expr: b.node(*fn.Expr)}

	case "binary":
		return &ast.Binary{Location: loc, Op: fn.Op, Left: b.node(*fn.Left), Right: b.node(*fn.Right)}

	case "unary":
		return &ast.Unary{Location: loc, Op: fn.Op, Operand: b.node(*fn.Operand)}

	case "literalBool", "literalInt", "literalFloat", "literalString", "literalChar":
		return &ast.Literal{Location: loc, Kind: literalKind(fn.Kind), Text: fn.Text}

	case "identifier":
		return &ast.Identifier{Location: loc, Name: fn.Name}

	case "decoratedPre":
		return &ast.DecoratedName{Location: loc, Mark: ast.DecorationPre, Name: fn.Name}

	case "decoratedPost":
		return &ast.DecoratedName{Location: loc, Mark: ast.DecorationPost, Name: fn.Name}

	case "decoratedMid":
		return &ast.DecoratedName{Location: loc, Mark: ast.DecorationMid, Name: fn.Name, Tag: fn.Tag}

	case "conditional":
		return &ast.Conditional{Location: loc, Cond: b.node(*fn.Cond), Then: b.node(*fn.Then), Else: b.node(*fn.Else)}

	case "instanceOf":
		return &ast.InstanceOf{Location: loc, Operand: b.node(*fn.Operand), Type: fn.Type}

	case "index":
		return &ast.Index{Location: loc, Base: b.node(*fn.Base), Idx: b.node(*fn.Idx)}

	case "fieldAccess":
		return &ast.FieldAccess{Location: loc, Base: b.node(*fn.Base), Field: fn.Field}

	case "call":
		args := make([]ast.Node, len(fn.Args))
		for i, a := range fn.Args {
			args[i] = b.node(a)
		}
		return &ast.Call{Location: loc, Callee: b.node(*fn.Callee), Args: args}

	case "dotExpression":
		return &ast.DotExpression{Location: loc, Base: b.node(*fn.Base), Selector: fn.Selector}

	default:
		panic(fmt.Sprintf("truejproof: unknown fixture node kind %q", fn.Kind))
	}
}

func literalKind(kind string) ast.LiteralKind {
	switch kind {
	case "literalBool":
		return ast.LiteralBool
	case "literalInt":
		return ast.LiteralInt
	case "literalFloat":
		return ast.LiteralFloat
	case "literalString":
		return ast.LiteralString
	default:
		return ast.LiteralChar
	}
}
