package proof

import "truej-proof/internal/pkg/ast"

// Node constructors used across this package's tests. Every node gets its
// own independent Location spanning exactly the text passed to loc, so a
// node's OriginalSource is always the literal surface fragment a test
// names — there is no shared document offset bookkeeping to get wrong.

func loc(text string) ast.Location {
	content := []rune(text)
	return ast.NewLocation("test.truej", content, 0, uint32(len(content)))
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Location: loc(name), Name: name}
}

func pre(name string) *ast.DecoratedName {
	return &ast.DecoratedName{Location: loc("'" + name), Mark: ast.DecorationPre, Name: name}
}

func post(name string) *ast.DecoratedName {
	return &ast.DecoratedName{Location: loc(name + "'"), Mark: ast.DecorationPost, Name: name}
}

func mid(name, tag string) *ast.DecoratedName {
	return &ast.DecoratedName{Location: loc(name + "'" + tag), Mark: ast.DecorationMid, Name: name, Tag: tag}
}

func binAt(text, op string, left, right ast.Node) *ast.Binary {
	return &ast.Binary{Location: loc(text), Op: op, Left: left, Right: right}
}

func assign(text string, target, value ast.Node) *ast.Assignment {
	return &ast.Assignment{Location: loc(text), Target: target, Value: value}
}

func localDecl(text, typ string, name ast.Node, init ast.Node) *ast.LocalDecl {
	return &ast.LocalDecl{
		Location:    loc(text),
		Type:        typ,
		Declarators: []ast.Declarator{{Name: name, Init: init}},
	}
}

func meansStmt(text string, expr ast.Node) *ast.Means {
	return &ast.Means{Location: loc(text), Expr: expr}
}

func ifStmt(text string, cond ast.Node, then *ast.Block, els *ast.Block) *ast.If {
	return &ast.If{Location: loc(text), Cond: cond, Then: then, Else: els}
}

func block(text string, stmts ...ast.Node) *ast.Block {
	return &ast.Block{Location: loc(text), Statements: stmts}
}

// flatScope builds a single-frame scope (no nested blocks of their own)
// with the given variables all declared directly in it, of the given type.
func flatScope(varsOfType map[string]string) *ast.Scope {
	s := &ast.Scope{Vars: map[string]ast.VarInfo{}}
	for name, typ := range varsOfType {
		s.Vars[name] = ast.VarInfo{DeclaredIn: s, Type: typ}
	}
	return s
}
