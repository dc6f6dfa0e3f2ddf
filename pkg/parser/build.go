package parser

import (
	"slices"
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/commentary/pkg/ast"
	"github.com/pseudomuto/commentary/pkg/lexer"
	"github.com/pseudomuto/commentary/pkg/source"
)

const (
	instanceInit = "<init>"
	staticInit   = "<clinit>"
)

// element creates a node spanning from pos to the last significant token in
// tokens.
func element(kind ast.Kind, image string, pos plexer.Position, tokens []plexer.Token) *ast.Element {
	begin := source.At(pos.Line, pos.Column)
	end := begin

	for i := len(tokens) - 1; i >= 0; i-- {
		if lexer.IsTrivia(tokens[i].Type) || tokens[i].EOF() {
			continue
		}

		_, end = lexer.Span(tokens[i])
		break
	}

	return ast.NewElement(kind, image, begin, end)
}

func build(filename string, file *File) *ast.Element {
	if len(file.Types) == 0 {
		return ast.NewSynthetic(ast.KindCompilationUnit, filename)
	}

	first := file.Types[0]
	last := file.Types[len(file.Types)-1]

	root := element(ast.KindCompilationUnit, filename, first.Pos, last.Tokens)
	for _, decl := range file.Types {
		root.Append(buildTypeDecl(decl.Pos, decl.Tokens, decl.Annotations, decl.Modifiers, decl.Class, decl.Enum))
	}

	return root
}

func buildTypeDecl(
	pos plexer.Position,
	tokens []plexer.Token,
	annotations []*Annotation,
	modifiers *Modifiers,
	class *ClassBody,
	enum *EnumBody,
) ast.Node {
	if enum != nil {
		node := element(ast.KindEnum, enum.Name, pos, tokens)
		appendHeader(node, annotations, modifiers)
		for _, v := range enum.Values {
			node.Append(element(ast.KindEnumValue, v.Name, v.Pos, v.Tokens))
		}

		return node
	}

	kind := ast.KindClass
	if class.Kind == "interface" {
		kind = ast.KindInterface
	}

	node := element(kind, class.Name, pos, tokens)
	appendHeader(node, annotations, modifiers)

	for _, ref := range slices.Concat(class.Extends, class.Implements) {
		node.Append(buildTypeRef(ref))
	}

	appendMembers(node, class.Members)
	return node
}

func appendHeader(node *ast.Element, annotations []*Annotation, modifiers *Modifiers) {
	for _, a := range annotations {
		ann := element(ast.KindAnnotation, a.Name, a.Pos, a.Tokens)
		if a.Args != nil {
			for _, arg := range a.Args.Items {
				ann.Append(buildExpr(arg))
			}
		}

		node.Append(ann)
	}

	if modifiers != nil {
		node.Append(element(ast.KindModifiers, strings.Join(modifiers.Names, " "), modifiers.Pos, modifiers.Tokens))
	}
}

// appendMembers adds the members of a type body grouped by category. This is
// the construction order consumers see; it is not the source order.
func appendMembers(node *ast.Element, members []*Member) {
	var (
		fields, properties, constructors, methods, types []ast.Node

		instance = ast.NewSynthetic(ast.KindMethod, instanceInit)
		static   = ast.NewSynthetic(ast.KindMethod, staticInit)
	)

	for _, m := range members {
		switch {
		case m.Class != nil || m.Enum != nil:
			types = append(types, buildTypeDecl(m.Pos, m.Tokens, m.Annotations, m.Modifiers, m.Class, m.Enum))
		case m.Constructor != nil:
			constructors = append(constructors, buildConstructor(m))
		case m.Method != nil:
			methods = append(methods, buildMethod(m))
		case m.Property != nil:
			properties = append(properties, buildProperty(m))
		case m.Field != nil:
			fields = append(fields, buildField(m))

			initializer := instance
			if m.Modifiers != nil && slices.Contains(m.Modifiers.Names, "static") {
				initializer = static
			}

			for _, d := range m.Field.Declarators {
				if d.Init != nil {
					initializer.Append(ast.NewSynthetic(ast.KindFieldInitializer, d.Name))
				}
			}
		}
	}

	node.Append(fields...)
	node.Append(properties...)
	node.Append(constructors...)
	node.Append(methods...)
	node.Append(types...)

	for _, initializer := range []*ast.Element{instance, static} {
		if initializer.NumChildren() > 0 {
			node.Append(initializer)
		}
	}
}

func buildConstructor(m *Member) ast.Node {
	c := m.Constructor
	node := element(ast.KindConstructor, c.Name, m.Pos, m.Tokens)
	appendHeader(node, m.Annotations, m.Modifiers)
	appendParams(node, c.Params)
	node.Append(buildBlock(c.Body))

	return node
}

func buildMethod(m *Member) ast.Node {
	meth := m.Method
	node := element(ast.KindMethod, meth.Name, m.Pos, m.Tokens)
	appendHeader(node, m.Annotations, m.Modifiers)
	node.Append(buildTypeRef(meth.ReturnType))
	appendParams(node, meth.Params)

	if meth.Body != nil {
		node.Append(buildBlock(meth.Body))
	}

	return node
}

func buildProperty(m *Member) ast.Node {
	p := m.Property
	node := element(ast.KindProperty, p.Name, m.Pos, m.Tokens)
	appendHeader(node, m.Annotations, m.Modifiers)
	node.Append(buildTypeRef(p.Type))

	for _, acc := range p.Accessors {
		accessor := element(ast.KindAccessor, acc.Kind, acc.Pos, acc.Tokens)
		appendHeader(accessor, nil, acc.Modifiers)
		if acc.Body != nil {
			accessor.Append(buildBlock(acc.Body))
		}

		node.Append(accessor)
	}

	return node
}

func buildField(m *Member) ast.Node {
	f := m.Field

	names := make([]string, len(f.Declarators))
	for i, d := range f.Declarators {
		names[i] = d.Name
	}

	node := element(ast.KindField, strings.Join(names, ","), m.Pos, m.Tokens)
	appendHeader(node, m.Annotations, m.Modifiers)
	node.Append(buildTypeRef(f.Type))

	for _, d := range f.Declarators {
		decl := element(ast.KindDeclarator, d.Name, d.Pos, d.Tokens)
		if d.Init != nil {
			decl.Append(buildExpr(d.Init))
		}

		node.Append(decl)
	}

	return node
}

func appendParams(node *ast.Element, params []*Parameter) {
	for _, p := range params {
		param := element(ast.KindParameter, p.Name, p.Pos, p.Tokens)
		appendHeader(param, nil, p.Modifiers)
		param.Append(buildTypeRef(p.Type))
		node.Append(param)
	}
}

func buildTypeRef(ref *TypeRef) ast.Node {
	return element(ast.KindTypeRef, ref.String(), ref.Pos, ref.Tokens)
}

func buildBlock(b *Block) ast.Node {
	node := element(ast.KindBlock, "", b.Pos, b.Tokens)
	for _, stmt := range b.Statements {
		node.Append(buildStatement(stmt))
	}

	return node
}

func buildStatement(s *Statement) ast.Node {
	switch {
	case s.Block != nil:
		return buildBlock(s.Block)
	case s.If != nil:
		node := element(ast.KindIf, "", s.If.Pos, s.If.Tokens)
		node.Append(buildExpr(s.If.Cond), buildStatement(s.If.Then))
		if s.If.Else != nil {
			node.Append(buildStatement(s.If.Else))
		}
		return node
	case s.While != nil:
		node := element(ast.KindWhile, "", s.While.Pos, s.While.Tokens)
		return node.Append(buildExpr(s.While.Cond), buildStatement(s.While.Body))
	case s.For != nil:
		node := element(ast.KindFor, "", s.For.Pos, s.For.Tokens)
		for _, e := range s.For.Header {
			node.Append(buildExpr(e))
		}
		return node.Append(buildStatement(s.For.Body))
	case s.Return != nil:
		node := element(ast.KindReturn, "", s.Return.Pos, s.Return.Tokens)
		if s.Return.Value != nil {
			node.Append(buildExpr(s.Return.Value))
		}
		return node
	default:
		node := element(ast.KindExpressionStmt, "", s.Expr.Pos, s.Expr.Tokens)
		return node.Append(buildExpr(s.Expr.Expr))
	}
}

// buildExpr creates an Expression node whose image is the expression text with
// tokens separated by single spaces. Bracketed groups become child
// expressions.
func buildExpr(e *Expr) ast.Node {
	node := element(ast.KindExpression, exprImage(e.Tokens), e.Pos, e.Tokens)
	for _, term := range e.Terms {
		if term.Items == nil {
			continue
		}

		for _, item := range term.Items.Items {
			node.Append(buildExpr(item))
		}
	}

	return node
}

func exprImage(tokens []plexer.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if lexer.IsTrivia(tok.Type) || tok.EOF() {
			continue
		}

		parts = append(parts, tok.Value)
	}

	return strings.Join(parts, " ")
}
