package parser

import (
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

type (
	// File is the root of the grammar.
	File struct {
		Pos   plexer.Position
		Types []*TypeDecl `parser:"@@*"`
	}

	// TypeDecl is a top-level class, interface or enum.
	TypeDecl struct {
		Pos         plexer.Position
		Tokens      []plexer.Token
		Annotations []*Annotation `parser:"@@*"`
		Modifiers   *Modifiers    `parser:"@@?"`
		Class       *ClassBody    `parser:"( @@"`
		Enum        *EnumBody     `parser:"| @@ )"`
	}

	// Annotation such as @IsTest or @AuraEnabled(cacheable=true).
	Annotation struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Name   string    `parser:"'@' @Ident"`
		Args   *ExprList `parser:"( '(' @@? ')' )?"`
	}

	// Modifiers is a run of modifier keywords.
	Modifiers struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Names  []string `parser:"@Modifier+"`
	}

	// ClassBody is a class or interface after its annotations and modifiers.
	ClassBody struct {
		Pos        plexer.Position
		Tokens     []plexer.Token
		Kind       string     `parser:"@( 'class' | 'interface' )"`
		Name       string     `parser:"@Ident"`
		Extends    []*TypeRef `parser:"( 'extends' @@ ( ',' @@ )* )?"`
		Implements []*TypeRef `parser:"( 'implements' @@ ( ',' @@ )* )?"`
		Members    []*Member  `parser:"'{' @@* '}'"`
	}

	// EnumBody is an enum after its annotations and modifiers.
	EnumBody struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Name   string       `parser:"'enum' @Ident"`
		Values []*EnumValue `parser:"'{' ( @@ ( ',' @@ )* )? '}'"`
	}

	// EnumValue is a single enum constant.
	EnumValue struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Name   string `parser:"@Ident"`
	}

	// Member is a declaration inside a class or interface body.
	Member struct {
		Pos         plexer.Position
		Tokens      []plexer.Token
		Annotations []*Annotation `parser:"@@*"`
		Modifiers   *Modifiers    `parser:"@@?"`
		Class       *ClassBody    `parser:"( @@"`
		Enum        *EnumBody     `parser:"| @@"`
		Constructor *Constructor  `parser:"| @@"`
		Method      *Method       `parser:"| @@"`
		Property    *Property     `parser:"| @@"`
		Field       *Field        `parser:"| @@ )"`
	}

	// Constructor declaration.
	Constructor struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Name   string       `parser:"@Ident"`
		Params []*Parameter `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
		Body   *Block       `parser:"@@"`
	}

	// Method declaration. Interface and abstract methods have no body.
	Method struct {
		Pos        plexer.Position
		Tokens     []plexer.Token
		ReturnType *TypeRef     `parser:"@@"`
		Name       string       `parser:"@Ident"`
		Params     []*Parameter `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
		Body       *Block       `parser:"( @@ | ';' )"`
	}

	// Property declaration with accessors.
	Property struct {
		Pos       plexer.Position
		Tokens    []plexer.Token
		Type      *TypeRef    `parser:"@@"`
		Name      string      `parser:"@Ident"`
		Accessors []*Accessor `parser:"'{' @@* '}'"`
	}

	// Accessor is the get or set part of a property.
	Accessor struct {
		Pos       plexer.Position
		Tokens    []plexer.Token
		Modifiers *Modifiers `parser:"@@?"`
		Kind      string     `parser:"@( 'get' | 'set' )"`
		Body      *Block     `parser:"( @@ | ';' )"`
	}

	// Field declaration with one or more declarators.
	Field struct {
		Pos         plexer.Position
		Tokens      []plexer.Token
		Type        *TypeRef      `parser:"@@"`
		Declarators []*Declarator `parser:"@@ ( ',' @@ )* ';'"`
	}

	// Declarator names a field and its optional initializer.
	Declarator struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Name   string `parser:"@Ident"`
		Init   *Expr  `parser:"( '=' @@ )?"`
	}

	// Parameter of a method or constructor.
	Parameter struct {
		Pos       plexer.Position
		Tokens    []plexer.Token
		Modifiers *Modifiers `parser:"@@?"`
		Type      *TypeRef   `parser:"@@"`
		Name      string     `parser:"@Ident"`
	}

	// TypeRef is a possibly qualified, generic or array type.
	TypeRef struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Name   string     `parser:"@Ident ( @'.' @Ident )*"`
		Args   []*TypeRef `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
		Array  bool       `parser:"@( '[' ']' )?"`
	}

	// Block is a braced statement list.
	Block struct {
		Pos        plexer.Position
		Tokens     []plexer.Token
		Statements []*Statement `parser:"'{' @@* '}'"`
	}

	// Statement is any statement.
	Statement struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Block  *Block      `parser:"  @@"`
		If     *IfStmt     `parser:"| @@"`
		While  *WhileStmt  `parser:"| @@"`
		For    *ForStmt    `parser:"| @@"`
		Return *ReturnStmt `parser:"| @@"`
		Expr   *ExprStmt   `parser:"| @@"`
	}

	// IfStmt is an if statement with an optional else branch.
	IfStmt struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Cond   *Expr      `parser:"'if' '(' @@ ')'"`
		Then   *Statement `parser:"@@"`
		Else   *Statement `parser:"( 'else' @@ )?"`
	}

	// WhileStmt is a while loop.
	WhileStmt struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Cond   *Expr      `parser:"'while' '(' @@ ')'"`
		Body   *Statement `parser:"@@"`
	}

	// ForStmt covers both classic and for-each loops. The header is kept as
	// the expressions between the semicolons.
	ForStmt struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Header []*Expr    `parser:"'for' '(' ( @@ | ';' )* ')'"`
		Body   *Statement `parser:"@@"`
	}

	// ReturnStmt returns from a method, optionally with a value.
	ReturnStmt struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Value  *Expr `parser:"'return' @@? ';'"`
	}

	// ExprStmt is an expression terminated by a semicolon. Local variable
	// declarations parse as expression statements.
	ExprStmt struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Expr   *Expr `parser:"@@ ';'"`
	}

	// ExprList is a comma separated list of expressions.
	ExprList struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Items  []*Expr `parser:"@@ ( ',' @@ )*"`
	}

	// Expr is a run of terms. The grammar does not model operator precedence.
	Expr struct {
		Pos    plexer.Position
		Tokens []plexer.Token
		Terms  []*Term `parser:"@@+"`
	}

	// Term is a bracketed group, a generic type argument list or any single
	// token that does not end an expression.
	Term struct {
		Pos      plexer.Position
		Tokens   []plexer.Token
		Open     string     `parser:"(   @( '(' | '[' )"`
		Items    *ExprList  `parser:"    @@?"`
		Close    string     `parser:"    @( ')' | ']' )"`
		TypeArgs []*TypeRef `parser:"  | '<' @@ ( ',' @@ )* '>'"`
		Atom     string     `parser:"  | @~( ';' | '{' | '}' | '(' | ')' | '[' | ']' | ',' ) )"`
	}
)

// String renders the type reference the way it was written, without spaces.
func (t *TypeRef) String() string {
	if t == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(t.Name)

	if len(t.Args) > 0 {
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = arg.String()
		}

		b.WriteString("<")
		b.WriteString(strings.Join(args, ","))
		b.WriteString(">")
	}

	if t.Array {
		b.WriteString("[]")
	}

	return b.String()
}
