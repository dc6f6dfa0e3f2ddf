package ast

import (
	"slices"

	"github.com/pseudomuto/commentary/pkg/source"
)

// Kind names the syntactic category of a node.
type Kind string

const (
	KindCompilationUnit  Kind = "CompilationUnit"
	KindClass            Kind = "UserClass"
	KindInterface        Kind = "UserInterface"
	KindEnum             Kind = "UserEnum"
	KindEnumValue        Kind = "EnumValue"
	KindAnnotation       Kind = "Annotation"
	KindModifiers        Kind = "ModifierNode"
	KindTypeRef          Kind = "TypeRef"
	KindField            Kind = "Field"
	KindDeclarator       Kind = "VariableDeclarator"
	KindProperty         Kind = "Property"
	KindAccessor         Kind = "Accessor"
	KindConstructor      Kind = "Constructor"
	KindMethod           Kind = "Method"
	KindParameter        Kind = "Parameter"
	KindBlock            Kind = "BlockStatement"
	KindIf               Kind = "IfStatement"
	KindWhile            Kind = "WhileStatement"
	KindFor              Kind = "ForStatement"
	KindReturn           Kind = "ReturnStatement"
	KindExpressionStmt   Kind = "ExpressionStatement"
	KindExpression       Kind = "Expression"
	KindFieldInitializer Kind = "FieldInitializer"
	KindFormalComment    Kind = "FormalComment"
)

// IsDeclaration reports whether k is a type or member declaration.
func (k Kind) IsDeclaration() bool {
	switch k {
	case KindClass, KindInterface, KindEnum, KindField, KindProperty, KindConstructor, KindMethod:
		return true
	default:
		return false
	}
}

// Node is a syntax tree node.
type Node interface {
	Kind() Kind
	// Image is the node's identifying text, e.g. a declaration name.
	Image() string
	// HasRealLoc reports whether the node corresponds to source text.
	HasRealLoc() bool
	// Begin is the position of the node's first character.
	Begin() source.Position
	// End is the position of the node's last character (inclusive).
	End() source.Position
	NumChildren() int
	Child(i int) Node
	Parent() Node
	// InsertChild inserts child at index i, shifting children at i and above
	// up by one. It panics if i is out of range [0, NumChildren()].
	InsertChild(i int, child Node)
	SetParent(parent Node)
}

// Element is the general purpose Node implementation.
type Element struct {
	kind      Kind
	image     string
	begin     source.Position
	end       source.Position
	synthetic bool
	parent    Node
	children  []Node
}

// NewElement returns a node spanning [begin, end].
func NewElement(kind Kind, image string, begin, end source.Position) *Element {
	return &Element{kind: kind, image: image, begin: begin, end: end}
}

// NewSynthetic returns a node without a source location.
func NewSynthetic(kind Kind, image string) *Element {
	return &Element{kind: kind, image: image, synthetic: true}
}

func (e *Element) Kind() Kind                { return e.kind }
func (e *Element) Image() string             { return e.image }
func (e *Element) HasRealLoc() bool          { return !e.synthetic }
func (e *Element) Begin() source.Position    { return e.begin }
func (e *Element) End() source.Position      { return e.end }
func (e *Element) NumChildren() int          { return len(e.children) }
func (e *Element) Child(i int) Node          { return e.children[i] }
func (e *Element) Parent() Node              { return e.parent }
func (e *Element) SetParent(parent Node)     { e.parent = parent }
func (e *Element) InsertChild(i int, c Node) { e.children = slices.Insert(e.children, i, c) }

// Append adds children at the end and sets their parent to e. Nil children
// are skipped.
func (e *Element) Append(children ...Node) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}

		e.children = append(e.children, child)
		child.SetParent(e)
	}

	return e
}

// Children returns a copy of n's children.
func Children(n Node) []Node {
	out := make([]Node, n.NumChildren())
	for i := range out {
		out[i] = n.Child(i)
	}

	return out
}

// Depth returns the number of ancestors of n.
func Depth(n Node) int {
	depth := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		depth++
	}

	return depth
}

// Find returns all nodes of the given kinds below and including n, in
// pre-order.
func Find(n Node, kinds ...Kind) []Node {
	var out []Node
	Inspect(n, func(node Node) bool {
		if slices.Contains(kinds, node.Kind()) {
			out = append(out, node)
		}
		return true
	})

	return out
}
