// Package ast defines the syntax tree the comment engine operates on.
//
// Node is the capability set the engine needs from a tree node: a kind and
// image, whether the node has a real source location, its inclusive begin and
// end positions, and the ability to enumerate, insert and re-parent children.
// The parser package builds trees of *Element values; the comments package
// splices *FormalComment nodes into them.
//
// Nodes without a real location (HasRealLoc() == false) are synthetic: they
// are generated by the parser, e.g. the "<clinit>" method that collects field
// initializers, and never take part in position comparisons.
//
// Trees are traversed with Walk, in one of several orders:
//
//	err := ast.Walk(root, ast.PostOrder, func(n ast.Node) error {
//		fmt.Println(n.Kind(), n.Image())
//		return nil
//	})
package ast
