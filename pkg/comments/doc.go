// Package comments associates comments with the syntax tree of one file.
//
// A Builder is constructed once per file from the file's full token stream.
// Construction makes a single pass that splits comment tokens into ordinary
// comments and documentation comments (both kept in source order), indexes the
// positions of the ordinary comments for binary search, and scans line
// comments for a suppression marker.
//
// Association then follows a two-phase protocol:
//
//  1. Accumulation. While the tree is traversed, every visited node is passed
//     to Observe. For each documentation comment the builder keeps the node
//     with the smallest begin position not before the comment. Because this
//     is a running minimum, the outcome does not depend on the order in which
//     nodes are visited. ContainsComments may be called at any time.
//  2. Commit. Finalize is called exactly once after the traversal. It creates
//     an ast.FormalComment for each documentation comment that found a node
//     and inserts it ahead of that node's existing children. Afterwards the
//     builder is spent; the returned Result is read-only.
//
// Example:
//
//	b, err := comments.New(tokens, comments.WithSuppressMarker("NOPMD"))
//	if err != nil {
//		return err
//	}
//
//	if err := ast.Walk(root, ast.PreOrder, b.Observe); err != nil {
//		return err
//	}
//
//	res, err := b.Finalize()
//	if err != nil {
//		return err
//	}
//
//	for line, msg := range res.SuppressionMap() {
//		fmt.Printf("line %d suppressed: %s\n", line, msg)
//	}
//
// Nodes without a real location never contain comments and never receive
// documentation comments.
package comments
