// Package analysis runs the comment association pipeline over one source
// file.
//
// The pipeline lexes the file, builds the comment index from the full token
// stream, parses the syntax tree, walks it once in the configured order while
// querying containment and feeding every node to the builder, and finally
// inserts formal comments into the tree.
//
// # Example Usage
//
//	report, err := analysis.Path("classes/Greeter.cls", analysis.Options{
//		SuppressMarker: "NOPMD",
//		Order:          ast.PreOrder,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, line := range report.Suppressions.Lines() {
//		fmt.Printf("%d: %s\n", line, report.Suppressions[line])
//	}
package analysis
