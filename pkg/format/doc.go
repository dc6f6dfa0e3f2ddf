// Package format renders syntax trees and suppression maps as text.
//
// Trees are written one node per line, indented by depth:
//
//	UserClass Greeter [4:1-11:1]
//	  FormalComment Greets people. [1:1-3:3]
//	  Method <clinit> <synthetic>
//
// Formal comments show their text lines joined by " | ". Nodes without a real
// location show <synthetic> in place of their span.
//
// Suppression maps are written as YAML documents, one per file.
//
// Usage:
//
//	formatter := format.New(nil)
//
//	var buf bytes.Buffer
//	err := formatter.Tree(&buf, report.Root)
//
//	// Custom options
//	formatter := format.New(&format.Options{IndentSize: 4})
package format
