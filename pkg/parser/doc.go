// Package parser provides a participle-based parser for Apex-style class files.
//
// This package implements the grammar with github.com/alecthomas/participle/v2
// on top of the lexer package's token definition. Comments and whitespace are
// elided from the grammar; they are recovered separately from the full token
// stream by the comments package.
//
// Supported constructs:
//   - Classes, interfaces and enums, including nested types
//   - Annotations and modifiers on types and members
//   - Fields (with multiple declarators and initializers), properties with
//     get/set accessors, constructors and methods
//   - Blocks, if/else, while, for and return statements
//   - Expressions as token runs with nested parenthesized groups
//
// Parse returns an ast tree whose children are in construction order, not
// source order. Within a type body the parser groups members by category
// (fields, properties, constructors, methods, nested types) and appends
// synthetic "<init>" and "<clinit>" methods collecting field initializers.
// Consumers that care about source order must compare node positions.
//
// Basic usage:
//
//	root, err := parser.ParseString("Account.cls", src)
//	if err != nil {
//		return err
//	}
//
//	ast.Inspect(root, func(n ast.Node) bool {
//		fmt.Println(n.Kind(), n.Image(), n.Begin())
//		return true
//	})
package parser
