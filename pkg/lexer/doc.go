// Package lexer tokenizes Apex-style source files.
//
// The lexer is built from github.com/alecthomas/participle/v2/lexer regex rules
// and is shared with the parser package, which elides trivia (whitespace and
// comments) while building the syntax tree. Tokenize, on the other hand,
// returns every token in source order, including the trivia the parser drops,
// so that comment processing can see the file the way it was written.
//
// Each Token carries a Kind, a Channel, its 1-based line and column, its
// 0-based byte offset and its text:
//
//	tokens, err := lexer.Tokenize("Account.cls", src)
//	if err != nil {
//		return err
//	}
//
//	for _, tok := range tokens {
//		if tok.Channel == lexer.CommentChannel {
//			fmt.Println(tok.Line, tok.Text)
//		}
//	}
//
// Three comment kinds exist: DocComment (/** ... */), BlockComment (/* ... */)
// and LineComment (// ...). An empty block comment (/**/) is a BlockComment.
package lexer
