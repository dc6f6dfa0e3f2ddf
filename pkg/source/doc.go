// Package source provides location primitives shared by the lexer, the syntax
// tree and the comment engine.
//
// A Position is a (line, column) pair with a total order: positions compare by
// line first and column second. Both values are 1-based. Positions never refer
// back to the text they were taken from, which allows tokens and tree nodes to
// be compared without access to the underlying source.
//
// A Region describes a contiguous span of source text by byte offset and
// length, together with its begin and end positions.
package source
