// Package descent implements a single-pass integer expression calculator.
//
// Expressions are arithmetic over signed 64-bit integers, with the binary
// operators + - * /, right-associative exponentiation ^, unary minus, and
// parentheses nested to any depth. A recursive descent parser evaluates the
// input as it scans it, left to right, visiting each character once: there
// is no token stream, no syntax tree, and no allocation during the parse.
// Precedence lives in the call graph, one function per level.
//
// Failed evaluations report a *ParseError carrying the byte offset of the
// offending input, and Annotate turns that into a caret diagnostic.
package descent
