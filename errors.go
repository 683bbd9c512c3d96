package descent

import "strconv"

// ErrorKind identifies the reason an evaluation failed. Errors are sticky:
// the first kind raised during a parse is the one reported, and nothing
// downstream overwrites it.
type ErrorKind int

const (
	// KindNone means no error has been raised.
	KindNone ErrorKind = iota
	// KindSyntax is a malformed or missing token, or input left over after
	// a complete expression.
	KindSyntax
	// KindDivideByZero is a division by a zero divisor, or a negative
	// exponentiation of a zero base.
	KindDivideByZero
	// KindUnclosedParen is an opening parenthesis with no matching close.
	KindUnclosedParen
	// KindTooDeep means the nesting depth limit set by MaxDepth was
	// exceeded.
	KindTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "no error"
	case KindSyntax:
		return "syntax error"
	case KindDivideByZero:
		return "division by 0"
	case KindUnclosedParen:
		return "expecting )"
	case KindTooDeep:
		return "expression too deeply nested"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is an error raised while parsing or evaluating an expression.
// It implements InputError.
type ParseError struct {
	// Offset is the byte offset into the input at which the error was
	// detected, counting from zero. It may equal the input length when the
	// error is at end of input.
	Offset int
	// Kind is the reason for the error.
	Kind ErrorKind
}

func (err *ParseError) Error() string {
	return errpos(err.Offset, err.Kind.String())
}

func (err *ParseError) Pos() int {
	return err.Offset
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the input that caused the error.
	Pos() int
}

var _ InputError = (*ParseError)(nil)
