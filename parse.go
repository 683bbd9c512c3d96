package descent

import "strconv"

// Expr       = AddSub
// AddSub     = MulDiv { ('+' | '-') MulDiv }
// MulDiv     = Exponent { ('*' | '/') Exponent }
// Exponent   = UnaryMinus [ '^' Exponent ]
// UnaryMinus = [ '-' ] Parens
// Parens     = '(' AddSub ')' | Literal
// Literal    = [ '-' | '+' ] digit { digit }

// parser is the scan state for one evaluation: the input, a cursor that only
// moves forward, and a sticky error. Once kind is set, every level returns
// without touching the cursor or performing further arithmetic, so at keeps
// pointing at the offending input.
type parser struct {
	src  string
	pos  int
	kind ErrorKind
	at   int
	// depth counts the grammar's self-recursion points ('(' and '^')
	// against limit. A limit of zero means unbounded.
	depth int
	limit int
}

// fail records an error. The first error wins; later calls are ignored.
func (p *parser) fail(kind ErrorKind, at int) {
	if p.kind == KindNone {
		p.kind = kind
		p.at = at
	}
}

func (p *parser) failed() bool {
	return p.kind != KindNone
}

// err converts the recorded error state into a *ParseError, or nil.
func (p *parser) err() error {
	if p.kind == KindNone {
		return nil
	}
	return &ParseError{Offset: p.at, Kind: p.kind}
}

// enter counts one level of grammar self-recursion. If the configured depth
// limit is exceeded, it raises KindTooDeep at the given offset and reports
// false.
func (p *parser) enter(at int) bool {
	p.depth++
	if p.limit > 0 && p.depth > p.limit {
		p.fail(KindTooDeep, at)
		return false
	}
	return true
}

func (p *parser) leave() {
	p.depth--
}

// skipSpace advances the cursor past ASCII whitespace.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// peek returns the byte at the cursor, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// addSub parses the lowest precedence level, the left-associative binary
// operators '+' and '-'. Operands come from the next level up. The loop ends
// when the character after an operand belongs to no operator at this level;
// whether that character is valid is the caller's problem.
func (p *parser) addSub() int64 {
	result := p.mulDiv()
	if p.failed() {
		return result
	}
	for {
		p.skipSpace()
		c := p.peek()
		if c != '+' && c != '-' {
			return result
		}
		p.pos++
		rhs := p.mulDiv()
		if p.failed() {
			return result
		}
		if c == '+' {
			result += rhs
		} else {
			result -= rhs
		}
	}
}

// mulDiv parses the left-associative binary operators '*' and '/'. Division
// by a zero right operand raises KindDivideByZero at the divisor's starting
// offset and ends the fold.
func (p *parser) mulDiv() int64 {
	result := p.exponent()
	if p.failed() {
		return 0
	}
	for {
		p.skipSpace()
		c := p.peek()
		if c != '*' && c != '/' {
			return result
		}
		p.pos++
		p.skipSpace()
		at := p.pos
		rhs := p.exponent()
		if p.failed() {
			return 0
		}
		if c == '*' {
			result *= rhs
			continue
		}
		if rhs == 0 {
			p.fail(KindDivideByZero, at)
			return 0
		}
		result /= rhs
	}
}

// exponent parses the right-associative binary operator '^'. Right
// associativity needs no loop: the right operand is parsed by this same
// level, so a^b^c groups as a^(b^c).
func (p *parser) exponent() int64 {
	result := p.unaryMinus()
	if p.failed() {
		return result
	}
	p.skipSpace()
	if p.peek() != '^' {
		return result
	}
	op := p.pos
	p.pos++
	if !p.enter(op) {
		return 0
	}
	defer p.leave()
	p.skipSpace()
	at := p.pos
	exp := p.exponent()
	if p.failed() {
		return result
	}
	return p.pow(result, exp, at)
}

// pow computes integer exponentiation:
//
//	exp == 0 yields 1, including 0^0.
//	exp < 0 with base 0 raises KindDivideByZero at the exponent's offset.
//	exp < 0 otherwise yields 0, the integer truncation of a fraction.
//	exp > 0 is repeated multiplication.
func (p *parser) pow(base, exp int64, at int) int64 {
	if exp == 0 {
		return 1
	}
	if exp < 0 {
		if base == 0 {
			p.fail(KindDivideByZero, at)
		}
		return 0
	}
	result := base
	for ; exp > 1; exp-- {
		result *= base
	}
	return result
}

// unaryMinus parses at most one prefix '-' and negates the operand from the
// next level up. Further minus signs, if any, fall to the literal scanner's
// own sign handling.
func (p *parser) unaryMinus() int64 {
	p.skipSpace()
	neg := p.peek() == '-'
	if neg {
		p.pos++
	}
	result := p.parens()
	if neg {
		result = -result
	}
	return result
}

// parens parses a parenthesized subexpression by recursing to the lowest
// precedence level; the call stack is the nesting stack. Without a '(' it
// delegates to the literal scanner.
func (p *parser) parens() int64 {
	p.skipSpace()
	if p.peek() != '(' {
		return p.literal()
	}
	open := p.pos
	p.pos++
	if !p.enter(open) {
		return 0
	}
	defer p.leave()
	result := p.addSub()
	if p.failed() {
		return 0
	}
	p.skipSpace()
	if p.peek() != ')' {
		p.fail(KindUnclosedParen, p.pos)
		return 0
	}
	p.pos++
	return result
}

// literal scans the longest base-10 integer at the cursor, with one optional
// leading sign. Zero valid characters is KindSyntax at the scan's start. A
// literal outside the int64 range saturates rather than wrapping.
func (p *parser) literal() int64 {
	p.skipSpace()
	start := p.pos
	i := start
	if i < len(p.src) && (p.src[i] == '-' || p.src[i] == '+') {
		i++
	}
	n := i
	for n < len(p.src) && isDigit(p.src[n]) {
		n++
	}
	if n == i {
		p.fail(KindSyntax, start)
		return 0
	}
	p.pos = n
	// ParseInt returns the clamped extreme along with ErrRange, which is
	// exactly the saturation we want for out-of-range literals.
	v, _ := strconv.ParseInt(p.src[start:n], 10, 64)
	return v
}

// Eval parses and evaluates an arithmetic expression over signed 64-bit
// integers in a single left-to-right pass. The expression may contain
// integer literals, the binary operators + - * / and right-associative ^,
// unary minus, parentheses nested to any depth, and whitespace between
// tokens.
//
// On failure the result is 0 and the error is a *ParseError carrying the
// byte offset of the offending input.
func Eval(src string, opts ...Option) (int64, error) {
	p := parser{src: src}
	for _, opt := range opts {
		opt.apply(&p)
	}
	result := p.addSub()
	if p.failed() {
		return 0, p.err()
	}
	// Anything left over is syntax the precedence chain had no rule for,
	// e.g. a stray ')' or two literals with no operator between them.
	p.skipSpace()
	if p.pos < len(p.src) {
		p.fail(KindSyntax, p.pos)
		return 0, p.err()
	}
	return result, nil
}
