package descent

// Option is an option for evaluation.
type Option interface {
	apply(*parser)
}

type depthopt int

func (o depthopt) apply(p *parser) {
	p.limit = int(o)
}

// MaxDepth limits how deeply parentheses and exponent chains may nest.
// Exceeding the limit fails the evaluation with KindTooDeep instead of
// growing the call stack without bound, which is the safe choice for
// untrusted input. A limit of zero or less means no limit, which is the
// default.
func MaxDepth(n int) Option {
	return depthopt(n)
}
