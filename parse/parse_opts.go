package parse

type parseOpts struct {
	strict bool
}

type ParseOption func(*parseOpts)

// Strict rejects a trailing comma before a closing bracket or brace. The
// default grammar tolerates one, a laxity inherited from the
// separator-then-closer check ordering in the container rules.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}
