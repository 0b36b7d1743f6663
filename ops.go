package rex

import (
	"fmt"
	"slices"
	"strconv"
)

// Then returns the concatenation of e followed by each of others, left to
// right.
func (e *Expr) Then(others ...*Expr) *Expr {
	out := e
	for _, o := range others {
		out = concat(out, o)
	}

	return out
}

// Or returns the alternation of e and each of others. The engine tries the
// alternatives in order and the first one that matches wins.
func (e *Expr) Or(others ...*Expr) *Expr {
	out := e
	for _, o := range others {
		out = alternate(out, o)
	}

	return out
}

// Seq concatenates exprs. Seq() is Null().
func Seq(exprs ...*Expr) *Expr {
	if len(exprs) == 0 {
		return Null()
	}

	return exprs[0].Then(exprs[1:]...)
}

// Either is the alternation of exprs. It panics if exprs is empty because an
// empty alternation has no pattern.
func Either(exprs ...*Expr) *Expr {
	if len(exprs) == 0 {
		panic("rex: Either called without alternatives")
	}

	return exprs[0].Or(exprs[1:]...)
}

func concat(a, b *Expr) *Expr {
	return newExpr(
		a.renderFor(PrecConcatenation)+b.renderFor(PrecConcatenation),
		PrecConcatenation,
		joinNames(a.names, b.names),
	)
}

func alternate(a, b *Expr) *Expr {
	return newExpr(
		a.renderFor(PrecAlternation)+"|"+b.renderFor(PrecAlternation),
		PrecAlternation,
		joinNames(a.names, b.names),
	)
}

// postfix applies a repetition operator. The operand must be a single atom:
// a repetition followed by another operator would read as a lazy or nested
// quantifier.
func (e *Expr) postfix(op string) *Expr {
	return newExpr(e.renderFor(PrecGrouped)+op, PrecRepetition, slices.Clone(e.names))
}

// Optional matches e zero or one time, preferring one.
func (e *Expr) Optional() *Expr { return e.postfix("?") }

// OptionalLazy matches e zero or one time, preferring zero.
func (e *Expr) OptionalLazy() *Expr { return e.postfix("??") }

// Many matches e zero or more times, as many as possible.
func (e *Expr) Many() *Expr { return e.postfix("*") }

// ManyLazy matches e zero or more times, as few as possible.
func (e *Expr) ManyLazy() *Expr { return e.postfix("*?") }

// OneOrMore matches e one or more times, as many as possible.
func (e *Expr) OneOrMore() *Expr { return e.postfix("+") }

// OneOrMoreLazy matches e one or more times, as few as possible.
func (e *Expr) OneOrMoreLazy() *Expr { return e.postfix("+?") }

// Repeat matches e exactly min times, or between min and max times
// (inclusive) when max is given. Only max[0] is used.
//
// A min greater than max renders as written and is rejected by the engine
// when the pattern is compiled. A negative count panics with
// ErrNegativeRepeat.
func (e *Expr) Repeat(min int, max ...int) *Expr {
	if len(max) == 0 {
		return e.postfix("{" + count(min) + "}")
	}

	return e.postfix("{" + count(min) + "," + count(max[0]) + "}")
}

// AtLeast matches e min or more times. It panics if min is negative.
func (e *Expr) AtLeast(min int) *Expr {
	return e.postfix("{" + count(min) + ",}")
}

// AtMost matches e between zero and max times. It panics if max is negative.
func (e *Expr) AtMost(max int) *Expr {
	return e.postfix("{0," + count(max) + "}")
}

func count(n int) string {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeRepeat, n))
	}

	return strconv.Itoa(n)
}
