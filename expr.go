package rex

import (
	"slices"
	"strings"
	"sync"

	"go.dw1.io/rex/regexp"
)

// Precedence is the binding strength of the weakest operator in a fragment's
// unwrapped text.
type Precedence uint8

const (
	// PrecAlternation text may contain a top-level '|'.
	PrecAlternation Precedence = iota
	// PrecConcatenation text is a sequence of atoms or repetitions.
	PrecConcatenation
	// PrecRepetition text ends in a postfix operator.
	PrecRepetition
	// PrecGrouped text is a single atom: a group, class, escape or character.
	PrecGrouped
)

func (p Precedence) String() string {
	switch p {
	case PrecAlternation:
		return "alternation"
	case PrecConcatenation:
		return "concatenation"
	case PrecRepetition:
		return "repetition"
	case PrecGrouped:
		return "grouped"
	default:
		return "invalid"
	}
}

// Expr is an immutable regular expression fragment.
//
// The zero value is not usable; build expressions with [Re], [Raw], [Atom],
// [Any], [None] or one of the prebuilt helpers. An Expr may be shared between
// goroutines.
type Expr struct {
	text  string
	prec  Precedence
	names []string
	flags Flags

	renderOnce sync.Once
	rendered   string

	compileOnce sync.Once
	compiled    *regexp.Regexp
	compileErr  error
}

// newExpr takes ownership of names; callers must not retain it.
func newExpr(text string, prec Precedence, names []string) *Expr {
	return &Expr{text: text, prec: prec, names: names}
}

// Render returns the pattern text of e, wrapped in a flag-scoped group when e
// carries mode flags. The result is computed once.
func (e *Expr) Render() string {
	e.renderOnce.Do(func() {
		if e.flags == 0 {
			e.rendered = e.text
			return
		}

		var b strings.Builder
		b.Grow(len(e.text) + 6)
		b.WriteString("(?")
		b.WriteString(e.flags.letters())
		b.WriteByte(':')
		b.WriteString(e.text)
		b.WriteByte(')')
		e.rendered = b.String()
	})

	return e.rendered
}

// String implements fmt.Stringer; it is Render.
func (e *Expr) String() string {
	return e.Render()
}

// renderFor renders e for a context that needs at least min precedence.
func (e *Expr) renderFor(min Precedence) string {
	if e.prec >= min {
		return e.Render()
	}

	return e.Group().Render()
}

// Precedence reports the precedence of e's unwrapped text.
func (e *Expr) Precedence() Precedence {
	return e.prec
}

// CaptureNames returns the capture names of e in the order their groups open
// in the rendered pattern. The name at index i is group i+1.
func (e *Expr) CaptureNames() []string {
	return slices.Clone(e.names)
}

// Group wraps e in a non-capturing group. Flags of e are baked into the
// wrapped text; the result carries none.
func (e *Expr) Group() *Expr {
	return newExpr("(?:"+e.Render()+")", PrecGrouped, slices.Clone(e.names))
}

// Capture wraps e in a capture group named name. The new group opens before
// any group inside e, so name is listed first.
func (e *Expr) Capture(name string) *Expr {
	names := make([]string, 0, len(e.names)+1)
	names = append(names, name)
	names = append(names, e.names...)

	return newExpr("("+e.Render()+")", PrecGrouped, names)
}

func joinNames(a, b []string) []string {
	if len(a)+len(b) == 0 {
		return nil
	}

	return slices.Concat(a, b)
}
