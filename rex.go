package rex

import (
	"strings"
	"unicode/utf8"

	"go.dw1.io/rex/regexp"
)

var null = newExpr("", PrecConcatenation, nil)

// Null returns the empty expression. It matches the empty string and is the
// identity of concatenation.
func Null() *Expr {
	return null
}

// Re returns an expression matching text literally. Multiple arguments are
// joined; with none, Re returns Null.
func Re(text ...string) *Expr {
	if len(text) == 0 {
		return Null()
	}

	s := strings.Join(text, "")
	if s == "" {
		return Null()
	}

	prec := PrecConcatenation
	if utf8.RuneCountInString(s) == 1 {
		prec = PrecGrouped
	}

	return newExpr(regexp.QuoteMeta(s), prec, nil)
}

// Raw returns an expression for pattern, written in the engine's syntax. The
// pattern is treated as a possible alternation, so it is grouped whenever a
// combinator needs something tighter.
//
// Capture groups inside pattern are not tracked and shift the numbering of
// named captures; use [Expr.Capture] instead.
func Raw(pattern string) *Expr {
	return newExpr(pattern, PrecAlternation, nil)
}

// Atom is like Raw for a pattern the caller knows to be a single atom, such
// as an escape or a bracketed class, so it is never grouped.
func Atom(pattern string) *Expr {
	return newExpr(pattern, PrecGrouped, nil)
}
