package rex

import (
	"fmt"
	"strings"
	"unicode"
)

type classKind uint8

const (
	classChars classKind = iota
	classRange
)

// ClassSpec is one member of a character class: either a range of runes or a
// literal set of characters. Build it with [Range] or [Chars].
type ClassSpec struct {
	kind   classKind
	lo, hi rune
	chars  string
}

// Range is the inclusive run of runes from lo to hi.
func Range(lo, hi rune) ClassSpec {
	return ClassSpec{kind: classRange, lo: lo, hi: hi}
}

// Chars is the set of runes in s. Characters that are special inside a class
// are escaped.
func Chars(s string) ClassSpec {
	return ClassSpec{kind: classChars, chars: s}
}

func (c ClassSpec) writeTo(b *strings.Builder) {
	if c.kind == classRange {
		writeClassRune(b, c.lo)
		b.WriteByte('-')
		writeClassRune(b, c.hi)
		return
	}

	for _, r := range c.chars {
		writeClassRune(b, r)
	}
}

// writeClassRune writes r as a class member. Control and other
// non-printable runes are escaped so the rendered pattern stays on one line.
func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case ']', '[', '^', '-', '\\':
		b.WriteByte('\\')
	case '\t':
		b.WriteString(`\t`)
		return
	case '\n':
		b.WriteString(`\n`)
		return
	case '\f':
		b.WriteString(`\f`)
		return
	case '\r':
		b.WriteString(`\r`)
		return
	default:
		if !unicode.IsPrint(r) {
			fmt.Fprintf(b, `\x{%x}`, r)
			return
		}
	}
	b.WriteRune(r)
}

func class(negate bool, specs []ClassSpec) (*Expr, error) {
	var b strings.Builder
	b.WriteByte('[')
	if negate {
		b.WriteByte('^')
	}

	n := b.Len()
	for _, s := range specs {
		s.writeTo(&b)
	}
	if b.Len() == n {
		return nil, ErrEmptyClass
	}
	b.WriteByte(']')

	return newExpr(b.String(), PrecGrouped, nil), nil
}

// AnyOf matches a single character from the union of specs. With no specs it
// matches any character except newline, like '.'. It returns ErrEmptyClass
// when specs are given but contribute no character.
func AnyOf(specs ...ClassSpec) (*Expr, error) {
	if len(specs) == 0 {
		return newExpr(".", PrecGrouped, nil), nil
	}

	return class(false, specs)
}

// Any is like AnyOf but panics on error.
func Any(specs ...ClassSpec) *Expr {
	return must(AnyOf(specs...))
}

// NoneOf matches a single character outside the union of specs. A negated
// class needs at least one member, so NoneOf returns ErrEmptyClass when specs
// contribute no character.
func NoneOf(specs ...ClassSpec) (*Expr, error) {
	return class(true, specs)
}

// None is like NoneOf but panics on error.
func None(specs ...ClassSpec) *Expr {
	return must(NoneOf(specs...))
}

func must(e *Expr, err error) *Expr {
	if err != nil {
		panic(err)
	}

	return e
}
