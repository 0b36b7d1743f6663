package rex

import "slices"

// Flags is a set of inline modifiers scoped to the text of the expression
// that carries them.
type Flags uint8

const (
	// FlagMultiline makes ^ and $ match at line boundaries (m).
	FlagMultiline Flags = 1 << iota
	// FlagDotAll lets . match a newline (s).
	FlagDotAll
	// FlagIgnoreCase matches letters case-insensitively (i).
	FlagIgnoreCase
)

// letters returns the inline modifier letters of f in a fixed order.
func (f Flags) letters() string {
	var b []byte
	if f&FlagMultiline != 0 {
		b = append(b, 'm')
	}
	if f&FlagDotAll != 0 {
		b = append(b, 's')
	}
	if f&FlagIgnoreCase != 0 {
		b = append(b, 'i')
	}

	return string(b)
}

func (f Flags) String() string {
	return f.letters()
}

func (e *Expr) withFlag(f Flags) *Expr {
	out := newExpr(e.text, e.prec, slices.Clone(e.names))
	out.flags = e.flags | f

	return out
}

// Flags reports the modifiers set on e itself. Flags of enclosing or
// enclosed expressions are not included.
func (e *Expr) Flags() Flags {
	return e.flags
}

// Multiline returns e with ^ and $ matching at line boundaries inside e's
// own text.
func (e *Expr) Multiline() *Expr { return e.withFlag(FlagMultiline) }

// IgnoreCase returns e matching case-insensitively inside e's own text.
func (e *Expr) IgnoreCase() *Expr { return e.withFlag(FlagIgnoreCase) }

// DotAll returns e with . matching newlines inside e's own text.
func (e *Expr) DotAll() *Expr { return e.withFlag(FlagDotAll) }

// IsMultiline reports whether e itself carries FlagMultiline.
func (e *Expr) IsMultiline() bool { return e.flags&FlagMultiline != 0 }

// IsCaseInsensitive reports whether e itself carries FlagIgnoreCase.
func (e *Expr) IsCaseInsensitive() bool { return e.flags&FlagIgnoreCase != 0 }

// IsDotAll reports whether e itself carries FlagDotAll.
func (e *Expr) IsDotAll() bool { return e.flags&FlagDotAll != 0 }
