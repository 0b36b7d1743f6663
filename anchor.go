package rex

import "slices"

func (e *Expr) wrap(prefix, suffix string) *Expr {
	return newExpr(prefix+e.renderFor(PrecConcatenation)+suffix, PrecConcatenation, slices.Clone(e.names))
}

// Begin anchors e to the start of the subject (\A).
func (e *Expr) Begin() *Expr { return e.wrap(`\A`, "") }

// VeryEnd anchors e to the very end of the subject (\z). A trailing newline
// is not skipped.
func (e *Expr) VeryEnd() *Expr { return e.wrap("", `\z`) }

// End anchors e to the end of the subject, allowing one trailing newline
// (\Z).
func (e *Expr) End() *Expr { return e.wrap("", `\Z`) }

// BOL anchors e to the beginning of a line. Without [Expr.Multiline] on an
// enclosing expression this is the start of the subject.
func (e *Expr) BOL() *Expr { return e.wrap("^", "") }

// EOL anchors e to the end of a line. Without [Expr.Multiline] on an
// enclosing expression this is the end of the subject.
func (e *Expr) EOL() *Expr { return e.wrap("", "$") }

// All requires e to match the whole subject.
func (e *Expr) All() *Expr { return e.Begin().VeryEnd() }

// AlmostAll requires e to match the whole subject, ignoring one trailing
// newline.
func (e *Expr) AlmostAll() *Expr { return e.Begin().End() }

// Line requires e to match a whole line.
func (e *Expr) Line() *Expr { return e.BOL().EOL() }

// WordBoundary requires e to start and end on a word boundary (\b).
func (e *Expr) WordBoundary() *Expr { return e.wrap(`\b`, `\b`) }
