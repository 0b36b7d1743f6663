// Package regexp compiles rendered patterns with the fastest engine able to
// run them.
//
// Patterns are compiled with [coregex] (an accelerated RE2-compatible engine)
// unless they use a construct coregex cannot execute faithfully: the \Z
// anchor, lookarounds, backreferences, inline flag groups such as (?i:...)
// and lazy quantifiers. Those fall back to [regexp2], a backtracking engine,
// compiled in its RE2 compatibility mode.
//
// The fallback keeps RE2 meaning for the constructs both engines accept: $
// only matches at the very end outside multiline mode, \d \s \w are ASCII,
// \b and \B look at ASCII word characters and \Z matches at the end or
// before a final newline. Adding an assertion to a pattern therefore never
// changes what the rest of it matches.
//
// Both backends use leftmost-first semantics. Offsets reported by this
// package are always byte offsets into the subject, and capture groups that
// did not take part in a match are reported as a -1 pair regardless of the
// backend.
package regexp
