package rex

import "errors"

// ErrEmptyClass indicates that a character class was built without any
// member characters.
//
// It is returned by AnyOf and NoneOf, and raised as a panic by Any and None.
var ErrEmptyClass = errors.New("rex: empty character class")

// ErrUnknownCapture indicates a lookup of a capture name the expression never
// declared. It is distinct from a declared group that did not participate in
// a match.
var ErrUnknownCapture = errors.New("rex: unknown capture name")

// ErrNegativeRepeat is raised as a panic by Repeat, AtLeast and AtMost when
// given a negative count.
var ErrNegativeRepeat = errors.New("rex: negative repetition count")
