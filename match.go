package rex

import (
	"fmt"
	"slices"

	"go.dw1.io/rex/internal/json"
	"go.dw1.io/rex/regexp"
)

// Compile renders e and compiles it. The compiled pattern is cached on e, so
// repeated calls return the same Regexp or the same error. Engine errors,
// including invalid repetition bounds, are returned unchanged.
func (e *Expr) Compile() (*regexp.Regexp, error) {
	e.compileOnce.Do(func() {
		e.compiled, e.compileErr = regexp.Compile(e.Render())
	})

	return e.compiled, e.compileErr
}

// MustCompile is like Compile but panics if the pattern does not compile.
func (e *Expr) MustCompile() *regexp.Regexp {
	re, err := e.Compile()
	if err != nil {
		panic(err)
	}

	return re
}

// MatchString reports whether subject contains a match of e.
func (e *Expr) MatchString(subject string) (bool, error) {
	re, err := e.Compile()
	if err != nil {
		return false, err
	}

	return re.MatchString(subject), nil
}

// Match returns the leftmost-first match of e in subject. A nil Match with a
// nil error means there was no match; an error means the pattern did not
// compile.
func (e *Expr) Match(subject string) (*Match, error) {
	re, err := e.Compile()
	if err != nil {
		return nil, err
	}

	idx := re.FindStringSubmatchIndex(subject)
	if idx == nil {
		return nil, nil
	}

	return &Match{subject: subject, names: e.names, spans: idx}, nil
}

// FindAll returns successive non-overlapping matches of e in subject. If
// n >= 0, at most n matches are returned.
func (e *Expr) FindAll(subject string, n int) ([]*Match, error) {
	re, err := e.Compile()
	if err != nil {
		return nil, err
	}

	all := re.FindAllStringSubmatchIndex(subject, n)
	out := make([]*Match, 0, len(all))
	for _, idx := range all {
		out = append(out, &Match{subject: subject, names: e.names, spans: idx})
	}

	return out, nil
}

// Match is a successful match of an Expr. Captures are looked up by the names
// given to [Expr.Capture].
type Match struct {
	subject string
	// names is shared with the Expr that produced the match; never written.
	names []string
	spans []int
}

// Text returns the text of the whole match.
func (m *Match) Text() string {
	return m.subject[m.spans[0]:m.spans[1]]
}

// Span returns the byte offsets of the whole match in the subject.
func (m *Match) Span() (start, end int) {
	return m.spans[0], m.spans[1]
}

// Names returns the capture names of the matched expression in group order.
func (m *Match) Names() []string {
	return slices.Clone(m.names)
}

// group maps name to its group number. The first occurrence wins when a name
// is declared more than once.
func (m *Match) group(name string) (int, error) {
	i := slices.Index(m.names, name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCapture, name)
	}

	return i + 1, nil
}

// Index returns the byte offsets of the named capture. ok is false when the
// group did not participate in the match. The error wraps ErrUnknownCapture
// when name was never declared.
func (m *Match) Index(name string) (start, end int, ok bool, err error) {
	g, err := m.group(name)
	if err != nil {
		return -1, -1, false, err
	}
	if 2*g+1 >= len(m.spans) || m.spans[2*g] < 0 {
		return -1, -1, false, nil
	}

	return m.spans[2*g], m.spans[2*g+1], true, nil
}

// Lookup returns the text of the named capture. ok is false when the group
// did not participate in the match. The error wraps ErrUnknownCapture when
// name was never declared.
func (m *Match) Lookup(name string) (text string, ok bool, err error) {
	start, end, ok, err := m.Index(name)
	if !ok {
		return "", false, err
	}

	return m.subject[start:end], true, nil
}

// Get returns the text of the named capture, or "" if the group did not
// participate. It panics if name was never declared.
func (m *Match) Get(name string) string {
	text, _, err := m.Lookup(name)
	if err != nil {
		panic(err)
	}

	return text
}

// Captures returns the text of every participating named capture.
func (m *Match) Captures() map[string]string {
	out := make(map[string]string, len(m.names))
	for _, name := range m.names {
		if _, seen := out[name]; seen {
			continue
		}
		if text, ok, _ := m.Lookup(name); ok {
			out[name] = text
		}
	}

	return out
}

type matchJSON struct {
	Text     string             `json:"text"`
	Start    int                `json:"start"`
	End      int                `json:"end"`
	Captures map[string]*string `json:"captures"`
}

// MarshalJSON encodes the match text, its offsets and every named capture.
// Captures that did not participate are null.
func (m *Match) MarshalJSON() ([]byte, error) {
	caps := make(map[string]*string, len(m.names))
	for _, name := range m.names {
		if _, seen := caps[name]; seen {
			continue
		}
		if text, ok, _ := m.Lookup(name); ok {
			caps[name] = &text
		} else {
			caps[name] = nil
		}
	}

	start, end := m.Span()
	return json.Marshal(matchJSON{
		Text:     m.Text(),
		Start:    start,
		End:      end,
		Captures: caps,
	})
}
