package regexp

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Backend identifies the engine a Regexp was compiled with.
type Backend uint8

const (
	// BackendCore is coregex.
	BackendCore Backend = iota
	// BackendPCRE is regexp2.
	BackendPCRE
)

func (b Backend) String() string {
	switch b {
	case BackendCore:
		return "coregex"
	case BackendPCRE:
		return "regexp2"
	default:
		return "unknown"
	}
}

// Regexp is a compiled pattern backed by either coregex or regexp2.
//
// A Regexp is safe for concurrent use by multiple goroutines.
type Regexp struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
	ngroups int
}

// Compile parses pattern and returns a Regexp. Compilation errors come
// straight from the selected engine and are returned unchanged.
//
// Patterns that need regexp2 are compiled in its RE2 mode, with \b, \B and
// \Z rewritten to their RE2 meaning, so that a pattern matches the same
// text whichever backend runs it.
func Compile(pattern string) (*Regexp, error) {
	if _, ok := pcreFeature(pattern); ok {
		re, err := regexp2.Compile(pcreSyntax(pattern), regexp2.RE2)
		if err != nil {
			return nil, err
		}

		return &Regexp{
			pattern: pattern,
			pcre:    re,
			ngroups: len(re.GetGroupNumbers()) - 1,
		}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{
		pattern: pattern,
		core:    re,
		ngroups: len(re.SubexpNames()) - 1,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}

	return re
}

// QuoteMeta escapes all regular expression metacharacters in s. The result is
// valid for both backends.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// Fallback reports the construct that makes pattern unsuitable for coregex,
// if any.
func Fallback(pattern string) (construct string, ok bool) {
	return pcreFeature(pattern)
}

// String returns the source pattern.
func (r *Regexp) String() string {
	return r.pattern
}

// Backend reports which engine compiled the pattern.
func (r *Regexp) Backend() Backend {
	if r.core != nil {
		return BackendCore
	}

	return BackendPCRE
}

// NumSubexp returns the number of capture groups in the pattern, not
// counting the whole match.
func (r *Regexp) NumSubexp() int {
	return r.ngroups
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindStringSubmatchIndex returns the byte offsets of the leftmost match in s
// and of every capture group: result[2*i:2*i+2] belongs to group i. Groups
// that did not participate hold -1. A nil result means no match.
func (r *Regexp) FindStringSubmatchIndex(s string) []int {
	if r.core != nil {
		return r.normalize(r.core.FindStringSubmatchIndex(s))
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return r.spans(s, m)
}

// FindAllStringSubmatchIndex is the 'All' version of FindStringSubmatchIndex.
// If n >= 0, at most n matches are returned.
func (r *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}

	if r.core != nil {
		all := r.core.FindAllStringSubmatchIndex(s, n)
		for i := range all {
			all[i] = r.normalize(all[i])
		}

		return all
	}

	var out [][]int
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n > 0 && len(out) >= n {
			break
		}

		out = append(out, r.spans(s, m))
		m, err = r.pcre.FindNextMatch(m)
	}

	return out
}

// normalize pads a coregex result to the full group count so callers can
// index every group without bounds checks.
func (r *Regexp) normalize(idx []int) []int {
	if idx == nil {
		return nil
	}

	want := (r.ngroups + 1) * 2
	if len(idx) >= want {
		return idx
	}

	out := make([]int, want)
	copy(out, idx)
	for i := len(idx); i < want; i++ {
		out[i] = -1
	}

	return out
}

func (r *Regexp) spans(s string, m *regexp2.Match) []int {
	out := make([]int, (r.ngroups+1)*2)
	for i := range out {
		out[i] = -1
	}

	conv := newRuneIndex(s)
	for i, g := range m.Groups() {
		if i > r.ngroups {
			break
		}
		if len(g.Captures) == 0 {
			continue
		}

		out[2*i], out[2*i+1] = conv.span(g.Index, g.Length)
	}

	return out
}
