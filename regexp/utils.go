package regexp

import (
	"strings"
	"unicode/utf8"
)

// groupConstructs lists the group openers that coregex rejects or runs with
// different results, keyed by what follows the opening parenthesis.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var groupConstructs = []struct {
	name   string
	tokens []string
}{
	{"lookaround", []string{"?=", "?!", "?<=", "?<!"}},
	{"atomic group", []string{"?>"}},
	{"conditional group", []string{"?("}},
	{"comment group", []string{"?#"}},
	{"named backreference", []string{"?P="}},
	{"recursion", []string{"?R)", "?P>", "?&"}},
	{"quoted group name", []string{"?'"}},
	{"backtracking verb", []string{"*"}},
}

// escapeConstructs maps the escape letters that need regexp2 outside of a
// character class.
var escapeConstructs = map[byte]string{
	'Z': "string anchor",
	'G': "string anchor",
	'k': "named backreference",
	'h': "escape",
	'H': "escape",
	'R': "escape",
	'X': "escape",
	'K': "escape",
	'e': "escape",
}

// pcreFeature reports the first construct in pattern that needs the regexp2
// backend. Escaped characters and the contents of character classes are
// skipped.
func pcreFeature(pattern string) (string, bool) {
	var (
		inClass bool
		quant   bool // previous token was a quantifier
	)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if c == '\\' {
			if i+1 >= len(pattern) {
				break
			}

			i++
			e := pattern[i]
			quant = false
			if inClass {
				continue
			}
			if e >= '1' && e <= '9' {
				return `backreference \` + string(e), true
			}
			if name, ok := escapeConstructs[e]; ok {
				return name + ` \` + string(e), true
			}

			continue
		}

		if inClass {
			if c == ']' {
				inClass = false
			}

			continue
		}

		switch c {
		case '[':
			inClass = true
			quant = false
			i = skipClassHead(pattern, i)
		case '(':
			quant = false
			rest := pattern[i+1:]
			for _, g := range groupConstructs {
				for _, tok := range g.tokens {
					if strings.HasPrefix(rest, tok) {
						return g.name + " (" + tok, true
					}
				}
			}
			if flags, ok := inlineFlags(rest); ok {
				return "inline flags (" + flags, true
			}
			if strings.HasPrefix(rest, "?") {
				i++
			}
		case '?':
			if quant {
				return "lazy quantifier ?", true
			}
			quant = true
		case '*', '+', '}':
			quant = true
		default:
			quant = false
		}
	}

	return "", false
}

// skipClassHead returns the index of the last byte of a class opener so that
// a leading ']' (optionally after '^') is read as a member.
func skipClassHead(pattern string, i int) int {
	if i+1 < len(pattern) && pattern[i+1] == '^' {
		i++
	}
	if i+1 < len(pattern) && pattern[i+1] == ']' {
		i++
	}

	return i
}

// inlineFlags reports whether rest, the text after '(', opens a flag group
// such as "?i:" or "?ms)".
func inlineFlags(rest string) (string, bool) {
	if !strings.HasPrefix(rest, "?") {
		return "", false
	}

	for j := 1; j < len(rest); j++ {
		switch c := rest[j]; {
		case c == ':' || c == ')':
			if j == 1 {
				return "", false
			}

			return rest[:j+1], true
		case c == '-' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		default:
			return "", false
		}
	}

	return "", false
}

const (
	asciiWord        = `[0-9A-Za-z_]`
	asciiBoundary    = `(?:(?<=` + asciiWord + `)(?!` + asciiWord + `)|(?<!` + asciiWord + `)(?=` + asciiWord + `))`
	asciiNonBoundary = `(?:(?<=` + asciiWord + `)(?=` + asciiWord + `)|(?<!` + asciiWord + `)(?!` + asciiWord + `))`
	endZ             = `(?=\n?\z)`
)

// pcreSyntax rewrites the assertions whose regexp2 meaning differs from the
// RE2 one: \b and \B become ASCII word-boundary lookarounds and \Z becomes a
// lookahead for an optional final newline. No capture groups are added.
func pcreSyntax(pattern string) string {
	var (
		b       strings.Builder
		inClass bool
	)
	b.Grow(len(pattern))

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		if c == '\\' && i+1 < len(pattern) {
			i++
			e := pattern[i]
			if !inClass {
				switch e {
				case 'b':
					b.WriteString(asciiBoundary)
					continue
				case 'B':
					b.WriteString(asciiNonBoundary)
					continue
				case 'Z':
					b.WriteString(endZ)
					continue
				}
			}

			b.WriteByte(c)
			b.WriteByte(e)
			continue
		}

		switch {
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			j := skipClassHead(pattern, i)
			b.WriteString(pattern[i:j])
			i = j
			c = pattern[i]
		}

		b.WriteByte(c)
	}

	return b.String()
}

// runeIndex maps rune positions, as reported by regexp2, to byte offsets.
type runeIndex []int

func newRuneIndex(s string) runeIndex {
	idx := make(runeIndex, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		idx = append(idx, i)
	}

	return append(idx, len(s))
}

func (idx runeIndex) offset(r int) int {
	switch {
	case r <= 0:
		return 0
	case r >= len(idx):
		return idx[len(idx)-1]
	default:
		return idx[r]
	}
}

func (idx runeIndex) span(start, length int) (int, int) {
	if start < 0 || length < 0 {
		return -1, -1
	}

	return idx.offset(start), idx.offset(start + length)
}
