package rex

import "sync"

// Classes are spelled out rather than written as \d, \s or \w so that both
// engine backends agree: regexp2 gives those escapes Unicode meaning.
const spaceChars = "\t\n\f\r "

var (
	digit     = sync.OnceValue(func() *Expr { return Any(Range('0', '9')) })
	hexDigit  = sync.OnceValue(func() *Expr { return Any(Range('0', '9'), Range('a', 'f'), Range('A', 'F')) })
	space     = sync.OnceValue(func() *Expr { return Any(Chars(spaceChars)) })
	nonSpace  = sync.OnceValue(func() *Expr { return None(Chars(spaceChars)) })
	wordChar  = sync.OnceValue(func() *Expr { return Any(Range('0', '9'), Range('A', 'Z'), Range('a', 'z'), Chars("_")) })
	wordBreak = sync.OnceValue(func() *Expr { return Atom(`\b`) })
	anyChar   = sync.OnceValue(func() *Expr { return Any() })

	digits    = sync.OnceValue(func() *Expr { return Digit().OneOrMore() })
	hexDigits = sync.OnceValue(func() *Expr { return HexDigit().OneOrMore() })
	spaces    = sync.OnceValue(func() *Expr { return Space().OneOrMore() })
	nonSpaces = sync.OnceValue(func() *Expr { return NonSpace().OneOrMore() })
	word      = sync.OnceValue(func() *Expr { return WordChar().OneOrMore() })
)

// Digit matches one ASCII decimal digit.
func Digit() *Expr { return digit() }

// Digits matches one or more decimal digits.
func Digits() *Expr { return digits() }

// HexDigit matches one hexadecimal digit of either case.
func HexDigit() *Expr { return hexDigit() }

// HexDigits matches one or more hexadecimal digits.
func HexDigits() *Expr { return hexDigits() }

// Space matches one ASCII whitespace character.
func Space() *Expr { return space() }

// Spaces matches one or more whitespace characters.
func Spaces() *Expr { return spaces() }

// NonSpace matches one character that is not whitespace.
func NonSpace() *Expr { return nonSpace() }

// NonSpaces matches one or more characters that are not whitespace.
func NonSpaces() *Expr { return nonSpaces() }

// WordChar matches one ASCII letter, digit or underscore.
func WordChar() *Expr { return wordChar() }

// Word matches a run of word characters.
func Word() *Expr { return word() }

// Break matches a word boundary without consuming input.
func Break() *Expr { return wordBreak() }

// AnyChar matches any character except newline.
func AnyChar() *Expr { return anyChar() }
