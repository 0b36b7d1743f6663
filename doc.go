// Package rex builds regular expressions out of small, composable pieces.
//
// An [Expr] is an immutable pattern fragment that knows the precedence of its
// own text and the names of the capture groups it opens. Combinators return a
// new Expr and insert non-capturing groups only where operator precedence
// requires them, so fragments can be built and tested in isolation and then
// combined freely:
//
//	year := rex.Digit().Repeat(4).Capture("year")
//	month := rex.Digit().Repeat(2).Capture("month")
//	day := rex.Digit().Repeat(2).Capture("day")
//	date := rex.Seq(year, rex.Re("-"), month, rex.Re("-"), day).All()
//
//	m, err := date.Match("2009-01-23")
//	if err != nil {
//		// the rendered pattern did not compile
//	}
//	if m != nil {
//		fmt.Println(m.Get("month")) // 01
//	}
//
// Matching is delegated to [go.dw1.io/rex/regexp], which runs the rendered
// pattern on coregex or, for constructs such as mode flags, lazy repetition
// and the \Z anchor, on regexp2 in its RE2 mode. Either way a piece matches
// the same text on its own and inside a larger expression. rex never
// interprets patterns itself.
package rex
