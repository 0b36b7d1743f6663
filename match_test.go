package rex

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func dateExpr() *Expr {
	year := Digit().Repeat(4).Capture("year")
	month := Digit().Repeat(2).Capture("month")
	day := Digit().Repeat(2).Capture("day")

	return Seq(year, Re("-"), month, Re("-"), day).All()
}

func TestMatchDate(t *testing.T) {
	date := dateExpr()

	m, err := date.Match("2009-01-23")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m == nil {
		t.Fatalf("Match %s: expected a match", date)
	}

	want := map[string]string{"year": "2009", "month": "01", "day": "23"}
	for name, v := range want {
		got, ok, err := m.Lookup(name)
		if err != nil || !ok || got != v {
			t.Fatalf("Lookup(%q): got %q ok=%v err=%v, want %q", name, got, ok, err, v)
		}
	}
	if got := m.Text(); got != "2009-01-23" {
		t.Fatalf("Text: got %q", got)
	}

	for _, s := range []string{"20096-01-23", "2009-01-234", "x2009-01-23", "2009-01-23\n"} {
		m, err := date.Match(s)
		if err != nil {
			t.Fatalf("Match(%q): %v", s, err)
		}
		if m != nil {
			t.Fatalf("Match(%q): unexpected match %q", s, m.Text())
		}
	}
}

func TestMatchCaptureOrder(t *testing.T) {
	e := Re("a").Capture("y").Then(Re("b")).Capture("x")

	if got := e.CaptureNames(); !slices.Equal(got, []string{"x", "y"}) {
		t.Fatalf("CaptureNames: got %v", got)
	}

	m, err := e.Match("zab")
	if err != nil || m == nil {
		t.Fatalf("Match: m=%v err=%v", m, err)
	}

	if start, end, ok, err := m.Index("x"); err != nil || !ok || start != 1 || end != 3 {
		t.Fatalf("Index(x): %d..%d ok=%v err=%v", start, end, ok, err)
	}
	if start, end, ok, err := m.Index("y"); err != nil || !ok || start != 1 || end != 2 {
		t.Fatalf("Index(y): %d..%d ok=%v err=%v", start, end, ok, err)
	}
}

func TestMatchLiteralRoundTrip(t *testing.T) {
	for _, s := range []string{"a.b*c", "(x)|[y]", "1+1=2?", `C:\dir\file.txt`, "$^{}"} {
		e := Re(s)

		if ok, err := e.All().MatchString(s); err != nil || !ok {
			t.Fatalf("Re(%q).All(): ok=%v err=%v", s, ok, err)
		}
		if ok, err := e.MatchString(s); err != nil || !ok {
			t.Fatalf("Re(%q): ok=%v err=%v", s, ok, err)
		}
	}

	dot := Re("a.b*c").All()
	for _, s := range []string{"aXbc", "a.bbc", "a.c", "a.b*cc"} {
		if ok, err := dot.MatchString(s); err != nil || ok {
			t.Fatalf("Re(%q) matched %q", "a.b*c", s)
		}
	}
}

func TestMatchIgnoreCase(t *testing.T) {
	abc := Re("abc")

	for _, s := range []string{"ABC", "abc", "aBc"} {
		if ok, err := abc.IgnoreCase().MatchString(s); err != nil || !ok {
			t.Fatalf("IgnoreCase on %q: ok=%v err=%v", s, ok, err)
		}
	}

	if ok, _ := abc.MatchString("ABC"); ok {
		t.Fatalf("case-sensitive literal matched %q", "ABC")
	}
	if ok, _ := abc.MatchString("abc"); !ok {
		t.Fatalf("case-sensitive literal did not match %q", "abc")
	}
}

func TestFlagsDoNotLeakIntoSiblings(t *testing.T) {
	alt := Re("a").IgnoreCase().Or(Re("b")).All()
	for s, want := range map[string]bool{"a": true, "A": true, "b": true, "B": false} {
		if ok, err := alt.MatchString(s); err != nil || ok != want {
			t.Fatalf("%s on %q: ok=%v err=%v want %v", alt, s, ok, err, want)
		}
	}

	seq := Seq(Re("a").IgnoreCase(), Re("b")).All()
	for s, want := range map[string]bool{"ab": true, "Ab": true, "aB": false, "AB": false} {
		if ok, err := seq.MatchString(s); err != nil || ok != want {
			t.Fatalf("%s on %q: ok=%v err=%v want %v", seq, s, ok, err, want)
		}
	}

	// A flag on the outer expression reaches text embedded in it.
	outer := Seq(Re("a"), Re("b")).IgnoreCase().Then(Re("c")).All()
	for s, want := range map[string]bool{"ABc": true, "abC": false} {
		if ok, err := outer.MatchString(s); err != nil || ok != want {
			t.Fatalf("%s on %q: ok=%v err=%v want %v", outer, s, ok, err, want)
		}
	}
}

func TestMatchMultiline(t *testing.T) {
	subject := "first\nabc\nlast"
	line := Re("abc").Line()

	if ok, err := line.MatchString(subject); err != nil || ok {
		t.Fatalf("%s on %q: ok=%v err=%v", line, subject, ok, err)
	}
	if ok, err := line.Multiline().MatchString(subject); err != nil || !ok {
		t.Fatalf("%s on %q: ok=%v err=%v", line.Multiline(), subject, ok, err)
	}
}

func TestMatchEndAnchors(t *testing.T) {
	abc := Re("abc")

	cases := []struct {
		expr    *Expr
		subject string
		want    bool
	}{
		{abc.All(), "abc", true},
		{abc.All(), "abc\n", false},
		{abc.AlmostAll(), "abc", true},
		{abc.AlmostAll(), "abc\n", true},
		{abc.AlmostAll(), "abc\n\n", false},
		{abc.Begin(), "abcd", true},
		{abc.Begin(), "xabc", false},
		{abc.VeryEnd(), "xabc", true},
	}

	for _, tc := range cases {
		if ok, err := tc.expr.MatchString(tc.subject); err != nil || ok != tc.want {
			t.Fatalf("%s on %q: ok=%v err=%v want %v", tc.expr, tc.subject, ok, err, tc.want)
		}
	}
}

func TestMatchRepeatBounds(t *testing.T) {
	e := Any(Range('a', 'z')).Repeat(2, 4).All()

	for n := 1; n <= 5; n++ {
		want := n >= 2 && n <= 4
		s := strings.Repeat("q", n)
		if ok, err := e.MatchString(s); err != nil || ok != want {
			t.Fatalf("%s on %q: ok=%v err=%v want %v", e, s, ok, err, want)
		}
	}

	exact := Digit().Repeat(3).All()
	for s, want := range map[string]bool{"12": false, "123": true, "1234": false} {
		if ok, err := exact.MatchString(s); err != nil || ok != want {
			t.Fatalf("%s on %q: ok=%v err=%v want %v", exact, s, ok, err, want)
		}
	}
}

func TestMatchLazyAndGreedy(t *testing.T) {
	tag := func(body *Expr) *Expr {
		return Seq(Re("<"), body.Capture("tag"), Re(">"))
	}

	m, err := tag(AnyChar().ManyLazy()).Match("<a><b>")
	if err != nil || m == nil {
		t.Fatalf("lazy Match: m=%v err=%v", m, err)
	}
	if got := m.Get("tag"); got != "a" {
		t.Fatalf("lazy tag: got %q", got)
	}

	m, err = tag(AnyChar().Many()).Match("<a><b>")
	if err != nil || m == nil {
		t.Fatalf("greedy Match: m=%v err=%v", m, err)
	}
	if got := m.Get("tag"); got != "a><b" {
		t.Fatalf("greedy tag: got %q", got)
	}
}

func TestAnchoringKeepsMeaning(t *testing.T) {
	tag := Seq(Re("<"), AnyChar().ManyLazy().Capture("tag"), Re(">"))

	cases := []struct {
		expr     *Expr
		subjects []string
	}{
		{Re("a").EOL(), []string{"a", "a\n", "a\nb"}},
		{Re("caf").WordBoundary(), []string{"caf", "café", "cafe", "caf!"}},
		{Seq(Re("caf"), Break()), []string{"café", "cafe"}},
		{Re("abc").IgnoreCase(), []string{"ABC", "aBc", "abd"}},
		{Re("a").IgnoreCase().Then(Re("$")).EOL(), []string{"A$", "A$\n"}},
		{tag, []string{"<a><b>", "<>"}},
	}

	for _, tc := range cases {
		anchored := Null().Begin().Then(tc.expr)
		for _, s := range tc.subjects {
			m1, err1 := tc.expr.Match(s)
			m2, err2 := anchored.Match(s)
			if err1 != nil || err2 != nil {
				t.Fatalf("Match(%q): %v / %v", s, err1, err2)
			}
			if (m1 == nil) != (m2 == nil) {
				t.Fatalf("%s and %s disagree on %q: %v vs %v", tc.expr, anchored, s, m1 != nil, m2 != nil)
			}
			if m1 != nil && m1.Text() != m2.Text() {
				t.Fatalf("%s and %s disagree on %q: %q vs %q", tc.expr, anchored, s, m1.Text(), m2.Text())
			}
		}
	}

	for _, e := range []*Expr{Re("a").Repeat(2000), Re("a").Repeat(2000).Begin()} {
		if _, err := e.Compile(); err == nil {
			t.Fatalf("Compile(%.20s...): expected repeat limit error", e)
		}
	}
}

func TestDeferredEngineError(t *testing.T) {
	for _, e := range []*Expr{Re("x").Repeat(5, 2), Re("x").Repeat(5, 2).IgnoreCase()} {
		if _, err := e.Compile(); err == nil {
			t.Fatalf("Compile(%s): expected engine error", e)
		}
		if m, err := e.Match("xxxxx"); err == nil || m != nil {
			t.Fatalf("Match(%s): m=%v err=%v", e, m, err)
		}
		if _, err := e.MatchString("xxxxx"); err == nil {
			t.Fatalf("MatchString(%s): expected engine error", e)
		}
	}
}

func TestLookupUnknownVersusAbsent(t *testing.T) {
	e := Re("a").Capture("a").Or(Re("b").Capture("b"))

	m, err := e.Match("b")
	if err != nil || m == nil {
		t.Fatalf("Match: m=%v err=%v", m, err)
	}

	if got, ok, err := m.Lookup("a"); err != nil || ok || got != "" {
		t.Fatalf("Lookup(a): got %q ok=%v err=%v, want absent", got, ok, err)
	}
	if got, ok, err := m.Lookup("b"); err != nil || !ok || got != "b" {
		t.Fatalf("Lookup(b): got %q ok=%v err=%v", got, ok, err)
	}
	if _, ok, err := m.Lookup("c"); ok || !errors.Is(err, ErrUnknownCapture) {
		t.Fatalf("Lookup(c): ok=%v err=%v, want ErrUnknownCapture", ok, err)
	}

	if got := m.Get("a"); got != "" {
		t.Fatalf("Get(a): got %q", got)
	}

	caps := m.Captures()
	if len(caps) != 1 || caps["b"] != "b" {
		t.Fatalf("Captures: got %v", caps)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("Get(c): expected panic")
		}
	}()
	m.Get("c")
}

func TestMatchDuplicateNameResolvesFirst(t *testing.T) {
	e := Seq(Digit().Capture("n"), Re("-"), Digit().Capture("n"))

	m, err := e.Match("1-2")
	if err != nil || m == nil {
		t.Fatalf("Match: m=%v err=%v", m, err)
	}
	if got := m.Get("n"); got != "1" {
		t.Fatalf("Get(n): got %q want %q", got, "1")
	}
}

func TestNoMatchIsNotAnError(t *testing.T) {
	m, err := Re("xyz").Match("abc")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m != nil {
		t.Fatalf("Match: expected nil, got %q", m.Text())
	}
}

func TestFindAll(t *testing.T) {
	e := Digits().Capture("n")

	all, err := e.FindAll("a1b22c333", -1)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	var got []string
	for _, m := range all {
		got = append(got, m.Get("n"))
	}
	if !slices.Equal(got, []string{"1", "22", "333"}) {
		t.Fatalf("FindAll: got %v", got)
	}

	limited, err := e.FindAll("a1b22c333", 2)
	if err != nil || len(limited) != 2 {
		t.Fatalf("FindAll limit: got %d err=%v", len(limited), err)
	}
}

func TestMatchMarshalJSON(t *testing.T) {
	e := Seq(Re("a").Capture("a"), Re("b").Capture("b").Optional())

	m, err := e.Match("xa")
	if err != nil || m == nil {
		t.Fatalf("Match: m=%v err=%v", m, err)
	}

	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	const want = `{"text":"a","start":1,"end":2,"captures":{"a":"a","b":null}}`
	if string(data) != want {
		t.Fatalf("MarshalJSON: got %s want %s", data, want)
	}
}

func TestCompileIsCached(t *testing.T) {
	e := dateExpr()

	first, err := e.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	second, _ := e.Compile()
	if first != second {
		t.Fatalf("Compile: expected cached Regexp")
	}
	if first.String() != e.Render() {
		t.Fatalf("Compile: pattern %q, rendered %q", first.String(), e.Render())
	}
}
