package rex

import "testing"

func TestPrebuiltRender(t *testing.T) {
	cases := []struct {
		want string
		expr *Expr
	}{
		{"[0-9]", Digit()},
		{"[0-9]+", Digits()},
		{"[0-9a-fA-F]", HexDigit()},
		{"[0-9a-fA-F]+", HexDigits()},
		{`[\t\n\f\r ]`, Space()},
		{`[\t\n\f\r ]+`, Spaces()},
		{`[^\t\n\f\r ]`, NonSpace()},
		{`[^\t\n\f\r ]+`, NonSpaces()},
		{"[0-9A-Za-z_]", WordChar()},
		{"[0-9A-Za-z_]+", Word()},
		{`\b`, Break()},
		{".", AnyChar()},
	}

	for _, tc := range cases {
		if got := tc.expr.Render(); got != tc.want {
			t.Fatalf("Render: got %q want %q", got, tc.want)
		}
	}
}

func TestPrebuiltAreShared(t *testing.T) {
	if Digit() != Digit() || Word() != Word() {
		t.Fatalf("prebuilt expressions should be initialized once")
	}
}

func TestPrebuiltMatchASCIIOnly(t *testing.T) {
	cases := []struct {
		expr    *Expr
		subject string
		want    bool
	}{
		{Digits().All(), "0123456789", true},
		{Digits().All(), "٣", false},
		{Word().All(), "snake_case9", true},
		{Word().All(), "naïve", false},
		{Spaces().All(), " \t\r\n", true},
		{HexDigits().All(), "DeadBeef", true},
		{HexDigits().All(), "xyz", false},
		{Seq(Break(), Re("go"), Break()), "let's go now", true},
		{Seq(Break(), Re("go"), Break()), "gopher", false},
	}

	for _, tc := range cases {
		if ok, err := tc.expr.MatchString(tc.subject); err != nil || ok != tc.want {
			t.Fatalf("%s on %q: ok=%v err=%v want %v", tc.expr, tc.subject, ok, err, tc.want)
		}
	}
}
