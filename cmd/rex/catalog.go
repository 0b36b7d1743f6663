package main

import (
	"slices"

	"go.dw1.io/rex"
)

var (
	alnum = []rex.ClassSpec{rex.Range('a', 'z'), rex.Range('A', 'Z'), rex.Range('0', '9')}

	catalog = map[string]func() *rex.Expr{
		"date":     date,
		"time":     clock,
		"ipv4":     ipv4,
		"hexcolor": hexColor,
		"email":    email,
		"semver":   semver,
		"kv":       keyValue,
	}
)

func catalogNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

func alnumWith(extra string) *rex.Expr {
	return rex.Any(append(slices.Clone(alnum), rex.Chars(extra))...)
}

func date() *rex.Expr {
	return rex.Seq(
		rex.Digit().Repeat(4).Capture("year"),
		rex.Re("-"),
		rex.Digit().Repeat(2).Capture("month"),
		rex.Re("-"),
		rex.Digit().Repeat(2).Capture("day"),
	).WordBoundary()
}

func clock() *rex.Expr {
	two := rex.Digit().Repeat(2)

	return rex.Seq(
		two.Capture("hour"),
		rex.Re(":"),
		two.Capture("minute"),
		rex.Re(":").Then(two.Capture("second")).Optional(),
	).WordBoundary()
}

func ipv4() *rex.Expr {
	octet := rex.Digit().Repeat(1, 3)

	return rex.Seq(
		octet.Capture("a"), rex.Re("."),
		octet.Capture("b"), rex.Re("."),
		octet.Capture("c"), rex.Re("."),
		octet.Capture("d"),
	).WordBoundary()
}

func hexColor() *rex.Expr {
	return rex.Re("#").Then(
		rex.HexDigit().Repeat(6).Or(rex.HexDigit().Repeat(3)).Capture("rgb"),
	).Then(rex.Break())
}

func email() *rex.Expr {
	label := alnumWith("-").OneOrMore()

	return rex.Seq(
		alnumWith("._%+-").OneOrMore().Capture("user"),
		rex.Re("@"),
		label.Then(rex.Re(".").Then(label).OneOrMore()).Capture("domain"),
	)
}

func semver() *rex.Expr {
	return rex.Seq(
		rex.Re("v").Optional(),
		rex.Digits().Capture("major"),
		rex.Re("."),
		rex.Digits().Capture("minor"),
		rex.Re("."),
		rex.Digits().Capture("patch"),
		rex.Re("-").Then(alnumWith(".-").OneOrMore().Capture("pre")).Optional(),
	).WordBoundary()
}

func keyValue() *rex.Expr {
	return rex.Seq(rex.Word().Capture("key"), rex.Re("="), rex.NonSpaces().Capture("value"))
}
