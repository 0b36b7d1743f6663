package rex_test

import (
	"fmt"

	"go.dw1.io/rex"
)

func Example() {
	year := rex.Digit().Repeat(4).Capture("year")
	month := rex.Digit().Repeat(2).Capture("month")
	day := rex.Digit().Repeat(2).Capture("day")
	date := rex.Seq(year, rex.Re("-"), month, rex.Re("-"), day).All()

	m, err := date.Match("2009-01-23")
	if err != nil || m == nil {
		return
	}

	fmt.Println(m.Get("year"), m.Get("month"), m.Get("day"))
	// Output: 2009 01 23
}

func ExampleExpr_Render() {
	sign := rex.Re("+").Or(rex.Re("-"))
	number := rex.Seq(sign.Optional(), rex.Digits(), rex.Seq(rex.Re("."), rex.Digits()).Optional())

	fmt.Println(number.Render())
	// Output: (?:\+|-)?[0-9]+(?:\.[0-9]+)?
}

func ExampleExpr_Capture() {
	kv := rex.Seq(rex.Word().Capture("key"), rex.Re("="), rex.NonSpaces().Capture("value"))

	m, _ := kv.Match("debug user=gopher level=3")
	fmt.Println(kv.CaptureNames(), m.Get("key"), m.Get("value"))
	// Output: [key value] user gopher
}

func ExampleExpr_IgnoreCase() {
	greeting := rex.Re("hello").IgnoreCase().Then(rex.Re(", world"))

	fmt.Println(greeting)
	for _, s := range []string{"HeLLo, world", "hello, WORLD"} {
		ok, _ := greeting.MatchString(s)
		fmt.Println(s, ok)
	}
	// Output:
	// (?i:hello), world
	// HeLLo, world true
	// hello, WORLD false
}

func ExampleNoneOf() {
	_, err := rex.NoneOf()
	fmt.Println(err)

	quoted := rex.Seq(rex.Re(`"`), rex.None(rex.Chars(`"`)).Many().Capture("body"), rex.Re(`"`))
	m, _ := quoted.Match(`say "hi" twice`)
	fmt.Println(m.Get("body"))
	// Output:
	// rex: empty character class
	// hi
}
