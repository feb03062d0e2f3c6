package parser_test

import (
	"reflect"
	"testing"

	"go.creack.net/calc/parser"
)

func FuzzParse(f *testing.F) {
	f.Add("2 + 3 * 4")
	f.Add("-(1.5 / (2 - 2.5))")
	f.Add("--5")
	f.Add("1 / 0")
	f.Add("((((")
	f.Fuzz(func(t *testing.T, s string) {
		first, err := parser.Parse(s)
		if err != nil {
			return
		}
		second, err := parser.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed on the second pass: %s", s, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("Parse(%q) not idempotent", s)
		}
	})
}
