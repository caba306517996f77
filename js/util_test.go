package js

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestIsIdentifierName(t *testing.T) {
	test.That(t, IsIdentifierName("a"))
	test.That(t, IsIdentifierName("$_a1"))
	test.That(t, IsIdentifierName("été"))
	test.That(t, IsIdentifierName("if"), "keywords are identifier names")
	test.That(t, !IsIdentifierName(""))
	test.That(t, !IsIdentifierName("1a"))
	test.That(t, !IsIdentifierName("a-b"))
	test.That(t, !IsIdentifierName("a\xff"))
	test.That(t, !IsIdentifierName("\\u0061"), "escapes are not decoded")
}

func TestIsReservedWord(t *testing.T) {
	var tests = []struct {
		name     string
		strict   bool
		reserved bool
	}{
		{"if", false, true},
		{"class", false, true},
		{"enum", false, true},
		{"let", false, false},
		{"let", true, true},
		{"yield", true, true},
		{"static", true, true},
		{"async", true, false},
		{"of", true, false},
		{"foo", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, IsReservedWord(tt.name, tt.strict), tt.reserved)
		})
	}
}

func TestIsSimpleTarget(t *testing.T) {
	test.That(t, isSimpleTarget(&Var{Name: "a"}))
	test.That(t, isSimpleTarget(&DotExpr{X: &Var{Name: "a"}, Y: &Var{Name: "b"}}))
	test.That(t, isSimpleTarget(&GroupExpr{X: &IndexExpr{X: &Var{Name: "a"}, Index: &NumberExpr{}}}))
	test.That(t, !isSimpleTarget(&GroupExpr{X: &NumberExpr{}}))
	test.That(t, !isSimpleTarget(&CallExpr{X: &Var{Name: "a"}}))
	test.That(t, !isSimpleTarget(nil))
}
