package equations

import (
	"errors"
	"io"
	"slices"
	"testing"
)

func tokens(t *testing.T, src string) []string {
	t.Helper()
	tk := New(src).Tokens()
	var out []string
	for tk.HasNext() {
		tok, err := tk.Next()
		if err != nil {
			t.Fatalf("tokenize %q: %v", src, err)
		}
		out = append(out, tok)
	}
	return out
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{"add", "1+2", []string{"1", "+", "2"}},
		{"spaced", " 1 + 2 ", []string{"1", "+", "2"}},
		{"decimal", "3.75*2", []string{"3.75", "*", "2"}},
		{"exponent", "1e-3+2", []string{"1e-3", "+", "2"}},
		{"leading minus", "-5+3", []string{"-5", "+", "3"}},
		{"minus after operator", "3*-2", []string{"3", "*", "-2"}},
		{"spaced unary minus", "3 * -2", []string{"3", "*", "-2"}},
		{"double minus", "2--3", []string{"2", "-", "-3"}},
		{"binary minus", "5-3", []string{"5", "-", "3"}},
		{"call", "SIN(45)", []string{"SIN", "(", "45", ")"}},
		{"call args", "MAX(1,2)", []string{"MAX", "(", "1", ",", "2", ")"}},
		{"identifier", "a_1 + b", []string{"a_1", "+", "b"}},
		{"multichar operator", "1>=2", []string{"1", ">=", "2"}},
		{"angle inequality", "1<>2", []string{"1", "<>", "2"}},
		{"logic", "1&&0||1", []string{"1", "&&", "0", "||", "1"}},
		{"minus after paren", "(-3)", []string{"(", "-3", ")"}},
		{"minus after comma", "MAX(1,-2)", []string{"MAX", "(", "1", ",", "-2", ")"}},
		{"power", "2^-2", []string{"2", "^", "-2"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := tokens(t, c.src)
			if !slices.Equal(got, c.want) {
				t.Errorf("tokenize %q: got %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestTokenizeUnknownOperator(t *testing.T) {
	tk := New("1 ~ 2").Tokens()
	if _, err := tk.Next(); err != nil {
		t.Fatalf("first token: %v", err)
	}
	_, err := tk.Next()
	var lerr *LexError
	if !errors.As(err, &lerr) {
		t.Fatalf("got %v, want a LexError", err)
	}
	if lerr.Operator != "~" {
		t.Errorf("got operator %q, want %q", lerr.Operator, "~")
	}
	if lerr.Pos() != 3 {
		t.Errorf("got column %d, want 3", lerr.Pos())
	}
}

func TestTokenizeEOF(t *testing.T) {
	tk := New("7").Tokens()
	if _, err := tk.Next(); err != nil {
		t.Fatalf("first token: %v", err)
	}
	if tk.HasNext() {
		t.Error("HasNext after last token")
	}
	if _, err := tk.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestIsNumber(t *testing.T) {
	cases := []struct {
		tok  string
		want bool
	}{
		{"12", true},
		{"1.5", true},
		{"-2", true},
		{"1e-3", true},
		{"2E+6", true},
		{"", false},
		{"-", false},
		{"+", false},
		{"e3", false},
		{"x", false},
		{"1a", false},
	}
	for _, c := range cases {
		if got := isNumber(c.tok); got != c.want {
			t.Errorf("isNumber(%q) = %t, want %t", c.tok, got, c.want)
		}
	}
}
