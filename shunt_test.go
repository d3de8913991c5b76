package equations

import (
	"errors"
	"strings"
	"testing"
)

func TestRPN(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"number", "7", "7"},
		{"add", "1+2", "1 2 +"},
		{"precedence", "2+3*4", "2 3 4 * +"},
		{"parens", "(1+2)*3", "1 2 + 3 *"},
		{"left assoc", "8-3-2", "8 3 - 2 -"},
		{"right assoc", "2^3^2", "2 3 2 ^ ^"},
		{"call", "SIN(30)", "( 30 SIN"},
		{"variadic call", "MAX(1,2,3)", "( 1 2 3 MAX"},
		{"nested call", "SQRT(ABS(-4))", "( ( -4 ABS SQRT"},
		{"call in expression", "1+SQRT(4)*2", "1 ( 4 SQRT 2 * +"},
		{"condition argument", "IF(1>2,3,4)", "( 1 2 > 3 4 IF"},
		{"variable", "PI*2", "PI 2 *"},
		{"unbound name", "x+1", "x 1 +"},
		{"unary minus", "3*-2", "3 -2 *"},
		{"comparison", "1+2>3", "1 2 + 3 >"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := New(c.src).RPN()
			if err != nil {
				t.Fatalf("convert %q: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("convert %q: got %q, want %q", c.src, got, c.want)
			}
		})
	}
}

func TestRPNSyntaxErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"unclosed paren", "(1+2", "mismatched parentheses"},
		{"extra close", "1+2)", "mismatched parentheses"},
		{"number before paren", "2(3)", "missing operator"},
		{"stray separator", ",1", "misplaced separator"},
		{"separator outside call", "MAX(1),2", "misplaced separator in call to MAX"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.src).RPN()
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("convert %q: got %v, want a SyntaxError", c.src, err)
			}
			if !strings.Contains(serr.Error(), c.msg) {
				t.Errorf("convert %q: got %q, want message containing %q", c.src, serr.Error(), c.msg)
			}
		})
	}
}

func TestRPNCached(t *testing.T) {
	e := New("2+3*4")
	first, err := e.rpnTokens()
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.rpnTokens()
	if err != nil {
		t.Fatal(err)
	}
	if &first[0] != &second[0] {
		t.Error("conversion ran again for an unchanged expression")
	}
}
