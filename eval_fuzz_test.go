package equations_test

import (
	"testing"

	"github.com/zephyrtronium/equations"
)

// FuzzEval checks that no input, however malformed, makes evaluation panic or
// return without either a value or an error.
func FuzzEval(f *testing.F) {
	f.Add("1+2*3")
	f.Add("(1+2)*3")
	f.Add("SQRT(2)")
	f.Add("MAX(1,2,3)")
	f.Add("IF(1>2,3,4)")
	f.Add("x+1")
	f.Add("2^-2")
	f.Add("-5")
	f.Add("3*-2")
	f.Add("1 ~ 2")
	f.Add("((")
	f.Add(",")
	f.Add("")
	f.Add("1e")
	f.Add("MAX(+)")
	f.Add("PI*pi")
	f.Fuzz(func(t *testing.T, src string) {
		e := equations.New(src)
		r, err := e.Eval()
		if err == nil && r == nil {
			t.Errorf("eval %q: no result and no error", src)
		}
		if err != nil {
			return
		}
		// A successful evaluation is deterministic for an expression with no
		// RANDOM call, and the cached conversion must agree with a fresh one.
		rpn, err := e.RPN()
		if err != nil {
			t.Errorf("eval %q succeeded but conversion failed: %v", src, err)
		}
		again, err := equations.New(src).RPN()
		if err != nil {
			t.Errorf("fresh conversion of %q failed: %v", src, err)
		}
		if rpn != again {
			t.Errorf("conversion of %q is unstable: %q then %q", src, rpn, again)
		}
	})
}
