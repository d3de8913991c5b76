package equations_test

import (
	"fmt"
	"log"

	"github.com/cockroachdb/apd/v3"

	"github.com/zephyrtronium/equations"
)

func Example() {
	e := equations.New("(1+2)*3")
	r, err := e.Eval()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(r)
	// Output: 9
}

func ExampleExpression_RPN() {
	e := equations.New("2+3*4")
	rpn, err := e.RPN()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rpn)
	// Output: 2 3 4 * +
}

func ExampleExpression_Set() {
	e := equations.New("x^2+1")
	r, err := e.Set("x", apd.New(3, 0)).Eval()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(r.Text('f'))
	// Output: 10
}

func ExampleExpression_SetString() {
	e := equations.New("cost + tax")
	e.SetString("tax", "cost*0.1")
	e.SetString("cost", "100")
	r, err := e.Eval()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(e)
	fmt.Println(r.Text('f'))
	// Output:
	// cost + (cost*0.1)
	// 110
}

func ExamplePrec() {
	e := equations.New("SQRT(2)", equations.Prec(20))
	r, err := e.Eval()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(r)
	// Output: 1.4142135623730950488
}
