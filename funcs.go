package equations

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/apd/v3"
)

// Operator is a binary infix operator: a symbol with precedence,
// associativity, and an evaluation rule. Symbols are case-insensitive within
// a registry.
type Operator struct {
	// Symbol is the operator's spelling in expressions.
	Symbol string
	// Precedence orders operators; higher binds tighter.
	Precedence int
	// LeftAssoc is whether chains of equal precedence group to the left.
	LeftAssoc bool
	// Eval applies the operator under the numeric context.
	Eval func(nctx *apd.Context, left, right *apd.Decimal) (*apd.Decimal, error)
}

// Variadic marks a Function as accepting any number of arguments.
const Variadic = -1

// Function is a named function with a fixed or variadic argument count and an
// evaluation rule over the ordered argument list. Names are case-insensitive
// within a registry.
type Function struct {
	// Name is the function's spelling in expressions.
	Name string
	// Arity is the declared argument count, or Variadic.
	Arity int
	// Eval applies the function under the numeric context.
	Eval func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error)
}

// arith adapts an apd context method to an operator rule, reporting numeric
// failures (division by zero and the like) as DomainErrors naming the symbol.
func arith(sym string, op func(c *apd.Context, d, x, y *apd.Decimal) (apd.Condition, error)) func(*apd.Context, *apd.Decimal, *apd.Decimal) (*apd.Decimal, error) {
	return func(nctx *apd.Context, a, b *apd.Decimal) (*apd.Decimal, error) {
		r := new(apd.Decimal)
		if _, err := op(nctx, r, a, b); err != nil {
			return nil, &DomainError{Func: sym, Msg: err.Error()}
		}
		return r, nil
	}
}

// compare adapts a predicate over Cmp results to an operator rule yielding
// exactly 1 or 0.
func compare(ok func(int) bool) func(*apd.Context, *apd.Decimal, *apd.Decimal) (*apd.Decimal, error) {
	return func(nctx *apd.Context, a, b *apd.Decimal) (*apd.Decimal, error) {
		return truth(ok(a.Cmp(b))), nil
	}
}

// monadicFloat wraps a float64 function into a single-argument Function. The
// result carries only float64 precision, rounded into the context.
func monadicFloat(name string, f func(float64) float64) *Function {
	return &Function{Name: name, Arity: 1, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		return fromFloat(nctx, f(toFloat(args[0])), name)
	}}
}

// aggregate wraps a pairwise selection into a variadic Function requiring at
// least one argument.
func aggregate(name string, keep func(cmp int) bool) *Function {
	return &Function{Name: name, Arity: Variadic, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		if len(args) == 0 {
			return nil, &DomainError{Func: name, Msg: "requires at least one argument"}
		}
		best := args[0]
		for _, a := range args[1:] {
			if keep(a.Cmp(best)) {
				best = a
			}
		}
		return best, nil
	}}
}

func deg2rad(x float64) float64 { return x / 180 * math.Pi }
func rad2deg(x float64) float64 { return x * 180 / math.Pi }

// installBuiltins populates a fresh instance's registries with the built-in
// operator and function catalog. The == and <> aliases delegate to whatever
// rule is registered for = and != at call time, so replacing a canonical
// operator carries its aliases along.
func (e *Expression) installBuiltins() {
	e.AddOperator(&Operator{Symbol: "+", Precedence: 20, LeftAssoc: true, Eval: arith("+", (*apd.Context).Add)})
	e.AddOperator(&Operator{Symbol: "-", Precedence: 20, LeftAssoc: true, Eval: arith("-", (*apd.Context).Sub)})
	e.AddOperator(&Operator{Symbol: "*", Precedence: 30, LeftAssoc: true, Eval: arith("*", (*apd.Context).Mul)})
	e.AddOperator(&Operator{Symbol: "/", Precedence: 30, LeftAssoc: true, Eval: arith("/", (*apd.Context).Quo)})
	e.AddOperator(&Operator{Symbol: "%", Precedence: 30, LeftAssoc: true, Eval: arith("%", (*apd.Context).Rem)})
	e.AddOperator(&Operator{Symbol: "^", Precedence: 40, LeftAssoc: false, Eval: decimalPow})

	e.AddOperator(&Operator{Symbol: ">", Precedence: 10, LeftAssoc: false, Eval: compare(func(c int) bool { return c > 0 })})
	e.AddOperator(&Operator{Symbol: ">=", Precedence: 10, LeftAssoc: false, Eval: compare(func(c int) bool { return c >= 0 })})
	e.AddOperator(&Operator{Symbol: "<", Precedence: 10, LeftAssoc: false, Eval: compare(func(c int) bool { return c < 0 })})
	e.AddOperator(&Operator{Symbol: "<=", Precedence: 10, LeftAssoc: false, Eval: compare(func(c int) bool { return c <= 0 })})

	e.AddOperator(&Operator{Symbol: "=", Precedence: 7, LeftAssoc: false, Eval: compare(func(c int) bool { return c == 0 })})
	e.AddOperator(&Operator{Symbol: "!=", Precedence: 7, LeftAssoc: false, Eval: compare(func(c int) bool { return c != 0 })})
	e.AddOperator(&Operator{Symbol: "==", Precedence: 7, LeftAssoc: false,
		Eval: func(nctx *apd.Context, a, b *apd.Decimal) (*apd.Decimal, error) {
			return e.ops["="].Eval(nctx, a, b)
		}})
	e.AddOperator(&Operator{Symbol: "<>", Precedence: 7, LeftAssoc: false,
		Eval: func(nctx *apd.Context, a, b *apd.Decimal) (*apd.Decimal, error) {
			return e.ops["!="].Eval(nctx, a, b)
		}})

	e.AddOperator(&Operator{Symbol: "&&", Precedence: 4, LeftAssoc: false,
		Eval: func(nctx *apd.Context, a, b *apd.Decimal) (*apd.Decimal, error) {
			return truth(!a.IsZero() && !b.IsZero()), nil
		}})
	e.AddOperator(&Operator{Symbol: "||", Precedence: 2, LeftAssoc: false,
		Eval: func(nctx *apd.Context, a, b *apd.Decimal) (*apd.Decimal, error) {
			return truth(!a.IsZero() || !b.IsZero()), nil
		}})

	// Trigonometry works in degrees; the hyperbolic family in radians.
	e.AddFunction(monadicFloat("SIN", func(x float64) float64 { return math.Sin(deg2rad(x)) }))
	e.AddFunction(monadicFloat("COS", func(x float64) float64 { return math.Cos(deg2rad(x)) }))
	e.AddFunction(monadicFloat("TAN", func(x float64) float64 { return math.Tan(deg2rad(x)) }))
	e.AddFunction(monadicFloat("ASIN", func(x float64) float64 { return rad2deg(math.Asin(x)) }))
	e.AddFunction(monadicFloat("ACOS", func(x float64) float64 { return rad2deg(math.Acos(x)) }))
	e.AddFunction(monadicFloat("ATAN", func(x float64) float64 { return rad2deg(math.Atan(x)) }))
	e.AddFunction(monadicFloat("SINH", math.Sinh))
	e.AddFunction(monadicFloat("COSH", math.Cosh))
	e.AddFunction(monadicFloat("TANH", math.Tanh))
	e.AddFunction(monadicFloat("RAD", deg2rad))
	e.AddFunction(monadicFloat("DEG", rad2deg))
	e.AddFunction(monadicFloat("LOG", math.Log))
	e.AddFunction(monadicFloat("LOG10", math.Log10))

	e.AddFunction(&Function{Name: "NOT", Arity: 1, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		return truth(args[0].IsZero()), nil
	}})
	e.AddFunction(&Function{Name: "IF", Arity: 3, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		if !args[0].IsZero() {
			return args[1], nil
		}
		return args[2], nil
	}})
	e.AddFunction(&Function{Name: "RANDOM", Arity: 0, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		return fromFloat(nctx, rand.Float64(), "RANDOM")
	}})
	e.AddFunction(aggregate("MAX", func(cmp int) bool { return cmp > 0 }))
	e.AddFunction(aggregate("MIN", func(cmp int) bool { return cmp < 0 }))
	e.AddFunction(&Function{Name: "ABS", Arity: 1, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		r := new(apd.Decimal)
		if _, err := nctx.Abs(r, args[0]); err != nil {
			return nil, &DomainError{Func: "ABS", Msg: err.Error()}
		}
		return r, nil
	}})
	e.AddFunction(&Function{Name: "ROUND", Arity: 2, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		// The digit count truncates toward zero if fractional.
		var integ, frac apd.Decimal
		args[1].Modf(&integ, &frac)
		digits, err := integ.Int64()
		if err != nil {
			return nil, &DomainError{Func: "ROUND", Msg: "digit count out of range"}
		}
		r := new(apd.Decimal)
		if _, err := nctx.Quantize(r, args[0], int32(-digits)); err != nil {
			return nil, &DomainError{Func: "ROUND", Msg: err.Error()}
		}
		return r, nil
	}})
	e.AddFunction(&Function{Name: "FLOOR", Arity: 1, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		r := new(apd.Decimal)
		if _, err := nctx.Floor(r, args[0]); err != nil {
			return nil, &DomainError{Func: "FLOOR", Msg: err.Error()}
		}
		return r, nil
	}})
	e.AddFunction(&Function{Name: "CEILING", Arity: 1, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		r := new(apd.Decimal)
		if _, err := nctx.Ceil(r, args[0]); err != nil {
			return nil, &DomainError{Func: "CEILING", Msg: err.Error()}
		}
		return r, nil
	}})
	e.AddFunction(&Function{Name: "SQRT", Arity: 1, Eval: func(nctx *apd.Context, args []*apd.Decimal) (*apd.Decimal, error) {
		return decimalSqrt(nctx, args[0])
	}})
}
