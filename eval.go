package equations

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the significant-digit precision of expressions created
// without a Prec option.
const DefaultPrecision = 7

// Expression is an infix expression with its own numeric context, operator
// and function registries, and variable table. The postfix form is computed
// on first use and cached until the expression text is rewritten. An
// Expression is not safe to use concurrently.
type Expression struct {
	text  string
	nctx  apd.Context
	ops   map[string]*Operator
	funcs map[string]*Function
	vars  map[string]*apd.Decimal
	rpn   []string
}

// Option is an option used when creating an expression.
type Option interface {
	option(e *Expression)
}

type (
	precOpt  uint32
	roundOpt apd.Rounder
	varOpt   struct {
		name string
		val  *apd.Decimal
	}
)

func (o precOpt) option(e *Expression)  { e.nctx.Precision = uint32(o) }
func (o roundOpt) option(e *Expression) { e.nctx.Rounding = apd.Rounder(o) }
func (o varOpt) option(e *Expression)   { e.vars[strings.ToUpper(o.name)] = o.val }

// Prec sets the precision of calculations in significant digits.
func Prec(prec uint32) Option { return precOpt(prec) }

// Rounding sets the rounding mode of calculations.
func Rounding(mode apd.Rounder) Option { return roundOpt(mode) }

// SetVar sets the value of a variable in the expression.
func SetVar(name string, val *apd.Decimal) Option { return varOpt{name, val} }

// New creates an expression instance over text. Without options, the numeric
// context is DefaultPrecision significant digits with half-even rounding. The
// registries hold the built-in catalog and the variable table holds PI, TRUE,
// and FALSE.
func New(text string, opts ...Option) *Expression {
	e := &Expression{
		text:  text,
		nctx:  *apd.BaseContext.WithPrecision(DefaultPrecision),
		ops:   make(map[string]*Operator),
		funcs: make(map[string]*Function),
		vars:  make(map[string]*apd.Decimal),
	}
	e.nctx.Rounding = apd.RoundHalfEven
	e.installBuiltins()
	e.vars["PI"] = mustParse("3.141592653589793")
	e.vars["TRUE"] = apd.New(1, 0)
	e.vars["FALSE"] = apd.New(0, 0)
	for _, opt := range opts {
		opt.option(e)
	}
	return e
}

func mustParse(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic("equations: invalid built-in constant " + s + " (" + err.Error() + ")")
	}
	return d
}

// String returns the current expression text.
func (e *Expression) String() string {
	return e.text
}

// SetPrecision sets the significant-digit precision for subsequent
// evaluations. Returns e for chaining.
func (e *Expression) SetPrecision(prec uint32) *Expression {
	e.nctx.Precision = prec
	return e
}

// SetRounding sets the rounding mode for subsequent evaluations. Returns e
// for chaining.
func (e *Expression) SetRounding(mode apd.Rounder) *Expression {
	e.nctx.Rounding = mode
	return e
}

// AddOperator registers an operator, replacing any prior definition for the
// same symbol. It returns the replaced definition, or nil.
func (e *Expression) AddOperator(op *Operator) *Operator {
	key := strings.ToUpper(op.Symbol)
	prior := e.ops[key]
	e.ops[key] = op
	return prior
}

// AddFunction registers a function, replacing any prior definition for the
// same name. It returns the replaced definition, or nil.
func (e *Expression) AddFunction(fn *Function) *Function {
	key := strings.ToUpper(fn.Name)
	prior := e.funcs[key]
	e.funcs[key] = fn
	return prior
}

// Set sets the value of a variable. Returns e for chaining.
func (e *Expression) Set(name string, val *apd.Decimal) *Expression {
	e.vars[strings.ToUpper(name)] = val
	return e
}

// Lookup returns a copy of the value of a variable, or nil if there is no
// such variable.
func (e *Expression) Lookup(name string) *apd.Decimal {
	v := e.vars[strings.ToUpper(name)]
	if v == nil {
		return nil
	}
	return new(apd.Decimal).Set(v)
}

// SetString sets a variable to a numeric value given as text. If the value is
// not a number, every word-bounded occurrence of name in the expression text
// is instead replaced with the parenthesized value, and the cached postfix
// form is discarded.
func (e *Expression) SetString(name, value string) error {
	if isNumber(value) {
		d, _, err := apd.NewFromString(value)
		if err != nil {
			return err
		}
		e.Set(name, d)
		return nil
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return err
	}
	e.text = re.ReplaceAllString(e.text, "("+value+")")
	e.rpn = nil
	return nil
}

// Vars returns the sorted names of all declared variables.
func (e *Expression) Vars() []string {
	return sortedKeys(e.vars)
}

// Operators returns the sorted symbols of all registered operators.
func (e *Expression) Operators() []string {
	return sortedKeys(e.ops)
}

// Functions returns the sorted names of all registered functions.
func (e *Expression) Functions() []string {
	return sortedKeys(e.funcs)
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Tokens returns a standalone tokenizer over the expression text.
func (e *Expression) Tokens() *Tokenizer {
	return newTokenizer(e.text, e.ops)
}

// RPN returns the postfix form of the expression as a space-joined token
// string.
func (e *Expression) RPN() (string, error) {
	rpn, err := e.rpnTokens()
	if err != nil {
		return "", err
	}
	return strings.Join(rpn, " "), nil
}

// rpnTokens returns the cached postfix sequence, converting and validating
// the expression text on first use. Only rewriting the text discards the
// cache; variable and context changes do not.
func (e *Expression) rpnTokens() ([]string, error) {
	if e.rpn == nil {
		rpn, err := e.shuntingYard(e.text)
		if err != nil {
			return nil, err
		}
		if err := e.validate(rpn); err != nil {
			return nil, err
		}
		e.rpn = rpn
	}
	return e.rpn, nil
}

// stackItem is one element of the evaluation stack: either a decimal value or
// the argument-list marker delimiting a function call's arguments.
type stackItem struct {
	val    *apd.Decimal
	marker bool
}

// Eval evaluates the expression and returns its value with trailing zeros
// stripped. Stripping can leave the value with a positive exponent, so its
// String form may be scientific; use Text('f') for plain notation. Repeated
// calls reuse the cached postfix form.
func (e *Expression) Eval() (*apd.Decimal, error) {
	rpn, err := e.rpnTokens()
	if err != nil {
		return nil, err
	}
	var stack []stackItem
	pop := func() stackItem {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return it
	}
	for _, token := range rpn {
		key := strings.ToUpper(token)
		switch {
		case e.ops[key] != nil:
			if len(stack) < 2 || stack[len(stack)-1].marker || stack[len(stack)-2].marker {
				return nil, &ValidationError{Token: token, Msg: "too many operators or functions"}
			}
			right := pop()
			left := pop()
			r, err := e.ops[key].Eval(&e.nctx, left.val, right.val)
			if err != nil {
				return nil, err
			}
			stack = append(stack, stackItem{val: r})
		case e.vars[key] != nil:
			r := new(apd.Decimal)
			if _, err := e.nctx.Round(r, e.vars[key]); err != nil {
				return nil, err
			}
			stack = append(stack, stackItem{val: r})
		case e.funcs[key] != nil:
			fn := e.funcs[key]
			// Pop arguments back to this call's marker; they come off in
			// reverse call order.
			var args []*apd.Decimal
			for len(stack) > 0 && !stack[len(stack)-1].marker {
				args = append(args, pop().val)
			}
			if len(stack) > 0 {
				pop()
			}
			slices.Reverse(args)
			if fn.Arity != Variadic && len(args) != fn.Arity {
				return nil, &ArityError{Func: token, Want: fn.Arity, Got: len(args)}
			}
			r, err := fn.Eval(&e.nctx, args)
			if err != nil {
				return nil, err
			}
			stack = append(stack, stackItem{val: r})
		case token == "(":
			stack = append(stack, stackItem{marker: true})
		default:
			r := new(apd.Decimal)
			if _, _, err := r.SetString(token); err != nil {
				if isNumber(token) {
					return nil, &SyntaxError{Msg: "invalid number " + strconv.Quote(token)}
				}
				// A bare identifier that resolved to nothing: the converter
				// is permissive about late-bound names, so this is the first
				// chance to reject it.
				return nil, &NameError{Name: token}
			}
			if _, err := e.nctx.Round(r, r); err != nil {
				return nil, err
			}
			stack = append(stack, stackItem{val: r})
		}
	}
	r := pop().val
	r.Reduce(r)
	return r, nil
}
