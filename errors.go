package equations

import "strconv"

// LexError indicates a character run that does not match any registered
// operator. It implements InputError.
type LexError struct {
	// Operator is the run of characters that matched nothing.
	Operator string
	// Col is the 1-based character position of the start of the run.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *LexError) Pos() int {
	return err.Col
}

// SyntaxError indicates mismatched parentheses, a misplaced argument
// separator, or a literal adjacent to an opening parenthesis with no operator
// between them. It implements InputError.
type SyntaxError struct {
	// Col is the character position at which the error was detected, or 0 if
	// the position is not meaningful (e.g. unbalanced parentheses discovered
	// at end of input).
	Col int
	// Msg describes the problem.
	Msg string
}

func (err *SyntaxError) Error() string {
	if err.Col <= 0 {
		return err.Msg
	}
	return errpos(err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// ArityError indicates a fixed-arity function invoked with a different number
// of arguments.
type ArityError struct {
	// Func is the function name as it appeared in the expression.
	Func string
	// Want is the declared number of arguments.
	Want int
	// Got is the number of arguments the call supplied.
	Got int
}

func (err *ArityError) Error() string {
	return "function " + err.Func + " expected " + strconv.Itoa(err.Want) +
		" arguments, got " + strconv.Itoa(err.Got)
}

// ValidationError indicates a postfix sequence that does not collapse to
// exactly one value: operators or functions outnumber their operands, operands
// outnumber their consumers, or the expression is empty.
type ValidationError struct {
	// Token is the token at which the imbalance was detected, if the surplus
	// went negative mid-sequence; empty for end-of-sequence imbalances.
	Token string
	// Msg describes the imbalance.
	Msg string
}

func (err *ValidationError) Error() string {
	if err.Token == "" {
		return err.Msg
	}
	return err.Msg + " at " + strconv.Quote(err.Token)
}

// DomainError indicates a numeric precondition violation, such as the square
// root of a negative number or a variadic aggregate called with no arguments.
type DomainError struct {
	// Func is the operator symbol or function name that rejected its input.
	Func string
	// Msg describes the violated precondition.
	Msg string
}

func (err *DomainError) Error() string {
	return err.Func + ": " + err.Msg
}

// NameError indicates an identifier that survived conversion but resolved to
// no operator, function, or variable at evaluation time.
type NameError struct {
	// Name is the identifier that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable or function: " + strconv.Quote(err.Name)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Errors detected while
// reading the expression text implement InputError.
type InputError interface {
	error
	// Pos returns the 1-based character position of the token that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
