package equations

import "strings"

// validate checks statically that a postfix sequence collapses to exactly one
// residual value. It runs once per fresh conversion; the result is cached
// with the sequence, so repeated evaluations do not re-validate.
//
// counter tracks values available minus values consumed, counting the token
// just processed. params tracks the pending argument count of each open
// function call, pushed at its argument-list marker; the call's function name
// closes it and consumes the accumulated arguments plus the marker.
func (e *Expression) validate(rpn []string) error {
	counter := 0
	var params []int
	for _, token := range rpn {
		switch {
		case token == "(":
			if len(params) > 0 {
				// A nested call's result is an argument to the enclosing one.
				params[len(params)-1]++
			}
			params = append(params, 0)
		case len(params) > 0:
			if _, ok := e.funcs[strings.ToUpper(token)]; ok {
				counter -= params[len(params)-1] + 1
				params = params[:len(params)-1]
			} else {
				params[len(params)-1]++
			}
		default:
			if _, ok := e.ops[strings.ToUpper(token)]; ok {
				// All operators are binary.
				counter -= 2
			}
		}
		if counter < 0 {
			return &ValidationError{Token: token, Msg: "too many operators or functions"}
		}
		counter++
	}
	switch {
	case counter > 1:
		return &ValidationError{Msg: "too many numbers or variables"}
	case counter < 1:
		return &ValidationError{Msg: "empty expression"}
	}
	return nil
}
