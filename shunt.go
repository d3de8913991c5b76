package equations

import (
	"strconv"
	"strings"
	"unicode"
)

// shuntingYard converts infix input to a postfix token sequence using the
// instance's registries. Function calls are marked by enqueueing the opening
// parenthesis itself into the output whenever it directly follows a function
// name; the evaluator uses that marker to delimit the call's arguments.
func (e *Expression) shuntingYard(input string) ([]string, error) {
	var output, stack []string
	tk := newTokenizer(input, e.ops)
	var lastFunction, previousToken string
	for tk.HasNext() {
		token, err := tk.Next()
		if err != nil {
			return nil, err
		}
		key := strings.ToUpper(token)
		switch {
		case isNumber(token):
			output = append(output, token)
		case e.vars[key] != nil:
			output = append(output, token)
		case e.funcs[key] != nil:
			stack = append(stack, token)
			lastFunction = token
		case letterLed(token):
			// An undeclared identifier. It may be bound before evaluation,
			// so pass it through; the evaluator rejects it if it never
			// resolves.
			output = append(output, token)
		case token == ",":
			for len(stack) > 0 && stack[len(stack)-1] != "(" {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				if lastFunction == "" {
					return nil, &SyntaxError{Col: tk.Pos(), Msg: "misplaced separator"}
				}
				return nil, &SyntaxError{Col: tk.Pos(), Msg: "misplaced separator in call to " + lastFunction}
			}
		case e.ops[key] != nil:
			o1 := e.ops[key]
			for len(stack) > 0 {
				o2 := e.ops[strings.ToUpper(stack[len(stack)-1])]
				if o2 == nil {
					break
				}
				if (o1.LeftAssoc && o1.Precedence <= o2.Precedence) || o1.Precedence < o2.Precedence {
					output = append(output, stack[len(stack)-1])
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, token)
		case token == "(":
			if previousToken != "" {
				if isNumber(previousToken) {
					return nil, &SyntaxError{Col: tk.Pos(), Msg: "missing operator"}
				}
				if e.funcs[strings.ToUpper(previousToken)] != nil {
					output = append(output, token)
				}
			}
			stack = append(stack, token)
		case token == ")":
			for len(stack) > 0 && stack[len(stack)-1] != "(" {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &SyntaxError{Col: tk.Pos(), Msg: "mismatched parentheses"}
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && e.funcs[strings.ToUpper(stack[len(stack)-1])] != nil {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		}
		previousToken = token
	}
	for len(stack) > 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if el == "(" || el == ")" {
			return nil, &SyntaxError{Msg: "mismatched parentheses"}
		}
		if e.ops[strings.ToUpper(el)] == nil {
			return nil, &SyntaxError{Msg: "unknown operator or function " + strconv.Quote(el)}
		}
		output = append(output, el)
	}
	return output, nil
}

// letterLed reports whether a token begins with a letter or underscore, i.e.
// has the shape of an identifier.
func letterLed(tok string) bool {
	for _, r := range tok {
		return r == '_' || unicode.IsLetter(r)
	}
	return false
}
