package equations

import (
	"io"
	"strings"
	"unicode"
)

// Tokenizer splits an expression into lexical tokens, skipping whitespace.
// Tokens are plain substrings of the input; their category (number, name,
// operator, parenthesis, separator) is re-derived by lookup wherever it is
// needed. A Tokenizer remembers the previous token it produced in order to
// tell a unary minus from a binary one.
type Tokenizer struct {
	input []rune
	pos   int
	prev  string
	ops   map[string]*Operator
}

func newTokenizer(input string, ops map[string]*Operator) *Tokenizer {
	return &Tokenizer{input: []rune(strings.TrimSpace(input)), ops: ops}
}

// HasNext reports whether any characters remain to tokenize.
func (t *Tokenizer) HasNext() bool {
	return t.pos < len(t.input)
}

// Pos returns the number of characters consumed so far.
func (t *Tokenizer) Pos() int {
	return t.pos
}

// Next returns the next token. At end of input it returns io.EOF. A character
// run that matches no registered operator yields a *LexError.
func (t *Tokenizer) Next() (string, error) {
	if t.pos >= len(t.input) {
		t.prev = ""
		return "", io.EOF
	}
	// The input is trimmed, so skipping whitespace cannot run off the end.
	for unicode.IsSpace(t.input[t.pos]) {
		t.pos++
	}
	ch := t.input[t.pos]
	var tok string
	switch {
	case unicode.IsDigit(ch):
		tok = t.scanNumber()
	case ch == '-' && t.digitFollows() && t.unaryContext():
		// Fold the sign into the number token.
		t.pos++
		n, err := t.Next()
		if err != nil {
			return "", err
		}
		tok = "-" + n
	case ch == '_' || unicode.IsLetter(ch):
		tok = t.scanIdent()
	case ch == '(' || ch == ')' || ch == ',':
		t.pos++
		tok = string(ch)
	default:
		start := t.pos
		tok = t.scanOperator()
		if _, ok := t.ops[strings.ToUpper(tok)]; !ok {
			return "", &LexError{Operator: tok, Col: start + 1}
		}
	}
	t.prev = tok
	return tok, nil
}

// digitFollows reports whether the character after the current one is a digit.
func (t *Tokenizer) digitFollows() bool {
	return t.pos+1 < len(t.input) && unicode.IsDigit(t.input[t.pos+1])
}

// unaryContext reports whether a minus at the current position is unary: the
// previous token is an open parenthesis, an argument separator, a registered
// operator, or absent entirely.
func (t *Tokenizer) unaryContext() bool {
	if t.prev == "" || t.prev == "(" || t.prev == "," {
		return true
	}
	_, ok := t.ops[strings.ToUpper(t.prev)]
	return ok
}

// scanNumber consumes digits, at most one decimal point, and at most one
// exponent marker with an optional sign immediately after it.
func (t *Tokenizer) scanNumber() string {
	start := t.pos
	var dot, exp bool
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		switch {
		case unicode.IsDigit(ch):
		case ch == '.' && !dot && !exp:
			dot = true
		case (ch == 'e' || ch == 'E') && !exp:
			exp = true
		case (ch == '+' || ch == '-') && (t.input[t.pos-1] == 'e' || t.input[t.pos-1] == 'E'):
			// Sign is only part of the number directly after the exponent
			// marker; anywhere else it is an operator.
		default:
			return string(t.input[start:t.pos])
		}
		t.pos++
	}
	return string(t.input[start:])
}

// scanIdent consumes letters, digits, and underscores.
func (t *Tokenizer) scanIdent() string {
	start := t.pos
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if ch != '_' && !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
			break
		}
		t.pos++
	}
	return string(t.input[start:t.pos])
}

// scanOperator greedily consumes characters that can belong to no other token
// category, stopping before an embedded minus so that constructs like "*-2"
// split into an operator and a signed number.
func (t *Tokenizer) scanOperator() string {
	start := t.pos
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch) ||
			unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == ',' {
			break
		}
		t.pos++
		if t.pos < len(t.input) && t.input[t.pos] == '-' {
			break
		}
	}
	return string(t.input[start:t.pos])
}

// isNumber reports whether a token has the shape of a numeric literal.
func isNumber(tok string) bool {
	if tok == "" || tok == "-" || tok == "+" {
		return false
	}
	if tok[0] == 'e' || tok[0] == 'E' {
		return false
	}
	for _, ch := range tok {
		switch {
		case unicode.IsDigit(ch):
		case ch == '-', ch == '+', ch == '.', ch == 'e', ch == 'E':
		default:
			return false
		}
	}
	return true
}
