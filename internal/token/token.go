package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Literals
	NUMBER = "NUMBER" // -42
	SYMBOL = "SYMBOL" // + - * /
	IDENT  = "IDENT"  // x, foo_bar

	// Delimiters
	LPAREN = "("
	RPAREN = ")"
)

type Token struct {
	Type     TokenType
	Literal  string
	Position int // the src index of the token
}

var operators = map[string]TokenType{
	"+": SYMBOL,
	"-": SYMBOL,
	"*": SYMBOL,
	"/": SYMBOL,
}

// LookupOperator reports whether the literal is one of the four operator characters.
func LookupOperator(literal string) (TokenType, bool) {
	tok, ok := operators[literal]
	return tok, ok
}

func (t Token) String() string {
	if t.Type == EOF {
		return "end of input"
	}
	return "'" + t.Literal + "'"
}
