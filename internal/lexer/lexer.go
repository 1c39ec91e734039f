package lexer

import (
	"lispy/internal/token"
	"unicode/utf8"
)

type Lexer struct {
	input        string
	position     int  // current byte position in input (points to start of current rune)
	readPosition int  // next byte position in input (start of next rune)
	ch           rune // current rune under examination; 0 means EOF
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	startPosition := l.position

	switch l.ch {
	case '(':
		tok = newToken(token.LPAREN, l.ch, startPosition)
	case ')':
		tok = newToken(token.RPAREN, l.ch, startPosition)
	case '-':
		// the number rule is tried before the symbol rule, so "-5" is a literal
		if isDigit(l.peekChar()) {
			l.readChar()
			tok.Literal = "-" + l.readNumber()
			tok.Type = token.NUMBER
			tok.Position = startPosition
			return tok
		}
		tok = l.operatorToken(startPosition)
	case 0:
		tok.Literal = ""
		tok.Type = token.EOF
		tok.Position = startPosition
		return tok
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.IDENT
			tok.Position = startPosition
			return tok
		} else if isDigit(l.ch) {
			tok.Literal = l.readNumber()
			tok.Type = token.NUMBER
			tok.Position = startPosition
			return tok
		}
		tok = l.operatorToken(startPosition)
	}

	l.readChar()
	return tok
}

// Tokens drains the lexer, the trailing EOF token included.
func (l *Lexer) Tokens() []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readChar advances by one UTF-8 rune, updating byte positions
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
}

// peekChar returns the next rune without advancing; returns 0 at EOF
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// ASCII only: the number rule is /-?[0-9]+/ and identifiers are /[A-Za-z_][A-Za-z0-9_]*/
func isLetter(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// operatorToken is a SYMBOL for + - * / and ILLEGAL for anything else.
func (l *Lexer) operatorToken(position int) token.Token {
	if tt, ok := token.LookupOperator(string(l.ch)); ok {
		return newToken(tt, l.ch, position)
	}
	return newToken(token.ILLEGAL, l.ch, position)
}

func newToken(tokenType token.TokenType, ch rune, position int) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch), Position: position}
}
