package syntax

import (
	"strings"

	"github.com/ImGajeed76/bfscript/report"
)

// Lexer is responsible for tokenizing preprocessed source text.
type Lexer struct {
	src     []rune
	pos     int
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer over the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{
		src:     []rune(src),
		tokBuff: &strings.Builder{},
	}
}

// NextToken retrieves the next token from the source text.  If the text has
// ended, this will be an EOF token.  Malformed tokens raise a syntax error.
func (l *Lexer) NextToken() *Token {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '/':
			if tok := l.lexCommentOrDiv(); tok != nil {
				return tok
			}
		case '\'':
			return l.lexCharLit()
		default:
			if isDecimalDigit(c) {
				return l.lexNumberLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdentOrKeyword()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	return &Token{Kind: TOK_EOF, Span: l.spanHere()}
}

// -----------------------------------------------------------------------------

// lexCommentOrDiv lexes either a `//` line comment or a `/` operator.  It
// returns nil if a comment was skipped.
func (l *Lexer) lexCommentOrDiv() *Token {
	l.mark()
	l.read()

	if l.peek() == '/' {
		for c := l.peek(); c != -1 && c != '\n'; c = l.peek() {
			l.skip()
		}

		l.discard()
		return nil
	}

	return l.makeToken(TOK_DIV)
}

// lexCharLit lexes a single-character literal such as `'a'`.
func (l *Lexer) lexCharLit() *Token {
	l.mark()
	l.skip()

	c := l.peek()
	if c == -1 || c == '\n' || c == '\'' {
		l.fail("malformed character literal")
	}
	l.read()

	if l.peek() != '\'' {
		l.fail("character literal must contain exactly one character")
	}
	l.skip()

	return l.makeToken(TOK_CHARLIT)
}

// lexNumberLit lexes an unsigned decimal integer literal.
func (l *Lexer) lexNumberLit() *Token {
	l.mark()

	for c := l.peek(); isDecimalDigit(c); c = l.peek() {
		l.read()
	}

	return l.makeToken(TOK_NUMBER)
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() *Token {
	l.mark()

	for c := l.peek(); isIdentChar(c); c = l.peek() {
		l.read()
	}

	if kind, ok := keywordPatterns[l.tokBuff.String()]; ok {
		return l.makeToken(kind)
	}

	return l.makeToken(TOK_IDENT)
}

// lexPunctOrOper lexes a punctuation or operator token.
func (l *Lexer) lexPunctOrOper() *Token {
	l.mark()

	c := l.peek()
	l.read()

	switch c {
	case '+':
		return l.makeToken(TOK_PLUS)
	case '-':
		return l.makeToken(TOK_MINUS)
	case '*':
		return l.makeToken(TOK_STAR)
	case '(':
		return l.makeToken(TOK_LPAREN)
	case ')':
		return l.makeToken(TOK_RPAREN)
	case '{':
		return l.makeToken(TOK_LBRACE)
	case '}':
		return l.makeToken(TOK_RBRACE)
	case '[':
		return l.makeToken(TOK_LBRACKET)
	case ']':
		return l.makeToken(TOK_RBRACKET)
	case ',':
		return l.makeToken(TOK_COMMA)
	case ';':
		return l.makeToken(TOK_SEMICOLON)
	case '=':
		if l.peek() == '=' {
			l.read()
			return l.makeToken(TOK_EQ)
		}
		return l.makeToken(TOK_ASSIGN)
	case '!':
		if l.peek() == '=' {
			l.read()
			return l.makeToken(TOK_NEQ)
		}
		return l.makeToken(TOK_NOT)
	case '<':
		if l.peek() == '=' {
			l.read()
			return l.makeToken(TOK_LTEQ)
		}
		return l.makeToken(TOK_LT)
	case '>':
		if l.peek() == '=' {
			l.read()
			return l.makeToken(TOK_GTEQ)
		}
		return l.makeToken(TOK_GT)
	}

	l.fail("unexpected character: `%c`", c)
	return nil
}

// -----------------------------------------------------------------------------

// peek returns the current character without consuming it, or -1 at EOF.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return -1
	}

	return l.src[l.pos]
}

// read consumes the current character into the token buffer.
func (l *Lexer) read() {
	l.tokBuff.WriteRune(l.src[l.pos])
	l.advance()
}

// skip consumes the current character without buffering it.
func (l *Lexer) skip() {
	l.advance()
}

// advance moves the lexer forward one character, updating line and column.
func (l *Lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}

	l.pos++
}

// mark records the current position as the start of a new token.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// discard empties the token buffer without producing a token.
func (l *Lexer) discard() {
	l.tokBuff.Reset()
}

// makeToken produces a token of the given kind from the token buffer.
func (l *Lexer) makeToken(kind int) *Token {
	// For character literals the quotes were skipped, not read: the buffer
	// holds just the character itself.
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span: &report.TextSpan{
			StartLine: l.startLine,
			StartCol:  l.startCol,
			EndLine:   l.line,
			EndCol:    l.col,
		},
	}
}

// spanHere returns a zero-width span at the current position.
func (l *Lexer) spanHere() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.line,
		StartCol:  l.col,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// fail raises a syntax error at the current token's position.
func (l *Lexer) fail(msg string, args ...interface{}) {
	report.Raise(l.spanHere(), report.ErrSyntax, msg, args...)
}

// -----------------------------------------------------------------------------

func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isFirstIdentChar(c rune) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentChar(c rune) bool {
	return isFirstIdentChar(c) || isDecimalDigit(c)
}
