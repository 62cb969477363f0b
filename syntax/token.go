package syntax

import "github.com/ImGajeed76/bfscript/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  For character literals, the value is the
	// character itself with the quotes trimmed off.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_SIZET = iota
	TOK_STACK
	TOK_IF
	TOK_ELSE
	TOK_WHILE
	TOK_PUSH
	TOK_POP
	TOK_RETURN

	TOK_IDENT
	TOK_NUMBER
	TOK_CHARLIT

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_NOT

	TOK_ASSIGN
	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE
	TOK_LBRACKET
	TOK_RBRACKET
	TOK_COMMA
	TOK_SEMICOLON

	TOK_EOF
)

// keywordPatterns maps keyword strings to their token kinds.
var keywordPatterns = map[string]int{
	"size_t": TOK_SIZET,
	"stack":  TOK_STACK,
	"if":     TOK_IF,
	"else":   TOK_ELSE,
	"while":  TOK_WHILE,
	"push":   TOK_PUSH,
	"pop":    TOK_POP,
	"return": TOK_RETURN,
}

// tokKindNames maps token kinds to human-readable names for error messages.
var tokKindNames = map[int]string{
	TOK_SIZET:     "`size_t`",
	TOK_STACK:     "`stack`",
	TOK_IF:        "`if`",
	TOK_ELSE:      "`else`",
	TOK_WHILE:     "`while`",
	TOK_PUSH:      "`push`",
	TOK_POP:       "`pop`",
	TOK_RETURN:    "`return`",
	TOK_IDENT:     "identifier",
	TOK_NUMBER:    "number",
	TOK_CHARLIT:   "character literal",
	TOK_PLUS:      "`+`",
	TOK_MINUS:     "`-`",
	TOK_STAR:      "`*`",
	TOK_DIV:       "`/`",
	TOK_NOT:       "`!`",
	TOK_ASSIGN:    "`=`",
	TOK_EQ:        "`==`",
	TOK_NEQ:       "`!=`",
	TOK_LT:        "`<`",
	TOK_GT:        "`>`",
	TOK_LTEQ:      "`<=`",
	TOK_GTEQ:      "`>=`",
	TOK_LPAREN:    "`(`",
	TOK_RPAREN:    "`)`",
	TOK_LBRACE:    "`{`",
	TOK_RBRACE:    "`}`",
	TOK_LBRACKET:  "`[`",
	TOK_RBRACKET:  "`]`",
	TOK_COMMA:     "`,`",
	TOK_SEMICOLON: "`;`",
	TOK_EOF:       "end of file",
}
