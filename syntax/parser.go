package syntax

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

import (
	"github.com/ImGajeed76/bfscript/ast"
	"github.com/ImGajeed76/bfscript/report"
)

// Parser is the parser for preprocessed BrainfuckScript source text.  It is a
// recursive descent parser: it moves over the text token by token and decides
// what to parse based on the token it is currently positioned on.  All parsing
// functions assume that they begin with the parser centered on the first token
// of their production and must consume all tokens (including the last) of
// their production, leaving the parser on the next token.  Syntax errors are
// raised via the report package and unwind to the compilation boundary.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source text.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// ahead is the single token of pushback used to disambiguate statements
	// beginning with an identifier.  It is nil when no pushback is pending.
	ahead *Token
}

// NewParser creates a new parser over the given preprocessed source text.
func NewParser(src string) *Parser {
	return &Parser{lexer: NewLexer(src)}
}

// Parse parses the whole program and returns its top-level statements.
//
// program = {stmt}
func (p *Parser) Parse() []ast.Stmt {
	// move the parser onto the first token
	p.next()

	var stmts []ast.Stmt
	for !p.got(TOK_EOF) {
		stmts = append(stmts, p.parseStmt())
	}

	return stmts
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	if p.ahead != nil {
		p.tok = p.ahead
		p.ahead = nil
		return
	}

	p.tok = p.lexer.NextToken()
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotOneOf returns true if the parser's current token kind is one of the
// given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// assert rejects the current token if it is not of the given kind.
func (p *Parser) assert(kind int) {
	if !p.got(kind) {
		p.reject(kind)
	}
}

// want asserts that the current token is of the given kind, returns it, and
// moves the parser forward one token.
func (p *Parser) want(kind int) *Token {
	p.assert(kind)

	tok := p.tok
	p.next()
	return tok
}

// reject raises a syntax error for the current token.
func (p *Parser) reject(wanted int) {
	report.Raise(
		p.tok.Span,
		report.ErrSyntax,
		"expected %s but got %s",
		tokKindNames[wanted],
		tokKindNames[p.tok.Kind],
	)
}
