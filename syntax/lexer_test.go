package syntax

import (
	"testing"

	"github.com/ImGajeed76/bfscript/report"
)

// lexAll tokenizes the whole source, excluding the trailing EOF token.
func lexAll(t *testing.T, src string) []*Token {
	t.Helper()

	l := NewLexer(src)

	var toks []*Token
	for tok := l.NextToken(); tok.Kind != TOK_EOF; tok = l.NextToken() {
		toks = append(toks, tok)
	}

	return toks
}

// expectKinds asserts the kind sequence of a token slice.
func expectKinds(t *testing.T, toks []*Token, kinds ...int) {
	t.Helper()

	if len(toks) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d", len(kinds), len(toks))
	}

	for i, kind := range kinds {
		if toks[i].Kind != kind {
			t.Errorf("token %d: expected %s, got %s", i, tokKindNames[kind], tokKindNames[toks[i].Kind])
		}
	}
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks := lexAll(t, "size_t counter stack if else while push pop return foo_2")

	expectKinds(t, toks,
		TOK_SIZET, TOK_IDENT, TOK_STACK, TOK_IF, TOK_ELSE,
		TOK_WHILE, TOK_PUSH, TOK_POP, TOK_RETURN, TOK_IDENT,
	)

	if toks[1].Value != "counter" {
		t.Errorf("expected identifier value \"counter\", got %q", toks[1].Value)
	}
}

func TestLexOperators(t *testing.T) {
	toks := lexAll(t, "+ - * / ! = == != < > <= >=")

	expectKinds(t, toks,
		TOK_PLUS, TOK_MINUS, TOK_STAR, TOK_DIV, TOK_NOT,
		TOK_ASSIGN, TOK_EQ, TOK_NEQ, TOK_LT, TOK_GT, TOK_LTEQ, TOK_GTEQ,
	)
}

func TestLexPunctuation(t *testing.T) {
	toks := lexAll(t, "( ) { } [ ] , ;")

	expectKinds(t, toks,
		TOK_LPAREN, TOK_RPAREN, TOK_LBRACE, TOK_RBRACE,
		TOK_LBRACKET, TOK_RBRACKET, TOK_COMMA, TOK_SEMICOLON,
	)
}

func TestLexNumberLit(t *testing.T) {
	toks := lexAll(t, "0 42 1234567890")

	expectKinds(t, toks, TOK_NUMBER, TOK_NUMBER, TOK_NUMBER)

	if toks[2].Value != "1234567890" {
		t.Errorf("expected number value \"1234567890\", got %q", toks[2].Value)
	}
}

func TestLexCharLit(t *testing.T) {
	toks := lexAll(t, "'a' 'Z' '0'")

	expectKinds(t, toks, TOK_CHARLIT, TOK_CHARLIT, TOK_CHARLIT)

	// the quotes are trimmed off
	if toks[0].Value != "a" {
		t.Errorf("expected character value \"a\", got %q", toks[0].Value)
	}
}

func TestLexSkipsComments(t *testing.T) {
	toks := lexAll(t, "a // a comment with / and 'quotes'\nb")

	expectKinds(t, toks, TOK_IDENT, TOK_IDENT)

	if toks[1].Value != "b" {
		t.Errorf("expected \"b\" after the comment, got %q", toks[1].Value)
	}
}

func TestLexSpans(t *testing.T) {
	toks := lexAll(t, "a\n  foo")

	span := toks[1].Span
	if span.StartLine != 1 || span.StartCol != 2 {
		t.Errorf("expected token to start at 1:2, got %d:%d", span.StartLine, span.StartCol)
	}

	if span.EndLine != 1 || span.EndCol != 5 {
		t.Errorf("expected token to end at 1:5, got %d:%d", span.EndLine, span.EndCol)
	}
}

func TestLexMalformedCharLit(t *testing.T) {
	for _, src := range []string{"'ab'", "''", "'a"} {
		func() {
			defer func() {
				x := recover()
				if x == nil {
					t.Errorf("%q: expected a syntax error", src)
					return
				}

				cerr, ok := x.(*report.CompileError)
				if !ok || cerr.Category != report.ErrSyntax {
					t.Errorf("%q: expected a syntax error, got %v", src, x)
				}
			}()

			lexAll(t, src)
		}()
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	defer func() {
		if x := recover(); x == nil {
			t.Error("expected a syntax error for `@`")
		}
	}()

	lexAll(t, "a @ b")
}
