package lexer

import (
	"testing"

	"github.com/ashlang/ash/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `x := 5
x = x + 1
[a, b] := pair
ok := m["k"] == 1 && !done
$ls("-l") | $wc()
n -> print()
x += 2`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.IDENT, "x"},
		{token.DECLARE, ":="},
		{token.INT, "5"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.INT, "1"},
		{token.NEWLINE, "\n"},
		{token.LBRACKET, "["},
		{token.IDENT, "a"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.RBRACKET, "]"},
		{token.DECLARE, ":="},
		{token.IDENT, "pair"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "ok"},
		{token.DECLARE, ":="},
		{token.IDENT, "m"},
		{token.LBRACKET, "["},
		{token.STRING, `"k"`},
		{token.RBRACKET, "]"},
		{token.EQ, "=="},
		{token.INT, "1"},
		{token.AND, "&&"},
		{token.BANG, "!"},
		{token.IDENT, "done"},
		{token.NEWLINE, "\n"},
		{token.DOLLAR, "$"},
		{token.IDENT, "ls"},
		{token.LPAREN, "("},
		{token.STRING, `"-l"`},
		{token.RPAREN, ")"},
		{token.PIPE, "|"},
		{token.DOLLAR, "$"},
		{token.IDENT, "wc"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "n"},
		{token.ARROW, "->"},
		{token.IDENT, "print"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.NEWLINE, "\n"},
		{token.IDENT, "x"},
		{token.PLUS_ASSIGN, "+="},
		{token.INT, "2"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `if else while for in break continue true false fn return`
	expected := []token.TokenType{
		token.IF, token.ELSE, token.WHILE, token.FOR, token.IN,
		token.BREAK, token.CONTINUE, token.TRUE, token.FALSE,
		token.FUNCTION, token.RETURN, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: expected %q, got %q", i, want, tok.Type)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\tb\nc\"d"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %q (%v)", tok.Type, tok.Literal)
	}
	if got := tok.Literal.(string); got != "a\tb\nc\"d" {
		t.Errorf("wrong literal: %q", got)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New("\"abc\nx")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %q", tok.Type)
	}
	if msg := tok.Literal.(string); msg != "unterminated string" {
		t.Errorf("wrong message: %q", msg)
	}
}

func TestInvalidEscape(t *testing.T) {
	l := New(`"a\qb"`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %q", tok.Type)
	}
}

func TestNumberBases(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"42", 42},
		{"0x1f", 31},
		{"0b101", 5},
		{"0o17", 15},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.INT {
			t.Fatalf("%q: expected INT, got %q (%v)", tt.input, tok.Type, tok.Literal)
		}
		if got := tok.Literal.(int64); got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.input, tt.want, got)
		}
	}
}

func TestNumberOverflow(t *testing.T) {
	l := New("99999999999999999999")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for out-of-range literal, got %q", tok.Type)
	}
}

func TestComments(t *testing.T) {
	l := New("x # trailing comment\n# full line\ny")
	expected := []token.TokenType{
		token.IDENT, token.NEWLINE, token.NEWLINE, token.IDENT, token.EOF,
	}
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token %d: expected %q, got %q", i, want, tok.Type)
		}
	}
}

func TestPositions(t *testing.T) {
	l := New("a\n  bb")
	a := l.NextToken()
	if a.Line != 1 || a.Column != 1 {
		t.Errorf("a at %d:%d, expected 1:1", a.Line, a.Column)
	}
	l.NextToken() // newline
	bb := l.NextToken()
	if bb.Line != 2 || bb.Column != 3 {
		t.Errorf("bb at %d:%d, expected 2:3", bb.Line, bb.Column)
	}
}

func TestSingleAmpersandIsIllegal(t *testing.T) {
	l := New("a & b")
	l.NextToken()
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for '&', got %q", tok.Type)
	}
}
