package lexer

import (
	"math/big"
	"testing"
)

func TestNextTokenDigits(t *testing.T) {
	input := `5, .5, 2.5, 13.275`

	tests := []struct {
		wantType TokenType
		wantLit  string
		startCol int
		endCol   int
	}{
		{INT, "5", 0, 0},
		{COMMA, ",", 1, 1},
		{REAL, ".5", 3, 4},
		{COMMA, ",", 5, 5},
		{REAL, "2.5", 7, 9},
		{COMMA, ",", 10, 10},
		{REAL, "13.275", 12, 17},
		{EOF, "", 18, 18},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("tests[%d]: type=%s, want %s (lit=%q)", i, tok.Type, tt.wantType, tok.Literal)
		}
		if tok.Literal != tt.wantLit {
			t.Fatalf("tests[%d]: literal=%q, want %q", i, tok.Literal, tt.wantLit)
		}
		if tok.Pos.StartCol != tt.startCol || tok.Pos.EndCol != tt.endCol {
			t.Fatalf("tests[%d]: pos=(%d,%d), want (%d,%d)", i, tok.Pos.StartCol, tok.Pos.EndCol, tt.startCol, tt.endCol)
		}
	}
}

func TestRealLiteralValues(t *testing.T) {
	cases := map[string]*big.Rat{
		".5":     big.NewRat(1, 2),
		"2.5":    big.NewRat(5, 2),
		"13.275": big.NewRat(531, 40),
	}
	for lit, want := range cases {
		l := New(lit)
		tok := l.NextToken()
		if tok.Type != REAL {
			t.Fatalf("%s: type=%s, want REAL", lit, tok.Type)
		}
		got := tok.Value.(*big.Rat)
		if got.Cmp(want) != 0 {
			t.Fatalf("%s: value=%s, want %s", lit, got, want)
		}
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	input := `bool b0; int factotum;`
	tests := []struct {
		wantType TokenType
		wantLit  string
	}{
		{BOOL, "bool"},
		{IDENT, "b0"},
		{SEMICOLON, ";"},
		{KW_INT, "int"},
		{IDENT, "factotum"},
		{SEMICOLON, ";"},
		{EOF, ""},
	}
	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType || tok.Literal != tt.wantLit {
			t.Fatalf("tests[%d]: got (%s, %q), want (%s, %q)", i, tok.Type, tok.Literal, tt.wantType, tt.wantLit)
		}
	}
}

func TestComments(t *testing.T) {
	input := "int a; // a comment\n/* block\ncomment */ real b;"
	l := New(input)
	var got []TokenType
	for {
		tok := l.NextToken()
		got = append(got, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{KW_INT, IDENT, SEMICOLON, KW_REAL, IDENT, SEMICOLON, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d]=%s, want %s", i, got[i], want[i])
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected a lex error for unterminated string")
	}
}

func TestEmptyInputYieldsSingleEOF(t *testing.T) {
	l := New("")
	tok := l.NextToken()
	if tok.Type != EOF {
		t.Fatalf("got %s, want EOF", tok.Type)
	}
	tok2 := l.NextToken()
	if tok2.Type != EOF {
		t.Fatalf("second call got %s, want EOF", tok2.Type)
	}
}

func TestOperators(t *testing.T) {
	input := "-> == != <= >= = < > ! + - * / & | ^"
	want := []TokenType{ARROW, EQ, NOT_EQ, LESS_EQ, GREATER_EQ, ASSIGN, LESS, GREATER, BANG, PLUS, MINUS, ASTERISK, SLASH, AMP, PIPE, CARET, EOF}
	l := New(input)
	for i, w := range want {
		tok := l.NextToken()
		if tok.Type != w {
			t.Fatalf("token[%d]=%s, want %s", i, tok.Type, w)
		}
	}
}
