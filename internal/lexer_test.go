package internal

import (
	"strings"
	"testing"
)

func scanSource(t *testing.T, source string) ([]Token, *testReporter) {
	t.Helper()
	reporter := &testReporter{}
	tokens := NewScanner(source, reporter).ScanTokens()
	return tokens, reporter
}

func TestScanSingleAndDoubleCharTokens(t *testing.T) {
	tokens, reporter := scanSource(t, `( ) { } , . - + ; / * ? : ! != = == < <= > >=`)
	if reporter.HadError() {
		t.Fatalf("unexpected scan errors: %v", reporter.errors)
	}
	want := []TokenType{
		LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Minus, Plus,
		Semicolon, Slash, Star, Question, Colon, Bang, BangEqual, Equal,
		EqualEqual, Less, LessEqual, Greater, GreaterEqual, EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got type %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestScanLineComment(t *testing.T) {
	tokens, reporter := scanSource(t, "1 // a comment\n2")
	if reporter.HadError() {
		t.Fatalf("unexpected scan errors: %v", reporter.errors)
	}
	if len(tokens) != 3 || tokens[0].Type != Number || tokens[1].Type != Number {
		t.Fatalf("expected [Number, Number, EOF], got %v", tokens)
	}
	if tokens[1].Line != 2 {
		t.Errorf("expected the second number on line 2, got line %d", tokens[1].Line)
	}
}

func TestScanMultilineString(t *testing.T) {
	tokens, reporter := scanSource(t, "\"line one\nline two\"")
	if reporter.HadError() {
		t.Fatalf("unexpected scan errors: %v", reporter.errors)
	}
	if tokens[0].Type != String || tokens[0].Literal != "line one\nline two" {
		t.Fatalf("got %#v", tokens[0])
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, reporter := scanSource(t, `"unterminated`)
	if !reporter.HadError() {
		t.Fatalf("expected an 'Unterminated string' error")
	}
}

func TestScanNumberRequiresDigitAfterDot(t *testing.T) {
	tokens, reporter := scanSource(t, "1.")
	if reporter.HadError() {
		t.Fatalf("unexpected scan errors: %v", reporter.errors)
	}
	// '1' is a complete number token; '.' is a separate Dot token since
	// it isn't followed by a digit.
	if tokens[0].Type != Number || tokens[0].Literal.(float64) != 1 {
		t.Fatalf("got %#v", tokens[0])
	}
	if tokens[1].Type != Dot {
		t.Fatalf("expected a trailing Dot token, got %#v", tokens[1])
	}
}

func TestScanKeywordsVsIdentifiers(t *testing.T) {
	tokens, reporter := scanSource(t, "class classroom")
	if reporter.HadError() {
		t.Fatalf("unexpected scan errors: %v", reporter.errors)
	}
	if tokens[0].Type != ClassKeyword {
		t.Errorf("expected 'class' to scan as the ClassKeyword keyword")
	}
	if tokens[1].Type != Identifier {
		t.Errorf("expected 'classroom' to scan as an Identifier, not a keyword prefix match")
	}
}

func TestScanTokenRoundTrip(t *testing.T) {
	// spec.md §8: every token's lexeme is a contiguous substring of the
	// source, and its line is the source line of the lexeme's first char.
	source := "var a = 1;\nprint a + 2;\n"
	tokens, reporter := scanSource(t, source)
	if reporter.HadError() {
		t.Fatalf("unexpected scan errors: %v", reporter.errors)
	}
	lines := strings.Split(source, "\n")
	for _, tok := range tokens {
		if tok.Type == EOF {
			continue
		}
		if tok.Line < 1 || tok.Line > len(lines) {
			t.Fatalf("token %+v has an out-of-range line", tok)
		}
		if !strings.Contains(lines[tok.Line-1], tok.Lexeme) {
			t.Errorf("token %+v: lexeme not found on its reported line %q", tok, lines[tok.Line-1])
		}
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, reporter := scanSource(t, "@")
	if !reporter.HadError() {
		t.Fatalf("expected an 'Unexpected character' error for '@'")
	}
}
