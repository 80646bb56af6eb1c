package lexer

import (
	"testing"

	"github.com/cwbudde/golox/internal/errors"
)

// testScan scans input and returns the tokens and the reporter.
func testScan(input string) ([]Token, *errors.Reporter) {
	reporter := errors.NewReporter()
	tokens := New(input, reporter).ScanTokens()
	return tokens, reporter
}

func checkNoScanErrors(t *testing.T, reporter *errors.Reporter) {
	t.Helper()
	if !reporter.HadError() {
		return
	}
	for _, d := range reporter.Diagnostics() {
		t.Errorf("scan error: %s", d)
	}
	t.FailNow()
}

// TestPunctuationAndOperators tests scanning of the fixed token set.
func TestPunctuationAndOperators(t *testing.T) {
	input := `(){},.-+;/ * ! != = == > >= < <=`
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		COMMA, DOT, MINUS, PLUS, SEMICOLON, SLASH, STAR,
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL,
		GREATER, GREATER_EQUAL, LESS, LESS_EQUAL,
		EOF,
	}

	tokens, reporter := testScan(input)
	checkNoScanErrors(t, reporter)

	if len(tokens) != len(expected) {
		t.Fatalf("wrong number of tokens. got=%d, want=%d", len(tokens), len(expected))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("token %d: wrong type. got=%s, want=%s", i, tokens[i].Type, tt)
		}
	}
}

// TestKeywordsAndIdentifiers tests the keyword table lookup.
func TestKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"and", AND},
		{"class", CLASS},
		{"else", ELSE},
		{"false", FALSE},
		{"fun", FUN},
		{"for", FOR},
		{"if", IF},
		{"nil", NIL},
		{"or", OR},
		{"print", PRINT},
		{"return", RETURN},
		{"super", SUPER},
		{"this", THIS},
		{"true", TRUE},
		{"var", VAR},
		{"while", WHILE},
		{"foo", IDENTIFIER},
		{"_bar", IDENTIFIER},
		{"orchid", IDENTIFIER},
		{"classy", IDENTIFIER},
		{"x123", IDENTIFIER},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, reporter := testScan(tt.input)
			checkNoScanErrors(t, reporter)

			if len(tokens) != 2 {
				t.Fatalf("wrong number of tokens. got=%d, want=2", len(tokens))
			}
			if tokens[0].Type != tt.expected {
				t.Errorf("wrong type. got=%s, want=%s", tokens[0].Type, tt.expected)
			}
			if tokens[0].Lexeme != tt.input {
				t.Errorf("wrong lexeme. got=%q, want=%q", tokens[0].Lexeme, tt.input)
			}
			if tokens[0].Type != IDENTIFIER && tokens[0].Literal != nil {
				t.Errorf("keyword carries a literal: %v", tokens[0].Literal)
			}
		})
	}
}

// TestNumberLiterals tests number scanning and literal parsing.
func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"0", 0},
		{"123", 123},
		{"123.45", 123.45},
		{"0.5", 0.5},
		{"999999", 999999},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, reporter := testScan(tt.input)
			checkNoScanErrors(t, reporter)

			if tokens[0].Type != NUMBER {
				t.Fatalf("wrong type. got=%s, want=NUMBER", tokens[0].Type)
			}
			value, ok := tokens[0].Literal.(float64)
			if !ok {
				t.Fatalf("literal is not float64. got=%T", tokens[0].Literal)
			}
			if value != tt.expected {
				t.Errorf("wrong literal. got=%v, want=%v", value, tt.expected)
			}
		})
	}
}

// TestNumberTrailingDot checks that "1." scans as NUMBER DOT, not as a
// fractional number.
func TestNumberTrailingDot(t *testing.T) {
	tokens, reporter := testScan("1.")
	checkNoScanErrors(t, reporter)

	expected := []TokenType{NUMBER, DOT, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("wrong number of tokens. got=%d, want=%d", len(tokens), len(expected))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("token %d: wrong type. got=%s, want=%s", i, tokens[i].Type, tt)
		}
	}
}

// TestNumberLeadingDot checks that ".5" scans as DOT NUMBER.
func TestNumberLeadingDot(t *testing.T) {
	tokens, reporter := testScan(".5")
	checkNoScanErrors(t, reporter)

	if tokens[0].Type != DOT {
		t.Errorf("token 0: wrong type. got=%s, want=DOT", tokens[0].Type)
	}
	if tokens[1].Type != NUMBER {
		t.Errorf("token 1: wrong type. got=%s, want=NUMBER", tokens[1].Type)
	}
}

// TestStringLiterals tests string scanning, including multi-line strings.
func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"spaces", `"a b c"`, "a b c"},
		{"no escapes", `"a\nb"`, `a\nb`},
		{"multiline", "\"line1\nline2\"", "line1\nline2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, reporter := testScan(tt.input)
			checkNoScanErrors(t, reporter)

			if tokens[0].Type != STRING {
				t.Fatalf("wrong type. got=%s, want=STRING", tokens[0].Type)
			}
			if tokens[0].Literal != tt.expected {
				t.Errorf("wrong literal. got=%q, want=%q", tokens[0].Literal, tt.expected)
			}
		})
	}
}

// TestMultilineStringBumpsLine checks line counting inside strings.
func TestMultilineStringBumpsLine(t *testing.T) {
	tokens, reporter := testScan("\"a\nb\"\nfoo")
	checkNoScanErrors(t, reporter)

	// foo starts on line 3: the string spans lines 1-2.
	if tokens[1].Type != IDENTIFIER || tokens[1].Line != 3 {
		t.Errorf("identifier on wrong line. got=%d, want=3", tokens[1].Line)
	}
}

// TestUnterminatedString checks the error is reported and no token emitted.
func TestUnterminatedString(t *testing.T) {
	tokens, reporter := testScan(`"abc`)

	if !reporter.HadError() {
		t.Fatal("expected scan error for unterminated string")
	}
	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Errorf("expected only EOF token. got=%v", tokens)
	}
}

// TestLineComment checks // comments are skipped up to the newline.
func TestLineComment(t *testing.T) {
	tokens, reporter := testScan("1 // comment ; var\n2")
	checkNoScanErrors(t, reporter)

	expected := []TokenType{NUMBER, NUMBER, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("wrong number of tokens. got=%d, want=%d", len(tokens), len(expected))
	}
	if tokens[1].Line != 2 {
		t.Errorf("second number on wrong line. got=%d, want=2", tokens[1].Line)
	}
}

// TestBlockComment checks /* */ comments are skipped and newlines inside
// them advance the line counter.
func TestBlockComment(t *testing.T) {
	tokens, reporter := testScan("1 /* skip\nme\nplease */ 2")
	checkNoScanErrors(t, reporter)

	expected := []TokenType{NUMBER, NUMBER, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("wrong number of tokens. got=%d, want=%d", len(tokens), len(expected))
	}
	if tokens[1].Line != 3 {
		t.Errorf("second number on wrong line. got=%d, want=3", tokens[1].Line)
	}
}

// TestBlockCommentWithStars checks that stars inside a block comment do not
// terminate it early.
func TestBlockCommentWithStars(t *testing.T) {
	tokens, reporter := testScan("/* * ** *\\ */ 1")
	checkNoScanErrors(t, reporter)

	if tokens[0].Type != NUMBER {
		t.Errorf("wrong type after comment. got=%s, want=NUMBER", tokens[0].Type)
	}
}

// TestUnterminatedBlockComment checks the error is reported but scanning
// terminates cleanly.
func TestUnterminatedBlockComment(t *testing.T) {
	tokens, reporter := testScan("1 /* never closed")

	if !reporter.HadError() {
		t.Fatal("expected scan error for unterminated block comment")
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Error("token stream must end in EOF")
	}
}

// TestUnexpectedCharacter checks the error is reported and scanning
// continues past the bad character.
func TestUnexpectedCharacter(t *testing.T) {
	tokens, reporter := testScan("@ 1;")

	if !reporter.HadError() {
		t.Fatal("expected scan error for unexpected character")
	}
	expected := []TokenType{NUMBER, SEMICOLON, EOF}
	if len(tokens) != len(expected) {
		t.Fatalf("wrong number of tokens. got=%d, want=%d", len(tokens), len(expected))
	}
}

// TestLineCounting checks line numbers across statements.
func TestLineCounting(t *testing.T) {
	input := "var a = 1;\nvar b = 2;\r\nvar c = 3;"
	tokens, reporter := testScan(input)
	checkNoScanErrors(t, reporter)

	lines := map[string]int{"a": 1, "b": 2, "c": 3}
	for _, token := range tokens {
		if token.Type != IDENTIFIER {
			continue
		}
		if want := lines[token.Lexeme]; token.Line != want {
			t.Errorf("identifier %s on wrong line. got=%d, want=%d", token.Lexeme, token.Line, want)
		}
	}
}

// TestScanProgram scans a small program end to end.
func TestScanProgram(t *testing.T) {
	input := `fun add(a, b) { return a + b; }
print add(1, 2.5);`

	tokens, reporter := testScan(input)
	checkNoScanErrors(t, reporter)

	expected := []TokenType{
		FUN, IDENTIFIER, LEFT_PAREN, IDENTIFIER, COMMA, IDENTIFIER, RIGHT_PAREN,
		LEFT_BRACE, RETURN, IDENTIFIER, PLUS, IDENTIFIER, SEMICOLON, RIGHT_BRACE,
		PRINT, IDENTIFIER, LEFT_PAREN, NUMBER, COMMA, NUMBER, RIGHT_PAREN, SEMICOLON,
		EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("wrong number of tokens. got=%d, want=%d", len(tokens), len(expected))
	}
	for i, tt := range expected {
		if tokens[i].Type != tt {
			t.Errorf("token %d (%q): wrong type. got=%s, want=%s", i, tokens[i].Lexeme, tokens[i].Type, tt)
		}
	}
}
