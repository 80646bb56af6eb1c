package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
)

var evalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Lox file or expression",
	Long: `Tokenize (lex) a Lox program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Lox source code is tokenized.

Examples:
  # Tokenize a script file
  golox lex script.lox

  # Tokenize an inline expression
  golox lex -e "var x = 42;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	reporter := errors.NewReporter()
	tokens := lexer.New(input, reporter).ScanTokens()

	for _, token := range tokens {
		fmt.Printf("%4d  %s\n", token.Line, token)
	}

	if reporter.HadError() {
		reporter.Fprint(os.Stderr, true)
		return &ExitError{Code: 65}
	}
	return nil
}

// readInput resolves the shared file-or-eval input convention of the debug
// subcommands.
func readInput(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) != 1 {
		return "", fmt.Errorf("either provide a file path or use -e flag for inline code")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), nil
}
