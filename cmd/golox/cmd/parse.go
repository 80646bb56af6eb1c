package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/golox/internal/errors"
	"github.com/cwbudde/golox/internal/lexer"
	"github.com/cwbudde/golox/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lox file or expression and print the AST",
	Long: `Parse a Lox program and print the resulting AST.

This command is useful for debugging the parser and seeing how source
desugars (for loops become while loops, for example).

Examples:
  # Parse a script file
  golox parse script.lox

  # Parse an inline expression
  golox parse -e "print 1 + 2 * 3;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	reporter := errors.NewReporter()
	tokens := lexer.New(input, reporter).ScanTokens()
	statements := parser.New(tokens, reporter).Parse()

	if reporter.HadError() {
		reporter.Fprint(os.Stderr, true)
		return &ExitError{Code: 65}
	}

	for _, stmt := range statements {
		fmt.Println(stmt.String())
	}
	return nil
}
