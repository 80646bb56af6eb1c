package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/cwbudde/golox/pkg/golox"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var trace bool

var rootCmd = &cobra.Command{
	Use:   "golox [script]",
	Short: "Lox interpreter",
	Long: `golox is a Go implementation of the Lox scripting language.

Lox is a dynamically-typed, class-based scripting language with
first-class functions, closures, and lexical scoping.

Run a script file, or start an interactive REPL with no arguments:

  golox            # REPL
  golox script.lox # run a file`,
	Version:       Version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// ExitError carries a specific process exit code out of Execute.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "trace execution (for debugging)")
}

func runRoot(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		return &ExitError{Code: 64}
	}

	engine := newEngine()

	if len(args) == 1 {
		result, err := engine.RunFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		if code := result.ExitCode(); code != 0 {
			return &ExitError{Code: code}
		}
		return nil
	}

	return runREPL(engine)
}

// newEngine builds the engine shared by run and REPL modes, honoring the
// global --trace flag.
func newEngine() *golox.Engine {
	opts := []golox.Option{golox.WithColor(true)}
	if trace {
		logger := hclog.New(&hclog.LoggerOptions{
			Name:   "golox",
			Level:  hclog.Debug,
			Output: os.Stderr,
		})
		opts = append(opts, golox.WithTrace(logger))
	}
	return golox.New(opts...)
}

// runREPL reads lines from stdin and feeds each to the engine. Errors of
// any kind are reported and the loop continues; end of input exits cleanly.
func runREPL(engine *golox.Engine) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		engine.Run(scanner.Text())
	}
}
