package golox

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds an engine with captured output streams.
func newTestEngine() (*Engine, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	engine := New(WithStdout(&stdout), WithStderr(&stderr))
	return engine, &stdout, &stderr
}

func TestRunSuccess(t *testing.T) {
	engine, stdout, stderr := newTestEngine()

	result := engine.Run("print 1 + 2 * 3;")

	assert.Equal(t, 0, result.ExitCode())
	assert.Equal(t, "7\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunStaticError(t *testing.T) {
	engine, stdout, stderr := newTestEngine()

	result := engine.Run("print 1;\nvar = 2;")

	assert.True(t, result.HadStaticError)
	assert.Equal(t, 65, result.ExitCode())
	// Execution is suppressed entirely, including statements that parsed.
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "[line 2] Error at '=': Expect variable name.")
}

func TestRunResolveError(t *testing.T) {
	engine, stdout, stderr := newTestEngine()

	result := engine.Run("return 1;")

	assert.Equal(t, 65, result.ExitCode())
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Can't return from top-level code.")
}

func TestRunRuntimeError(t *testing.T) {
	engine, stdout, stderr := newTestEngine()

	result := engine.Run("print 1;\nprint \"a\" + 1;")

	assert.True(t, result.HadRuntimeError)
	assert.Equal(t, 70, result.ExitCode())
	// Statements before the failure already ran.
	assert.Equal(t, "1\n", stdout.String())
	assert.Contains(t, stderr.String(), "[line 2] Error: Operands must be two numbers or two strings.")
}

func TestStatePersistsAcrossRuns(t *testing.T) {
	engine, stdout, _ := newTestEngine()

	require.Equal(t, 0, engine.Run("var a = 1;").ExitCode())
	require.Equal(t, 0, engine.Run("fun bump() { a = a + 1; }").ExitCode())
	require.Equal(t, 0, engine.Run("bump(); bump();").ExitCode())
	require.Equal(t, 0, engine.Run("print a;").ExitCode())

	assert.Equal(t, "3\n", stdout.String())
}

func TestErrorDoesNotPoisonLaterRuns(t *testing.T) {
	engine, stdout, _ := newTestEngine()

	require.Equal(t, 65, engine.Run("var = 1;").ExitCode())
	require.Equal(t, 70, engine.Run("nope();").ExitCode())

	result := engine.Run("print \"still alive\";")
	assert.Equal(t, 0, result.ExitCode())
	assert.Equal(t, "still alive\n", stdout.String())
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.lox")
	source := "for (var i = 1; i <= 3; i = i + 1) print i;\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	engine, stdout, _ := newTestEngine()
	result, err := engine.RunFile(path)

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode())
	assert.Equal(t, "1\n2\n3\n", stdout.String())
}

func TestRunFileMissing(t *testing.T) {
	engine, _, _ := newTestEngine()

	_, err := engine.RunFile(filepath.Join(t.TempDir(), "missing.lox"))
	assert.Error(t, err)
}

func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, RunResult{}.ExitCode())
	assert.Equal(t, 65, RunResult{HadStaticError: true}.ExitCode())
	assert.Equal(t, 70, RunResult{HadRuntimeError: true}.ExitCode())
	// Static wins when both are somehow set.
	assert.Equal(t, 65, RunResult{HadStaticError: true, HadRuntimeError: true}.ExitCode())
}

func TestScanErrorIsStatic(t *testing.T) {
	engine, _, stderr := newTestEngine()

	result := engine.Run("print @;")

	assert.Equal(t, 65, result.ExitCode())
	assert.True(t, strings.Contains(stderr.String(), "Unexpected character."))
}
