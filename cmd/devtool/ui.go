package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// console writes status lines, coloured unless NO_COLOR is set
type console struct {
	w     io.Writer
	color bool
}

var termOut = newConsole(os.Stdout)

func newConsole(w io.Writer) *console {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &console{w: w, color: !noColor}
}

const (
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[0;34m"
	ansiReset  = "\033[0m"
)

func (c *console) line(ansi, prefix, format string, a ...interface{}) {
	msg := prefix + fmt.Sprintf(format, a...)
	if c.color {
		msg = ansi + msg + ansiReset
	}
	fmt.Fprintln(c.w, msg)
}

func PrintInfo(format string, a ...interface{})    { termOut.line(ansiBlue, "ℹ ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { termOut.line(ansiGreen, "✓ ", format, a...) }
func PrintWarning(format string, a ...interface{}) { termOut.line(ansiYellow, "⚠ ", format, a...) }
func PrintError(format string, a ...interface{})   { termOut.line(ansiRed, "✗ ", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(termOut.w)
	termOut.line(ansiYellow, "", "=== %s ===", title)
}

// errUnsafeArg rejects arguments that could split or redirect a command
// if they ever reach a shell
var errUnsafeArg = errors.New("unsafe command argument")

var unsafePatterns = []string{"\n", "\r", "\x00", "|", "`", "$(", "&&", "||", ">", "<"}

func validateArgs(args ...string) error {
	for _, arg := range args {
		for _, p := range unsafePatterns {
			if strings.Contains(arg, p) {
				return fmt.Errorf("%w: %q contains %q", errUnsafeArg, arg, p)
			}
		}
	}
	return nil
}

func command(name string, args ...string) (*exec.Cmd, error) {
	if err := validateArgs(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	// #nosec G204 - arguments are validated above
	return exec.Command(name, args...), nil
}

// getCommandOutput runs a command and returns its trimmed stdout
func getCommandOutput(name string, args ...string) (string, error) {
	cmd, err := command(name, args...)
	if err != nil {
		return "", err
	}
	b, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// runCommand runs a command, discarding its output
func runCommand(name string, args ...string) error {
	cmd, err := command(name, args...)
	if err != nil {
		return err
	}
	return cmd.Run()
}
