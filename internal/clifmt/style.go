package clifmt

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiDim    = "\x1b[2m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

var colorEnabled = term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""

func wrap(code, s string) string {
	if !colorEnabled || s == "" {
		return s
	}
	return code + s + ansiReset
}

func Headerf(format string, args ...any) string {
	return wrap(ansiBold, fmt.Sprintf(format, args...))
}

func Key(s string) string { return wrap(ansiCyan, s) }

func Dim(s string) string { return wrap(ansiDim, s) }

func Success(s string) string { return wrap(ansiGreen, s) }

func Warn(s string) string { return wrap(ansiYellow, s) }
