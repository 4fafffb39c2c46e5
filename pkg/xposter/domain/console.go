package domain

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Colors are dropped automatically when the output isn't a terminal (see color.NoColor).
var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed)
)

func printSuccess(out io.Writer, format string, args ...any) {
	_, _ = successColor.Fprintf(out, format+"\n", args...)
}

func printFailure(out io.Writer, format string, args ...any) {
	_, _ = failureColor.Fprintf(out, format+"\n", args...)
}

func printLine(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}
