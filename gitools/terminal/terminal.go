package terminal

import (
	"fmt"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Error prints an error message in red, appending err when present.
func Error(err error, format string, a ...interface{}) {
	message := format
	if err != nil {
		message = fmt.Sprintf("%s [%s]", format, err)
	}
	fmt.Printf("%s%s%s\n", red, fmt.Sprintf(message, a...), reset)
}

// Warn prints a warning message in yellow.
func Warn(format string, a ...interface{}) {
	fmt.Printf("%s%s%s\n", yellow, fmt.Sprintf(format, a...), reset)
}

// Info prints an informational message.
func Info(format string, a ...interface{}) {
	fmt.Printf("%s%s%s\n", cyan, fmt.Sprintf(format, a...), reset)
}

// Success prints a message in green with a check mark.
func Success(format string, a ...interface{}) {
	fmt.Printf("✓ %s%s%s\n", green, fmt.Sprintf(format, a...), reset)
}
