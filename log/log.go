// Package log implements leveled logging for all library packages.
package log

import (
	"fmt"

	logging "github.com/op/go-logging"
)

var logger = logging.MustGetLogger("licensing")

var Format = logging.MustStringFormatter(
	`%{color}%{level}%{color:reset} %{message}`,
)

// Debug outputs a literal debug message. Debug messages are useful for tracing
// execution and diagnosing unintended error cases.
func Debug(args ...interface{}) {
	Debugf("%s", fmt.Sprint(args...))
}

// Debugf outputs a formatted debug message.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warning outputs a literal warning message. Warnings are non-fatal error
// events.
func Warning(args ...interface{}) {
	Warningf("%s", fmt.Sprint(args...))
}

// Warningf outputs a formatted warning message.
func Warningf(format string, args ...interface{}) {
	logger.Warningf(format, args...)
}

// Fatalf outputs a formatted error message. Fatal errors are non-recoverable,
// and cause an `os.Exit(1)`.
func Fatalf(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}
