// Package logging provides colored, leveled console output for the
// shuffler CLI.
//
// Output is gated by the logLevel setting: 0 prints warnings and errors
// only, 1 adds informational messages, 2 adds debug output.
package logging

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// level holds the active log level.
var level = 1

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	debugPrefix   = color.New(color.FgMagenta).SprintFunc()
)

// SetLevel sets the active log level.
func SetLevel(l int) {
	level = l
}

// Info prints an informational message at level 1 and above.
func Info(format string, args ...any) {
	if level < 1 {
		return
	}
	fmt.Println(infoPrefix("[INFO]") + " " + fmt.Sprintf(format, args...))
}

// Success prints a success message at level 1 and above.
func Success(format string, args ...any) {
	if level < 1 {
		return
	}
	fmt.Println(successPrefix("[SWAP]") + " " + fmt.Sprintf(format, args...))
}

// Warn prints a warning message at every level.
func Warn(format string, args ...any) {
	fmt.Println(warnPrefix("[WARN]") + " " + fmt.Sprintf(format, args...))
}

// Error prints an error message to stderr at every level.
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorPrefix("[ERROR]")+" "+fmt.Sprintf(format, args...))
}

// Debug prints a debug message at level 2 and above.
func Debug(format string, args ...any) {
	if level < 2 {
		return
	}
	fmt.Println(debugPrefix("[DEBUG]") + " " + fmt.Sprintf(format, args...))
}

// FormatDuration converts a duration in seconds to a human-readable string.
//
// Examples:
//
//	FormatDuration(45)   => "45s"
//	FormatDuration(90)   => "1m 30s"
//	FormatDuration(3661) => "1h 1m 1s"
func FormatDuration(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %dm %ds", seconds/3600, (seconds%3600)/60, seconds%60)
}
