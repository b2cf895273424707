package ui

import (
	"fmt"
	"sync"
)

const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
)

var (
	Red     = colorize(ColorRed)
	Green   = colorize(ColorGreen)
	Yellow  = colorize(ColorYellow)
	Magenta = colorize(ColorMagenta)
	Cyan    = colorize(ColorCyan)
)

var (
	quietMu   sync.Mutex
	quietMode bool
)

// SetQuietMode suppresses all output except errors
func SetQuietMode(quiet bool) {
	quietMu.Lock()
	defer quietMu.Unlock()
	quietMode = quiet
}

// IsQuietMode reports whether quiet mode is active
func IsQuietMode() bool {
	quietMu.Lock()
	defer quietMu.Unlock()
	return quietMode
}

func colorize(colorString string) func(string) string {
	return func(s string) string {
		return colorString + s + ColorReset
	}
}

// PrintLogo prints the application banner
func PrintLogo() {
	if IsQuietMode() {
		return
	}
	fmt.Println(Yellow(`
  ___ _ __   __ _ _ ____   ____ _ _   _| | |_
 / __| '_ \ / _' | '_ \ \ / / _' | | | | | __|
 \__ \ | | | (_| | |_) \ V / (_| | |_| | | |_
 |___/_| |_|\__,_| .__/ \_/ \__,_|\__,_|_|\__|
                 |_|  memories, saved offline`))
	fmt.Println()
}

// PrintError prints an error message (shown even in quiet mode)
func PrintError(msg string, args ...interface{}) {
	if len(args) > 0 {
		fmt.Printf("%s %s\n", Red("[ERROR]"), fmt.Sprintf(msg, args...))
	} else {
		fmt.Printf("%s %s\n", Red("[ERROR]"), msg)
	}
}

// PrintSuccess prints a success message
func PrintSuccess(msg string) {
	if IsQuietMode() {
		return
	}
	fmt.Printf("%s %s\n", Green("[OK]"), msg)
}

// PrintInfo prints a labeled value
func PrintInfo(label string, value string) {
	if IsQuietMode() {
		return
	}
	fmt.Printf("%s %s: %s\n", Cyan("[*]"), label, value)
}

// PrintWarning prints a warning message
func PrintWarning(msg string, args ...interface{}) {
	if IsQuietMode() {
		return
	}
	if len(args) > 0 {
		fmt.Printf("%s %s\n", Yellow("[WARN]"), fmt.Sprintf(msg, args...))
	} else {
		fmt.Printf("%s %s\n", Yellow("[WARN]"), msg)
	}
}

// PrintHighlight prints an emphasized message
func PrintHighlight(msg string) {
	if IsQuietMode() {
		return
	}
	fmt.Println(Magenta(msg))
}
