package main

import (
	"os"
	"strings"
)

// init runs before Bubble Tea and lipgloss touch the terminal.
//
// Background-color detection can write OSC/DSR queries to stdout. For the
// non-interactive flags that would corrupt --list JSON, so those invocations
// set CI=1, which termenv honours by skipping the probes.
func init() {
	if os.Getenv("CI") != "" {
		return
	}
	if !shouldSuppressTTYQueries(os.Args[1:]) {
		return
	}
	_ = os.Setenv("CI", "1")
}

func shouldSuppressTTYQueries(args []string) bool {
	for _, arg := range args {
		switch strings.TrimLeft(arg, "-") {
		case "list", "version", "help", "h", "init-config":
			return true
		}
	}
	return false
}
