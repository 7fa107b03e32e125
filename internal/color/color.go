// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Code represents an ANSI control code for text formatting.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	reset  = "\033[0m"
	prefix = "\033["
	suffix = "m"
)

// Foreground text colors.
const (
	FgRed    Code = 31
	FgYellow Code = 33
	FgBlue   Code = 34
	FgCyan   Code = 36
	FgWhite  Code = 37
)

// Foreground Hi-Intensity text colors.
const (
	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

var enabled = isColorEnabled(term.IsTerminal(int(os.Stderr.Fd())))

// Colorize wraps str in the given codes followed by a reset.
// Callers decide whether colour is wanted, see Enabled.
func Colorize(str string, codes ...Code) string {
	if len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + 4*len(codes))
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// Enabled reports whether colour output should be used. It is computed once at startup.
func Enabled() bool {
	return enabled
}

func isColorEnabled(isTerminal bool) bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return isTerminal
}
