package ui

import "regexp"

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes color escape sequences so assertions can match text.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
