// Package editor runs the user's external editor over a scratch file.
package editor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Session edits short free-text values such as breakfast notes. Lines of
// the scratch file starting with "#" are instructions and never part of
// the result.
type Session struct {
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns a Session attached to the process terminal.
func New(command string) *Session {
	return &Session{Command: command, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Edit opens initial below the header comment and returns the edited text.
// An empty or unchanged result returns initial with changed=false.
func (s *Session) Edit(header, initial string) (text string, changed bool, err error) {
	parts := strings.Fields(s.Command)
	if len(parts) == 0 {
		return "", false, fmt.Errorf("empty editor command")
	}

	tmp, err := os.CreateTemp("", "protocolctl-*.txt")
	if err != nil {
		return "", false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.WriteString(tmp, scratch(header, initial)); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", false, fmt.Errorf("closing temp file: %w", err)
	}

	cmd := exec.Command(parts[0], append(parts[1:], tmpName)...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor exited with error: %w", err)
	}

	f, err := os.Open(tmpName)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}
	defer f.Close()
	result, err := stripComments(f)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}

	if result == "" || result == strings.TrimSpace(initial) {
		return initial, false, nil
	}
	return result, true, nil
}

func scratch(header, initial string) string {
	var b strings.Builder
	for _, line := range strings.Split(header, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			fmt.Fprintf(&b, "# %s\n", line)
		}
	}
	b.WriteString(initial)
	if initial != "" && !strings.HasSuffix(initial, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

// stripComments drops "#" lines and joins the rest, trimmed.
func stripComments(r io.Reader) (string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
