package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads passwords interactively.
// When the input is a terminal, entry happens with echo disabled via
// golang.org/x/term so the password never appears on screen. When the input
// is a pipe or a test buffer, it falls back to plain line reading.
type Prompter struct {
	// in buffers the fallback line reader.
	in *bufio.Reader

	// out receives prompts. Prompts go to the output stream, never to a
	// logger, so nothing about the session is recorded.
	out io.Writer

	// fd is the terminal file descriptor for hidden entry, or -1 when the
	// input is not a terminal.
	fd int
}

// NewPrompter creates a Prompter reading from in and prompting on out.
// Hidden entry is used only when in is a terminal device.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
	if f, ok := in.(*os.File); ok {
		if fd := int(f.Fd()); term.IsTerminal(fd) {
			p.fd = fd
		}
	}
	return p
}

// ReadPassword prompts for and reads a single password.
// On a terminal the entry is hidden; otherwise one line is read and its
// trailing newline stripped. Returns io.EOF when the input is exhausted.
func (p *Prompter) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if p.fd >= 0 {
		entry, err := term.ReadPassword(p.fd)
		// ReadPassword suppresses the user's newline; emit one so the
		// next prompt starts on a fresh line.
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(entry), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// EndsSession reports whether the entry asks to leave the interactive loop.
// An empty entry or the words "quit" or "exit" (any case) end the session.
func EndsSession(entry string) bool {
	switch strings.ToLower(strings.TrimSpace(entry)) {
	case "", "quit", "exit":
		return true
	}
	return false
}
