package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads interactive input. It keeps a single buffered reader
// across prompts so piped input (tests, scripts) is not lost between
// consecutive reads.
type Prompter struct {
	in  io.Reader
	buf *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, buf: bufio.NewReader(in), out: out}
}

// ReadLine prints the prompt and reads one line of visible input,
// trimmed of surrounding whitespace.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if p.out != nil {
		fmt.Fprintf(p.out, "%s: ", strings.TrimSpace(prompt))
	}
	line, err := p.buf.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadPassword prints the prompt and reads a secret without echoing
// it back when the input is a terminal. Non-terminal input falls back
// to a plain line read so the caller never blocks on a TTY that is
// not there.
func (p *Prompter) ReadPassword(prompt string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.ReadLine(prompt)
	}
	if p.out != nil {
		fmt.Fprintf(p.out, "%s: ", strings.TrimSpace(prompt))
	}
	secret, err := term.ReadPassword(int(f.Fd()))
	if p.out != nil {
		fmt.Fprintln(p.out)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}
