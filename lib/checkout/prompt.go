// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package checkout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on an output stream and reads one-line
// answers from an input stream.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer

	// terminalFd is the descriptor of the input when it is a terminal,
	// -1 otherwise. Hidden prompts turn echo off only on a terminal.
	terminalFd int
}

// NewPrompter returns a Prompter reading from in and writing prompts to
// out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	prompter := &Prompter{reader: bufio.NewReader(in), out: out, terminalFd: -1}
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		prompter.terminalFd = int(file.Fd())
	}
	return prompter
}

// Prompt writes "query: " and returns the next non-empty line, without
// its line ending. Empty answers ask again.
func (p *Prompter) Prompt(query string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", query)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// PromptHidden is Prompt with echo turned off when the input is a
// terminal. On any other input it behaves exactly like Prompt.
func (p *Prompter) PromptHidden(query string) (string, error) {
	if p.terminalFd < 0 {
		return p.Prompt(query)
	}
	for {
		fmt.Fprintf(p.out, "%s: ", query)
		secret, err := term.ReadPassword(p.terminalFd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", strings.ToLower(query), err)
		}
		if len(secret) > 0 {
			return string(secret), nil
		}
	}
}

// Confirm asks a yes/no question and returns the answer. An empty
// answer is no. Anything other than y, yes, n or no asks again.
func (p *Prompter) Confirm(query string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s [y/N]: ", query)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Error: invalid input")
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		fmt.Fprintln(p.out)
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
