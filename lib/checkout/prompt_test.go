// Copyright 2026 The Grocery Authors
// SPDX-License-Identifier: Apache-2.0

package checkout

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrompter_Prompt(t *testing.T) {
	var output bytes.Buffer
	prompter := NewPrompter(strings.NewReader("\n\r\nanswer\r\n"), &output)

	got, err := prompter.Prompt("what?")
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if got != "answer" {
		t.Errorf("Prompt = %q, want answer", got)
	}
	if output.String() != "what?: what?: what?: " {
		t.Errorf("output = %q, want the prompt repeated for each empty answer", output.String())
	}
}

func TestPrompter_LastLineWithoutNewline(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("final"), &bytes.Buffer{})
	got, err := prompter.Prompt("q")
	if err != nil || got != "final" {
		t.Errorf("Prompt = %q, %v", got, err)
	}
	if _, err := prompter.Prompt("q"); !errors.Is(err, ErrAborted) {
		t.Errorf("Prompt at EOF error = %v, want ErrAborted", err)
	}
}

func TestPrompter_PromptHiddenOnPipe(t *testing.T) {
	prompter := NewPrompter(strings.NewReader("123\n"), &bytes.Buffer{})
	got, err := prompter.PromptHidden("code")
	if err != nil || got != "123" {
		t.Errorf("PromptHidden = %q, %v", got, err)
	}
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "No\n", want: false},
		{input: "\n", want: false},
		{input: "maybe\ny\n", want: true},
	}
	for _, test := range tests {
		var output bytes.Buffer
		got, err := NewPrompter(strings.NewReader(test.input), &output).Confirm("ok?")
		if err != nil {
			t.Errorf("Confirm(%q) error: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("Confirm(%q) = %v, want %v", test.input, got, test.want)
		}
	}

	var output bytes.Buffer
	if _, err := NewPrompter(strings.NewReader("maybe\nn\n"), &output).Confirm("ok?"); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if want := "ok? [y/N]: Error: invalid input\nok? [y/N]: "; output.String() != want {
		t.Errorf("output = %q, want %q", output.String(), want)
	}
}
