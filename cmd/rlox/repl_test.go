package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateExitReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("exit()")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateScansLineIntoHistory(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("or fun")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(rm.history))
	}
	entry := rm.history[0]
	if entry.isErr {
		t.Fatalf("unexpected error output: %s", entry.output)
	}
	for _, want := range []string{`OR "or" [line 1]`, `FUN "fun" [line 1]`, `EOF "" [line 1]`} {
		if !strings.Contains(entry.output, want) {
			t.Fatalf("output missing %q:\n%s", want, entry.output)
		}
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after scan")
	}
}

func TestUpdateScanErrorDoesNotQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(`"aaaa`)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if cmd != nil {
		t.Fatalf("errors must not end the session")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if len(rm.history) != 1 || !rm.history[0].isErr {
		t.Fatalf("expected one error entry, got %+v", rm.history)
	}
	if rm.history[0].output != "[line 1] Error: Unterminated string" {
		t.Fatalf("unexpected error text: %s", rm.history[0].output)
	}
}

func TestUpdateBlankLineIsIgnored(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("   ")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	if len(rm.history) != 0 {
		t.Fatalf("blank input should not be scanned")
	}
}

func TestUpdateHistoryNavigation(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("1 + 2")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyUp})
	rm = model.(replModel)
	if rm.textInput.Value() != "1 + 2" {
		t.Fatalf("up arrow did not recall previous line: %q", rm.textInput.Value())
	}

	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyDown})
	rm = model.(replModel)
	if rm.textInput.Value() != "" {
		t.Fatalf("down arrow past newest entry should clear input")
	}
}

func TestScanLineTokens(t *testing.T) {
	output, isErr := scanLine(">=<===!=")
	if isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	lines := strings.Split(output, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 4 tokens plus EOF, got %d lines:\n%s", len(lines), output)
	}
	if lines[0] != `>= ">=" [line 1]` {
		t.Fatalf("unexpected first token: %s", lines[0])
	}
}

func TestScanLineResetsLineNumbers(t *testing.T) {
	// Each line gets a fresh scanner; line numbers do not accumulate across
	// REPL submissions.
	for i := 0; i < 2; i++ {
		output, isErr := scanLine("+")
		if isErr {
			t.Fatalf("unexpected error: %s", output)
		}
		if !strings.Contains(output, `+ "+" [line 1]`) {
			t.Fatalf("line numbers should restart at 1:\n%s", output)
		}
	}
}
