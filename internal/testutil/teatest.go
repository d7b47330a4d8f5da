package testutil

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestProgram wraps a Bubble Tea program for testing
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	done    chan struct{}
	t       *testing.T
}

// syncBuffer guards the output buffer shared with the program's renderer
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewTestProgram starts model with no terminal input and captured output.
// The program is stopped when the test ends.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(
		model,
		tea.WithInput(nil),
		tea.WithOutput(output),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		done:    make(chan struct{}),
		t:       t,
	}

	go func() {
		defer close(tp.done)
		if _, err := p.Run(); err != nil {
			t.Logf("Program error: %v", err)
		}
	}()
	t.Cleanup(tp.Quit)

	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})

	return tp
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(20 * time.Millisecond) // Give time for message to process
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// SendAlt sends alt plus a rune, which is how a terminal reports Meta
// shortcuts
func (tp *TestProgram) SendAlt(r rune) {
	tp.Send(tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune{r},
		Alt:   true,
	})
}

// Output returns everything the program has rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for specific text to appear in output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// AssertContains checks if output contains expected text
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()

	output := tp.Output()
	if !strings.Contains(output, expected) {
		tp.t.Errorf("Output does not contain %q\nGot:\n%s", expected, output)
	}
}

// Quit stops the program and waits for it to exit
func (tp *TestProgram) Quit() {
	tp.program.Quit()
	select {
	case <-tp.done:
	case <-time.After(time.Second):
		tp.t.Log("program did not exit in time")
	}
}

// Finished reports whether the program has exited
func (tp *TestProgram) Finished() bool {
	select {
	case <-tp.done:
		return true
	default:
		return false
	}
}
