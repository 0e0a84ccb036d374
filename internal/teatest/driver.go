// Package teatest drives a tea.Model in tests without a tea.Program.
//
// Messages go straight to Update, and the returned Cmds are run inline until
// the model goes quiet. Models under test must only return Cmds that finish
// on their own; timers and tickers would block the test.
package teatest

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxSteps bounds how many Cmds one Send may run, so a model that keeps
// rescheduling itself fails the test instead of hanging it.
const MaxSteps = 100

// Driver feeds messages to a model and records whether it asked to quit.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once the model returns tea.Quit. Later input is dropped.
	Quitting bool
}

// Option configures the Driver during construction.
type Option func(*Driver)

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Send(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// DrainInit runs the model's Init command to completion.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init())
}

// Send delivers msg and runs every Cmd that follows from it.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd)
}

func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a single printable key such as 'q' or 'G'.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlC})
}

func (d *Driver) PressLeft() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyLeft})
}

func (d *Driver) PressRight() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRight})
}

func (d *Driver) PressHome() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyHome})
}

func (d *Driver) PressEnd() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEnd})
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

// RequireViewContains fails the test unless every fragment appears in the
// rendered view.
func (d *Driver) RequireViewContains(fragments ...string) {
	d.T.Helper()
	view := d.View()
	for _, f := range fragments {
		if !strings.Contains(view, f) {
			d.T.Fatalf("view does not contain %q:\n%s", f, view)
		}
	}
}

// run executes cmd and everything it leads to in FIFO order. Batches are
// flattened into the queue; tea.QuitMsg stops processing.
func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps >= MaxSteps {
			d.T.Fatalf("teatest: model still producing commands after %d steps", MaxSteps)
			return
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			d.Quitting = true
			return
		default:
			var follow tea.Cmd
			d.Model, follow = d.Model.Update(msg)
			queue = append(queue, follow)
		}
	}
}
