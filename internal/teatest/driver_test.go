package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type counterMsg int

// counter moves with the arrow keys and reloads its value through a Cmd so
// draining is exercised.
type counter struct {
	value int
	width int
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return counterMsg(10) }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case counterMsg:
		c.value = int(msg)
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyRight:
			next := c.value + 1
			return c, func() tea.Msg { return counterMsg(next) }
		case tea.KeyLeft:
			c.value--
		case tea.KeyHome:
			c.value = 0
		case tea.KeyEnd:
			return c, tea.Batch(
				func() tea.Msg { return counterMsg(98) },
				func() tea.Msg { return counterMsg(99) },
			)
		case tea.KeyEsc:
			return c, tea.Quit
		}
	}
	return c, nil
}

func (c counter) View() string {
	return fmt.Sprintf("value=%d width=%d", c.value, c.width)
}

func TestDriver_DrainsCommands(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	d.DrainInit()
	d.RequireViewContains("value=10", "width=80")

	d.PressRight()
	d.PressRight()
	d.PressLeft()
	d.RequireViewContains("value=11")

	d.PressHome()
	assert.Equal(t, "value=0 width=80", d.View())
}

func TestDriver_DetectsQuit(t *testing.T) {
	d := New(t, counter{})
	d.PressEsc()
	assert.True(t, d.Quitting)

	d.PressRight()
	assert.Equal(t, 0, d.Model.(counter).value, "input after quit is ignored")
}

func TestDriver_FlattensBatches(t *testing.T) {
	d := New(t, counter{})
	d.PressEnd()
	assert.Equal(t, 99, d.Model.(counter).value, "batched commands run in order")
}
