// Package monitor prints the joystick signal to the terminal as it changes.
// it consumes readings from the gui channels in its own goroutine, the
// graphical frontend never waits for it
package monitor

import (
	"fmt"
	"io"

	"github.com/jetsetilly/touchstick/gui"
)

type monitor struct {
	w      io.Writer
	styles styles

	// the previously printed reading. a fresh line is only printed when the
	// reading changes
	prev   gui.Reading
	primed bool
}

func (m *monitor) print(r gui.Reading) {
	if m.primed && r == m.prev {
		return
	}
	m.prev = r
	m.primed = true

	if r.Hidden {
		fmt.Fprintf(m.w, "%s %s\n",
			m.styles.mode.Render(r.Mode.String()),
			m.styles.idle.Render("idle"),
		)
		return
	}

	s := fmt.Sprintf("%+.3f %+.3f", r.Output.X, r.Output.Y)
	if r.Pressed {
		fmt.Fprintf(m.w, "%s %s %s\n",
			m.styles.mode.Render(r.Mode.String()),
			m.styles.output.Render(s),
			m.styles.pressed.Render("pressed"),
		)
	} else {
		fmt.Fprintf(m.w, "%s %s\n",
			m.styles.mode.Render(r.Mode.String()),
			m.styles.output.Render(s),
		)
	}
}

// Launch the monitor loop. returns when the endMonitor channel is closed or
// written to
func Launch(endMonitor chan bool, g *gui.GUI, w io.Writer) error {
	m := &monitor{
		w:      w,
		styles: newStyles(),
	}

	for {
		select {
		case <-endMonitor:
			return nil
		case r := <-g.Readings:
			m.print(r)
		}
	}
}
