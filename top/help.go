// Stuff related to displaying built-in help

package top

import (
	"fmt"

	"github.com/jroimartin/gocui"
)

const (
	helpTemplate = `Help for interactive commands

general actions:
    a,s,e       view: 'a' sessions, 's' system statistics, 'e' wait events,
    x,f,t             'x' statements, 'f' datafile I/O, 't' tablespaces.
    Left,Right,<,/    'Left,Right' change column sort, '<' desc/asc sort toggle, '/' set filter.
    Up,Down           'Up' increase column width, 'Down' decrease column width.

aux stats actions:
    L           show alert log tail (works on the database host only).

sessions actions:
    k           kill session by SID,SERIAL pair.

other actions:
    Q           re-initialize statistics baseline.
    z           set refresh interval.
    h,F1        show this tab.
    q,Ctrl+Q    quit.

Type 'q' or 'Esc' to continue.`
)

// showHelp opens gocui view and shows built-in help.
func showHelp(g *gocui.Gui, _ *gocui.View) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView("help", -1, -1, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return fmt.Errorf("set help view on layout failed: %s", err)
		}

		v.Frame = false
		fmt.Fprintf(v, helpTemplate)

		if _, err := g.SetCurrentView("help"); err != nil {
			return fmt.Errorf("set help view as current on layout failed: %s", err)
		}
	}
	return nil
}

// closeHelp closes gocui view and returns to stats.
func closeHelp(g *gocui.Gui, v *gocui.View) error {
	v.Clear()
	g.DeleteView("help")
	if _, err := g.SetCurrentView("sysstat"); err != nil {
		return fmt.Errorf("set sysstat view as current on layout failed: %s", err)
	}
	return nil
}
