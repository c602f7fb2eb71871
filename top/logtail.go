// Auxiliary stats - alert log tail displayed below the main stats area.

package top

import (
	"fmt"
	"os"

	"github.com/jroimartin/gocui"
	"github.com/oracenter/oracenter/internal/stat"
)

type auxType int

const (
	auxNone auxType = iota
	auxLogtail
)

// showAux opens or closes 'aux' view in which alert log tail is displayed.
func showAux(app *app, auxtype auxType) func(g *gocui.Gui, _ *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		// Close 'aux' view if passed type of aux stats are already displayed.
		if app.config.aux == auxtype {
			return closeAux(app, g)
		}

		switch auxtype {
		case auxLogtail:
			// Tail works only when oracenter runs on the database host.
			path, err := stat.GetAlertLogPath(app.db)
			if err != nil {
				printCmdline(g, "Alert log is not available: %s", err)
				return nil
			}

			app.config.logtail = stat.Logfile{Path: path}
			if err := app.config.logtail.Open(); err != nil {
				printCmdline(g, "Failed to open alert log: %s", err)
				return nil
			}

			app.config.aux = auxtype
			printCmdline(g, "Show alert log tail")
		case auxNone:
			return closeAux(app, g)
		}

		return nil
	}
}

// closeAux closes 'aux' view and resets aux stats context.
func closeAux(app *app, g *gocui.Gui) error {
	if app.config.aux == auxNone {
		return nil
	}

	if app.config.aux == auxLogtail {
		if err := app.config.logtail.Close(); err != nil {
			printCmdline(g, "Failed to close alert log: %s", err)
		}
	}

	app.config.aux = auxNone

	if err := g.DeleteView("aux"); err != nil && err != gocui.ErrUnknownView {
		return fmt.Errorf("deleting aux view failed: %s", err)
	}

	return nil
}

// printLogtail prints last lines of the instance alert log.
func printLogtail(app *app, g *gocui.Gui, v *gocui.View) {
	x, y := v.Size()
	linesLimit := y - 1  // size of tail in lines
	bufsize := x * y * 2 // max size of used buffer -- don't need to read log more than that amount

	info, err := os.Stat(app.config.logtail.Path)
	if err != nil {
		printCmdline(g, "Failed to stat alert log: %s", err)
		return
	}

	// Update screen only if logfile is changed.
	if info.Size() > app.config.logtail.Size {
		// clear view's content and read the log
		v.Clear()
		buf, err := app.config.logtail.Read(linesLimit, bufsize)
		if err != nil {
			printCmdline(g, "Failed to read alert log: %s", err)
			return
		}

		// print the log's path and file name and log's latest lines
		if len(buf) > 0 {
			fmt.Fprintf(v, "\033[30;47m%s:\033[0m\n", app.config.logtail.Path)
			fmt.Fprintf(v, "%s", string(buf))
		}
		// remember log's size
		app.config.logtail.Size = info.Size()
	} else if info.Size() < app.config.logtail.Size {
		// size is less than it was - perhaps logfile is truncated and rotated
		v.Clear()
		err := app.config.logtail.Reopen(app.db)
		if err != nil {
			printCmdline(g, "Failed to reopen alert log: %s", err)
			return
		}
		app.config.logtail.Size = info.Size()
	}
}
