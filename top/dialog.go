// Dialogs are used for asking a user about something or for confirming actions that are going to be executed.

package top

import (
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
)

// dialogType defines type of dialog between oracenter and user.
type dialogType int

const (
	// All possible dialog types.
	dialogNone dialogType = iota
	dialogFilter
	dialogKillSession
	dialogChangeRefresh
)

// dialogPrompts returns dialog prompt depending on user-requested actions.
func dialogPrompts(t dialogType) string {
	prompts := map[dialogType]string{
		dialogFilter:        "Set filter: ",
		dialogKillSession:   "Session to kill, format SID,SERIAL: ",
		dialogChangeRefresh: "Change refresh (min 1, max 300) to ",
	}

	return prompts[t]
}

// dialogOpen opens view for the dialog.
func dialogOpen(app *app, d dialogType) func(g *gocui.Gui, _ *gocui.View) error {
	return func(g *gocui.Gui, _ *gocui.View) error {
		prompt := dialogPrompts(d)

		// killing sessions is allowed in sessions stats context only.
		if d == dialogKillSession && app.config.view.Name != "sessions" {
			printCmdline(g, "Killing sessions allowed in sessions view only.")
			return nil
		}

		maxX, _ := g.Size()

		// Create one-line editable view, print a prompt and set cursor after it.
		v, err := g.SetView("dialog", len(prompt)-1, 3, maxX-1, 5)
		if err != nil {
			// gocui.ErrUnknownView is OK it means a new view has been created, continue if it happens.
			if err != gocui.ErrUnknownView {
				return fmt.Errorf("set dialog view on layout failed: %s", err)
			}
		}

		p, err := g.View("cmdline")
		if err != nil {
			return fmt.Errorf("set focus on cmdline view failed: %s", err)
		}

		_, err = fmt.Fprint(p, prompt)
		if err != nil {
			return fmt.Errorf("print to cmdline view failed: %s", err)
		}

		g.Cursor = true
		v.Editable = true
		v.Frame = false

		if _, err := g.SetCurrentView("dialog"); err != nil {
			return fmt.Errorf("set dialog view as current on layout failed: %s", err)
		}

		// Remember the type of an opened dialog. It will be required when the dialog will be finished.
		app.config.dialog = d

		return nil
	}
}

// dialogFinish runs proper handler after user submits its dialog input.
func dialogFinish(app *app) func(g *gocui.Gui, v *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		printCmdline(g, "")

		// Extract user entered answer from buffer.
		answer := strings.TrimPrefix(v.Buffer(), dialogPrompts(app.config.dialog))
		answer = strings.TrimSuffix(answer, "\n")

		var message string

		switch app.config.dialog {
		case dialogFilter:
			message = setFilter(answer, app.config.view)
		case dialogKillSession:
			message = killSession(app.db, answer)
		case dialogChangeRefresh:
			message = changeRefresh(answer, app.config)
		case dialogNone:
			// do nothing
		}

		printCmdline(g, message)

		app.config.dialog = dialogNone

		return dialogClose(g, v)
	}
}

// dialogCancel reset dialog state when user cancels input.
func dialogCancel(app *app) func(g *gocui.Gui, v *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		app.config.dialog = dialogNone
		printCmdline(g, "Do nothing. Operation canceled.")
		return dialogClose(g, v)
	}
}

// dialogClose destroys UI view object related to dialog.
func dialogClose(g *gocui.Gui, v *gocui.View) error {
	g.Cursor = false
	v.Clear()

	err := g.DeleteView("dialog")
	if err != nil {
		return fmt.Errorf("deleting dialog view failed: %s", err)
	}

	// Switch focus from destroyed 'dialog' view to 'sysstat'.
	_, err = g.SetCurrentView("sysstat")
	if err != nil {
		return fmt.Errorf("set sysstat view as current on layout failed: %s", err)
	}

	return nil
}
