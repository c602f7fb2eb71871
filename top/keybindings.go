// Define key bindings.

package top

import (
	"fmt"

	"github.com/jroimartin/gocui"
)

// key represents particular key, a view where it should work and associated function.
type key struct {
	viewname string
	key      interface{}
	handler  func(g *gocui.Gui, v *gocui.View) error
}

// keybindings setups key bindings and handlers.
func keybindings(app *app) error {
	var keys = []key{
		{"", gocui.KeyCtrlC, app.quit()},
		{"", gocui.KeyCtrlQ, app.quit()},
		{"sysstat", 'q', app.quit()},
		{"sysstat", gocui.KeyArrowLeft, orderKeyLeft(app.config)},
		{"sysstat", gocui.KeyArrowRight, orderKeyRight(app.config)},
		{"sysstat", gocui.KeyArrowUp, increaseWidth(app.config)},
		{"sysstat", gocui.KeyArrowDown, decreaseWidth(app.config)},
		{"sysstat", '<', switchSortOrder(app.config)},
		{"sysstat", 'a', switchViewTo(app, "sessions")},
		{"sysstat", 's', switchViewTo(app, "sysstat")},
		{"sysstat", 'e', switchViewTo(app, "events")},
		{"sysstat", 'x', switchViewTo(app, "sqlarea")},
		{"sysstat", 'f', switchViewTo(app, "filestat")},
		{"sysstat", 't', switchViewTo(app, "tablespaces")},
		{"sysstat", 'Q', resetStat(app.config)},
		{"sysstat", 'L', showAux(app, auxLogtail)},
		{"sysstat", '/', dialogOpen(app, dialogFilter)},
		{"sysstat", 'k', dialogOpen(app, dialogKillSession)},
		{"sysstat", 'z', dialogOpen(app, dialogChangeRefresh)},
		{"dialog", gocui.KeyEsc, dialogCancel(app)},
		{"dialog", gocui.KeyEnter, dialogFinish(app)},
		{"sysstat", 'h', showHelp},
		{"sysstat", gocui.KeyF1, showHelp},
		{"help", gocui.KeyEsc, closeHelp},
		{"help", 'q', closeHelp},
	}

	app.ui.InputEsc = true

	for _, k := range keys {
		if err := app.ui.SetKeybinding(k.viewname, k.key, gocui.ModNone, k.handler); err != nil {
			return fmt.Errorf("setup keybindings failed: %s", err)
		}
	}

	return nil
}
