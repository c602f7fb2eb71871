// View manipulation handlers - switching between views, ordering, filtering and aligning settings.

package top

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/oracenter/oracenter/internal/math"
	"github.com/oracenter/oracenter/internal/view"
)

const (
	colsWidthMax  = 256 // max width allowed for column, they can't be wider than that value
	colsWidthStep = 4   // minimal step of changing column's width, 1 is too boring and 4 looks good
)

// orderKeyLeft switches sort order to left column.
func orderKeyLeft(config *config) func(_ *gocui.Gui, _ *gocui.View) error {
	return func(_ *gocui.Gui, _ *gocui.View) error {
		config.view.OrderKey--
		if config.view.OrderKey < 0 {
			config.view.OrderKey = config.view.Ncols - 1
		}

		config.viewCh <- config.view
		return nil
	}
}

// orderKeyRight switches sort order to right column.
func orderKeyRight(config *config) func(_ *gocui.Gui, _ *gocui.View) error {
	return func(_ *gocui.Gui, _ *gocui.View) error {
		config.view.OrderKey++
		if config.view.OrderKey >= config.view.Ncols {
			config.view.OrderKey = 0
		}

		config.viewCh <- config.view
		return nil
	}
}

// increaseWidth increases visible width of current column.
func increaseWidth(config *config) func(_ *gocui.Gui, _ *gocui.View) error {
	return func(_ *gocui.Gui, _ *gocui.View) error {
		idx := config.view.OrderKey // index of the current selected column

		// Increase the width using current width. Clamp the value, it should not be greater than max allowed limit.
		config.view.ColsWidth[idx] = math.Min(config.view.ColsWidth[idx]+colsWidthStep, colsWidthMax)

		config.viewCh <- config.view
		return nil
	}
}

// decreaseWidth decreases visible width of current column.
func decreaseWidth(config *config) func(_ *gocui.Gui, _ *gocui.View) error {
	return func(_ *gocui.Gui, _ *gocui.View) error {
		idx := config.view.OrderKey // index of the current selected column

		// Decrease the width using current width. Clamp the value, it should not be less than width of column's name.
		config.view.ColsWidth[idx] = math.Max(config.view.ColsWidth[idx]-colsWidthStep, len(config.view.Cols[idx]))

		config.viewCh <- config.view
		return nil
	}
}

// switchSortOrder switches sort order of current column between DESC and ASC.
func switchSortOrder(config *config) func(g *gocui.Gui, _ *gocui.View) error {
	return func(g *gocui.Gui, _ *gocui.View) error {
		config.view.OrderDesc = !config.view.OrderDesc
		printCmdline(g, "Switch sort order")

		config.viewCh <- config.view
		return nil
	}
}

// setFilter adds pattern for filtering values in the current column.
func setFilter(answer string, view view.View) string {
	// Clear used pattern if empty string is entered.
	if answer == "\n" || answer == "" {
		delete(view.Filters, view.OrderKey)
		return "Filters: regular expression cleared"
	}

	// Compile regexp and store to filters.
	re, err := regexp.Compile(answer)
	if err != nil {
		return fmt.Sprintf("Filters: %s", err)
	}

	view.Filters[view.OrderKey] = re
	return "Filters: ok"
}

// switchViewTo switches from current view to requested.
func switchViewTo(app *app, c string) func(g *gocui.Gui, _ *gocui.View) error {
	return func(g *gocui.Gui, _ *gocui.View) error {
		if app.config.view.Name == c {
			return nil
		}

		viewSwitchHandler(app.config, c)

		printCmdline(g, app.config.view.Msg)
		return nil
	}
}

// viewSwitchHandler is routine handler which switches views and notify channel.
func viewSwitchHandler(config *config, c string) {
	config.views[config.view.Name] = config.view
	config.view = config.views[c]
	config.viewCh <- config.view
}

// resetStat re-initializes stats baseline, all diff columns start counting from scratch.
func resetStat(config *config) func(g *gocui.Gui, _ *gocui.View) error {
	return func(g *gocui.Gui, _ *gocui.View) error {
		config.viewCh <- config.view
		printCmdline(g, "Reset statistics")
		return nil
	}
}

// changeRefresh changes current refresh interval.
func changeRefresh(answer string, config *config) string {
	if answer == "" {
		return "Refresh: do nothing"
	}

	interval, err := strconv.Atoi(answer)
	if err != nil {
		return "Refresh: do nothing, invalid input"
	}

	if interval < 1 || interval > 300 {
		return "Refresh: input value should be between 1 and 300"
	}

	// Set refresh interval, send it to stats channel and reset interval in the view.
	// Refresh interval should not be saved as a per-view setting. It's used as a setting for stats goroutine.
	config.view.Refresh = time.Duration(interval) * time.Second
	config.viewCh <- config.view
	config.view.Refresh = 0

	return "Refresh: ok"
}
