// config defines 'top' program runtime configuration - selected view and its settings like columns order, used
// aligning, filters, etc.

package top

import (
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
	"github.com/oracenter/oracenter/internal/view"
)

// config defines 'top' program runtime configuration.
type config struct {
	view         view.View      // Current active view.
	views        view.Views     // List of all available views.
	queryOptions query.Options  // Queries' settings that might depend on Oracle version.
	viewCh       chan view.View // Channel used for passing view settings to stats goroutine.
	logtail      stat.Logfile   // Logfile used for working with instance alert log.
	dialog       dialogType     // Remember current user-started dialog, used for selecting needed dialog handler.
	aux          auxType        // Type of auxiliary stats displayed below the main stats area.
}

// newConfig creates 'top' initial configuration.
func newConfig() *config {
	views := view.New()

	return &config{
		views:  views,
		viewCh: make(chan view.View),
	}
}
