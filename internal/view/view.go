package view

import (
	"regexp"
	"time"

	"github.com/oracenter/oracenter/internal/query"
)

// View describes how stats received from Oracle should be displayed.
type View struct {
	Name      string                 // Context name
	QueryTmpl string                 // Query template
	Query     string                 // Formatted query, ready to execute
	DiffIntvl [2]int                 // Columns interval for diff
	Cols      []string               // Columns names
	Ncols     int                    // Number of columns returned by query, used as a right border for OrderKey
	OrderKey  int                    // Number of column used for order
	OrderDesc bool                   // Order direction: descending (true) or ascending (false)
	UniqueKey int                    // Last column of the compound key (columns 0..UniqueKey) used on rows comparing when building diffs, by default it's zero which is OK in almost all contexts
	ColsWidth map[int]int            // Set width for columns and control an aligning
	Aligned   bool                   // Is aligning calculated?
	Msg       string                 // Show this text in Cmdline when switching to this unit
	Filters   map[int]*regexp.Regexp // Storage for filter patterns: key is the column index, value - regexp pattern
	RACShift  bool                   // Query gets leading inst column on RAC, keys must be shifted
	Refresh   time.Duration          // Refresh interval, used by interactive viewer only
}

// Views is a list of all used context units.
type Views map[string]View

func New() Views {
	return map[string]View{
		// sessions unit describes how to display gv$session
		"sessions": {
			Name:      "sessions",
			QueryTmpl: query.SessionsDefault,
			DiffIntvl: [2]int{0, 0},
			Ncols:     11,
			OrderKey:  6, // wait_sec
			OrderDesc: true,
			ColsWidth: map[int]int{},
			Msg:       "Show user sessions",
			Filters:   map[int]*regexp.Regexp{},
			RACShift:  true,
		},
		// sysstat unit describes how to display cumulative counters of gv$sysstat
		"sysstat": {
			Name:      "sysstat",
			QueryTmpl: query.SysstatDefault,
			DiffIntvl: [2]int{1, 1},
			Ncols:     2,
			OrderKey:  1, // value
			OrderDesc: true,
			ColsWidth: map[int]int{},
			Msg:       "Show system statistics",
			Filters:   map[int]*regexp.Regexp{},
			RACShift:  true,
		},
		// events unit describes how to display cumulative counters of gv$system_event
		"events": {
			Name:      "events",
			QueryTmpl: query.SystemEventsDefault,
			DiffIntvl: [2]int{2, 4},
			Ncols:     5,
			OrderKey:  4, // waited_sec
			OrderDesc: true,
			ColsWidth: map[int]int{},
			Msg:       "Show wait events statistics",
			Filters:   map[int]*regexp.Regexp{},
			RACShift:  true,
		},
		// sqlarea unit describes how to display cumulative counters of gv$sqlarea
		"sqlarea": {
			Name:      "sqlarea",
			QueryTmpl: query.SqlareaDefault,
			DiffIntvl: [2]int{1, 6},
			Ncols:     8,
			OrderKey:  2, // elapsed_ms
			OrderDesc: true,
			ColsWidth: map[int]int{},
			Msg:       "Show statements statistics",
			Filters:   map[int]*regexp.Regexp{},
			RACShift:  true,
		},
		// filestat unit describes how to display datafile I/O counters of gv$filestat
		"filestat": {
			Name:      "filestat",
			QueryTmpl: query.FilestatDefault,
			DiffIntvl: [2]int{1, 6},
			Ncols:     7,
			OrderKey:  1, // phyrds
			OrderDesc: true,
			ColsWidth: map[int]int{},
			Msg:       "Show datafile I/O statistics",
			Filters:   map[int]*regexp.Regexp{},
			RACShift:  true,
		},
		// tablespaces unit describes how to display current tablespace usage
		"tablespaces": {
			Name:      "tablespaces",
			QueryTmpl: query.TablespaceUsageDefault,
			DiffIntvl: [2]int{0, 0},
			Ncols:     7,
			OrderKey:  4, // used_pct
			OrderDesc: true,
			ColsWidth: map[int]int{},
			Msg:       "Show tablespaces usage",
			Filters:   map[int]*regexp.Regexp{},
		},
	}
}

// Configure formats view queries accordingly to instance properties. On RAC the
// queries switch to gv$ views and get a leading inst column, all column-based
// keys are shifted by one.
func (v Views) Configure(opts query.Options) error {
	for k, view := range v {
		q, err := query.Format(view.QueryTmpl, opts)
		if err != nil {
			return err
		}
		view.Query = q

		if opts.RAC && view.RACShift {
			view.Ncols++
			view.OrderKey++
			view.UniqueKey++
			if view.DiffIntvl != [2]int{0, 0} {
				view.DiffIntvl[0]++
				view.DiffIntvl[1]++
			}
		}

		v[k] = view
	}

	return nil
}
