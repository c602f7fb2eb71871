// Code related to 'oracenter waits' command

package waits

import (
	"fmt"
	"os"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
)

// Grouping branches selected by the group discriminant. All branches share the
// same filtered delta dataset and differ only in aggregation.
const (
	GroupBySnapshot = 1
	GroupByEvent    = 2
	GroupByHour     = 3
)

const (
	defaultHoursBack = 24
	maxHoursBack     = 24 * 365
	defaultTopN      = 10
	maxTopN          = 100
)

// Config defines program's configuration options.
type Config struct {
	SnapBegin int    // begin AWR snapshot ID, 0 means use hours back
	SnapEnd   int    // end AWR snapshot ID
	HoursBack int    // how many hours of history to report
	InstID    int    // RAC instance filter, 0 means all instances
	Event     string // wait event name filter
	WaitClass string // wait class filter
	Group     int    // grouping discriminant
	TopN      int    // number of events in the top summary
}

// validate checks configuration and replaces invalid settings with defaults.
func (c Config) validate() Config {
	if c.SnapBegin != 0 || c.SnapEnd != 0 {
		if c.SnapEnd <= c.SnapBegin {
			fmt.Printf("WARNING: invalid snapshot range %d..%d, using last %d hours\n", c.SnapBegin, c.SnapEnd, defaultHoursBack)
			c.SnapBegin, c.SnapEnd = 0, 0
		}
	}

	if c.SnapBegin == 0 && (c.HoursBack < 1 || c.HoursBack > maxHoursBack) {
		fmt.Printf("WARNING: invalid hours value %d, using default %d\n", c.HoursBack, defaultHoursBack)
		c.HoursBack = defaultHoursBack
	}

	if c.Group < GroupBySnapshot || c.Group > GroupByHour {
		fmt.Printf("WARNING: invalid grouping %d, grouping by event\n", c.Group)
		c.Group = GroupByEvent
	}

	if c.TopN < 1 || c.TopN > maxTopN {
		fmt.Printf("WARNING: invalid limit %d, using default %d\n", c.TopN, defaultTopN)
		c.TopN = defaultTopN
	}

	return c
}

// selectQuery returns query template and section title of the selected grouping branch.
func selectQuery(group int) (string, string) {
	switch group {
	case GroupBySnapshot:
		return query.WaitEventsBySnapshot, "Wait events per AWR snapshot"
	case GroupByHour:
		return query.WaitEventsByHour, "Wait events per hour"
	default:
		return query.WaitEventsByEvent, "Wait events per event"
	}
}

// RunMain is the main entry point for 'oracenter waits' command.
func RunMain(dbConfig oracle.Config, config Config) error {
	config = config.validate()

	db, err := oracle.Connect(dbConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	props, err := stat.GetOracleProperties(db)
	if err != nil {
		return err
	}

	opts := query.NewOptions(props.VersionNum, props.RAC, props.CDB, 0)
	opts.SnapBegin = config.SnapBegin
	opts.SnapEnd = config.SnapEnd
	opts.HoursBack = config.HoursBack
	opts.TopN = config.TopN
	opts.Event = query.Quote(config.Event)
	opts.WaitClass = query.Quote(config.WaitClass)

	if config.InstID != 0 && !props.RAC {
		fmt.Println("WARNING: instance filter is only meaningful on RAC, ignored")
	} else {
		opts.InstID = config.InstID
	}

	// Without AWR only the cumulative counters since startup are available.
	if !props.AWRAvailable {
		fmt.Println("WARNING: AWR views are not accessible (Diagnostics Pack license and SELECT privileges required), showing top events since instance startup")

		q, err := query.Format(query.WaitEventsCurrentTop, opts)
		if err != nil {
			return err
		}
		stat.PrintSections(os.Stdout, db, []stat.Section{{Title: "Top wait events since startup", Query: q}})
		return nil
	}

	if config.SnapBegin != 0 {
		fmt.Printf("INFO: %s, snapshots %d..%d (available %d..%d)\n",
			props.DatabaseName, config.SnapBegin, config.SnapEnd, props.SnapMin, props.SnapMax)
	} else {
		fmt.Printf("INFO: %s, last %d hours\n", props.DatabaseName, config.HoursBack)
	}

	tmpl, title := selectQuery(config.Group)
	q, err := query.Format(tmpl, opts)
	if err != nil {
		return err
	}

	topq, err := query.Format(query.WaitEventsTopSummary, opts)
	if err != nil {
		return err
	}

	stat.PrintSections(os.Stdout, db, []stat.Section{
		{Title: title, Query: q},
		{Title: fmt.Sprintf("Top %d events by waited time", config.TopN), Query: topq},
	})

	return nil
}
