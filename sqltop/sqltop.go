// Code related to 'oracenter sqltop' command

package sqltop

import (
	"fmt"
	"os"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
)

// Statement sources selected by the source discriminant.
const (
	SourceCursorCache = "cursor" // v$sqlarea, statements still cached
	SourceAWR         = "awr"    // dba_hist_sqlstat, snapshot range history
)

const (
	defaultMetric    = "elapsed"
	defaultTopN      = 10
	maxTopN          = 100
	defaultHoursBack = 24
	maxHoursBack     = 24 * 365
	defaultStrlimit  = 64
)

// Config defines program's configuration options.
type Config struct {
	Metric    string // ordering metric discriminant: elapsed, cpu, gets, reads, execs
	TopN      int    // number of statements to show
	Source    string // statements source discriminant
	SnapBegin int    // begin AWR snapshot ID (awr source)
	SnapEnd   int    // end AWR snapshot ID
	HoursBack int    // how many hours of history to report (awr source)
	InstID    int    // RAC instance filter
	Strlimit  int    // sql_text length limit, 0 means no truncation
}

// knownMetrics is the set of accepted values of the metric discriminant.
var knownMetrics = map[string]bool{
	"elapsed": true,
	"cpu":     true,
	"gets":    true,
	"reads":   true,
	"execs":   true,
}

// validate checks configuration and replaces invalid settings with defaults.
func (c Config) validate() Config {
	if !knownMetrics[c.Metric] {
		fmt.Printf("WARNING: unknown metric '%s', using %s\n", c.Metric, defaultMetric)
		c.Metric = defaultMetric
	}

	if c.TopN < 1 || c.TopN > maxTopN {
		fmt.Printf("WARNING: invalid limit %d, using default %d\n", c.TopN, defaultTopN)
		c.TopN = defaultTopN
	}

	if c.Source != SourceCursorCache && c.Source != SourceAWR {
		fmt.Printf("WARNING: unknown source '%s', using cursor cache\n", c.Source)
		c.Source = SourceCursorCache
	}

	if c.SnapBegin != 0 || c.SnapEnd != 0 {
		if c.SnapEnd <= c.SnapBegin {
			fmt.Printf("WARNING: invalid snapshot range %d..%d, using last %d hours\n", c.SnapBegin, c.SnapEnd, defaultHoursBack)
			c.SnapBegin, c.SnapEnd = 0, 0
		}
	}

	if c.SnapBegin == 0 && (c.HoursBack < 1 || c.HoursBack > maxHoursBack) {
		c.HoursBack = defaultHoursBack
	}

	return c
}

// RunMain is the main entry point for 'oracenter sqltop' command.
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

	opts := query.NewOptions(props.VersionNum, props.RAC, props.CDB, config.Strlimit)
	opts.TopN = config.TopN
	opts.SnapBegin = config.SnapBegin
	opts.SnapEnd = config.SnapEnd
	opts.HoursBack = config.HoursBack
	opts.InstID = config.InstID

	// AWR source degrades to the cursor cache when history views are not accessible.
	if config.Source == SourceAWR && !props.AWRAvailable {
		fmt.Println("WARNING: AWR views are not accessible (Diagnostics Pack license and SELECT privileges required), using cursor cache")
		config.Source = SourceCursorCache
	}

	var tmpl, title string
	if config.Source == SourceAWR {
		opts.MetricExpr = query.SelectSQLMetricHistory(config.Metric)
		tmpl = query.SqlTopHistory
		title = fmt.Sprintf("Top %d statements by %s, AWR history", config.TopN, config.Metric)
	} else {
		opts.MetricExpr = query.SelectSQLMetricCurrent(config.Metric)
		tmpl = query.SqlTopCurrent
		title = fmt.Sprintf("Top %d statements by %s, cursor cache", config.TopN, config.Metric)
	}

	q, err := query.Format(tmpl, opts)
	if err != nil {
		return err
	}

	fmt.Printf("INFO: %s, ordered by %s\n", props.DatabaseName, config.Metric)

	stat.PrintSections(os.Stdout, db, []stat.Section{{Title: title, Query: q}})

	return nil
}

// RunShowStatement connects to Oracle and prints the full text of a single statement.
func RunShowStatement(dbConfig oracle.Config, sqlid string) error {
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

	return ShowStatement(db, opts.Gv, sqlid)
}

// ShowStatement prints the full text of a single statement found by SQL ID.
func ShowStatement(db *oracle.DB, gv string, sqlid string) error {
	var text string
	err := db.QueryRow(query.SelectSQLText(gv), sqlid).Scan(&text)
	if err != nil {
		return fmt.Errorf("statement %s not found in cursor cache: %s", sqlid, err)
	}

	fmt.Printf("== SQL ID %s\n%s\n", sqlid, text)
	return nil
}
