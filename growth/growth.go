// Code related to 'oracenter growth' command

package growth

import (
	"fmt"
	"os"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
)

// Report modes selected by the mode discriminant.
const (
	ModeBySnapshot = 1 // per-snapshot detail
	ModeByDay      = 2 // per-day aggregation
	ModeSummary    = 3 // per-tablespace summary with growth per day
	ModeCurrent    = 4 // current usage only, no AWR required
)

const (
	defaultDaysBack = 7
	maxDaysBack     = 365
)

// Config defines program's configuration options.
type Config struct {
	DaysBack   int    // how many days of history to report
	Tablespace string // tablespace name filter
	Mode       int    // report mode discriminant
}

// validate checks configuration and replaces invalid settings with defaults.
func (c Config) validate() Config {
	if c.DaysBack < 1 || c.DaysBack > maxDaysBack {
		fmt.Printf("WARNING: invalid days value %d, using default %d\n", c.DaysBack, defaultDaysBack)
		c.DaysBack = defaultDaysBack
	}

	if c.Mode < ModeBySnapshot || c.Mode > ModeCurrent {
		fmt.Printf("WARNING: invalid mode %d, using summary mode\n", c.Mode)
		c.Mode = ModeSummary
	}

	return c
}

// selectQuery returns query template and section title of the selected report mode.
func selectQuery(mode int) (string, string) {
	switch mode {
	case ModeBySnapshot:
		return query.TablespaceGrowthBySnapshot, "Tablespace growth per AWR snapshot"
	case ModeByDay:
		return query.TablespaceGrowthByDay, "Tablespace growth per day"
	case ModeSummary:
		return query.TablespaceGrowthSummary, "Tablespace growth summary"
	default:
		return query.TablespaceUsageDefault, "Current tablespace usage"
	}
}

// RunMain is the main entry point for 'oracenter growth' command.
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
	opts.DaysBack = config.DaysBack
	opts.Tablespace = query.Quote(config.Tablespace)

	// History modes need AWR, fall back to current usage when it is not accessible.
	if config.Mode != ModeCurrent && !props.AWRAvailable {
		fmt.Println("WARNING: AWR views are not accessible (Diagnostics Pack license and SELECT privileges required), showing current usage only")
		config.Mode = ModeCurrent
	}

	tmpl, title := selectQuery(config.Mode)
	q, err := query.Format(tmpl, opts)
	if err != nil {
		return err
	}

	fmt.Printf("INFO: %s, period %d days\n", props.DatabaseName, config.DaysBack)

	sections := []stat.Section{{Title: title, Query: q}}

	// Detail modes are followed by the summary projection over the same period.
	if config.Mode == ModeBySnapshot || config.Mode == ModeByDay {
		sq, err := query.Format(query.TablespaceGrowthSummary, opts)
		if err != nil {
			return err
		}
		sections = append(sections, stat.Section{Title: "Tablespace growth summary", Query: sq})
	}

	// History modes also show where the tablespaces stand now.
	if config.Mode != ModeCurrent {
		cq, err := query.Format(query.TablespaceUsageDefault, opts)
		if err != nil {
			return err
		}
		sections = append(sections, stat.Section{Title: "Current tablespace usage", Query: cq})
	}

	stat.PrintSections(os.Stdout, db, sections)

	return nil
}
