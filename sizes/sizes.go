// Code related to 'oracenter sizes' command

package sizes

import (
	"fmt"
	"os"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
)

// Report modes selected by the mode discriminant.
const (
	ModeTopSegments = 1 // largest segments
	ModeByOwner     = 2 // per-owner totals
	ModeByType      = 3 // per-type totals
)

const (
	defaultTopN = 20
	maxTopN     = 1000
)

// Config defines program's configuration options.
type Config struct {
	Owner string // segment owner filter
	TopN  int    // number of rows to show
	Mode  int    // report mode discriminant
}

// validate checks configuration and replaces invalid settings with defaults.
func (c Config) validate() Config {
	if c.TopN < 1 || c.TopN > maxTopN {
		fmt.Printf("WARNING: invalid limit %d, using default %d\n", c.TopN, defaultTopN)
		c.TopN = defaultTopN
	}

	if c.Mode < ModeTopSegments || c.Mode > ModeByType {
		fmt.Printf("WARNING: invalid mode %d, showing top segments\n", c.Mode)
		c.Mode = ModeTopSegments
	}

	return c
}

// selectQuery returns query template and section title of the selected report mode.
func selectQuery(mode int, topn int) (string, string) {
	switch mode {
	case ModeByOwner:
		return query.SegmentsByOwner, fmt.Sprintf("Top %d owners by segment size", topn)
	case ModeByType:
		return query.SegmentsByType, "Segment size per type"
	default:
		return query.SegmentsTopDefault, fmt.Sprintf("Top %d segments by size", topn)
	}
}

// RunMain is the main entry point for 'oracenter sizes' command.
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
	opts.TopN = config.TopN
	opts.Owner = query.Quote(config.Owner)

	fmt.Printf("INFO: %s\n", props.DatabaseName)

	tmpl, title := selectQuery(config.Mode, config.TopN)
	q, err := query.Format(tmpl, opts)
	if err != nil {
		return err
	}

	stat.PrintSections(os.Stdout, db, []stat.Section{{Title: title, Query: q}})

	return nil
}
