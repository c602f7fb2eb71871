package query

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

const (
	// OracleV11 .. OracleV23 are major Oracle Database versions in numeric format.
	OracleV11 = 11
	OracleV12 = 12
	OracleV18 = 18
	OracleV19 = 19
	OracleV21 = 21
	OracleV23 = 23
)

// Options contains queries' settings that used depending on connected instance and user preferences.
type Options struct {
	Version    int    // Oracle major version
	RAC        bool   // Is cluster_database enabled?
	CDB        bool   // Is instance a container database?
	Gv         string // Dynamic views prefix: gv$ on RAC, v$ otherwise
	InstID     int    // Instance number filter on RAC, 0 means all instances
	DaysBack   int    // How many days of history to report
	HoursBack  int    // How many hours of history to report
	SnapBegin  int    // Begin AWR snapshot ID
	SnapEnd    int    // End AWR snapshot ID
	TopN       int    // Limit for top-N projections
	Tablespace string // Tablespace name filter (LIKE pattern)
	Owner      string // Segment owner filter (LIKE pattern)
	Event      string // Wait event name filter (LIKE pattern)
	WaitClass  string // Wait class filter
	MetricExpr string // Ordering expression for SQL top-N reports
	SQLTextFn  string // Expression truncating sql_text to a sane length
}

// NewOptions creates query options used for queries customization depending on Oracle version and cluster mode.
func NewOptions(version int, rac bool, cdb bool, strlimit int) Options {
	opts := Options{
		Version: version,
		RAC:     rac,
		CDB:     cdb,
		Gv:      selectViewPrefix(rac),
		TopN:    10,
	}

	// Define length limit for sql_text columns.
	if strlimit > 0 {
		opts.SQLTextFn = fmt.Sprintf("substr(s.sql_text, 1, %d)", strlimit)
	} else {
		opts.SQLTextFn = "s.sql_text"
	}

	return opts
}

// selectViewPrefix returns dynamic performance views prefix depending on cluster mode.
// On RAC the gv$ views expose rows of all instances with the extra inst_id column.
func selectViewPrefix(rac bool) string {
	if rac {
		return "gv$"
	}
	return "v$"
}

// Quote escapes single quotes in a user-supplied string interpolated into query text.
func Quote(v string) string {
	return strings.ReplaceAll(v, "'", "''")
}

// Format transforms query's template to a particular query.
func Format(tmpl string, o Options) (string, error) {
	t, err := template.New("query").Parse(tmpl)
	if err != nil {
		return "", err
	}

	buf := &bytes.Buffer{}
	err = t.Execute(buf, o)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
