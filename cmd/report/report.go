// Entry point for 'oracenter report' command

package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oracenter/oracenter/report"
	"github.com/spf13/cobra"
)

const (
	defaultReportFile = "oracenter.stat.tar"
	filterDelimiter   = ":"
)

var (
	config         report.Config
	tsStart, tsEnd string // show stats within an interval
	doFilter       string // perform filtering

	showSessions    bool // show stats from v$session
	showSysstat     bool // show stats from v$sysstat
	showEvents      bool // show stats from v$system_event
	showSqlarea     bool // show stats from v$sqlarea
	showFilestat    bool // show stats from v$filestat
	showTablespaces bool // show tablespace usage stats

	// CommandDefinition defines 'report' sub-command.
	CommandDefinition = &cobra.Command{
		Use:    "report",
		Short:  "make report based on previously saved statistics",
		Long:   `'oracenter report' reads statistics from file and prints reports.`,
		PreRun: preFlightSetup,
		RunE: func(command *cobra.Command, args []string) error {
			return report.RunMain(config)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&config.InputFile, "file", "f", defaultReportFile, "read stats from file")
	CommandDefinition.Flags().BoolVarP(&showSessions, "sessions", "A", false, "show sessions activity stats")
	CommandDefinition.Flags().BoolVarP(&showSysstat, "sysstat", "Y", false, "show system statistics")
	CommandDefinition.Flags().BoolVarP(&showEvents, "events", "E", false, "show wait events stats")
	CommandDefinition.Flags().BoolVarP(&showSqlarea, "sqlarea", "X", false, "show cached statements stats")
	CommandDefinition.Flags().BoolVarP(&showFilestat, "filestat", "F", false, "show datafiles IO stats")
	CommandDefinition.Flags().BoolVarP(&showTablespaces, "tablespaces", "T", false, "show tablespace usage stats")
	CommandDefinition.Flags().StringVarP(&tsStart, "start", "s", "", "starting time of the report")
	CommandDefinition.Flags().StringVarP(&tsEnd, "end", "e", "", "ending time of the report")
	CommandDefinition.Flags().StringVarP(&config.OrderColName, "order", "o", "", "order values by column (desc by default)")
	CommandDefinition.Flags().IntVarP(&config.RowLimit, "limit", "l", 0, "print only limited number of rows per sample")
	CommandDefinition.Flags().StringVarP(&doFilter, "grep", "g", "", "grep values in specified column (format: colname:filtertext)")
	CommandDefinition.Flags().IntVarP(&config.TruncLimit, "truncate", "t", 32, "maximum string size to print")
	CommandDefinition.Flags().DurationVarP(&config.Interval, "interval", "i", time.Second, "delta interval (default: 1s)")
}

// Analyze startup parameters and prepare settings for report program.
func preFlightSetup(_ *cobra.Command, _ []string) {
	// use descending order by default
	config.OrderDesc = true

	// setup starting and ending times
	checkStartEndTimestamps()

	// determine column name where values should be filtered and compile regexp
	parseFilterString()

	// select appropriate report type
	selectReport()
}

// Setup start and end times for report, don't show stats before start time and after end time.
// Timestamps are expected in '[YYYYMMDD-]HHMMSS' format, today's date is assumed when date part is omitted.
func checkStartEndTimestamps() {
	var err error
	var layout = "20060102-150405" // default layout includes date and time

	// if start time is not specified, default zero value will be used - 0001-01-01 00:00:00
	if tsStart != "" {
		if !strings.Contains(tsStart, "-") {
			tsStart = time.Now().Format("20060102") + "-" + tsStart
		}

		config.TsStart, err = time.Parse(layout, tsStart)
		if err != nil {
			fmt.Printf("WARNING: invalid start time: %s, ignoring... (default: %s)\n", tsStart, config.TsStart)
		}
	}

	// use current date and time (now) if end time is not specified. Parsing the formatted
	// value back drops the timezone, timestamps in stats files carry no zone info.
	if config.TsEnd, err = time.Parse(layout, time.Now().Format(layout)); err != nil {
		fmt.Printf("ERROR: failed time parse: %s", err)
	}

	if tsEnd != "" {
		if !strings.Contains(tsEnd, "-") {
			tsEnd = time.Now().Format("20060102") + "-" + tsEnd
		}

		ts, err := time.Parse(layout, tsEnd)
		if err != nil {
			fmt.Printf("WARNING: invalid end time: %s, ignoring... (default: %s)\n", tsEnd, config.TsEnd)
		} else {
			config.TsEnd = ts
		}
	}
}

// Setup filtering options. Split a value entered by user to column name and filter pattern.
func parseFilterString() {
	if doFilter == "" {
		return
	}

	s := strings.SplitN(doFilter, filterDelimiter, 2)
	if len(s) != 2 {
		fmt.Println("WARNING: ignoring wrong input for --grep option, see usage for details")
		return
	}

	re, err := regexp.Compile(s[1])
	if err != nil {
		fmt.Printf("WARNING: failed to compile regexp: %s\n", err)
		return
	}

	config.FilterColName = s[0]
	config.Regexp = re
}

// Select appropriate type of the report.
func selectReport() {
	switch {
	case showSysstat:
		config.ReportType = "sysstat"
	case showEvents:
		config.ReportType = "events"
	case showSqlarea:
		config.ReportType = "sqlarea"
	case showFilestat:
		config.ReportType = "filestat"
	case showTablespaces:
		config.ReportType = "tablespaces"
	case showSessions:
		config.ReportType = "sessions"
	}
}
