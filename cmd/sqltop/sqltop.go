// Entry point for 'oracenter sqltop' command

package sqltop

import (
	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/sqltop"
	"github.com/spf13/cobra"
)

var (
	connOpts oracle.ConnectionOptions
	config   sqltop.Config

	// source discriminant flag
	useAWR bool

	// show full text of a single statement instead of the top report
	sqlID string

	// CommandDefinition defines 'sqltop' sub-command.
	CommandDefinition = &cobra.Command{
		Use:    "sqltop",
		Short:  "top SQL statements report",
		Long:   `'oracenter sqltop' reports top SQL statements by the selected metric from cursor cache or AWR history.`,
		PreRun: preFlightSetup,
		RunE: func(command *cobra.Command, args []string) error {
			// Parse extra arguments.
			if len(args) > 0 {
				connOpts.ParseExtraArgs(args)
			}

			// Create connection config.
			dbConfig, err := oracle.NewConfig(connOpts.Host, connOpts.Port, connOpts.User, connOpts.Service)
			if err != nil {
				return err
			}

			if sqlID != "" {
				return sqltop.RunShowStatement(dbConfig, sqlID)
			}

			return sqltop.RunMain(dbConfig, config)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&connOpts.Host, "host", "h", "", "database server host")
	CommandDefinition.Flags().IntVarP(&connOpts.Port, "port", "p", 1521, "database server port")
	CommandDefinition.Flags().StringVarP(&connOpts.User, "username", "U", "", "database user name")
	CommandDefinition.Flags().StringVarP(&connOpts.Service, "service", "d", "", "database service name to connect to")
	CommandDefinition.Flags().StringVarP(&config.Metric, "metric", "m", "elapsed", "ordering metric: elapsed, cpu, gets, reads, execs")
	CommandDefinition.Flags().IntVarP(&config.TopN, "top", "t", 10, "number of statements to show")
	CommandDefinition.Flags().BoolVarP(&useAWR, "awr", "a", false, "use AWR history instead of cursor cache")
	CommandDefinition.Flags().IntVarP(&config.SnapBegin, "begin", "b", 0, "begin AWR snapshot ID")
	CommandDefinition.Flags().IntVarP(&config.SnapEnd, "end", "e", 0, "end AWR snapshot ID")
	CommandDefinition.Flags().IntVarP(&config.HoursBack, "hours", "n", 24, "hours of AWR history to report")
	CommandDefinition.Flags().IntVarP(&config.InstID, "inst", "i", 0, "report single RAC instance only")
	CommandDefinition.Flags().IntVarP(&config.Strlimit, "strlimit", "s", 64, "sql_text length limit, 0 disables truncation")
	CommandDefinition.Flags().StringVarP(&sqlID, "sql", "q", "", "show full text of the statement with this SQL_ID and exit")
}

// preFlightSetup checks priority of passed flags and selects statements source.
func preFlightSetup(_ *cobra.Command, _ []string) {
	if useAWR {
		config.Source = sqltop.SourceAWR
	} else {
		config.Source = sqltop.SourceCursorCache
	}
}
