// Entry point for 'oracenter record' command

package record

import (
	"time"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/record"
	"github.com/spf13/cobra"
)

var (
	connOpts oracle.ConnectionOptions
	config   record.Config

	appendFile bool // append to file instead of truncating it
	oneshot    bool // take single snapshot and exit

	// CommandDefinition defines 'record' sub-command.
	CommandDefinition = &cobra.Command{
		Use:    "record",
		Short:  "record database statistics to file",
		Long:   `'oracenter record' connects to the database and records activity statistics snapshots to a file.`,
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

			return record.RunMain(dbConfig, config)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&connOpts.Host, "host", "h", "", "database server host")
	CommandDefinition.Flags().IntVarP(&connOpts.Port, "port", "p", 1521, "database server port")
	CommandDefinition.Flags().StringVarP(&connOpts.User, "username", "U", "", "database user name")
	CommandDefinition.Flags().StringVarP(&connOpts.Service, "service", "d", "", "database service name to connect to")
	CommandDefinition.Flags().DurationVarP(&config.Interval, "interval", "i", time.Second, "statistics recording interval")
	CommandDefinition.Flags().IntVarP(&config.Count, "count", "c", -1, "number of statistics snapshots (default: infinite)")
	CommandDefinition.Flags().StringVarP(&config.OutputFile, "file", "f", "oracenter.stat.tar", "file name where statistics are saved, strftime macros allowed")
	CommandDefinition.Flags().BoolVarP(&appendFile, "append", "a", false, "append statistics to file instead of truncating it")
	CommandDefinition.Flags().IntVarP(&config.StringLimit, "strlimit", "s", 0, "query texts length limit, 0 disables truncation")
	CommandDefinition.Flags().BoolVarP(&oneshot, "oneshot", "1", false, "append single statistics snapshot and exit")
}

// preFlightSetup checks priority of passed flags. Oneshot mode implies
// appending a single snapshot with no delay.
func preFlightSetup(_ *cobra.Command, _ []string) {
	if oneshot {
		appendFile = true
		config.Count = 1
		config.Interval = 0
	}

	config.TruncateFile = !appendFile
}
