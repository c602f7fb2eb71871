// Entry point for 'oracenter waits' command

package waits

import (
	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/waits"
	"github.com/spf13/cobra"
)

var (
	connOpts oracle.ConnectionOptions
	config   waits.Config

	// group discriminant flags
	bySnapshot bool
	byEvent    bool
	byHour     bool

	// CommandDefinition defines 'waits' sub-command.
	CommandDefinition = &cobra.Command{
		Use:    "waits",
		Short:  "AWR wait events report",
		Long:   `'oracenter waits' reports top wait events from AWR snapshot history.`,
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

			return waits.RunMain(dbConfig, config)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&connOpts.Host, "host", "h", "", "database server host")
	CommandDefinition.Flags().IntVarP(&connOpts.Port, "port", "p", 1521, "database server port")
	CommandDefinition.Flags().StringVarP(&connOpts.User, "username", "U", "", "database user name")
	CommandDefinition.Flags().StringVarP(&connOpts.Service, "service", "d", "", "database service name to connect to")
	CommandDefinition.Flags().IntVarP(&config.SnapBegin, "begin", "b", 0, "begin AWR snapshot ID")
	CommandDefinition.Flags().IntVarP(&config.SnapEnd, "end", "e", 0, "end AWR snapshot ID")
	CommandDefinition.Flags().IntVarP(&config.HoursBack, "hours", "n", 24, "hours of history to report")
	CommandDefinition.Flags().IntVarP(&config.InstID, "inst", "i", 0, "report single RAC instance only")
	CommandDefinition.Flags().StringVarP(&config.Event, "event", "E", "", "filter by wait event name")
	CommandDefinition.Flags().StringVarP(&config.WaitClass, "class", "c", "", "filter by wait class")
	CommandDefinition.Flags().IntVarP(&config.TopN, "top", "t", 10, "number of events to show")
	CommandDefinition.Flags().BoolVarP(&bySnapshot, "by-snapshot", "S", false, "group events per snapshot")
	CommandDefinition.Flags().BoolVarP(&byEvent, "by-event", "V", false, "group totals per event (default)")
	CommandDefinition.Flags().BoolVarP(&byHour, "by-hour", "H", false, "group events per hour")
}

// preFlightSetup checks priority of passed flags and select grouping mode.
func preFlightSetup(_ *cobra.Command, _ []string) {
	switch {
	case bySnapshot:
		config.Group = waits.GroupBySnapshot
	case byHour:
		config.Group = waits.GroupByHour
	case byEvent:
		config.Group = waits.GroupByEvent
	default:
		config.Group = waits.GroupByEvent
	}
}
