// Entry point for 'oracenter growth' command

package growth

import (
	"github.com/oracenter/oracenter/growth"
	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/spf13/cobra"
)

var (
	connOpts oracle.ConnectionOptions
	config   growth.Config

	bySnapshot bool
	byDay      bool
	current    bool

	// CommandDefinition defines 'growth' sub-command.
	CommandDefinition = &cobra.Command{
		Use:    "growth",
		Short:  "tablespace growth report",
		Long:   `'oracenter growth' reports tablespace growth history based on AWR snapshots.`,
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

			return growth.RunMain(dbConfig, config)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&connOpts.Host, "host", "h", "", "database server host")
	CommandDefinition.Flags().IntVarP(&connOpts.Port, "port", "p", 1521, "database server port")
	CommandDefinition.Flags().StringVarP(&connOpts.User, "username", "U", "", "database user name")
	CommandDefinition.Flags().StringVarP(&connOpts.Service, "service", "d", "", "database service name to connect to")
	CommandDefinition.Flags().IntVarP(&config.DaysBack, "days", "n", 7, "days of history to report")
	CommandDefinition.Flags().StringVarP(&config.Tablespace, "tablespace", "t", "", "tablespace name filter")
	CommandDefinition.Flags().BoolVarP(&bySnapshot, "per-snapshot", "S", false, "show per-snapshot detail")
	CommandDefinition.Flags().BoolVarP(&byDay, "per-day", "D", false, "show per-day aggregation")
	CommandDefinition.Flags().BoolVarP(&current, "current", "C", false, "show current usage only, AWR not required")
}

// preFlightSetup analyzes startup parameters and selects report mode.
func preFlightSetup(_ *cobra.Command, _ []string) {
	switch {
	case bySnapshot:
		config.Mode = growth.ModeBySnapshot
	case byDay:
		config.Mode = growth.ModeByDay
	case current:
		config.Mode = growth.ModeCurrent
	default:
		config.Mode = growth.ModeSummary
	}
}
