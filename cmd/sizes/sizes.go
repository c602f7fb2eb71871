// Entry point for 'oracenter sizes' command

package sizes

import (
	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/sizes"
	"github.com/spf13/cobra"
)

var (
	connOpts oracle.ConnectionOptions
	config   sizes.Config

	// mode discriminant flags
	byOwner bool
	byType  bool

	// CommandDefinition defines 'sizes' sub-command.
	CommandDefinition = &cobra.Command{
		Use:    "sizes",
		Short:  "segment sizes report",
		Long:   `'oracenter sizes' reports largest segments, or size totals aggregated per owner or per segment type.`,
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

			return sizes.RunMain(dbConfig, config)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&connOpts.Host, "host", "h", "", "database server host")
	CommandDefinition.Flags().IntVarP(&connOpts.Port, "port", "p", 1521, "database server port")
	CommandDefinition.Flags().StringVarP(&connOpts.User, "username", "U", "", "database user name")
	CommandDefinition.Flags().StringVarP(&connOpts.Service, "service", "d", "", "database service name to connect to")
	CommandDefinition.Flags().StringVarP(&config.Owner, "owner", "o", "", "filter by segment owner")
	CommandDefinition.Flags().IntVarP(&config.TopN, "top", "t", 20, "number of rows to show")
	CommandDefinition.Flags().BoolVarP(&byOwner, "by-owner", "O", false, "show size totals per owner")
	CommandDefinition.Flags().BoolVarP(&byType, "by-type", "T", false, "show size totals per segment type")
}

// preFlightSetup checks priority of passed flags and selects report mode.
func preFlightSetup(_ *cobra.Command, _ []string) {
	switch {
	case byOwner:
		config.Mode = sizes.ModeByOwner
	case byType:
		config.Mode = sizes.ModeByType
	default:
		config.Mode = sizes.ModeTopSegments
	}
}
