// Entry point for 'oracenter profile' command

package profile

import (
	"time"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/profile"
	"github.com/spf13/cobra"
)

var (
	connOpts  oracle.ConnectionOptions
	config    profile.Config
	frequency int

	// CommandDefinition defines 'profile' sub-command.
	CommandDefinition = &cobra.Command{
		Use:    "profile",
		Short:  "wait events profiler",
		Long:   `'oracenter profile' profiles wait events of a running session`,
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

			return profile.RunMain(dbConfig, config)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&connOpts.Host, "host", "h", "", "database server host")
	CommandDefinition.Flags().IntVarP(&connOpts.Port, "port", "p", 1521, "database server port")
	CommandDefinition.Flags().StringVarP(&connOpts.User, "username", "U", "", "database user name")
	CommandDefinition.Flags().StringVarP(&connOpts.Service, "service", "d", "", "database service name to connect to")
	CommandDefinition.Flags().IntVarP(&config.SID, "sid", "P", -1, "SID of the session to profile")
	CommandDefinition.Flags().IntVarP(&frequency, "freq", "F", 100, "profile with this frequency, samples per second")
	CommandDefinition.Flags().IntVarP(&config.Strsize, "strsize", "s", 128, "limit length of printed query strings")
}

// preFlightSetup translates sampling frequency to profiling interval.
func preFlightSetup(_ *cobra.Command, _ []string) {
	switch {
	case frequency < 1:
		config.Frequency = time.Second
	case frequency > 1000:
		config.Frequency = time.Millisecond
	default:
		config.Frequency = time.Second / time.Duration(frequency)
	}
}
