// Entry point for 'oracenter locks' command

package locks

import (
	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/locks"
	"github.com/spf13/cobra"
)

var (
	connOpts oracle.ConnectionOptions

	// CommandDefinition defines 'locks' sub-command.
	CommandDefinition = &cobra.Command{
		Use:   "locks",
		Short: "locks and blocking sessions report",
		Long:  `'oracenter locks' reports current lock holders, waiters and the blocking tree.`,
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

			return locks.RunMain(dbConfig)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&connOpts.Host, "host", "h", "", "database server host")
	CommandDefinition.Flags().IntVarP(&connOpts.Port, "port", "p", 1521, "database server port")
	CommandDefinition.Flags().StringVarP(&connOpts.User, "username", "U", "", "database user name")
	CommandDefinition.Flags().StringVarP(&connOpts.Service, "service", "d", "", "database service name to connect to")
}
