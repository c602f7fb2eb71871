// Entry point for 'oracenter check' command

package check

import (
	"github.com/oracenter/oracenter/check"
	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/spf13/cobra"
)

var (
	connOpts oracle.ConnectionOptions

	// CommandDefinition defines 'check' sub-command.
	CommandDefinition = &cobra.Command{
		Use:   "check",
		Short: "instance health check",
		Long:  `'oracenter check' runs a suite of health checks against the instance and prints a combined report.`,
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

			return check.RunMain(dbConfig)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&connOpts.Host, "host", "h", "", "database server host")
	CommandDefinition.Flags().IntVarP(&connOpts.Port, "port", "p", 1521, "database server port")
	CommandDefinition.Flags().StringVarP(&connOpts.User, "username", "U", "", "database user name")
	CommandDefinition.Flags().StringVarP(&connOpts.Service, "service", "d", "", "database service name to connect to")
}
