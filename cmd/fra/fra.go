// Entry point for 'oracenter fra' command

package fra

import (
	"github.com/oracenter/oracenter/fra"
	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/spf13/cobra"
)

var (
	connOpts oracle.ConnectionOptions
	config   fra.Config

	// CommandDefinition defines 'fra' sub-command.
	CommandDefinition = &cobra.Command{
		Use:   "fra",
		Short: "flash recovery area report",
		Long:  `'oracenter fra' reports flash recovery area usage and recommends its size based on archived log rates.`,
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

			return fra.RunMain(dbConfig, config)
		},
	}
)

func init() {
	CommandDefinition.Flags().StringVarP(&connOpts.Host, "host", "h", "", "database server host")
	CommandDefinition.Flags().IntVarP(&connOpts.Port, "port", "p", 1521, "database server port")
	CommandDefinition.Flags().StringVarP(&connOpts.User, "username", "U", "", "database user name")
	CommandDefinition.Flags().StringVarP(&connOpts.Service, "service", "d", "", "database service name to connect to")
	CommandDefinition.Flags().IntVarP(&config.DaysBack, "days", "n", 7, "days of archived log history to analyze")
}
