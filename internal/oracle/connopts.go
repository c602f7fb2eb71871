package oracle

import "fmt"

// ConnectionOptions defines connection options (used by all oracenter subcommands).
type ConnectionOptions struct {
	Host    string
	Port    int
	User    string
	Service string
}

// ParseExtraArgs parses extra arguments passed in CLI and fills ConnectionOptions properties.
func (c *ConnectionOptions) ParseExtraArgs(args []string) {
	for i := 0; i < len(args); i++ {
		if c.Service == "" {
			c.Service = args[i]
		} else {
			fmt.Printf("warning: extra command-line argument %s ignored\n", args[i])
		}

		if i++; i >= len(args) {
			break
		}

		if c.User == "" {
			c.User = args[i]
		} else {
			fmt.Printf("warning: extra command-line argument %s ignored\n", args[i])
		}
	}
}
