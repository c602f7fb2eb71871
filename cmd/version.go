// Stuff related to program versions, releases, etc.

package cmd

import (
	"fmt"

	"github.com/oracenter/oracenter/internal/version"
)

const (
	// ProgramIssuesUrl is the public URL for posting issues, bug reports and asking questions.
	ProgramIssuesUrl = "https://github.com/oracenter/oracenter/issues"
)

// PrintVersion prints the name and version of this program.
func PrintVersion() string {
	program, tag, commit, branch := version.Version()
	return fmt.Sprintf("%s %s %s-%s\n", program, tag, commit, branch)
}
