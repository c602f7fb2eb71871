// Entry point for root command - oracenter

package cmd

import (
	"github.com/oracenter/oracenter/cmd/check"
	"github.com/oracenter/oracenter/cmd/fra"
	"github.com/oracenter/oracenter/cmd/growth"
	"github.com/oracenter/oracenter/cmd/locks"
	"github.com/oracenter/oracenter/cmd/memory"
	"github.com/oracenter/oracenter/cmd/profile"
	"github.com/oracenter/oracenter/cmd/record"
	"github.com/oracenter/oracenter/cmd/report"
	"github.com/oracenter/oracenter/cmd/sizes"
	"github.com/oracenter/oracenter/cmd/sqltop"
	"github.com/oracenter/oracenter/cmd/top"
	"github.com/oracenter/oracenter/cmd/waits"
	"github.com/spf13/cobra"
)

// Root defines the main 'oracenter' command.
var Root = &cobra.Command{
	Use:     "oracenter",
	Short:   "Admin tool for Oracle Database",
	Long:    "oraCenter is a command line admin tool for Oracle Database.",
	Version: "dummy", // use version.go constants instead

	// Errors returned by sub-commands are printed once in main.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	Root.PersistentFlags().BoolP("help", "?", false, "show this help and exit")

	// Setup help and versions templates for main program.
	Root.SetVersionTemplate(PrintVersion())
	Root.SetHelpTemplate(printMainHelp())

	// Setup 'top' sub-command.
	Root.AddCommand(top.CommandDefinition)
	top.CommandDefinition.SetVersionTemplate(PrintVersion())
	top.CommandDefinition.SetHelpTemplate(printTopHelp())
	top.CommandDefinition.SetUsageTemplate(printTopHelp())

	// Setup 'record' sub-command.
	Root.AddCommand(record.CommandDefinition)
	record.CommandDefinition.SetVersionTemplate(PrintVersion())
	record.CommandDefinition.SetHelpTemplate(printRecordHelp())
	record.CommandDefinition.SetUsageTemplate(printRecordHelp())

	// Setup 'report' sub-command.
	Root.AddCommand(report.CommandDefinition)
	report.CommandDefinition.SetVersionTemplate(PrintVersion())
	report.CommandDefinition.SetHelpTemplate(printReportHelp())
	report.CommandDefinition.SetUsageTemplate(printReportHelp())

	// Setup 'profile' sub-command.
	Root.AddCommand(profile.CommandDefinition)
	profile.CommandDefinition.SetVersionTemplate(PrintVersion())
	profile.CommandDefinition.SetHelpTemplate(printProfileHelp())
	profile.CommandDefinition.SetUsageTemplate(printProfileHelp())

	// Diagnostic report sub-commands rely on cobra's default help, their
	// options are plain and fully described by flag usage strings.
	for _, command := range []*cobra.Command{
		check.CommandDefinition,
		growth.CommandDefinition,
		fra.CommandDefinition,
		memory.CommandDefinition,
		waits.CommandDefinition,
		sqltop.CommandDefinition,
		locks.CommandDefinition,
		sizes.CommandDefinition,
	} {
		Root.AddCommand(command)
		command.SetVersionTemplate(PrintVersion())
	}
}
