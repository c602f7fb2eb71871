// Help templates

package cmd

import (
	"fmt"

	"github.com/oracenter/oracenter/cmd/profile"
	"github.com/oracenter/oracenter/cmd/record"
	"github.com/oracenter/oracenter/cmd/report"
	"github.com/oracenter/oracenter/cmd/top"
)

const (
	mainHelpTemplate = `%s

Usage:
  oracenter [flags]
  oracenter [command] [command-flags] [args]

Available commands:
  check		check instance health and show a summary
  growth	tablespace growth report
  fra		flash recovery area report
  memory	SGA and PGA memory report
  waits		AWR wait events report
  sqltop	top SQL statements report
  locks		locks and blocking sessions report
  sizes		segment sizes report
  profile	%s
  record	%s
  report	%s
  top		%s

Flags:
  -?, --help		show this help and exit
      --version		show version information and exit

Use "oracenter [command] --help" for more information about a command.

Report bugs to %s
`
	profileHelpTemplate = `%s

Usage:
  oracenter profile [OPTIONS]... [SERVICE [USERNAME]]

Options:
  -d, --service SERVICE		database service name to connect to
  -h, --host HOSTNAME		database server host
  -p, --port PORT		database server port (default 1521)
  -U, --username USERNAME	database user name

  -P, --sid SID			SID of the session to profile
  -F, --freq FREQ		profile at this frequency (min 1, max 1000)
  -s, --strsize SIZE		limit length of print query strings to SIZE chars (default 128)

General options:
  -?, --help		show this help and exit
      --version		show version information and exit

Report bugs to %s
`
	topHelpTemplate = `%s

Usage:
  oracenter top [OPTIONS]... [SERVICE [USERNAME]]

Options:
  -d, --service SERVICE		database service name to connect to
  -h, --host HOSTNAME		database server host
  -p, --port PORT		database server port (default 1521)
  -U, --username USERNAME	database user name

General options:
  -?, --help		show this help and exit
      --version		show version information and exit

Report bugs to %s
`
	recordHelpTemplate = `%s

Usage:
  oracenter record [OPTIONS]... [SERVICE [USERNAME]]

Options:
  -d, --service SERVICE		database service name to connect to
  -h, --host HOSTNAME		database server host
  -p, --port PORT		database server port (default 1521)
  -U, --username USERNAME	database user name

  -i, --interval		polling interval (default: 1s)
  -c, --count			number of stats samples to collect
  -f, --file			file name where statistics to write to (default: oracenter.stat.tar, strftime macros allowed)
  -a, --append			append statistics to file, instead of creating a new file
  -s, --strlimit		maximum query length to record (default: 0, no limit)
  -1, --oneshot			append single statistics snapshot and exit (alias for --append --interval 0 --count 1)

General options:
  -?, --help		show this help and exit
      --version		show version information and exit

Report bugs to %s
`
	reportHelpTemplate = `%s

Usage:
  oracenter report [OPTIONS]...

Options:
  -f, --file			read stats from file (default: oracenter.stat.tar)
  -s, --start			starting time of the report (format: [YYYYMMDD-]HHMMSS)
  -e, --end			ending time of the report (format: [YYYYMMDD-]HHMMSS)
  -o, --order			order values by column (default descending, use '+' sign before a column name for ascending order)
  -g, --grep			filter values in specified column (format: colname:filtertext)
  -l, --limit			print only limited number of rows per sample (default: unlimited)
  -t, --truncate		maximum string size to print (default: 32, 0 disables truncate)
  -i, --interval		delta interval (default: 1s)

Report options:
  -A, --sessions		show sessions activity statistics
  -Y, --sysstat			show system statistics
  -E, --events			show wait events statistics
  -X, --sqlarea			show cached statements statistics
  -F, --filestat		show datafiles IO statistics
  -T, --tablespaces		show tablespace usage statistics

General options:
  -?, --help		show this help and exit
      --version		show version information and exit

Report bugs to %s
`
)

func printMainHelp() string {
	return fmt.Sprintf(mainHelpTemplate,
		Root.Long,
		profile.CommandDefinition.Short,
		record.CommandDefinition.Short,
		report.CommandDefinition.Short,
		top.CommandDefinition.Short,
		ProgramIssuesUrl)
}

func printProfileHelp() string {
	return fmt.Sprintf(profileHelpTemplate,
		profile.CommandDefinition.Long,
		ProgramIssuesUrl)
}

func printTopHelp() string {
	return fmt.Sprintf(topHelpTemplate,
		top.CommandDefinition.Long,
		ProgramIssuesUrl)
}

func printRecordHelp() string {
	return fmt.Sprintf(recordHelpTemplate,
		record.CommandDefinition.Long,
		ProgramIssuesUrl)
}

func printReportHelp() string {
	return fmt.Sprintf(reportHelpTemplate,
		report.CommandDefinition.Long,
		ProgramIssuesUrl)
}
