// Code related to 'oracenter fra' command

package fra

import (
	"fmt"
	"os"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
)

const (
	defaultDaysBack = 7
	maxDaysBack     = 365

	// backupMultiplier approximates space needed for one level-0 backup plus
	// incrementals kept in the recovery area, relative to daily redo volume.
	backupMultiplier = 2
)

// Config defines program's configuration options.
type Config struct {
	DaysBack int // how many days of archived log history to analyze
}

// validate checks configuration and replaces invalid settings with defaults.
func (c Config) validate() Config {
	if c.DaysBack < 1 || c.DaysBack > maxDaysBack {
		fmt.Printf("WARNING: invalid days value %d, using default %d\n", c.DaysBack, defaultDaysBack)
		c.DaysBack = defaultDaysBack
	}

	return c
}

// RunMain is the main entry point for 'oracenter fra' command.
func RunMain(dbConfig oracle.Config, config Config) error {
	config = config.validate()

	db, err := oracle.Connect(dbConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	props, err := stat.GetOracleProperties(db)
	if err != nil {
		return err
	}

	opts := query.NewOptions(props.VersionNum, props.RAC, props.CDB, 0)
	opts.DaysBack = config.DaysBack

	fmt.Printf("INFO: %s, log mode %s, period %d days\n", props.DatabaseName, props.LogMode, config.DaysBack)

	archived, err := query.Format(query.ArchivedLogPerDay, opts)
	if err != nil {
		return err
	}

	stat.PrintSections(os.Stdout, db, []stat.Section{
		{Title: "Recovery area destination", Query: query.FraDestinationDefault},
		{Title: "Recovery area usage by file type", Query: query.FraUsageByType},
		{Title: "Archived log generation per day", Query: archived},
		{Title: "Online redo log configuration", Query: query.RedoLogConfig},
		{Title: "Flashback log usage", Query: query.FlashbackLogUsage},
	})

	printRecommendation(db, opts)

	return nil
}

// printRecommendation estimates the recovery area size from the observed redo
// generation rate. Without archived log history (NOARCHIVELOG mode or a fresh
// instance) the estimate falls back to the configured online redo capacity.
func printRecommendation(db *oracle.DB, opts query.Options) {
	fmt.Printf("\n== Recommended recovery area size\n")

	q, err := query.Format(query.ArchivedLogRates, opts)
	if err != nil {
		fmt.Printf("WARNING: skip estimate: %s\n", err)
		return
	}

	var peakMB, avgMB, days int64
	if err := db.QueryRow(q).Scan(&peakMB, &avgMB, &days); err != nil {
		fmt.Printf("WARNING: skip estimate: %s\n", err)
		return
	}

	if days == 0 || peakMB == 0 {
		var redoMB int64
		err := db.QueryRow("SELECT nvl(round(sum(bytes) / 1048576), 0) FROM v$log").Scan(&redoMB)
		if err != nil {
			fmt.Printf("WARNING: skip estimate: %s\n", err)
			return
		}

		fmt.Println("no archived log history, estimate is based on online redo capacity")
		fmt.Printf("recommended minimum: %d MB\n", estimateFromRedo(redoMB))
		return
	}

	// Backups already retained in the recovery area set the floor of the estimate.
	var backupMB int64
	if err := db.QueryRow(query.FraBackupRetainedMB).Scan(&backupMB); err != nil {
		fmt.Printf("WARNING: backup usage not available: %s\n", err)
	}

	fmt.Printf("peak daily redo: %d MB, average: %d MB over %d days, retained backups: %d MB\n", peakMB, avgMB, days, backupMB)
	fmt.Printf("recommended minimum: %d MB\n", estimateFromRates(peakMB, backupMB))
}

// estimateFromRates recommends recovery area size able to keep one day of peak
// redo volume plus retained backups. When no backups live in the recovery area
// their share is approximated from the redo volume.
func estimateFromRates(peakMB, backupMB int64) int64 {
	if backupMB == 0 {
		backupMB = peakMB * backupMultiplier
	}
	return peakMB + backupMB
}

// estimateFromRedo recommends recovery area size from total online redo capacity,
// assuming every log is archived at least once a day.
func estimateFromRedo(redoMB int64) int64 {
	if redoMB == 0 {
		return 0
	}
	return redoMB * (1 + backupMultiplier)
}
