// Code related to 'oracenter locks' command

package locks

import (
	"fmt"
	"os"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
)

// RunMain is the main entry point for 'oracenter locks' command.
func RunMain(dbConfig oracle.Config) error {
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

	var blocked int
	bq, err := query.Format(query.BlockedSessionsCount, opts)
	if err != nil {
		return err
	}
	if err := db.QueryRow(bq).Scan(&blocked); err != nil {
		return err
	}

	fmt.Printf("INFO: %s, blocked sessions: %d\n", props.DatabaseName, blocked)

	sections, err := buildSections(opts)
	if err != nil {
		return err
	}

	stat.PrintSections(os.Stdout, db, sections)

	return nil
}

// buildSections formats lock report queries.
func buildSections(opts query.Options) ([]stat.Section, error) {
	specs := []struct {
		title string
		tmpl  string
	}{
		{"Lock counts by type and mode", query.LockCountsDefault},
		{"Blocking tree", query.BlockingTreeDefault},
		{"Waiting sessions detail", query.LockWaitersDetail},
	}

	sections := make([]stat.Section, 0, len(specs))
	for _, s := range specs {
		q, err := query.Format(s.tmpl, opts)
		if err != nil {
			return nil, err
		}
		sections = append(sections, stat.Section{Title: s.title, Query: q})
	}

	return sections, nil
}
