// Code related to 'oracenter check' command

package check

import (
	"fmt"
	"os"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
)

const topEvents = 10

// RunMain is the main entry point for 'oracenter check' command.
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
	opts.TopN = topEvents

	printSummary(props)

	sections, err := buildSections(opts, props)
	if err != nil {
		return err
	}

	stat.PrintSections(os.Stdout, db, sections)

	return nil
}

// printSummary prints the one-line instance summary ahead of the suite.
func printSummary(props stat.OracleProperties) {
	fmt.Printf("INFO: %s (%s) version %s, %s, %s\n",
		props.DatabaseName, props.InstanceName, props.Version, props.OpenMode, props.Role)

	if props.RAC {
		fmt.Printf("INFO: RAC, %d instances\n", props.Instances)
	}
	if props.CDB {
		fmt.Println("INFO: container database")
	}
	if !props.AWRAvailable {
		fmt.Println("WARNING: AWR views are not accessible, history checks skipped")
	}
}

// buildSections assembles the health check suite. Sections are independent,
// failures inside one section do not stop the others.
func buildSections(opts query.Options, props stat.OracleProperties) ([]stat.Section, error) {
	specs := []struct {
		title string
		tmpl  string
		skip  bool
	}{
		{title: "Database", tmpl: query.SelectDatabaseInfo},
		{title: "Cluster instances", tmpl: query.SelectRacInstances, skip: !props.RAC},
		{title: "Session activity", tmpl: query.SelectActivityDefault},
		{title: "Tablespace usage", tmpl: query.TablespaceUsageDefault},
		{title: "Datafiles in abnormal state", tmpl: query.DatafilesOffline},
		{title: "Recovery area", tmpl: query.FraDestinationDefault},
		{title: "Memory summary", tmpl: query.MemorySummary},
		{title: fmt.Sprintf("Top %d wait events since startup", opts.TopN), tmpl: query.WaitEventsCurrentTop},
		{title: "Blocking tree", tmpl: query.BlockingTreeDefault},
		{title: "Invalid objects", tmpl: query.InvalidObjects},
		{title: "Stale optimizer statistics", tmpl: query.StaleStatistics},
	}

	sections := make([]stat.Section, 0, len(specs))
	for _, s := range specs {
		if s.skip {
			continue
		}

		q, err := query.Format(s.tmpl, opts)
		if err != nil {
			return nil, err
		}
		sections = append(sections, stat.Section{Title: s.title, Query: q})
	}

	return sections, nil
}
