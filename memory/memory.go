// Code related to 'oracenter memory' command

package memory

import (
	"fmt"
	"os"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/stat"
)

// RunMain is the main entry point for 'oracenter memory' command.
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

	fmt.Printf("INFO: %s, version %s\n", props.DatabaseName, props.Version)

	sections, err := buildSections(opts)
	if err != nil {
		return err
	}

	stat.PrintSections(os.Stdout, db, sections)

	return nil
}

// buildSections formats all memory report queries. The advice views return no
// rows when the corresponding advisor is disabled (statistics_level = BASIC),
// those sections degrade to 'no data'.
func buildSections(opts query.Options) ([]stat.Section, error) {
	specs := []struct {
		title string
		tmpl  string
	}{
		{"Memory summary", query.MemorySummary},
		{"SGA components", query.SgaInfoDefault},
		{"SGA target advice", query.SgaTargetAdvice},
		{"PGA statistics", query.PgaStatDefault},
		{"PGA target advice", query.PgaTargetAdvice},
		{"Buffer cache hit ratio", query.BufferCacheHitRatio},
		{"Library cache ratios", query.LibraryCacheRatios},
		{"Dictionary cache miss ratio", query.DictCacheMissRatio},
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
