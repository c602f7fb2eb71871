package stat

import (
	"fmt"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
	"github.com/oracenter/oracenter/internal/view"
)

// Stat describes all stats collected within single sample.
type Stat struct {
	System
	Orastat
}

// System describes host-level stats reported by the instance.
type System struct {
	LoadAvg
	Meminfo
	CpuStat
}

// Collector polls stats and keeps snapshots of previous samples required for deltas.
type Collector struct {
	config Config
	//
	prevCpuStat CpuStat
	currCpuStat CpuStat
	//
	prevOraStat Orastat
	currOraStat Orastat
}

// Config unites instance properties and query options which are not changed in runtime
// (but might change between instance restarts).
type Config struct {
	QueryOptions query.Options
	OracleProperties
}

// NewCollector creates new collector for connected Oracle instance.
func NewCollector(db *oracle.DB) (*Collector, error) {
	props, err := GetOracleProperties(db)
	if err != nil {
		return nil, fmt.Errorf("read instance properties failed: %s", err)
	}

	return &Collector{
		config: Config{
			QueryOptions:     query.NewOptions(props.VersionNum, props.RAC, props.CDB, 64),
			OracleProperties: props,
		},
	}, nil
}

// Config returns collector's configuration.
func (c *Collector) Config() Config {
	return c.config
}

// Reset drops stats snapshots accumulated so far, used on context switching.
func (c *Collector) Reset() {
	c.prevOraStat = Orastat{}
	c.currOraStat = Orastat{}
}

// Update collects fresh stats sample for passed view and computes deltas against previous sample.
func (c *Collector) Update(db *oracle.DB, v view.View, itv int) (Stat, error) {
	// Collect host-level stats reported by the instance.
	osstats, err := readOsStat(db)
	if err != nil {
		return Stat{}, err
	}

	loadavg := readLoadAverage(osstats)

	meminfo, err := readMeminfo(db, osstats)
	if err != nil {
		return Stat{}, err
	}

	c.prevCpuStat = c.currCpuStat
	c.currCpuStat = readCpuStat(osstats)

	cpuusage := countCpuUsage(c.prevCpuStat, c.currCpuStat)

	// Collect instance activity stats.
	activity, err := collectActivityStat(db, c.config.QueryOptions)
	if err != nil {
		return Stat{}, err
	}

	// Collect stats of the current view.
	res, err := collectOracleStat(db, v.Query)
	if err != nil {
		return Stat{}, err
	}

	c.prevOraStat = c.currOraStat
	c.currOraStat = Orastat{Activity: activity, Result: res}

	// Compare previous and current stats snapshots and calculate delta.
	diff, err := calculateDelta(c.currOraStat.Result, c.prevOraStat.Result, itv, v.DiffIntvl, v.OrderKey, v.OrderDesc, v.UniqueKey)
	if err != nil {
		return Stat{}, err
	}

	return Stat{
		System: System{
			LoadAvg: loadavg,
			Meminfo: meminfo,
			CpuStat: cpuusage,
		},
		Orastat: Orastat{
			Activity: activity,
			Result:   diff,
		},
	}, nil
}
