// Host-level stats exposed by the instance through v$osstat and memory views.

package stat

import (
	"github.com/oracenter/oracenter/internal/oracle"
)

// LoadAvg describes host load reported by v$osstat.
type LoadAvg struct {
	Load    float64 // current load average
	NumCPUs int     // number of CPUs visible to the instance
}

// Meminfo describes host and instance memory usage, in megabytes.
type Meminfo struct {
	MemTotal uint64 // physical memory of the host
	SgaSize  uint64 // maximum SGA size
	PgaAlloc uint64 // total PGA allocated
}

// CpuStat describes CPU time counters of v$osstat. Values are cumulative
// centiseconds since instance startup, or percentages after countCpuUsage.
type CpuStat struct {
	User   float64
	Sys    float64
	Idle   float64
	Iowait float64
	Busy   float64
	Total  float64
}

// readOsStat reads the whole v$osstat into a map keyed by stat name.
func readOsStat(db *oracle.DB) (map[string]float64, error) {
	rows, err := db.Query("SELECT stat_name, value FROM v$osstat")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := map[string]float64{}
	for rows.Next() {
		var name string
		var value float64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		stats[name] = value
	}

	return stats, rows.Err()
}

// readLoadAverage returns host load average reported by the instance.
func readLoadAverage(stats map[string]float64) LoadAvg {
	return LoadAvg{
		Load:    stats["LOAD"],
		NumCPUs: int(stats["NUM_CPUS"]),
	}
}

// readCpuStat returns cumulative CPU time counters reported by the instance.
func readCpuStat(stats map[string]float64) CpuStat {
	s := CpuStat{
		User:   stats["USER_TIME"],
		Sys:    stats["SYS_TIME"],
		Idle:   stats["IDLE_TIME"],
		Iowait: stats["IOWAIT_TIME"],
		Busy:   stats["BUSY_TIME"],
	}
	s.Total = s.Busy + s.Idle + s.Iowait

	return s
}

// readMeminfo returns memory usage of the host and the instance.
func readMeminfo(db *oracle.DB, stats map[string]float64) (Meminfo, error) {
	m := Meminfo{
		MemTotal: uint64(stats["PHYSICAL_MEMORY_BYTES"]) / 1024 / 1024,
	}

	var sga, pga float64
	err := db.QueryRow("SELECT value FROM v$sgainfo WHERE name = 'Maximum SGA Size'").Scan(&sga)
	if err != nil {
		return m, err
	}
	err = db.QueryRow("SELECT value FROM v$pgastat WHERE name = 'total PGA allocated'").Scan(&pga)
	if err != nil {
		return m, err
	}

	m.SgaSize = uint64(sga) / 1024 / 1024
	m.PgaAlloc = uint64(pga) / 1024 / 1024

	return m, nil
}

// countCpuUsage computes CPU usage percentages between two snapshots of counters.
func countCpuUsage(prev, curr CpuStat) CpuStat {
	itv := curr.Total - prev.Total
	if itv <= 0 {
		return CpuStat{}
	}

	return CpuStat{
		User:   sValue(prev.User, curr.User, itv),
		Sys:    sValue(prev.Sys, curr.Sys, itv),
		Idle:   sValue(prev.Idle, curr.Idle, itv),
		Iowait: sValue(prev.Iowait, curr.Iowait, itv),
		Busy:   sValue(prev.Busy, curr.Busy, itv),
		Total:  100,
	}
}

// sValue calculates percent ratio of counter delta within whole interval.
func sValue(prev, curr, itv float64) float64 {
	if curr <= prev {
		return 0
	}
	return (curr - prev) / itv * 100
}
