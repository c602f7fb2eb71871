package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_readLoadAverage(t *testing.T) {
	stats := map[string]float64{"LOAD": 1.5, "NUM_CPUS": 8}

	got := readLoadAverage(stats)
	assert.Equal(t, 1.5, got.Load)
	assert.Equal(t, 8, got.NumCPUs)

	// empty stats give zero values
	got = readLoadAverage(map[string]float64{})
	assert.Equal(t, LoadAvg{}, got)
}

func Test_readCpuStat(t *testing.T) {
	stats := map[string]float64{
		"USER_TIME":   600,
		"SYS_TIME":    200,
		"IDLE_TIME":   1000,
		"IOWAIT_TIME": 100,
		"BUSY_TIME":   800,
	}

	got := readCpuStat(stats)
	assert.Equal(t, float64(600), got.User)
	assert.Equal(t, float64(200), got.Sys)
	assert.Equal(t, float64(800), got.Busy)
	assert.Equal(t, float64(1900), got.Total)
}

func Test_countCpuUsage(t *testing.T) {
	prev := CpuStat{User: 600, Sys: 200, Idle: 1000, Iowait: 100, Busy: 800, Total: 1900}
	curr := CpuStat{User: 650, Sys: 220, Idle: 1020, Iowait: 110, Busy: 870, Total: 2000}

	got := countCpuUsage(prev, curr)
	assert.Equal(t, float64(50), got.User)
	assert.Equal(t, float64(20), got.Sys)
	assert.Equal(t, float64(20), got.Idle)
	assert.Equal(t, float64(10), got.Iowait)
	assert.Equal(t, float64(70), got.Busy)

	// same counters mean no elapsed interval, usage is undefined
	assert.Equal(t, CpuStat{}, countCpuUsage(prev, prev))

	// decreasing counters (instance restart) give zero usage
	got = countCpuUsage(curr, CpuStat{Total: 2100})
	assert.Equal(t, float64(0), got.User)
	assert.Equal(t, float64(0), got.Busy)
}
