package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOptions(t *testing.T) {
	testcases := []struct {
		version  int
		rac      bool
		cdb      bool
		strlimit int
		wantGv   string
		wantText string
	}{
		{version: OracleV19, rac: false, cdb: false, strlimit: 0, wantGv: "v$", wantText: "s.sql_text"},
		{version: OracleV19, rac: true, cdb: true, strlimit: 64, wantGv: "gv$", wantText: "substr(s.sql_text, 1, 64)"},
		{version: OracleV11, rac: false, cdb: false, strlimit: 32, wantGv: "v$", wantText: "substr(s.sql_text, 1, 32)"},
	}

	for _, tc := range testcases {
		opts := NewOptions(tc.version, tc.rac, tc.cdb, tc.strlimit)
		assert.Equal(t, tc.wantGv, opts.Gv)
		assert.Equal(t, tc.wantText, opts.SQLTextFn)
		assert.Equal(t, tc.version, opts.Version)
		assert.Equal(t, 10, opts.TopN)
	}
}

func Test_selectViewPrefix(t *testing.T) {
	assert.Equal(t, "gv$", selectViewPrefix(true))
	assert.Equal(t, "v$", selectViewPrefix(false))
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "SYSTEM", Quote("SYSTEM"))
	assert.Equal(t, "O''BRIEN", Quote("O'BRIEN"))
	assert.Equal(t, "'' OR ''1''=''1", Quote("' OR '1'='1"))
}

func TestFormat(t *testing.T) {
	opts := NewOptions(OracleV19, false, false, 0)
	opts.TopN = 5

	got, err := Format(WaitEventsCurrentTop, opts)
	assert.NoError(t, err)
	assert.Contains(t, got, "v$system_event")
	assert.Contains(t, got, "rownum <= 5")
	assert.NotContains(t, got, "inst_id")

	opts = NewOptions(OracleV19, true, false, 0)
	got, err = Format(WaitEventsCurrentTop, opts)
	assert.NoError(t, err)
	assert.Contains(t, got, "gv$system_event")
	assert.Contains(t, got, "inst_id AS inst")

	_, err = Format("{{ .Invalid }}", opts)
	assert.Error(t, err)
}

func TestFormat_allTemplates(t *testing.T) {
	templates := map[string]string{
		"activity":             SelectActivityDefault,
		"tablespace usage":     TablespaceUsageDefault,
		"growth by snapshot":   TablespaceGrowthBySnapshot,
		"growth by day":        TablespaceGrowthByDay,
		"growth summary":       TablespaceGrowthSummary,
		"archived log per day": ArchivedLogPerDay,
		"archived log rates":   ArchivedLogRates,
		"buffer cache ratio":   BufferCacheHitRatio,
		"library cache ratios": LibraryCacheRatios,
		"dict cache ratio":     DictCacheMissRatio,
		"waits by snapshot":    WaitEventsBySnapshot,
		"waits by event":       WaitEventsByEvent,
		"waits by hour":        WaitEventsByHour,
		"waits top summary":    WaitEventsTopSummary,
		"waits current top":    WaitEventsCurrentTop,
		"sql top current":      SqlTopCurrent,
		"sql top history":      SqlTopHistory,
		"lock counts":          LockCountsDefault,
		"blocking tree":        BlockingTreeDefault,
		"lock waiters":         LockWaitersDetail,
		"blocked count":        BlockedSessionsCount,
		"segments top":         SegmentsTopDefault,
		"segments by owner":    SegmentsByOwner,
		"segments by type":     SegmentsByType,
		"sessions":             SessionsDefault,
		"sysstat":              SysstatDefault,
		"system events":        SystemEventsDefault,
		"sqlarea":              SqlareaDefault,
		"filestat":             FilestatDefault,
	}

	for _, rac := range []bool{false, true} {
		opts := NewOptions(OracleV19, rac, false, 64)
		opts.DaysBack = 7
		opts.HoursBack = 24
		opts.TopN = 10
		opts.MetricExpr = SelectSQLMetricCurrent("elapsed")

		for name, tmpl := range templates {
			q, err := Format(tmpl, opts)
			assert.NoError(t, err, name)
			assert.NotContains(t, q, "{{", name)
			assert.NotContains(t, q, "<no value>", name)

			if rac {
				assert.False(t, strings.Contains(q, " v$session"), name)
			}
		}
	}
}

func TestFormat_waitsFilters(t *testing.T) {
	opts := NewOptions(OracleV19, false, false, 0)
	opts.HoursBack = 24
	opts.Event = Quote("log file sync")
	opts.WaitClass = Quote("Commit")
	opts.InstID = 2

	got, err := Format(WaitEventsByEvent, opts)
	assert.NoError(t, err)
	assert.Contains(t, got, "LIKE upper('%log file sync%')")
	assert.Contains(t, got, "wait_class = 'Commit'")
	assert.Contains(t, got, "instance_number = 2")
	assert.Contains(t, got, "sysdate - 24 / 24")

	// snapshot range takes precedence over hours-back
	opts.SnapBegin, opts.SnapEnd = 100, 120
	got, err = Format(WaitEventsByEvent, opts)
	assert.NoError(t, err)
	assert.Contains(t, got, "BETWEEN 100 AND 120")
	assert.NotContains(t, got, "sysdate - 24 / 24")
}

func TestFormat_blockingTree(t *testing.T) {
	opts := NewOptions(OracleV19, true, false, 0)

	got, err := Format(BlockingTreeDefault, opts)
	assert.NoError(t, err)
	// the root of a cross-chain must be visible on every waiter row
	assert.Contains(t, got, "s.final_blocking_session AS final_blocker")
	assert.Contains(t, got, "PRIOR s.inst_id = s.blocking_instance")

	got, err = Format(BlockingTreeDefault, NewOptions(OracleV19, false, false, 0))
	assert.NoError(t, err)
	assert.NotContains(t, got, "inst_id")
}

func TestSelectSQLMetric(t *testing.T) {
	testcases := []struct {
		metric      string
		wantCurrent string
		wantHistory string
	}{
		{metric: "elapsed", wantCurrent: "s.elapsed_time", wantHistory: "sum(h.elapsed_time_delta)"},
		{metric: "cpu", wantCurrent: "s.cpu_time", wantHistory: "sum(h.cpu_time_delta)"},
		{metric: "gets", wantCurrent: "s.buffer_gets", wantHistory: "sum(h.buffer_gets_delta)"},
		{metric: "reads", wantCurrent: "s.disk_reads", wantHistory: "sum(h.disk_reads_delta)"},
		{metric: "execs", wantCurrent: "s.executions", wantHistory: "sum(h.executions_delta)"},
		{metric: "bogus", wantCurrent: "s.elapsed_time", wantHistory: "sum(h.elapsed_time_delta)"},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.wantCurrent, SelectSQLMetricCurrent(tc.metric))
		assert.Equal(t, tc.wantHistory, SelectSQLMetricHistory(tc.metric))
	}
}

func TestSelectSQLText(t *testing.T) {
	assert.Equal(t, "SELECT sql_fulltext FROM v$sqlarea WHERE sql_id = :1 AND rownum = 1", SelectSQLText("v$"))
	assert.Equal(t, "SELECT sql_fulltext FROM gv$sqlarea WHERE sql_id = :1 AND rownum = 1", SelectSQLText("gv$"))
}
