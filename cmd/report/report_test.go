package report

import (
	"testing"
	"time"

	"github.com/oracenter/oracenter/report"
	"github.com/stretchr/testify/assert"
)

func Test_selectReport(t *testing.T) {
	testcases := []struct {
		set  *bool
		want string
	}{
		{set: &showSessions, want: "sessions"},
		{set: &showSysstat, want: "sysstat"},
		{set: &showEvents, want: "events"},
		{set: &showSqlarea, want: "sqlarea"},
		{set: &showFilestat, want: "filestat"},
		{set: &showTablespaces, want: "tablespaces"},
	}

	for _, tc := range testcases {
		showSessions, showSysstat, showEvents, showSqlarea, showFilestat, showTablespaces = false, false, false, false, false, false
		config.ReportType = ""

		*tc.set = true
		selectReport()
		assert.Equal(t, tc.want, config.ReportType)
	}
}

func Test_parseFilterString(t *testing.T) {
	testcases := []struct {
		filter      string
		wantColname string
	}{
		{filter: "", wantColname: ""},
		{filter: "event:log file sync", wantColname: "event"},
		{filter: `sql_text:"select|update"`, wantColname: "sql_text"},
		{filter: "no delimiter here", wantColname: ""},
		{filter: "event:[", wantColname: ""}, // invalid regexp
	}

	for _, tc := range testcases {
		config = report.Config{}

		doFilter = tc.filter
		parseFilterString()
		assert.Equal(t, tc.wantColname, config.FilterColName)
		if tc.wantColname != "" {
			assert.NotNil(t, config.Regexp)
		}
	}
}

func Test_checkStartEndTimestamps(t *testing.T) {
	layout := "20060102-150405"

	// full start and end timestamps
	config, tsStart, tsEnd = report.Config{}, "20210110-120000", "20210110-130000"
	checkStartEndTimestamps()
	assert.Equal(t, "20210110-120000", config.TsStart.Format(layout))
	assert.Equal(t, "20210110-130000", config.TsEnd.Format(layout))

	// no timestamps specified, start stays at zero value, end defaults to now
	config, tsStart, tsEnd = report.Config{}, "", ""
	checkStartEndTimestamps()
	assert.True(t, config.TsStart.IsZero())
	assert.False(t, config.TsEnd.IsZero())

	// time without date assumes today
	config, tsStart, tsEnd = report.Config{}, "120000", ""
	checkStartEndTimestamps()
	assert.Equal(t, time.Now().Format("20060102")+"-120000", config.TsStart.Format(layout))

	// invalid start is ignored
	config, tsStart, tsEnd = report.Config{}, "garbage", ""
	checkStartEndTimestamps()
	assert.True(t, config.TsStart.IsZero())
}
