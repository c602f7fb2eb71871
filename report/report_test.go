package report

import (
	"archive/tar"
	"bytes"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/oracenter/oracenter/internal/stat"
	"github.com/oracenter/oracenter/internal/view"
	"github.com/stretchr/testify/assert"
)

// newTestTar writes two sysstat snapshots taken 5 seconds apart into tar buffer.
func newTestTar(t *testing.T) *tar.Reader {
	snapshots := []struct {
		filename string
		res      stat.ORAresult
	}{
		{
			filename: "sysstat.20210615T123010.000.json",
			res: stat.ORAresult{
				Valid: true, Ncols: 2, Nrows: 2, Cols: []string{"statistic", "value"},
				Values: [][]sql.NullString{
					{{String: "user calls", Valid: true}, {String: "1000", Valid: true}},
					{{String: "execute count", Valid: true}, {String: "500", Valid: true}},
				},
			},
		},
		{
			filename: "sysstat.20210615T123015.000.json",
			res: stat.ORAresult{
				Valid: true, Ncols: 2, Nrows: 2, Cols: []string{"statistic", "value"},
				Values: [][]sql.NullString{
					{{String: "user calls", Valid: true}, {String: "1100", Valid: true}},
					{{String: "execute count", Valid: true}, {String: "525", Valid: true}},
				},
			},
		},
	}

	buf := &bytes.Buffer{}
	tw := tar.NewWriter(buf)
	for _, s := range snapshots {
		data, err := json.Marshal(s.res)
		assert.NoError(t, err)
		assert.NoError(t, tw.WriteHeader(&tar.Header{Name: s.filename, Mode: 0644, Size: int64(len(data))}))
		_, err = tw.Write(data)
		assert.NoError(t, err)
	}
	assert.NoError(t, tw.Close())

	return tar.NewReader(buf)
}

func Test_doReport(t *testing.T) {
	v := view.New()["sysstat"]

	config := Config{
		ReportType: "sysstat",
		TsStart:    time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
		TsEnd:      time.Date(2021, 6, 15, 23, 59, 59, 0, time.UTC),
		TruncLimit: 32,
		Interval:   time.Second,
	}

	buf := &bytes.Buffer{}
	assert.NoError(t, doReport(buf, newTestTar(t), v, config))

	got := buf.String()
	assert.Contains(t, got, "statistic")
	assert.Contains(t, got, "12:30:15")
	// deltas per second over 5 seconds interval
	assert.Contains(t, got, "20") // user calls: (1100-1000)/5
	assert.Contains(t, got, "5")  // execute count: (525-500)/5
	// first snapshot makes the baseline and must not be printed
	assert.NotContains(t, got, "12:30:10")
}

func Test_doReport_filter(t *testing.T) {
	v := view.New()["sysstat"]

	config := Config{
		ReportType:    "sysstat",
		TsStart:       time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
		TsEnd:         time.Date(2021, 6, 15, 23, 59, 59, 0, time.UTC),
		TruncLimit:    32,
		Interval:      time.Second,
		FilterColName: "statistic",
		Regexp:        regexp.MustCompile("^user"),
	}

	buf := &bytes.Buffer{}
	assert.NoError(t, doReport(buf, newTestTar(t), v, config))

	got := buf.String()
	assert.Contains(t, got, "user calls")
	assert.NotContains(t, got, "execute count")
}

func Test_doReport_outsideWindow(t *testing.T) {
	v := view.New()["sysstat"]

	config := Config{
		ReportType: "sysstat",
		TsStart:    time.Date(2021, 6, 16, 0, 0, 0, 0, time.UTC),
		TsEnd:      time.Date(2021, 6, 16, 23, 59, 59, 0, time.UTC),
		TruncLimit: 32,
		Interval:   time.Second,
	}

	buf := &bytes.Buffer{}
	assert.NoError(t, doReport(buf, newTestTar(t), v, config))
	assert.Equal(t, "", buf.String())
}

// Snapshots recorded faster than once per second get distinct millisecond
// suffixes but share the seconds timestamp, reporting over them must not fail.
func Test_doReport_subSecondSnapshots(t *testing.T) {
	snapshots := []struct {
		filename string
		value    string
	}{
		{filename: "sysstat.20210615T123010.100.json", value: "1000"},
		{filename: "sysstat.20210615T123010.600.json", value: "1100"},
	}

	buf := &bytes.Buffer{}
	tw := tar.NewWriter(buf)
	for _, s := range snapshots {
		res := stat.ORAresult{
			Valid: true, Ncols: 2, Nrows: 1, Cols: []string{"statistic", "value"},
			Values: [][]sql.NullString{
				{{String: "user calls", Valid: true}, {String: s.value, Valid: true}},
			},
		}
		data, err := json.Marshal(res)
		assert.NoError(t, err)
		assert.NoError(t, tw.WriteHeader(&tar.Header{Name: s.filename, Mode: 0644, Size: int64(len(data))}))
		_, err = tw.Write(data)
		assert.NoError(t, err)
	}
	assert.NoError(t, tw.Close())

	config := Config{
		ReportType: "sysstat",
		TsStart:    time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
		TsEnd:      time.Date(2021, 6, 15, 23, 59, 59, 0, time.UTC),
		TruncLimit: 32,
		Interval:   time.Second,
	}

	out := &bytes.Buffer{}
	assert.NoError(t, doReport(out, tar.NewReader(buf), view.New()["sysstat"], config))
	// interval is adjusted down to 500ms, whole delta is reported as one unit
	assert.Contains(t, out.String(), "100")
}

func Test_parseFilenameTimestamp(t *testing.T) {
	ts, err := parseFilenameTimestamp("sysstat.20210615T123015.000.json")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2021, 6, 15, 12, 30, 15, 0, time.UTC), ts)

	// millisecond suffix distinguishes snapshots taken within the same second
	ts, err = parseFilenameTimestamp("sysstat.20210615T123015.250.json")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2021, 6, 15, 12, 30, 15, 250000000, time.UTC), ts)

	_, err = parseFilenameTimestamp("sysstat.json")
	assert.Error(t, err)

	_, err = parseFilenameTimestamp("sysstat.invalid.json")
	assert.Error(t, err)
}

func Test_orderKey(t *testing.T) {
	v := view.New()["sysstat"]
	res := stat.ORAresult{Cols: []string{"statistic", "value"}}

	// defaults from view
	skey, desc := orderKey(res, v, Config{})
	assert.Equal(t, v.OrderKey, skey)
	assert.Equal(t, v.OrderDesc, desc)

	// explicit column, descending by default
	skey, desc = orderKey(res, v, Config{OrderColName: "statistic", OrderDesc: true})
	assert.Equal(t, 0, skey)
	assert.True(t, desc)

	// leading '+' forces ascending order
	skey, desc = orderKey(res, v, Config{OrderColName: "+value", OrderDesc: true})
	assert.Equal(t, 1, skey)
	assert.False(t, desc)

	// unknown column falls back to view defaults
	skey, desc = orderKey(res, v, Config{OrderColName: "unknown"})
	assert.Equal(t, v.OrderKey, skey)
	assert.Equal(t, v.OrderDesc, desc)
}
