// Code related to 'oracenter report' command

package report

import (
	"archive/tar"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/oracenter/oracenter/internal/align"
	"github.com/oracenter/oracenter/internal/stat"
	"github.com/oracenter/oracenter/internal/view"
)

const (
	// repeatHeaderAfter defines number of lines after which header should be printed again.
	repeatHeaderAfter = 20
	// ascFlag is the leading character of order column name which requests ascending order.
	ascFlag = "+"
)

// Config defines config container for configuring 'oracenter report'.
type Config struct {
	InputFile     string         // Input file with statistics
	ReportType    string         // Report type requested by user
	TsStart       time.Time      // Starting timestamp of the report
	TsEnd         time.Time      // Ending timestamp of the report
	OrderColName  string         // Name of the column used for sorting
	OrderDesc     bool           // Order direction: descending (true) or ascending (false)
	FilterColName string         // Name of the column used for filtering
	Regexp        *regexp.Regexp // Regexp used for filtering
	TruncLimit    int            // Limit of the length, to which values should be truncated
	RowLimit      int            // Number of rows per snapshot to print
	Interval      time.Duration  // Time interval for differential statistics
}

// RunMain is the 'oracenter report' main entry point.
func RunMain(config Config) error {
	v, ok := view.New()[config.ReportType]
	if !ok {
		return fmt.Errorf("unknown report requested: %s", config.ReportType)
	}

	f, err := os.Open(filepath.Clean(config.InputFile))
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Printf("INFO: reading from %s\n", config.InputFile)
	fmt.Printf("INFO: report %s\n", config.ReportType)
	fmt.Printf("INFO: start from: %s, end at: %s, with interval: %s\n",
		config.TsStart.Format("2006-01-02 15:04:05"), config.TsEnd.Format("2006-01-02 15:04:05"), config.Interval.String())

	return doReport(os.Stdout, tar.NewReader(f), v, config)
}

// doReport reads statistics file and prints report based on report settings.
func doReport(w io.Writer, r *tar.Reader, v view.View, config Config) error {
	var prevStat stat.ORAresult
	var prevTs time.Time

	linesPrinted := repeatHeaderAfter // print header at the beginning of report

	// read files headers continuously, read stats files requested by user and skip others.
	for {
		hdr, err := r.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("advance read position failed: %s", err)
		}

		// skip files if their names don't contain name of requested statistics
		if !strings.HasPrefix(hdr.Name, config.ReportType+".") {
			continue
		}

		// calculate timestamp when stats were recorded
		currTs, err := parseFilenameTimestamp(hdr.Name)
		if err != nil {
			return err
		}

		// skip snapshots if they're outside of the requested time interval
		if !currTs.After(config.TsStart) || !currTs.Before(config.TsEnd) {
			continue
		}

		// read stats to a buffer
		data := make([]byte, hdr.Size)
		if _, err := io.ReadFull(r, data); err != nil {
			return fmt.Errorf("read stat failed: %s", err)
		}

		currStat := stat.ORAresult{}
		if err = json.Unmarshal(data, &currStat); err != nil {
			return fmt.Errorf("unmarshal stat failed: %s", err)
		}

		// if previous stats snapshot is not defined, copy current to previous.
		// Usually this happens when reading first snapshot at startup.
		if !prevStat.Valid {
			prevStat = currStat
			prevTs = currTs
			continue
		}

		// calculate time interval
		interval := currTs.Sub(prevTs)
		if config.Interval > interval {
			fmt.Println("WARNING: specified interval too long, adjusting it to the interval between current and previous snapshots")
			config.Interval = interval
		}

		// resolve order key, user might request ordering by non-default column
		skey, desc := orderKey(currStat, v, config)

		// rate divisor, snapshots taken closer than one interval unit count as one
		itv := 1
		if config.Interval > 0 {
			itv = int(interval / config.Interval)
		}
		if itv < 1 {
			itv = 1
		}

		// calculate delta between current and previous stats snapshots
		diffStat, err := stat.Compare(currStat, prevStat, itv, v.DiffIntvl, skey, desc, v.UniqueKey)
		if err != nil {
			return err
		}

		// when diff done and previous snapshot is not needed, replace it with current snapshot
		prevStat = currStat
		prevTs = currTs

		// align values for printing, use dynamic aligning
		widthes, cols := align.SetAlign(diffStat, config.TruncLimit, true)

		// print header after every Nth lines
		if linesPrinted >= repeatHeaderAfter {
			printReportHeader(w, widthes, cols)
			linesPrinted = 0
		}

		n, err := printStatReport(w, diffStat, widthes, cols, config, currTs)
		if err != nil {
			return err
		}
		linesPrinted += n
	}

	return nil
}

// parseFilenameTimestamp extracts recording timestamp from in-tar stats filename.
func parseFilenameTimestamp(name string) (time.Time, error) {
	s := strings.Split(name, ".")
	if len(s) < 3 {
		return time.Time{}, fmt.Errorf("unexpected stat filename: %s", name)
	}

	ts, err := time.Parse("20060102T150405", s[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp from filename failed: %s", err)
	}

	// Recorder adds a millisecond suffix to distinguish snapshots taken within
	// the same second, account for it to keep sub-second intervals non-zero.
	ms, err := strconv.Atoi(s[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp from filename failed: %s", err)
	}

	return ts.Add(time.Duration(ms) * time.Millisecond), nil
}

// orderKey returns index of the column used for sorting and order direction.
// View's defaults are used unless user requested sorting by a particular column.
func orderKey(res stat.ORAresult, v view.View, config Config) (int, bool) {
	if config.OrderColName == "" {
		return v.OrderKey, v.OrderDesc
	}

	name, desc := config.OrderColName, config.OrderDesc

	// leading '+' requests ascending order
	if strings.HasPrefix(name, ascFlag) {
		name, desc = strings.TrimPrefix(name, ascFlag), false
	}

	for k, colname := range res.Cols {
		if colname == name {
			return k, desc
		}
	}

	return v.OrderKey, v.OrderDesc
}

// printReportHeader prints report header.
func printReportHeader(w io.Writer, widthes map[int]int, cols []string) {
	fmt.Fprintf(w, "         ")
	for i, name := range cols {
		fmt.Fprintf(w, "\033[%d;%dm%-*s\033[0m", 37, 1, widthes[i]+2, name)
	}
	fmt.Fprintf(w, "\n")
}

// printStatReport prints rows of a single stats snapshot and returns number of lines printed.
func printStatReport(w io.Writer, res stat.ORAresult, widthes map[int]int, cols []string, config Config, ts time.Time) (int, error) {
	// every first line of the snapshot begins with timestamp when stats were taken
	printFirst := true

	var linesPrinted int
	for rownum := 0; rownum < res.Nrows; rownum++ {
		// if filtering enabled, skip rows with values that don't match the filter
		if !matchRow(res, rownum, config) {
			continue
		}

		if printFirst {
			fmt.Fprintf(w, "%s ", ts.Format("15:04:05"))
			printFirst = false
		} else {
			fmt.Fprintf(w, "         ")
		}

		for i := range cols {
			// truncate values that longer than column width
			value := res.Values[rownum][i].String
			if len(value) > widthes[i] && widthes[i] > 0 {
				// truncate value up to column width and replace last character with '~' symbol
				value = value[:widthes[i]-1] + "~"
			}

			fmt.Fprintf(w, "%-*s", widthes[i]+2, value)
		}
		fmt.Fprintf(w, "\n")

		// check number of printed lines, if limit is reached skip remaining rows and proceed to a next stats file
		if linesPrinted++; config.RowLimit > 0 && linesPrinted >= config.RowLimit {
			break
		}
	}

	return linesPrinted, nil
}

// matchRow returns true if the row should be printed. Rows are filtered out
// when filtering is enabled and value of the filtered column doesn't match.
func matchRow(res stat.ORAresult, rownum int, config Config) bool {
	if config.FilterColName == "" || config.Regexp == nil {
		return true
	}

	for idx, colname := range res.Cols {
		if colname == config.FilterColName {
			return config.Regexp.MatchString(res.Values[rownum][idx].String)
		}
	}

	return false
}
