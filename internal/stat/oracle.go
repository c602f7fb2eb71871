package stat

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
)

// Orastat describes collected Oracle stats.
type Orastat struct {
	Activity Activity
	Result   ORAresult
}

// collectOracleStat collects Oracle stats returned by passed query.
func collectOracleStat(db *oracle.DB, q string) (ORAresult, error) {
	res, err := NewORAresultQuery(db, q)
	if err != nil {
		return ORAresult{}, err
	}

	return res, nil
}

// Activity describes Oracle's current activity stats.
type Activity struct {
	State          string // state of the instance - up or down
	SessTotal      int    // total number of sessions
	SessActive     int    // number of active user sessions
	SessInactive   int    // number of inactive sessions
	SessBackground int    // number of background processes
	SessBlocked    int    // number of sessions waiting on a blocker
	SessWaiting    int    // number of active sessions in a non-idle wait
	SessLimit      int    // value of the 'sessions' parameter
	Uptime         string // instance uptime (since startup)
	Role           string // database role - PRIMARY or standby
}

// collectActivityStat collects Oracle runtime activity about connected sessions and workload.
func collectActivityStat(db *oracle.DB, opts query.Options) (Activity, error) {
	var s Activity

	var uptime int64
	var instance, host, version, name, dbid, logMode, openMode string
	err := db.QueryRow(query.SelectCommonProperties).
		Scan(&instance, &host, &version, &name, &dbid, &logMode, &openMode, &s.Role, &uptime)
	if err != nil {
		s.Uptime = "--:--:--"
		return s, err
	}
	s.Uptime = prettyUptime(uptime)

	q, err := query.Format(query.SelectActivityDefault, opts)
	if err != nil {
		return s, err
	}

	err = db.QueryRow(q).Scan(
		&s.SessTotal, &s.SessActive, &s.SessInactive, &s.SessBackground, &s.SessBlocked, &s.SessWaiting)
	if err != nil {
		return s, err
	}

	if err := db.QueryRow(query.SelectSessionsLimit).Scan(&s.SessLimit); err != nil {
		s.SessLimit = 0
	}

	s.State = "ok"
	return s, nil
}

// prettyUptime formats uptime expressed in seconds to 'days hh:mm:ss' format.
func prettyUptime(seconds int64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, seconds%60)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds%60)
}

// ORAresult is the container for stats collected from v$ and dba_* views.
type ORAresult struct {
	Values [][]sql.NullString /* values */
	Cols   []string           /* list of columns' names */
	Ncols  int                /* numbers of columns in Result */
	Nrows  int                /* number of rows in Result */
	Valid  bool               /* Used for result invalidations, on context switching for example */
}

// NewORAresultQuery creates ORAresult using passed database connection and query.
func NewORAresultQuery(db *oracle.DB, q string) (ORAresult, error) {
	if q == "" {
		return ORAresult{}, fmt.Errorf("no query defined")
	}

	rows, err := db.Query(q)
	if err != nil {
		return ORAresult{}, err
	}

	cols, err := rows.Columns()
	if err != nil {
		rows.Close()
		return ORAresult{}, err
	}

	var (
		ncols = len(cols)
		nrows int
	)

	// Rows are scanned into a slice of empty interfaces, then every value is
	// normalized into sql.NullString. The driver returns Oracle NUMBER, VARCHAR2
	// and DATE values as different Go types, all of them are stringified here so
	// the downstream diff/sort/print code deals with strings only.
	var rowsStore = make([][]sql.NullString, 0, 10)

	for rows.Next() {
		raw, err := rows.SliceScan()
		if err != nil {
			continue
		}

		values := make([]sql.NullString, ncols)
		for i, v := range raw {
			values[i] = toNullString(v)
		}

		rowsStore = append(rowsStore, values)
		nrows++
	}

	rows.Close()

	colnames := make([]string, ncols)
	for i, c := range cols {
		colnames[i] = strings.ToLower(c)
	}

	res := ORAresult{
		Nrows:  nrows,
		Ncols:  ncols,
		Cols:   colnames,
		Values: rowsStore,
		Valid:  true,
	}

	err = res.validate()
	if err != nil {
		return ORAresult{}, err
	}

	return res, nil
}

// toNullString converts a raw value returned by the driver to sql.NullString.
func toNullString(v interface{}) sql.NullString {
	switch value := v.(type) {
	case nil:
		return sql.NullString{}
	case string:
		return sql.NullString{String: value, Valid: true}
	case []byte:
		return sql.NullString{String: string(value), Valid: true}
	case time.Time:
		return sql.NullString{String: value.Format("2006-01-02 15:04:05"), Valid: true}
	case float64:
		return sql.NullString{String: strconv.FormatFloat(value, 'f', -1, 64), Valid: true}
	case float32:
		return sql.NullString{String: strconv.FormatFloat(float64(value), 'f', -1, 32), Valid: true}
	case int64:
		return sql.NullString{String: strconv.FormatInt(value, 10), Valid: true}
	case bool:
		return sql.NullString{String: strconv.FormatBool(value), Valid: true}
	default:
		return sql.NullString{String: fmt.Sprintf("%v", value), Valid: true}
	}
}

// NewORAresultFile creates ORAresult using reader interface.
func NewORAresultFile(r io.Reader, bufsz int64) (ORAresult, error) {
	data := make([]byte, bufsz)

	if _, err := io.ReadFull(r, data); err != nil {
		return ORAresult{}, err
	}

	// initialize an empty struct and unmarshal data from the buffer
	res := ORAresult{}
	err := json.Unmarshal(data, &res)
	if err != nil {
		return ORAresult{}, err
	}

	err = res.validate()
	if err != nil {
		return ORAresult{}, err
	}

	return res, nil
}

// validate validates content of ORAresult
func (r *ORAresult) validate() error {
	// Check that number or values in rows are equal to number of columns names.
	for _, row := range r.Values {
		if len(row) != len(r.Cols) {
			return fmt.Errorf("invalid number of values in row")
		}
	}

	// Check number of rows is the same as declared
	if r.Nrows != len(r.Values) {
		return fmt.Errorf("invalid number of rows and values")
	}

	return nil
}

// Compare is public wrapper over calculateDelta.
func Compare(curr, prev ORAresult, itv int, interval [2]int, skey int, desc bool, ukey int) (ORAresult, error) {
	return calculateDelta(curr, prev, itv, interval, skey, desc, ukey)
}

// calculateDelta compares two ORAresult structs and returns ordered delta ORAresult.
func calculateDelta(curr, prev ORAresult, itv int, interval [2]int, skey int, desc bool, ukey int) (ORAresult, error) {
	// Make prev snapshot using current snap, at startup or at context switching
	if !prev.Valid {
		return curr, nil
	}

	var delta ORAresult
	var err error

	// Diff previous and current stats snapshot
	if interval != [2]int{0, 0} {
		delta, err = diff(curr, prev, itv, interval, ukey)
		if err != nil {
			return ORAresult{}, fmt.Errorf("diff failed: %s", err)
		}
	} else {
		delta = curr
	}

	delta.sort(skey, desc)

	return delta, nil
}

// diff compares two ORAresult values and produces new differential ORAresult.
func diff(curr ORAresult, prev ORAresult, itv int, interval [2]int, ukey int) (ORAresult, error) {
	var diff ORAresult
	var found bool

	diff.Values = make([][]sql.NullString, curr.Nrows)
	diff.Cols = curr.Cols
	diff.Ncols = len(curr.Cols)
	diff.Nrows = curr.Nrows

	// Take every row from 'current' snapshot and check its existing in 'previous' snapshot. If row exists in both snapshots
	// make diff between them. If target row is not found in 'previous' snapshot, no diff needed, hence append this row
	// as-is into 'result' snapshot.
	// Thus in the end, all rows that aren't exist in the 'current' snapshot, but exist in 'previous', will be skipped.
	for i, cv := range curr.Values {
		// Allocate container for target row and reset 'found' flag
		diff.Values[i] = make([]sql.NullString, curr.Ncols)
		found = false

		for j, pv := range prev.Values {
			// Row identity spans columns 0..ukey: on RAC the shifted leading inst
			// column is part of the key, rows repeat per instance otherwise.
			if !sameRowKey(cv, pv, ukey) {
				// Row is not exist in previous snapshot
				continue
			}

			found = true

			// Do diff
			for l := 0; l < curr.Ncols; l++ {
				if l < interval[0] || l > interval[1] {
					diff.Values[i][l].String = curr.Values[i][l].String // don't diff, copy value as-is
					diff.Values[i][l].Valid = curr.Values[i][l].Valid
				} else {
					// Values with dots or in scientific notation consider as floats and integer otherwise.
					v, err := diffPair(curr.Values[i][l].String, prev.Values[j][l].String, itv)
					if err != nil {
						return diff, err
					}
					diff.Values[i][l].String = v
					diff.Values[i][l].Valid = true
				}
			}
			break // Go to searching next row from current snapshot
		}

		// End of the searching in 'previous' snapshot, if we reached here it means row not found and it simply should be added as is.
		if !found {
			for l := 0; l < curr.Ncols; l++ {
				diff.Values[i][l].String = curr.Values[i][l].String // don't diff, copy value as-is
				diff.Values[i][l].Valid = curr.Values[i][l].Valid
			}
		}
	}

	diff.Valid = true
	return diff, nil
}

// sameRowKey reports whether two rows share the compound key of columns 0..ukey.
func sameRowKey(curr, prev []sql.NullString, ukey int) bool {
	for k := 0; k <= ukey; k++ {
		if curr[k].String != prev[k].String {
			return false
		}
	}
	return true
}

// sort performs sorting of ORAresult using order key and order.
func (r *ORAresult) sort(key int, desc bool) {
	if r.Nrows == 0 {
		return /* nothing to sort */
	}

	_, err := strconv.ParseFloat(r.Values[0][key].String, 64)
	if err == nil {
		// value is numeric
		sort.Slice(r.Values, func(i, j int) bool {
			l, _ := strconv.ParseFloat(r.Values[i][key].String, 64)
			r, _ := strconv.ParseFloat(r.Values[j][key].String, 64)
			if desc {
				return l > r /* desc order: 10 -> 0 */
			}
			return l < r /* asc order: 0 -> 10 */
		})
	} else {
		// value is string
		sort.Slice(r.Values, func(i, j int) bool {
			if desc {
				return r.Values[i][key].String > r.Values[j][key].String /* desc order: 'z' -> 'a' */
			}
			return r.Values[i][key].String < r.Values[j][key].String /* asc order: 'a' -> 'z' */
		})
	}
}

// diffPair produces a delta of two string values.
func diffPair(curr, prev string, itv int) (string, error) {
	if strings.Contains(prev, ".") || strings.Contains(prev, "e") ||
		strings.Contains(curr, ".") || strings.Contains(curr, "e") {
		cv, pv, err := parsePairFloat(curr, prev)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat((cv-pv)/float64(itv), 'f', 2, 64), nil
	}

	cv, pv, err := parsePairInt(curr, prev)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt((cv-pv)/int64(itv), 10), nil
}

// parsePairFloat parses pair of string and return two float64 values.
func parsePairFloat(curr, prev string) (float64, float64, error) {
	cv, err := strconv.ParseFloat(curr, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("convert '%s' to float64 failed: %s", curr, err)
	}
	pv, err := strconv.ParseFloat(prev, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("convert '%s' to float64 failed: %s", prev, err)
	}

	return cv, pv, nil
}

// parsePairInt parses pair of string and return two int64 values.
func parsePairInt(curr, prev string) (int64, int64, error) {
	cv, err := strconv.ParseInt(curr, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("convert '%s' to int failed: %s", curr, err)
	}
	pv, err := strconv.ParseInt(prev, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("convert '%s' to int failed: %s", prev, err)
	}

	return cv, pv, nil
}

// Fprint prints content of ORAresult container to buffer.
func (r *ORAresult) Fprint(buf *bytes.Buffer) error {
	// do simple ad-hoc aligning for current ORAresult, do align using the longest value in the column
	widthMap := map[int]int{}
	var valuelen int
	for colnum, colname := range r.Cols {
		widthMap[colnum] = len(colname)
		for rownum := 0; rownum < len(r.Values); rownum++ {
			valuelen = len(r.Values[rownum][colnum].String)
			if valuelen > widthMap[colnum] {
				widthMap[colnum] = valuelen
			}
		}
	}

	/* print header */
	for colidx, colname := range r.Cols {
		_, err := fmt.Fprintf(buf, "%-*s", widthMap[colidx]+2, colname)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(buf, "\n\n")
	if err != nil {
		return err
	}

	/* print data to buffer */
	for colnum, rownum := 0, 0; rownum < r.Nrows; rownum, colnum = rownum+1, 0 {
		for range r.Cols {
			/* m[row][column] */
			_, err := fmt.Fprintf(buf, "%-*s", widthMap[colnum]+2, r.Values[rownum][colnum].String)
			if err != nil {
				return err
			}
			colnum++
		}
		_, err := fmt.Fprintf(buf, "\n")
		if err != nil {
			return err
		}
	}

	return nil
}
