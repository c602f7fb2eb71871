// 'oracenter profile' - wait events profiler for Oracle sessions.

package profile

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
)

// Config defines program's configuration options.
type Config struct {
	SID       int           // SID of profiled session
	Frequency time.Duration // Profiling frequency
	Strsize   int           // Limit length for query string
}

// profileStat describes single sample of the profiled session state.
type profileStat struct {
	queryDurationSec float64 // number of seconds the current statement is running
	status           string  // session status - ACTIVE or INACTIVE
	execEntry        string  // sql_id/sql_exec_id pair identifying particular execution
	waitEntry        string  // wait_class.event the session is waiting on, or 'ON CPU'
	queryText        string  // text of the profiled statement
}

// stats defines local statistics storage for profiled wait events.
type stats struct {
	durations map[string]float64 // wait events and their durations
	ratios    map[string]float64 // wait events and their percent ratios
}

// newStatsStore creates new stats store.
func newStatsStore() stats {
	return stats{
		durations: map[string]float64{},
		ratios:    map[string]float64{},
	}
}

// resetStatsStore deletes all entries from the stats maps.
func resetStatsStore(s stats) stats {
	for k := range s.durations {
		delete(s.durations, k)
	}
	for k := range s.ratios {
		delete(s.ratios, k)
	}
	return s
}

// RunMain is the main entry point for 'oracenter profile' command.
func RunMain(dbConfig oracle.Config, config Config) error {
	db, err := oracle.Connect(dbConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	// In case of SIGINT dump collected stats and stop profiling.
	doQuit := make(chan os.Signal, 1)
	signal.Notify(doQuit, os.Interrupt)

	return profileLoop(os.Stdout, db, config, doQuit)
}

// profileLoop profiles session and prints stats until it disconnects or user interrupts.
func profileLoop(w io.Writer, db *oracle.DB, config Config, doQuit chan os.Signal) error {
	prev := profileStat{}
	startup := true
	s := newStatsStore()

	_, err := fmt.Fprintf(w, "LOG: Profiling session %d with %s sampling\n", config.SID, config.Frequency)
	if err != nil {
		return err
	}

	t := time.NewTicker(config.Frequency)

	for {
		curr, err := getProfileSnapshot(db, config.SID)
		if err == sql.ErrNoRows {
			// Session disconnected, print collected stats before exit.
			t.Stop()

			err := printStat(w, s)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(w, "LOG: Stop profiling, no session with sid %d\n", config.SID)
			return err
		} else if err != nil {
			t.Stop()
			return err
		}

		switch {
		case startup:
			// Start collecting stats immediately if a statement is executing,
			// otherwise waiting when session becomes active.
			if curr.status == "ACTIVE" && curr.execEntry != "" {
				err := printHeader(w, curr, config.Strsize)
				if err != nil {
					return err
				}
			}
			startup = false
		case curr.execEntry != prev.execEntry:
			// Execution has been changed - statement finished or new one started.
			// Print stats collected for finished statement and reset the store.
			if prev.execEntry != "" {
				err := printStat(w, s)
				if err != nil {
					return err
				}
			}
			s = resetStatsStore(s)

			if curr.execEntry != "" {
				err := printHeader(w, curr, config.Strsize)
				if err != nil {
					return err
				}
			}
		default:
			// Same execution is still running, count wait events.
			s = countWaitings(s, curr, prev)
		}

		// Copy current stats snapshot to previous.
		prev = curr

		select {
		case <-t.C:
			continue
		case sig := <-doQuit:
			t.Stop()

			err := printStat(w, s)
			if err != nil {
				return err
			}

			return fmt.Errorf("got %s", sig.String())
		}
	}
}

// getProfileSnapshot polls state of the profiled session.
func getProfileSnapshot(db *oracle.DB, sid int) (profileStat, error) {
	var s profileStat

	err := db.QueryRow(query.ProfileSessionQuery, sid).Scan(
		&s.queryDurationSec, &s.status, &s.execEntry, &s.waitEntry, &s.queryText)
	if err != nil {
		return profileStat{}, err
	}

	return s, nil
}

// countWaitings counts wait events durations and percent ratios.
func countWaitings(s stats, curr profileStat, prev profileStat) stats {
	// Count only when both samples belong to the same execution.
	if curr.execEntry == "" || curr.execEntry != prev.execEntry {
		return s
	}

	delta := curr.queryDurationSec - prev.queryDurationSec
	if delta < 0 {
		return s
	}

	/* calculate durations of collected wait events */
	s.durations[curr.waitEntry] = s.durations[curr.waitEntry] + delta

	/* calculate percents */
	var total float64
	for _, v := range s.durations {
		total += v
	}
	if total == 0 {
		return s
	}
	for k, v := range s.durations {
		s.ratios[k] = (100 * v) / total
	}

	return s
}

// printHeader prints stats header with truncated text of the profiled statement.
func printHeader(w io.Writer, curr profileStat, strsize int) error {
	q := truncateQuery(curr.queryText, strsize)

	tmpl := `------ ------------ -----------------------------
%% time      seconds wait_entry                     query: %s
------ ------------ -----------------------------
`

	_, err := fmt.Fprintf(w, tmpl, q)
	return err
}

// printStat prints collected stats: wait events durations and percent ratios.
func printStat(w io.Writer, s stats) error {
	if len(s.durations) == 0 {
		return nil // nothing to do
	}

	// Sort wait events by durations.
	list := make([]string, 0, len(s.durations))
	for k := range s.durations {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool {
		return s.durations[list[i]] > s.durations[list[j]]
	})

	// Print stats and calculate totals.
	var totalPct, totalTime float64
	for _, e := range list {
		_, err := fmt.Fprintf(w, "%-*.2f %*.6f %s\n", 6, s.ratios[e], 12, s.durations[e], e)
		if err != nil {
			return err
		}
		totalPct += s.ratios[e]
		totalTime += s.durations[e]
	}

	// Print totals.
	_, err := fmt.Fprintf(w, "------ ------------ -----------------------------\n%-*.2f %*.6f\n", 6, totalPct, 12, totalTime)
	return err
}

// truncateQuery truncates query text up to the specified limit.
func truncateQuery(q string, limit int) string {
	if len(q) > limit {
		return q[:limit]
	}
	return q
}
