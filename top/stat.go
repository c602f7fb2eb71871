// Stuff related to gathering, processing and displaying stats.

package top

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/oracenter/oracenter/internal/align"
	"github.com/oracenter/oracenter/internal/pretty"
	"github.com/oracenter/oracenter/internal/stat"
)

func collectStat(ctx context.Context, app *app, statCh chan<- stat.Stat) {
	c, err := stat.NewCollector(app.db)
	if err != nil {
		printCmdline(app.ui, "%s", err)
		return
	}

	// Get current view.
	v := <-app.config.viewCh

	// Set refresh interval from received view.
	refresh := v.Refresh
	itv := int(refresh / time.Second)

	// Run first update to prefill "previous" snapshot.
	_, err = c.Update(app.db, v, itv)
	if err != nil {
		printCmdline(app.ui, "%s", err)
	}
	time.Sleep(100 * time.Millisecond)

	// Collect stat in loop and send it to stat channel.
	for {
		stats, err := c.Update(app.db, v, itv)
		if err != nil {
			printCmdline(app.ui, "%s", err)
		} else {
			statCh <- stats
		}

		// Waiting for events until refresh interval expired.
		ticker := time.NewTicker(refresh)
		select {
		case v = <-app.config.viewCh:
			// Update refresh interval if it is changed.
			if refresh != v.Refresh && v.Refresh > 0 {
				refresh = v.Refresh
				itv = int(refresh / time.Second)
				continue
			}

			// If view has been updated, stop ticker and re-initialize stats.
			ticker.Stop()

			c.Reset()
			_, err = c.Update(app.db, v, itv)
			if err != nil {
				printCmdline(app.ui, "%s", err)
			}

			continue
		case <-ctx.Done():
			ticker.Stop()
			return
		case <-ticker.C:
			continue
		}
	}
}

func printStat(app *app, s stat.Stat, props stat.OracleProperties) {
	app.ui.Update(func(g *gocui.Gui) error {
		v, err := g.View("sysstat")
		if err != nil {
			return fmt.Errorf("set focus on sysstat view failed: %s", err)
		}
		v.Clear()
		printSysstat(v, s)

		v, err = g.View("orastat")
		if err != nil {
			return fmt.Errorf("set focus on orastat view failed: %s", err)
		}
		v.Clear()
		printOrastat(v, app, s, props)

		v, err = g.View("dbstat")
		if err != nil {
			return fmt.Errorf("set focus on dbstat view failed: %s", err)
		}
		v.Clear()
		printDbstat(v, app, s)

		if app.config.aux == auxLogtail {
			v, err := g.View("aux")
			if err != nil {
				return fmt.Errorf("set focus on aux view failed: %s", err)
			}

			// don't clear aux view, logtail reads the log only when it is changed
			printLogtail(app, g, v)
		}
		return nil
	})
}

func printSysstat(v *gocui.View, s stat.Stat) {
	/* line1: current time, host load average and number of CPUs */
	fmt.Fprintf(v, "oracenter: %s, load average: %.2f, cpus: %d\n",
		time.Now().Format("2006-01-02 15:04:05"),
		s.LoadAvg.Load, s.LoadAvg.NumCPUs)
	/* line2: cpu usage */
	fmt.Fprintf(v, "    %%cpu: \033[37;1m%4.1f\033[0m us, \033[37;1m%4.1f\033[0m sy, \033[37;1m%4.1f\033[0m id, \033[37;1m%4.1f\033[0m wa, \033[37;1m%4.1f\033[0m busy\n",
		s.CpuStat.User, s.CpuStat.Sys, s.CpuStat.Idle, s.CpuStat.Iowait, s.CpuStat.Busy)
	/* line3: memory usage - host memory, SGA and PGA */
	fmt.Fprintf(v, "     mem: \033[37;1m%8s\033[0m host total, \033[37;1m%8s\033[0m sga, \033[37;1m%8s\033[0m pga allocated\n",
		pretty.Size(float64(s.Meminfo.MemTotal)*1048576),
		pretty.Size(float64(s.Meminfo.SgaSize)*1048576),
		pretty.Size(float64(s.Meminfo.PgaAlloc)*1048576))
}

func printOrastat(v *gocui.View, app *app, s stat.Stat, props stat.OracleProperties) {
	/* line1: details of used connection, version, uptime and database role */
	fmt.Fprintf(v, "state [%s]: %.16s:%d %.16s@%.16s (ver: %s, up %s, role: %.1s)\n",
		s.Activity.State,
		app.db.Config.Host, app.db.Config.Port, app.db.Config.User, app.db.Config.Service,
		props.Version, s.Activity.Uptime, s.Activity.Role)
	/* line2: current state of sessions: total, active, inactive, background */
	fmt.Fprintf(v, "  sessions:\033[37;1m%4d/%d\033[0m total/limit,\033[37;1m%4d\033[0m active,\033[37;1m%4d\033[0m inactive,\033[37;1m%4d\033[0m background\n",
		s.Activity.SessTotal, s.Activity.SessLimit,
		s.Activity.SessActive, s.Activity.SessInactive, s.Activity.SessBackground)
	/* line3: waiting and blocked sessions */
	fmt.Fprintf(v, "   waiting:\033[37;1m%4d\033[0m on non-idle events,\033[37;1m%4d\033[0m blocked\n",
		s.Activity.SessWaiting, s.Activity.SessBlocked)
}

func printDbstat(v *gocui.View, app *app, s stat.Stat) {
	// configure aligning, use fixed aligning instead of dynamic
	if !app.config.view.Aligned {
		widthes, cols := align.SetAlign(s.Result, 1000, false) // we don't want truncate lines here, so just use high limit
		app.config.view.Cols = cols
		app.config.view.ColsWidth = widthes
		app.config.view.Aligned = true
	}

	// is filter required?
	var filter = isFilterRequired(app.config.view.Filters)

	/* print header - filtered column mark with star; ordered column make shadowed */
	printStatHeader(v, s, app)

	// print data
	printStatData(v, s, app, filter)
}

// Returns true if filtering is required
func isFilterRequired(f map[int]*regexp.Regexp) bool {
	for _, v := range f {
		if v != nil {
			return true
		}
	}
	return false
}

func printStatHeader(v *gocui.View, s stat.Stat, app *app) {
	var pname string
	for i := 0; i < s.Result.Ncols; i++ {
		name := s.Result.Cols[i]

		// mark filtered column
		if app.config.view.Filters[i] != nil && app.config.view.Filters[i].String() != "" {
			pname = "*" + name
		} else {
			pname = name
		}

		/* mark ordered column with foreground color */
		if i != app.config.view.OrderKey {
			fmt.Fprintf(v, "\033[%d;%dm%-*s\033[0m", 30, 47, app.config.view.ColsWidth[i]+2, pname)
		} else {
			fmt.Fprintf(v, "\033[%d;%dm%-*s\033[0m", 47, 1, app.config.view.ColsWidth[i]+2, pname)
		}
	}
	fmt.Fprintf(v, "\n")
}

func printStatData(v *gocui.View, s stat.Stat, app *app, filter bool) {
	var doPrint bool
	for colnum, rownum := 0, 0; rownum < s.Result.Nrows; rownum, colnum = rownum+1, 0 {
		// be optimistic, we want to print the row.
		doPrint = true

		// apply filters using regexp
		if filter {
			for i := 0; i < s.Result.Ncols; i++ {
				if app.config.view.Filters[i] != nil {
					if app.config.view.Filters[i].MatchString(s.Result.Values[rownum][i].String) {
						doPrint = true
						break
					} else {
						doPrint = false
					}
				}
			}
		}

		// print values
		for i := range s.Result.Cols {
			if doPrint {
				// truncate values that longer than column width
				valuelen := len(s.Result.Values[rownum][colnum].String)
				if valuelen > app.config.view.ColsWidth[i] {
					width := app.config.view.ColsWidth[i]
					// truncate value up to column width and replace last character with '~' symbol
					s.Result.Values[rownum][colnum].String = s.Result.Values[rownum][colnum].String[:width-1] + "~"
				}

				// print value
				fmt.Fprintf(v, "%-*s", app.config.view.ColsWidth[i]+2, s.Result.Values[rownum][colnum].String)
				colnum++
			}
		}
		if doPrint {
			fmt.Fprintf(v, "\n")
		}
	}
}
