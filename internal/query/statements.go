package query

import "fmt"

const (
	// SqlTopCurrent is the top-N SQL report over the cursor cache.
	SqlTopCurrent = `SELECT * FROM (
SELECT
{{if .RAC}}s.inst_id AS inst,
{{end}}s.sql_id,
s.executions,
round(s.elapsed_time / 1000 / decode(s.executions, 0, 1, s.executions), 1) AS avg_ela_ms,
round(s.cpu_time / 1000 / decode(s.executions, 0, 1, s.executions), 1) AS avg_cpu_ms,
round(s.buffer_gets / decode(s.executions, 0, 1, s.executions)) AS gets_per_exec,
round(s.disk_reads / decode(s.executions, 0, 1, s.executions)) AS reads_per_exec,
s.rows_processed AS total_rows,
s.parsing_schema_name AS schema,
{{.SQLTextFn}} AS sql_text
FROM {{.Gv}}sqlarea s
WHERE s.executions > 0
ORDER BY {{.MetricExpr}} DESC
) WHERE rownum <= {{.TopN}}`

	// SqlTopHistory is the top-N SQL report over AWR history. The *_delta columns
	// of dba_hist_sqlstat already carry per-snapshot increments, summed over the
	// requested snapshot or time range.
	SqlTopHistory = `SELECT * FROM (
SELECT
h.sql_id,
sum(h.executions_delta) AS executions,
round(sum(h.elapsed_time_delta) / 1000 / decode(sum(h.executions_delta), 0, 1, sum(h.executions_delta)), 1) AS avg_ela_ms,
round(sum(h.cpu_time_delta) / 1000 / decode(sum(h.executions_delta), 0, 1, sum(h.executions_delta)), 1) AS avg_cpu_ms,
sum(h.buffer_gets_delta) AS buffer_gets,
sum(h.disk_reads_delta) AS disk_reads,
sum(h.rows_processed_delta) AS total_rows,
dbms_lob.substr(t.sql_text, 64, 1) AS sql_text
FROM dba_hist_sqlstat h
JOIN dba_hist_snapshot sn
    ON sn.snap_id = h.snap_id AND sn.dbid = h.dbid AND sn.instance_number = h.instance_number
LEFT JOIN dba_hist_sqltext t ON t.sql_id = h.sql_id AND t.dbid = h.dbid
WHERE 1 = 1
{{if .SnapBegin}}AND sn.snap_id BETWEEN {{.SnapBegin}} AND {{.SnapEnd}}
{{else}}AND sn.end_interval_time >= sysdate - {{.HoursBack}} / 24
{{end}}{{if .InstID}}AND h.instance_number = {{.InstID}}
{{end}}GROUP BY h.sql_id, dbms_lob.substr(t.sql_text, 64, 1)
ORDER BY {{.MetricExpr}} DESC
) WHERE rownum <= {{.TopN}}`
)

// SelectSQLMetricCurrent maps user-specified metric name to the ordering expression
// of the cursor cache report. Unknown metric falls back to elapsed time.
func SelectSQLMetricCurrent(metric string) string {
	switch metric {
	case "cpu":
		return "s.cpu_time"
	case "gets":
		return "s.buffer_gets"
	case "reads":
		return "s.disk_reads"
	case "execs":
		return "s.executions"
	default:
		return "s.elapsed_time"
	}
}

// SelectSQLMetricHistory maps user-specified metric name to the ordering expression
// of the AWR report. Unknown metric falls back to elapsed time.
func SelectSQLMetricHistory(metric string) string {
	switch metric {
	case "cpu":
		return "sum(h.cpu_time_delta)"
	case "gets":
		return "sum(h.buffer_gets_delta)"
	case "reads":
		return "sum(h.disk_reads_delta)"
	case "execs":
		return "sum(h.executions_delta)"
	default:
		return "sum(h.elapsed_time_delta)"
	}
}

// SelectSQLText returns query for fetching the full text of a single statement.
func SelectSQLText(gv string) string {
	return fmt.Sprintf("SELECT sql_fulltext FROM %ssqlarea WHERE sql_id = :1 AND rownum = 1", gv)
}
