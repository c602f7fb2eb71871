package query

const (
	// SessionsDefault is the default query for getting user sessions overview.
	SessionsDefault = `SELECT
{{if .RAC}}s.inst_id AS inst,
{{end}}s.sid,
s.serial# AS serial,
s.username,
s.status,
s.wait_class,
s.event,
s.seconds_in_wait AS wait_sec,
s.sql_id,
s.blocking_session AS blocker,
s.machine,
s.program
FROM {{.Gv}}session s
WHERE s.type = 'USER' AND s.sid <> sys_context('userenv', 'sid')
ORDER BY s.seconds_in_wait DESC`

	// SysstatDefault is the default query for getting cumulative system statistics.
	// Counters are diffed between consecutive samples.
	SysstatDefault = `SELECT
{{if .RAC}}inst_id AS inst,
{{end}}name AS statistic,
value
FROM {{.Gv}}sysstat
WHERE value > 0
ORDER BY name`

	// SystemEventsDefault is the default query for getting cumulative wait event counters.
	SystemEventsDefault = `SELECT
{{if .RAC}}inst_id AS inst,
{{end}}event,
wait_class,
total_waits,
total_timeouts,
round(time_waited_micro / 1000000, 2) AS waited_sec
FROM {{.Gv}}system_event
WHERE wait_class <> 'Idle'
ORDER BY event`

	// SqlareaDefault is the default query for getting cumulative statement counters.
	SqlareaDefault = `SELECT
{{if .RAC}}s.inst_id AS inst,
{{end}}s.sql_id,
s.executions,
round(s.elapsed_time / 1000) AS elapsed_ms,
round(s.cpu_time / 1000) AS cpu_ms,
s.buffer_gets,
s.disk_reads,
s.rows_processed AS total_rows,
{{.SQLTextFn}} AS sql_text
FROM {{.Gv}}sqlarea s
WHERE s.executions > 0
ORDER BY s.sql_id`

	// FilestatDefault is the default query for getting cumulative datafile I/O counters.
	FilestatDefault = `SELECT
{{if .RAC}}f.inst_id AS inst,
{{end}}d.name AS datafile,
f.phyrds,
f.phywrts,
f.phyblkrd,
f.phyblkwrt,
f.readtim * 10 AS read_ms,
f.writetim * 10 AS write_ms
FROM {{.Gv}}filestat f
JOIN v$datafile d ON d.file# = f.file#
ORDER BY d.name`

	// ProfileSessionQuery polls a single session state for the wait events profiler.
	ProfileSessionQuery = `SELECT
nvl((sysdate - s.sql_exec_start) * 86400, 0) AS query_duration,
s.status,
nvl2(s.sql_id, s.sql_id || '/' || to_char(s.sql_exec_id), '') AS exec_entry,
CASE WHEN s.state = 'WAITING' THEN s.wait_class || '.' || s.event ELSE 'ON CPU' END AS wait_entry,
nvl(q.sql_text, '') AS sql_text
FROM v$session s
LEFT JOIN v$sqlarea q ON q.sql_id = s.sql_id
WHERE s.sid = :1`
)
