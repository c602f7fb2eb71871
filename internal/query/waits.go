package query

// waitEventsHistoryWith is the shared upstream dataset of all AWR wait-event report
// branches: deltas between consecutive snapshots of the cumulative counters in
// dba_hist_system_event, computed by the LAG window function, with time, instance,
// event and wait class filters applied. Branches differ only in grouping and projection.
const waitEventsHistoryWith = `WITH ev AS (
SELECT
sn.snap_id,
e.instance_number,
to_char(sn.end_interval_time, 'YYYY-MM-DD HH24:MI') AS snap_time,
to_char(sn.end_interval_time, 'YYYY-MM-DD HH24') AS snap_hour,
e.event_name,
e.wait_class,
e.total_waits - lag(e.total_waits)
    OVER (PARTITION BY e.instance_number, e.event_id ORDER BY sn.snap_id) AS waits,
(e.time_waited_micro - lag(e.time_waited_micro)
    OVER (PARTITION BY e.instance_number, e.event_id ORDER BY sn.snap_id)) / 1000000 AS waited_sec
FROM dba_hist_system_event e
JOIN dba_hist_snapshot sn
    ON sn.snap_id = e.snap_id AND sn.dbid = e.dbid AND sn.instance_number = e.instance_number
WHERE e.wait_class <> 'Idle'
{{if .SnapBegin}}AND sn.snap_id BETWEEN {{.SnapBegin}} AND {{.SnapEnd}}
{{else}}AND sn.end_interval_time >= sysdate - {{.HoursBack}} / 24
{{end}}{{if .Event}}AND upper(e.event_name) LIKE upper('%{{.Event}}%')
{{end}}{{if .WaitClass}}AND e.wait_class = '{{.WaitClass}}'
{{end}}{{if .InstID}}AND e.instance_number = {{.InstID}}
{{end}})
`

const (
	// WaitEventsBySnapshot reports wait-event deltas per AWR snapshot.
	WaitEventsBySnapshot = waitEventsHistoryWith + `SELECT
snap_id,
{{if .RAC}}instance_number AS inst,
{{end}}snap_time,
event_name,
wait_class,
waits,
round(waited_sec, 2) AS waited_sec,
round(1000 * waited_sec / nullif(waits, 0), 2) AS avg_wait_ms
FROM ev
WHERE waited_sec > 0
ORDER BY snap_id, waited_sec DESC`

	// WaitEventsByEvent aggregates wait-event deltas per event over the whole period.
	WaitEventsByEvent = waitEventsHistoryWith + `SELECT
{{if .RAC}}instance_number AS inst,
{{end}}event_name,
wait_class,
sum(waits) AS waits,
round(sum(waited_sec), 2) AS waited_sec,
round(1000 * sum(waited_sec) / nullif(sum(waits), 0), 2) AS avg_wait_ms
FROM ev
WHERE waited_sec > 0
GROUP BY {{if .RAC}}instance_number, {{end}}event_name, wait_class
ORDER BY waited_sec DESC`

	// WaitEventsByHour aggregates wait-event deltas per hour.
	WaitEventsByHour = waitEventsHistoryWith + `SELECT
snap_hour,
{{if .RAC}}instance_number AS inst,
{{end}}event_name,
wait_class,
sum(waits) AS waits,
round(sum(waited_sec), 2) AS waited_sec
FROM ev
WHERE waited_sec > 0
GROUP BY snap_hour, {{if .RAC}}instance_number, {{end}}event_name, wait_class
ORDER BY snap_hour, waited_sec DESC`

	// WaitEventsTopSummary is the top-N projection over the same filtered dataset,
	// printed after the main report section.
	WaitEventsTopSummary = waitEventsHistoryWith + `SELECT * FROM (
SELECT
event_name,
wait_class,
sum(waits) AS waits,
round(sum(waited_sec), 2) AS waited_sec
FROM ev
WHERE waited_sec > 0
GROUP BY event_name, wait_class
ORDER BY waited_sec DESC
) WHERE rownum <= {{.TopN}}`

	// WaitEventsCurrentTop queries top wait events since instance startup,
	// the non-AWR fallback used by health check.
	WaitEventsCurrentTop = `SELECT * FROM (
SELECT
{{if .RAC}}inst_id AS inst,
{{end}}event,
wait_class,
total_waits,
round(time_waited_micro / 1000000, 1) AS waited_sec,
round(time_waited_micro / 1000 / nullif(total_waits, 0), 2) AS avg_wait_ms
FROM {{.Gv}}system_event
WHERE wait_class <> 'Idle'
ORDER BY time_waited_micro DESC
) WHERE rownum <= {{.TopN}}`
)
