package query

const (
	// LockCountsDefault queries lock counts grouped by type and mode.
	LockCountsDefault = `SELECT
{{if .RAC}}inst_id AS inst,
{{end}}type AS lock_type,
decode(lmode,
0, 'None', 1, 'Null', 2, 'Row-S (SS)', 3, 'Row-X (SX)',
4, 'Share (S)', 5, 'S/Row-X (SSX)', 6, 'Exclusive (X)', 'Unknown') AS lock_mode,
count(*) AS locks
FROM {{.Gv}}lock
WHERE lmode > 0
GROUP BY {{if .RAC}}inst_id, {{end}}type, lmode
ORDER BY {{if .RAC}}inst_id, {{end}}type, lmode`

	// BlockingTreeDefault queries the blocker/waiter hierarchy. Root rows are
	// sessions that block others while not being blocked themselves.
	BlockingTreeDefault = `SELECT
level AS depth,
{{if .RAC}}s.inst_id AS inst,
{{end}}lpad(' ', 2 * (level - 1)) || s.sid AS sid,
s.serial# AS serial,
s.username,
s.status,
s.event,
s.seconds_in_wait AS wait_sec,
s.sql_id,
s.blocking_session AS blocker,
s.final_blocking_session AS final_blocker
FROM {{.Gv}}session s
WHERE level > 1
   OR EXISTS (SELECT 1 FROM {{.Gv}}session w WHERE w.blocking_session = s.sid{{if .RAC}} AND w.blocking_instance = s.inst_id{{end}})
CONNECT BY PRIOR s.sid = s.blocking_session{{if .RAC}} AND PRIOR s.inst_id = s.blocking_instance{{end}}
START WITH s.blocking_session IS NULL`

	// LockWaitersDetail queries waiting sessions together with held/requested lock
	// modes and the locked object resolved through dba_objects.
	LockWaitersDetail = `SELECT
{{if .RAC}}l.inst_id AS inst,
{{end}}l.sid,
s.username,
l.type AS lock_type,
decode(l.lmode,
0, 'None', 1, 'Null', 2, 'Row-S (SS)', 3, 'Row-X (SX)',
4, 'Share (S)', 5, 'S/Row-X (SSX)', 6, 'Exclusive (X)', 'Unknown') AS lock_mode,
decode(l.request,
0, 'None', 1, 'Null', 2, 'Row-S (SS)', 3, 'Row-X (SX)',
4, 'Share (S)', 5, 'S/Row-X (SSX)', 6, 'Exclusive (X)', 'Unknown') AS lock_request,
o.owner,
o.object_name,
o.object_type,
l.block AS blocking
FROM {{.Gv}}lock l
JOIN {{.Gv}}session s ON s.sid = l.sid{{if .RAC}} AND s.inst_id = l.inst_id{{end}}
LEFT JOIN dba_objects o ON o.object_id = l.id1 AND l.type = 'TM'
WHERE l.lmode > 0 AND l.type IN ('TM', 'TX', 'UL', 'DX')
ORDER BY {{if .RAC}}l.inst_id, {{end}}l.type, l.sid`

	// BlockedSessionsCount queries the number of currently blocked sessions.
	BlockedSessionsCount = "SELECT count(*) FROM {{.Gv}}session WHERE blocking_session IS NOT NULL"
)
