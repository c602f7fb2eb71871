package query

const (
	// TablespaceUsageDefault is the default query for getting current tablespace usage
	// from dba_data_files and dba_free_space. Works without the Diagnostics Pack.
	TablespaceUsageDefault = `SELECT
d.tablespace_name AS tablespace,
round(d.bytes / 1048576, 1) AS size_mb,
round((d.bytes - nvl(f.bytes, 0)) / 1048576, 1) AS used_mb,
round(nvl(f.bytes, 0) / 1048576, 1) AS free_mb,
round(100 * (d.bytes - nvl(f.bytes, 0)) / d.bytes, 1) AS used_pct,
round(d.maxbytes / 1048576, 1) AS max_mb,
round(100 * (d.bytes - nvl(f.bytes, 0)) / nullif(d.maxbytes, 0), 1) AS used_max_pct
FROM (SELECT tablespace_name, sum(bytes) AS bytes, sum(greatest(maxbytes, bytes)) AS maxbytes
      FROM dba_data_files GROUP BY tablespace_name) d
LEFT JOIN (SELECT tablespace_name, sum(bytes) AS bytes
      FROM dba_free_space GROUP BY tablespace_name) f
ON d.tablespace_name = f.tablespace_name
WHERE 1 = 1 {{if .Tablespace}}AND upper(d.tablespace_name) LIKE upper('%{{.Tablespace}}%'){{end}}
ORDER BY used_pct DESC`

	// TablespaceGrowthBySnapshot queries per-snapshot tablespace usage history with deltas
	// between consecutive AWR snapshots. Deltas are produced by the LAG window function.
	TablespaceGrowthBySnapshot = `SELECT
u.snap_id,
t.name AS tablespace,
to_char(s.end_interval_time, 'YYYY-MM-DD HH24:MI') AS snap_time,
round(u.tablespace_usedsize * p.block_size / 1048576, 1) AS used_mb,
round(u.tablespace_size * p.block_size / 1048576, 1) AS size_mb,
round((u.tablespace_usedsize - lag(u.tablespace_usedsize)
    OVER (PARTITION BY u.tablespace_id ORDER BY u.snap_id)) * p.block_size / 1048576, 1) AS delta_mb
FROM dba_hist_tbspc_space_usage u
JOIN dba_hist_snapshot s ON s.snap_id = u.snap_id AND s.dbid = u.dbid
    AND s.instance_number = (SELECT instance_number FROM v$instance)
JOIN v$tablespace t ON t.ts# = u.tablespace_id
JOIN dba_tablespaces p ON p.tablespace_name = t.name
WHERE s.end_interval_time >= sysdate - {{.DaysBack}}
{{if .Tablespace}}AND upper(t.name) LIKE upper('%{{.Tablespace}}%'){{end}}
ORDER BY t.name, u.snap_id`

	// TablespaceGrowthByDay aggregates AWR tablespace usage history per day.
	TablespaceGrowthByDay = `SELECT
t.name AS tablespace,
to_char(trunc(s.end_interval_time), 'YYYY-MM-DD') AS day,
round(max(u.tablespace_usedsize) * max(p.block_size) / 1048576, 1) AS used_mb,
round((max(u.tablespace_usedsize) - min(u.tablespace_usedsize)) * max(p.block_size) / 1048576, 1) AS growth_mb
FROM dba_hist_tbspc_space_usage u
JOIN dba_hist_snapshot s ON s.snap_id = u.snap_id AND s.dbid = u.dbid
    AND s.instance_number = (SELECT instance_number FROM v$instance)
JOIN v$tablespace t ON t.ts# = u.tablespace_id
JOIN dba_tablespaces p ON p.tablespace_name = t.name
WHERE s.end_interval_time >= sysdate - {{.DaysBack}}
{{if .Tablespace}}AND upper(t.name) LIKE upper('%{{.Tablespace}}%'){{end}}
GROUP BY t.name, trunc(s.end_interval_time)
ORDER BY t.name, day`

	// TablespaceGrowthSummary reports per-tablespace growth over the whole requested period
	// including the average growth per day.
	TablespaceGrowthSummary = `SELECT
t.name AS tablespace,
round(min(u.tablespace_usedsize) KEEP (DENSE_RANK FIRST ORDER BY u.snap_id) * max(p.block_size) / 1048576, 1) AS begin_mb,
round(max(u.tablespace_usedsize) KEEP (DENSE_RANK LAST ORDER BY u.snap_id) * max(p.block_size) / 1048576, 1) AS end_mb,
round((max(u.tablespace_usedsize) KEEP (DENSE_RANK LAST ORDER BY u.snap_id)
     - min(u.tablespace_usedsize) KEEP (DENSE_RANK FIRST ORDER BY u.snap_id)) * max(p.block_size) / 1048576, 1) AS growth_mb,
round((max(u.tablespace_usedsize) KEEP (DENSE_RANK LAST ORDER BY u.snap_id)
     - min(u.tablespace_usedsize) KEEP (DENSE_RANK FIRST ORDER BY u.snap_id)) * max(p.block_size) / 1048576 / {{.DaysBack}}, 2) AS growth_mb_day
FROM dba_hist_tbspc_space_usage u
JOIN dba_hist_snapshot s ON s.snap_id = u.snap_id AND s.dbid = u.dbid
    AND s.instance_number = (SELECT instance_number FROM v$instance)
JOIN v$tablespace t ON t.ts# = u.tablespace_id
JOIN dba_tablespaces p ON p.tablespace_name = t.name
WHERE s.end_interval_time >= sysdate - {{.DaysBack}}
{{if .Tablespace}}AND upper(t.name) LIKE upper('%{{.Tablespace}}%'){{end}}
GROUP BY t.name
ORDER BY growth_mb DESC`

	// DatafilesOffline queries tablespaces that have datafiles in abnormal state.
	DatafilesOffline = `SELECT
tablespace_name AS tablespace,
sum(CASE WHEN online_status IN ('ONLINE', 'SYSTEM', 'RECOVER') THEN 0 ELSE 1 END) AS offline_files
FROM dba_data_files
GROUP BY tablespace_name
HAVING sum(CASE WHEN online_status IN ('ONLINE', 'SYSTEM', 'RECOVER') THEN 0 ELSE 1 END) > 0`
)
