package query

const (
	// SgaInfoDefault queries SGA component breakdown.
	SgaInfoDefault = `SELECT
name AS component,
round(bytes / 1048576, 1) AS size_mb,
resizeable
FROM v$sgainfo
ORDER BY bytes DESC`

	// SgaTargetAdvice queries estimated effect of resizing the SGA.
	SgaTargetAdvice = `SELECT
sga_size AS size_mb,
sga_size_factor AS factor,
estd_db_time,
estd_physical_reads
FROM v$sga_target_advice
ORDER BY sga_size`

	// PgaStatDefault queries key PGA statistics.
	PgaStatDefault = `SELECT
name,
CASE WHEN unit = 'bytes' THEN round(value / 1048576, 1) ELSE value END AS value,
CASE WHEN unit = 'bytes' THEN 'MB' ELSE unit END AS unit
FROM v$pgastat
WHERE name IN ('aggregate PGA target parameter', 'aggregate PGA auto target',
    'total PGA inuse', 'total PGA allocated', 'total freeable PGA memory',
    'maximum PGA allocated', 'global memory bound', 'cache hit percentage',
    'over allocation count')`

	// PgaTargetAdvice queries estimated effect of resizing the PGA aggregate target.
	PgaTargetAdvice = `SELECT
round(pga_target_for_estimate / 1048576) AS target_mb,
pga_target_factor AS factor,
estd_pga_cache_hit_percentage AS estd_hit_pct,
estd_overalloc_count
FROM v$pga_target_advice
ORDER BY pga_target_for_estimate`

	// BufferCacheHitRatio queries buffer cache hit ratio, per instance on RAC.
	BufferCacheHitRatio = `SELECT
{{if .RAC}}ses.inst_id AS inst,
{{end}}round(1 - (phy.value - lob.value - dir.value) / nullif(ses.value, 0), 4) AS hit_ratio
FROM {{.Gv}}sysstat ses, {{.Gv}}sysstat lob, {{.Gv}}sysstat dir, {{.Gv}}sysstat phy
WHERE ses.name = 'session logical reads'
AND dir.name = 'physical reads direct'
AND lob.name = 'physical reads direct (lob)'
AND phy.name = 'physical reads'
{{if .RAC}}AND lob.inst_id = ses.inst_id AND dir.inst_id = ses.inst_id AND phy.inst_id = ses.inst_id
{{end}}`

	// LibraryCacheRatios queries library cache hit and reload ratios, per instance on RAC.
	LibraryCacheRatios = `SELECT
{{if .RAC}}inst_id AS inst,
{{end}}round(sum(gethits) / nullif(sum(gets), 0), 4) AS hit_ratio,
round(sum(reloads) / nullif(sum(pins), 0), 4) AS reload_ratio
FROM {{.Gv}}librarycache
{{if .RAC}}GROUP BY inst_id
ORDER BY inst_id{{end}}`

	// DictCacheMissRatio queries data dictionary cache miss ratio, per instance on RAC.
	DictCacheMissRatio = `SELECT
{{if .RAC}}inst_id AS inst,
{{end}}round(sum(getmisses) / nullif(sum(gets), 0), 4) AS miss_ratio
FROM {{.Gv}}rowcache
{{if .RAC}}GROUP BY inst_id
ORDER BY inst_id{{end}}`

	// MemorySummary queries top-level memory totals printed by health check.
	MemorySummary = `SELECT
(SELECT round(sum(value) / 1048576) FROM v$sga) AS sga_mb,
(SELECT round(value / 1048576) FROM v$pgastat WHERE name = 'total PGA allocated') AS pga_allocated_mb,
(SELECT round(value / 1048576) FROM v$pgastat WHERE name = 'aggregate PGA target parameter') AS pga_target_mb
FROM dual`
)
