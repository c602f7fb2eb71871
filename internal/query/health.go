package query

const (
	// InvalidObjects queries invalid schema objects grouped by owner and type.
	InvalidObjects = `SELECT
owner,
object_type,
count(*) AS invalid
FROM dba_objects
WHERE status = 'INVALID'
GROUP BY owner, object_type
ORDER BY invalid DESC`

	// StaleStatistics queries tables with stale optimizer statistics grouped by owner.
	StaleStatistics = `SELECT
owner,
count(*) AS stale_tables
FROM dba_tab_statistics
WHERE stale_stats = 'YES'
GROUP BY owner
ORDER BY stale_tables DESC`
)
