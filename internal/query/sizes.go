package query

const (
	// SegmentsTopDefault queries the largest segments in the database.
	SegmentsTopDefault = `SELECT * FROM (
SELECT
owner,
segment_name,
segment_type,
tablespace_name AS tablespace,
round(bytes / 1048576, 1) AS size_mb,
extents
FROM dba_segments
WHERE 1 = 1 {{if .Owner}}AND upper(owner) LIKE upper('%{{.Owner}}%'){{end}}
ORDER BY bytes DESC
) WHERE rownum <= {{.TopN}}`

	// SegmentsByOwner aggregates segment sizes per owner.
	SegmentsByOwner = `SELECT * FROM (
SELECT
owner,
count(*) AS segments,
round(sum(bytes) / 1048576, 1) AS size_mb
FROM dba_segments
WHERE 1 = 1 {{if .Owner}}AND upper(owner) LIKE upper('%{{.Owner}}%'){{end}}
GROUP BY owner
ORDER BY sum(bytes) DESC
) WHERE rownum <= {{.TopN}}`

	// SegmentsByType aggregates segment sizes per segment type.
	SegmentsByType = `SELECT
segment_type,
count(*) AS segments,
round(sum(bytes) / 1048576, 1) AS size_mb
FROM dba_segments
WHERE 1 = 1 {{if .Owner}}AND upper(owner) LIKE upper('%{{.Owner}}%'){{end}}
GROUP BY segment_type
ORDER BY sum(bytes) DESC`
)
