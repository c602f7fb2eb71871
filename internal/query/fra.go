package query

const (
	// FraDestinationDefault queries overall Fast Recovery Area limits and usage.
	FraDestinationDefault = `SELECT
name,
round(space_limit / 1048576) AS limit_mb,
round(space_used / 1048576) AS used_mb,
round(space_reclaimable / 1048576) AS reclaimable_mb,
number_of_files,
round(100 * (space_used - space_reclaimable) / nullif(space_limit, 0), 1) AS used_pct
FROM v$recovery_file_dest`

	// FraUsageByType queries FRA usage breakdown per file type.
	FraUsageByType = `SELECT
file_type,
percent_space_used AS used_pct,
percent_space_reclaimable AS reclaimable_pct,
number_of_files
FROM v$recovery_area_usage
ORDER BY percent_space_used DESC`

	// ArchivedLogPerDay queries daily archived log generation for the requested period.
	ArchivedLogPerDay = `SELECT
to_char(trunc(completion_time), 'YYYY-MM-DD') AS day,
count(*) AS logs,
round(sum(blocks * block_size) / 1048576) AS generated_mb
FROM v$archived_log
WHERE completion_time >= sysdate - {{.DaysBack}}
GROUP BY trunc(completion_time)
ORDER BY day`

	// ArchivedLogRates queries peak and average daily archived log volume, used for FRA sizing.
	ArchivedLogRates = `SELECT
nvl(max(mb), 0) AS peak_mb,
nvl(round(avg(mb)), 0) AS avg_mb,
count(*) AS days
FROM (SELECT sum(blocks * block_size) / 1048576 AS mb
      FROM v$archived_log
      WHERE completion_time >= sysdate - {{.DaysBack}}
      GROUP BY trunc(completion_time))`

	// FraBackupRetainedMB queries space held by backup pieces and image copies
	// currently retained in the recovery area, used for FRA sizing.
	FraBackupRetainedMB = `SELECT
nvl(round(sum(u.percent_space_used / 100 * d.space_limit) / 1048576), 0) AS backup_mb
FROM v$recovery_area_usage u, v$recovery_file_dest d
WHERE u.file_type IN ('BACKUP PIECE', 'IMAGE COPY')`

	// RedoLogConfig queries online redo log configuration, the fallback source for
	// FRA sizing when the instance runs in NOARCHIVELOG mode.
	RedoLogConfig = `SELECT
group# AS grp,
thread#  AS thread,
round(bytes / 1048576) AS size_mb,
members,
status,
archived
FROM v$log
ORDER BY thread#, group#`

	// FlashbackLogUsage queries flashback log retention and size when flashback is enabled.
	FlashbackLogUsage = `SELECT
retention_target AS retention_min,
round(flashback_size / 1048576) AS flashback_mb,
round(estimated_flashback_size / 1048576) AS estimated_mb
FROM v$flashback_database_log`
)
