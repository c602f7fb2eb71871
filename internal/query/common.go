package query

const (
	// SelectCommonProperties used for getting Oracle instance properties necessary during oracenter runtime.
	SelectCommonProperties = "SELECT i.instance_name, i.host_name, i.version, " +
		"d.name, d.dbid, d.log_mode, d.open_mode, d.database_role, " +
		"round((sysdate - i.startup_time) * 86400) AS uptime_seconds " +
		"FROM v$instance i, v$database d"

	// SelectClusterDatabase queries whether the instance is part of a RAC cluster.
	SelectClusterDatabase = "SELECT upper(value) FROM v$parameter WHERE name = 'cluster_database'"

	// SelectInstanceCount queries the number of running instances.
	SelectInstanceCount = "SELECT count(*) FROM gv$instance"

	// SelectIsCDB queries whether the database is a container database.
	//   Notes: the 'cdb' column has been introduced in Oracle 12.1, the query fails on older versions.
	SelectIsCDB = "SELECT cdb FROM v$database"

	// CheckAWRAvailable probes access to AWR history views. Absence of the Diagnostics Pack
	// or missing privileges surface here as ORA-00942.
	CheckAWRAvailable = "SELECT count(*) FROM dba_hist_snapshot WHERE rownum = 1"

	// SelectSnapshotRange queries boundaries of available AWR snapshots.
	SelectSnapshotRange = "SELECT nvl(min(snap_id), 0), nvl(max(snap_id), 0) FROM dba_hist_snapshot"

	// SelectSessionsLimit queries the configured sessions limit.
	SelectSessionsLimit = "SELECT to_number(value) FROM v$parameter WHERE name = 'sessions'"

	// SelectActivityDefault is the default query for getting stats about connected sessions.
	SelectActivityDefault = "SELECT count(*) AS total, " +
		"count(CASE WHEN status = 'ACTIVE' AND type = 'USER' THEN 1 END) AS active, " +
		"count(CASE WHEN status = 'INACTIVE' THEN 1 END) AS inactive, " +
		"count(CASE WHEN type = 'BACKGROUND' THEN 1 END) AS background, " +
		"count(CASE WHEN blocking_session IS NOT NULL THEN 1 END) AS blocked, " +
		"count(CASE WHEN type = 'USER' AND status = 'ACTIVE' AND wait_class <> 'Idle' THEN 1 END) AS waiting " +
		"FROM {{.Gv}}session"

	// SelectDatabaseInfo queries database-wide summary printed by health check.
	SelectDatabaseInfo = "SELECT d.name AS database, d.dbid, d.log_mode, d.open_mode, d.database_role AS role, " +
		"i.instance_name AS instance, i.host_name AS host, i.version, i.archiver, " +
		"to_char(i.startup_time, 'YYYY-MM-DD HH24:MI:SS') AS started " +
		"FROM v$database d, v$instance i"

	// SelectRacInstances queries status of all cluster instances.
	SelectRacInstances = "SELECT inst_id, instance_name, host_name, status, database_status, active_state, " +
		"to_char(startup_time, 'YYYY-MM-DD HH24:MI:SS') AS started " +
		"FROM gv$instance ORDER BY inst_id"
)
