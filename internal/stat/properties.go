package stat

import (
	"strconv"
	"strings"

	"github.com/oracenter/oracenter/internal/oracle"
	"github.com/oracenter/oracenter/internal/query"
)

// OracleProperties is the container for details about connected Oracle instance.
type OracleProperties struct {
	VersionNum    int    // Numeric representation of Oracle major version, e.g. 19
	Version       string // String representation of Oracle version, e.g. 19.0.0.0.0
	InstanceName  string // Name of the connected instance
	Hostname      string // Host the instance runs on
	DatabaseName  string // Name of the database
	DBID          string // Database identifier
	LogMode       string // ARCHIVELOG or NOARCHIVELOG
	OpenMode      string // READ WRITE, MOUNTED, etc.
	Role          string // PRIMARY or standby role
	UptimeSeconds int64  // Seconds since instance startup
	RAC           bool   // Is cluster_database enabled?
	Instances     int    // Number of running instances
	CDB           bool   // Is the database a container database?
	AWRAvailable  bool   // Are dba_hist_* views accessible?
	SnapMin       int    // Lowest available AWR snapshot ID
	SnapMax       int    // Highest available AWR snapshot ID
}

// GetOracleProperties queries necessary properties about connected Oracle instance.
func GetOracleProperties(db *oracle.DB) (OracleProperties, error) {
	props := OracleProperties{}
	err := db.QueryRow(query.SelectCommonProperties).Scan(
		&props.InstanceName,
		&props.Hostname,
		&props.Version,
		&props.DatabaseName,
		&props.DBID,
		&props.LogMode,
		&props.OpenMode,
		&props.Role,
		&props.UptimeSeconds,
	)
	if err != nil {
		return OracleProperties{}, err
	}

	props.VersionNum = ParseVersion(props.Version)

	// cluster_database is readable by any session, unlike gv$ views on some setups.
	var clustered string
	if err := db.QueryRow(query.SelectClusterDatabase).Scan(&clustered); err == nil {
		props.RAC = clustered == "TRUE"
	}

	props.Instances = 1
	if props.RAC {
		if err := db.QueryRow(query.SelectInstanceCount).Scan(&props.Instances); err != nil {
			props.Instances = 1
		}
	}

	// The 'cdb' column exists since 12.1 only.
	if props.VersionNum >= query.OracleV12 {
		var cdb string
		if err := db.QueryRow(query.SelectIsCDB).Scan(&cdb); err == nil {
			props.CDB = cdb == "YES"
		}
	}

	// Probe AWR availability, missing Diagnostics Pack or privileges raise ORA-00942 here.
	var n int
	if err := db.QueryRow(query.CheckAWRAvailable).Scan(&n); err == nil {
		props.AWRAvailable = true

		if err := db.QueryRow(query.SelectSnapshotRange).Scan(&props.SnapMin, &props.SnapMax); err != nil {
			props.SnapMin, props.SnapMax = 0, 0
		}
	}

	return props, nil
}

// ParseVersion extracts major version number from Oracle version string, e.g. '19.0.0.0.0' -> 19.
func ParseVersion(version string) int {
	fields := strings.Split(version, ".")
	if len(fields) == 0 {
		return 0
	}

	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}

	return v
}
