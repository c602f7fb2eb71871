package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	testcases := []struct {
		version string
		want    int
	}{
		{version: "19.0.0.0.0", want: 19},
		{version: "12.2.0.1.0", want: 12},
		{version: "11.2.0.4.0", want: 11},
		{version: "23.4.0.24.05", want: 23},
		{version: "invalid", want: 0},
		{version: "", want: 0},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.want, ParseVersion(tc.version))
	}
}

func Test_assembleAlertLogPath(t *testing.T) {
	testcases := []struct {
		tracedir string
		instance string
		want     string
	}{
		{tracedir: "/u01/app/oracle/diag/rdbms/orcl/ORCL/trace", instance: "ORCL", want: "/u01/app/oracle/diag/rdbms/orcl/ORCL/trace/alert_orcl.log"},
		{tracedir: "/u01/app/oracle/diag/rdbms/orcl/ORCL/trace/", instance: "orcl1", want: "/u01/app/oracle/diag/rdbms/orcl/ORCL/trace/alert_orcl1.log"},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.want, assembleAlertLogPath(tc.tracedir, tc.instance))
	}
}
