package view

import (
	"testing"

	"github.com/oracenter/oracenter/internal/query"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	v := New()
	assert.Equal(t, 6, len(v)) // 6 is the total number of views have to be returned
}

func TestViews_Configure(t *testing.T) {
	testcases := []struct {
		version  int
		rac      bool
		querylen int
	}{
		{version: query.OracleV19, rac: false, querylen: 256},
		{version: query.OracleV19, rac: false, querylen: 0},
		{version: query.OracleV19, rac: true, querylen: 256},
		{version: query.OracleV19, rac: true, querylen: 0},
		{version: query.OracleV11, rac: false, querylen: 256},
		{version: query.OracleV11, rac: true, querylen: 0},
	}

	for _, tc := range testcases {
		views := New()
		opts := query.NewOptions(tc.version, tc.rac, false, tc.querylen)
		err := views.Configure(opts)
		assert.NoError(t, err)

		if tc.rac {
			assert.Equal(t, 12, views["sessions"].Ncols)
			assert.Equal(t, 7, views["sessions"].OrderKey)
			assert.Equal(t, 1, views["sessions"].UniqueKey)
			assert.Equal(t, [2]int{2, 2}, views["sysstat"].DiffIntvl)
			assert.Contains(t, views["sessions"].Query, "gv$session")

			// sqlarea rows repeat per instance, inst column is part of the key
			assert.Equal(t, 9, views["sqlarea"].Ncols)
			assert.Equal(t, 1, views["sqlarea"].UniqueKey)
			assert.Equal(t, 3, views["sqlarea"].OrderKey)
			assert.Equal(t, [2]int{2, 7}, views["sqlarea"].DiffIntvl)
			assert.Contains(t, views["sqlarea"].Query, "inst_id")

			// tablespaces query carries no inst column
			assert.Equal(t, 7, views["tablespaces"].Ncols)
		} else {
			assert.Equal(t, 11, views["sessions"].Ncols)
			assert.Equal(t, 6, views["sessions"].OrderKey)
			assert.Equal(t, [2]int{1, 1}, views["sysstat"].DiffIntvl)
			assert.NotContains(t, views["sessions"].Query, "gv$")
		}

		for _, v := range views {
			assert.NotEqual(t, "", v.Query)
			assert.NotContains(t, v.Query, "{{")
		}
	}
}
