package growth

import (
	"testing"

	"github.com/oracenter/oracenter/internal/query"
	"github.com/stretchr/testify/assert"
)

func TestConfig_validate(t *testing.T) {
	testcases := []struct {
		in   Config
		want Config
	}{
		{in: Config{DaysBack: 7, Mode: ModeSummary}, want: Config{DaysBack: 7, Mode: ModeSummary}},
		{in: Config{DaysBack: 0, Mode: ModeByDay}, want: Config{DaysBack: defaultDaysBack, Mode: ModeByDay}},
		{in: Config{DaysBack: 1000, Mode: ModeCurrent}, want: Config{DaysBack: defaultDaysBack, Mode: ModeCurrent}},
		{in: Config{DaysBack: 30, Mode: 0}, want: Config{DaysBack: 30, Mode: ModeSummary}},
		{in: Config{DaysBack: 30, Mode: 9}, want: Config{DaysBack: 30, Mode: ModeSummary}},
		{in: Config{DaysBack: 30, Mode: ModeBySnapshot, Tablespace: "USERS"}, want: Config{DaysBack: 30, Mode: ModeBySnapshot, Tablespace: "USERS"}},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.want, tc.in.validate())
	}
}

func Test_selectQuery(t *testing.T) {
	testcases := []struct {
		mode      int
		wantTmpl  string
		wantTitle string
	}{
		{mode: ModeBySnapshot, wantTmpl: query.TablespaceGrowthBySnapshot, wantTitle: "Tablespace growth per AWR snapshot"},
		{mode: ModeByDay, wantTmpl: query.TablespaceGrowthByDay, wantTitle: "Tablespace growth per day"},
		{mode: ModeSummary, wantTmpl: query.TablespaceGrowthSummary, wantTitle: "Tablespace growth summary"},
		{mode: ModeCurrent, wantTmpl: query.TablespaceUsageDefault, wantTitle: "Current tablespace usage"},
	}

	for _, tc := range testcases {
		tmpl, title := selectQuery(tc.mode)
		assert.Equal(t, tc.wantTmpl, tmpl)
		assert.Equal(t, tc.wantTitle, title)
	}
}
