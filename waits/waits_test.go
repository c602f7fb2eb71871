package waits

import (
	"testing"

	"github.com/oracenter/oracenter/internal/query"
	"github.com/stretchr/testify/assert"
)

func TestConfig_validate(t *testing.T) {
	testcases := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "valid hours config",
			in:   Config{HoursBack: 24, Group: GroupByEvent, TopN: 10},
			want: Config{HoursBack: 24, Group: GroupByEvent, TopN: 10},
		},
		{
			name: "valid snapshot range",
			in:   Config{SnapBegin: 100, SnapEnd: 120, Group: GroupBySnapshot, TopN: 10},
			want: Config{SnapBegin: 100, SnapEnd: 120, Group: GroupBySnapshot, TopN: 10},
		},
		{
			name: "inverted snapshot range falls back to hours",
			in:   Config{SnapBegin: 120, SnapEnd: 100, Group: GroupByEvent, TopN: 10},
			want: Config{HoursBack: defaultHoursBack, Group: GroupByEvent, TopN: 10},
		},
		{
			name: "zero hours get default",
			in:   Config{Group: GroupByHour, TopN: 10},
			want: Config{HoursBack: defaultHoursBack, Group: GroupByHour, TopN: 10},
		},
		{
			name: "unknown grouping falls back to by-event",
			in:   Config{HoursBack: 1, Group: 7, TopN: 10},
			want: Config{HoursBack: 1, Group: GroupByEvent, TopN: 10},
		},
		{
			name: "excessive top limit gets default",
			in:   Config{HoursBack: 1, Group: GroupByEvent, TopN: 1000},
			want: Config{HoursBack: 1, Group: GroupByEvent, TopN: defaultTopN},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.validate())
		})
	}
}

func Test_selectQuery(t *testing.T) {
	testcases := []struct {
		group    int
		wantTmpl string
	}{
		{group: GroupBySnapshot, wantTmpl: query.WaitEventsBySnapshot},
		{group: GroupByEvent, wantTmpl: query.WaitEventsByEvent},
		{group: GroupByHour, wantTmpl: query.WaitEventsByHour},
	}

	for _, tc := range testcases {
		tmpl, title := selectQuery(tc.group)
		assert.Equal(t, tc.wantTmpl, tmpl)
		assert.NotEqual(t, "", title)
	}
}
