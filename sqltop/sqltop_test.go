package sqltop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_validate(t *testing.T) {
	testcases := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "valid cursor cache config",
			in:   Config{Metric: "cpu", TopN: 20, Source: SourceCursorCache},
			want: Config{Metric: "cpu", TopN: 20, Source: SourceCursorCache, HoursBack: defaultHoursBack},
		},
		{
			name: "unknown metric gets default",
			in:   Config{Metric: "latency", TopN: 10, Source: SourceCursorCache},
			want: Config{Metric: defaultMetric, TopN: 10, Source: SourceCursorCache, HoursBack: defaultHoursBack},
		},
		{
			name: "invalid limit gets default",
			in:   Config{Metric: "gets", TopN: 0, Source: SourceAWR},
			want: Config{Metric: "gets", TopN: defaultTopN, Source: SourceAWR, HoursBack: defaultHoursBack},
		},
		{
			name: "unknown source falls back to cursor cache",
			in:   Config{Metric: "reads", TopN: 10, Source: "ash"},
			want: Config{Metric: "reads", TopN: 10, Source: SourceCursorCache, HoursBack: defaultHoursBack},
		},
		{
			name: "valid snapshot range is kept",
			in:   Config{Metric: "execs", TopN: 10, Source: SourceAWR, SnapBegin: 10, SnapEnd: 20},
			want: Config{Metric: "execs", TopN: 10, Source: SourceAWR, SnapBegin: 10, SnapEnd: 20},
		},
		{
			name: "inverted snapshot range falls back to hours",
			in:   Config{Metric: "execs", TopN: 10, Source: SourceAWR, SnapBegin: 20, SnapEnd: 10},
			want: Config{Metric: "execs", TopN: 10, Source: SourceAWR, HoursBack: defaultHoursBack},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.validate())
		})
	}
}
