package locks

import (
	"testing"

	"github.com/oracenter/oracenter/internal/query"
	"github.com/stretchr/testify/assert"
)

func Test_buildSections(t *testing.T) {
	for _, rac := range []bool{false, true} {
		opts := query.NewOptions(query.OracleV19, rac, false, 0)

		sections, err := buildSections(opts)
		assert.NoError(t, err)
		assert.Equal(t, 3, len(sections))

		for _, s := range sections {
			assert.NotEqual(t, "", s.Query)
			assert.NotContains(t, s.Query, "{{")
		}

		if rac {
			assert.Contains(t, sections[1].Query, "blocking_instance")
		} else {
			assert.NotContains(t, sections[1].Query, "blocking_instance")
		}
	}
}
