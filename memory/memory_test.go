package memory

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
		assert.Equal(t, 8, len(sections))

		for _, s := range sections {
			assert.NotEqual(t, "", s.Title)
			assert.NotEqual(t, "", s.Query)
			assert.NotContains(t, s.Query, "{{")
		}

		if rac {
			assert.Contains(t, sections[5].Query, "gv$sysstat")
		} else {
			assert.NotContains(t, sections[5].Query, "gv$")
		}
	}
}
