package top

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_dialogPrompts(t *testing.T) {
	for _, d := range []dialogType{dialogFilter, dialogKillSession, dialogChangeRefresh} {
		assert.NotEqual(t, "", dialogPrompts(d))
	}

	assert.Equal(t, "", dialogPrompts(dialogNone))
}
