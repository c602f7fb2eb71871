package oracle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	var testcases = []struct {
		name    string
		valid   bool
		host    string
		port    int
		user    string
		service string
	}{
		{name: "all values", valid: true, host: "127.0.0.1", port: 1521, user: "system", service: "orclpdb"},
		{name: "no host", valid: true, port: 1521, user: "system", service: "orclpdb"},
		{name: "no port", valid: true, host: "127.0.0.1", user: "system", service: "orclpdb"},
		{name: "no user", valid: true, host: "127.0.0.1", port: 1521, service: "orclpdb"},
		{name: "no service", valid: false, host: "127.0.0.1", port: 1521, user: "system"},
		{name: "all empty", valid: false},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.host, tc.port, tc.user, tc.service)
			if tc.valid {
				assert.NoError(t, err)
				assert.NotEqual(t, Config{}, got)
				assert.NotEqual(t, "", got.Host)
				assert.NotEqual(t, 0, got.Port)
			} else {
				assert.Error(t, err)
				assert.Equal(t, Config{}, got)
			}
		})
	}
}

func TestConfig_url(t *testing.T) {
	config, err := NewConfig("127.0.0.1", 1521, "system", "orclpdb")
	assert.NoError(t, err)

	url := config.url()
	assert.True(t, strings.HasPrefix(url, "oracle://"))
	assert.Contains(t, url, "127.0.0.1:1521")
	assert.Contains(t, url, "orclpdb")
}
