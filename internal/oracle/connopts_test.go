package oracle

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionOptions_ParseExtraArgs(t *testing.T) {
	var testcases = []struct {
		desc        string
		opts        *ConnectionOptions
		args        []string
		wantservice string
		wantuser    string
	}{
		{
			desc:        "service and user are not specified",
			opts:        &ConnectionOptions{Host: "127.0.0.1", Port: 1521},
			args:        []string{},
			wantservice: "", wantuser: "",
		},
		{
			desc:        "service specified as argument",
			opts:        &ConnectionOptions{Host: "127.0.0.1", Port: 1521},
			args:        []string{"orclpdb"},
			wantservice: "orclpdb", wantuser: "",
		},
		{
			desc:        "service and user specified as argument",
			opts:        &ConnectionOptions{Host: "127.0.0.1", Port: 1521},
			args:        []string{"orclpdb", "scott"},
			wantservice: "orclpdb", wantuser: "scott",
		},
		{
			desc:        "service specified as a parameter's value",
			opts:        &ConnectionOptions{Host: "127.0.0.1", Port: 1521, Service: "orclpdb"},
			args:        []string{"otherpdb"},
			wantservice: "orclpdb", wantuser: "",
		},
		{
			desc:        "service and user are specified as a parameter's values",
			opts:        &ConnectionOptions{Host: "127.0.0.1", Port: 1521, Service: "orclpdb", User: "system"},
			args:        []string{"otherpdb", "scott"},
			wantservice: "orclpdb", wantuser: "system",
		},
	}

	for i, tc := range testcases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			tc.opts.ParseExtraArgs(tc.args)
			assert.Equal(t, tc.wantuser, tc.opts.User)
			assert.Equal(t, tc.wantservice, tc.opts.Service)
		})
	}
}
