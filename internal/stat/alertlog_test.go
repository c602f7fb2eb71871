package stat

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogfile_OpenReadClose(t *testing.T) {
	f, err := ioutil.TempFile("", "alert_orcl*.log")
	assert.NoError(t, err)
	defer os.Remove(f.Name())

	content := "line1\nline2\nline3\nline4\nline5\n"
	_, err = f.WriteString(content)
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	logfile := Logfile{Path: f.Name()}
	assert.NoError(t, logfile.Open())

	// read last two lines
	buf, err := logfile.Read(2, 64)
	assert.NoError(t, err)
	assert.Contains(t, string(buf), "line4")
	assert.Contains(t, string(buf), "line5")

	assert.NoError(t, logfile.Close())

	// open non-existent file
	logfile = Logfile{Path: "/nonexistent/alert_orcl.log"}
	assert.Error(t, logfile.Open())
}
