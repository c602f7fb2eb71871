package stat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oracenter/oracenter/internal/oracle"
)

// Logfile describes the instance alert log and its properties.
type Logfile struct {
	Path string   // Absolute path to the alert log
	File *os.File // Pointer to opened logfile
	Size int64    // Size of the logfile (read file's content only when size grows)
}

// Open opens log file specified in Path and defines File object.
func (l *Logfile) Open() error {
	f, err := os.Open(l.Path)
	if err != nil {
		return err
	}

	l.File = f
	return nil
}

// Close closes log file.
func (l *Logfile) Close() error {
	return l.File.Close()
}

// Reopen closes log file and open it again in case of rotate.
func (l *Logfile) Reopen(db *oracle.DB) error {
	if err := l.Close(); err != nil {
		return err
	}

	logfile, err := GetAlertLogPath(db)
	if err != nil {
		return err
	}
	l.Path = logfile

	return l.Open()
}

// Read methods reads logfile until required number of newlines aren't collected
func (l *Logfile) Read(linesLimit int, bufsize int) ([]byte, error) {
	var offset int64 = -1 // offset used for per-byte backward reading of the logfile
	var position int64    // position within the logfile from which reading starts
	var startpos int64    // final position from which reading of required amount of lines will start
	var newlines int      // newlines counter

	// Start reading from the end of file
	position, err := l.File.Seek(offset, 2)
	if err != nil {
		return nil, err
	}

	for i := 0; i < bufsize; i++ {
		// The beginning of the file is reached, stop the reading
		if position < 0 {
			startpos = 0
			break
		}

		// Read 1 byte and check - is it a newline symbol? If symbol is a newline, remember this position - when number
		// of required newlines is reached, will start reading of logfile from this position to the buffer.
		c := make([]byte, 1)
		_, err := l.File.ReadAt(c, position)
		if err != nil {
			return nil, err
		}
		if string(c) == "\n" {
			newlines++
			startpos = position + 1 // +1 here, means that reading will start from symbol which is next after newline
		}

		// Stop reading when required number of newlines is reached
		if newlines > linesLimit {
			break
		}

		offset--   // move 1 byte back
		position-- // shift position too
	}

	// Final reading of the logfile to buffer from calculated position
	buf := make([]byte, bufsize)
	_, err = l.File.ReadAt(buf, startpos)
	if err != nil && err != io.EOF {
		return nil, err
	}

	return buf, nil
}

// GetAlertLogPath returns an absolute path of the instance alert log. The text alert
// log lives in the trace directory as alert_<instance>.log, the directory is exposed
// through v$diag_info. Works only when oracenter runs on the database host.
func GetAlertLogPath(db *oracle.DB) (string, error) {
	var tracedir, instance string

	err := db.QueryRow("SELECT value FROM v$diag_info WHERE name = 'Diag Trace'").Scan(&tracedir)
	if err != nil {
		return "", err
	}

	err = db.QueryRow("SELECT instance_name FROM v$instance").Scan(&instance)
	if err != nil {
		return "", err
	}

	if tracedir == "" || instance == "" {
		return "", fmt.Errorf("failed to get alert log path: empty response")
	}

	return assembleAlertLogPath(tracedir, instance), nil
}

// assembleAlertLogPath joins trace directory and instance name into alert log path.
func assembleAlertLogPath(tracedir, instance string) string {
	return strings.TrimSuffix(tracedir, "/") + "/alert_" + strings.ToLower(instance) + ".log"
}
