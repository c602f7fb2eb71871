// Stuff that allows to kill Oracle sessions.

package top

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oracenter/oracenter/internal/oracle"
)

// killSession kills single session specified by user as SID,SERIAL pair.
func killSession(db *oracle.DB, answer string) string {
	sid, serial, err := parseSidSerial(answer)
	if err != nil {
		return fmt.Sprintf("Do nothing. %s", err)
	}

	err = db.Exec(fmt.Sprintf("ALTER SYSTEM KILL SESSION '%d,%d' IMMEDIATE", sid, serial))
	if err != nil {
		return fmt.Sprintf("Kill session: %s", err)
	}

	return "Kill session: ok"
}

// parseSidSerial parses user input entered as SID,SERIAL pair.
func parseSidSerial(answer string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(answer), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid input, expected SID,SERIAL")
	}

	sid, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid SID: %s", parts[0])
	}

	serial, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid SERIAL: %s", parts[1])
	}

	return sid, serial, nil
}
