package stat

import (
	"bytes"
	"fmt"
	"io"

	"github.com/oracenter/oracenter/internal/oracle"
)

// Section describes a single printable block of a diagnostic report.
type Section struct {
	Title string
	Query string
}

// PrintSections executes section queries one by one and prints results to w.
// A failed section prints an advisory instead of the data and does not
// interrupt the remaining sections, reports have to survive missing views
// and insufficient privileges.
func PrintSections(w io.Writer, db *oracle.DB, sections []Section) {
	for _, s := range sections {
		fmt.Fprintf(w, "\n== %s\n", s.Title)

		res, err := NewORAresultQuery(db, s.Query)
		if err != nil {
			fmt.Fprintf(w, "WARNING: skip section: %s\n", err)
			continue
		}

		if res.Nrows == 0 {
			fmt.Fprintln(w, "no data")
			continue
		}

		var buf bytes.Buffer
		if err := res.Fprint(&buf); err != nil {
			fmt.Fprintf(w, "WARNING: skip section: %s\n", err)
			continue
		}

		_, _ = w.Write(buf.Bytes())
	}
}
