package observability

import (
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Stats counts session outcomes for the end-of-run report.
// Counters are updated atomically, the report may be rendered while a session runs.
type Stats struct {
	StartedAt       time.Time
	Received        atomic.Uint64
	Stored          atomic.Uint64
	Skipped         atomic.Uint64
	MissingField    atomic.Uint64
	Malformed       atomic.Uint64
	WriteErrors     atomic.Uint64
	TransportErrors atomic.Uint64
}

func NewStats() *Stats {
	return &Stats{StartedAt: time.Now()}
}

func (s *Stats) Outcome(outcome string) {
	switch outcome {
	case OutcomeStored:
		s.Stored.Add(1)
	case OutcomeSkipped:
		s.Skipped.Add(1)
	case OutcomeMissingField:
		s.MissingField.Add(1)
	case OutcomeMalformed:
		s.Malformed.Add(1)
	case OutcomeWriteError:
		s.WriteErrors.Add(1)
	}
	MessagesTotal.WithLabelValues(outcome).Inc()
}

func (s *Stats) Transport() {
	s.TransportErrors.Add(1)
	TransportErrorsTotal.Inc()
}

func (s *Stats) Snapshot() map[string]any {
	return map[string]any{
		"received":         s.Received.Load(),
		"stored":           s.Stored.Load(),
		"skipped":          s.Skipped.Load(),
		"missing_field":    s.MissingField.Load(),
		"malformed":        s.Malformed.Load(),
		"write_errors":     s.WriteErrors.Load(),
		"transport_errors": s.TransportErrors.Load(),
	}
}

// Report renders the counters as a table, plus the collection size when known.
func (s *Stats) Report(w io.Writer, collection string, stored *int64) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	rows := [][]string{
		{"uptime", time.Since(s.StartedAt).Truncate(time.Second).String()},
		{"received", u(s.Received.Load())},
		{"stored", u(s.Stored.Load())},
		{"skipped", u(s.Skipped.Load())},
		{"missing field", u(s.MissingField.Load())},
		{"malformed", u(s.Malformed.Load())},
		{"write errors", u(s.WriteErrors.Load())},
		{"transport errors", u(s.TransportErrors.Load())},
	}
	if stored != nil {
		rows = append(rows, []string{fmt.Sprintf("documents in %s", collection), strconv.FormatInt(*stored, 10)})
	}
	table.AppendBulk(rows)
	table.Render()
}

func u(v uint64) string {
	return strconv.FormatUint(v, 10)
}
