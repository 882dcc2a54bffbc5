package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
)

// WriteText renders reports as an aligned table headed by the run id.
func WriteText(w io.Writer, runID string, reports []Report) error {
	if _, err := fmt.Fprintf(w, "run %s\n", runID); err != nil {
		return benchErrorf("WriteText", err)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tITERATIONS\tELAPSED\tNS/OP\tALLOCS\tRESULT")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t(%g, %g, %g)\n",
			r.Scenario,
			humanize.Comma(int64(r.Iterations)),
			r.Elapsed.Round(time.Microsecond),
			humanize.FormatFloat("#,###.##", r.NsPerOp),
			humanize.Comma(int64(r.Allocs)),
			r.Result[0], r.Result[1], r.Result[2],
		)
	}
	if err := tw.Flush(); err != nil {
		return benchErrorf("WriteText", err)
	}

	return nil
}

// WriteJSON renders reports as an indented JSON array.
func WriteJSON(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return benchErrorf("WriteJSON", err)
	}

	return nil
}

// Write dispatches on format (FormatText or FormatJSON).
func Write(w io.Writer, format, runID string, reports []Report) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, reports)
	case FormatText, "":
		return WriteText(w, runID, reports)
	default:
		return benchErrorf("Write", fmt.Errorf("format %q: %w", format, ErrBadSuite))
	}
}
