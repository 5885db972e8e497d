package importer

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/trustification/spog-ui-e2e/internal/models"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

// PrintSummary writes one line per batch followed by one line per failed
// fixture.
//
//	Advisories   3/3 imported   (412ms)
//	SBOMs        1/2 imported   (1.2s)
//	  ✗ broken.json  parse  fixture test/e2e/fixtures/sboms/broken.json is not valid JSON
func PrintSummary(w io.Writer, reports ...*models.BatchReport) {
	for _, report := range reports {
		if report == nil {
			continue
		}

		label := fmt.Sprintf("%-12s", report.Kind.Plural())
		if report.Err != nil {
			failColor.Fprintf(w, "%s failed (%s): %v\n", label, report.FailureKind, report.Err)
			continue
		}

		line := fmt.Sprintf("%s %d/%d imported", label, len(report.Succeeded()), len(report.Results))
		if report.OK() {
			okColor.Fprint(w, line)
		} else {
			failColor.Fprint(w, line)
		}
		dimColor.Fprintf(w, "   (%s)\n", report.Duration.Round(time.Millisecond))

		for _, r := range report.Failed() {
			failColor.Fprint(w, "  ✗ ")
			fmt.Fprintf(w, "%s  %s  %v\n", r.Fixture, r.FailureKind, r.Err)
		}
	}
}
