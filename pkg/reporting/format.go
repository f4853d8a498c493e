/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: format.go
Description: Report formatting helpers for the Akaylee TestKit. Renders
percentages with a zero-total guard, result tags and summary lines shared by
the per-suite and run-level reports.
*/

package reporting

import (
	"github.com/kleascm/akaylee-testkit/pkg/interfaces"
	"github.com/kleascm/akaylee-testkit/pkg/textbuf"
)

// Percent returns count/total as a percentage. A zero total reports 0.0
// instead of dividing by zero, so empty suites and runs print clean
// zero-filled summaries.
func Percent(count, total int64) float64 {
	if total <= 0 {
		return 0.0
	}
	return float64(count) / float64(total) * 100.0
}

// highlightIf returns the given color when the counter is positive and the
// default color otherwise, so zero counters stay visually quiet.
func highlightIf(count int64, c textbuf.Color) textbuf.Color {
	if count > 0 {
		return c
	}
	return textbuf.ColorDarkDefault
}

// PrintResultTag writes the colored status tag of a test result. Pass and
// skip tags go to the output stream, fail tags to the error stream.
func (p *Printer) PrintResultTag(result interfaces.Result) {
	switch result {
	case interfaces.ResultPass:
		p.Printfc(textbuf.ColorDarkBlack, textbuf.ColorDarkGreen, " PASS ")
	case interfaces.ResultSkip:
		p.Printfc(textbuf.ColorDarkBlack, textbuf.ColorDarkYellow, " SKIP ")
	case interfaces.ResultFail:
		p.Errorfc(textbuf.ColorDarkBlack, textbuf.ColorDarkRed, " FAIL ")
	}
}

// PrintTestCounts writes the "N Passed (x%), N Skipped (x%), N Failed (x%),
// N Total" fragment shared by the suite and run summaries. The percentages
// are taken against the given total.
func (p *Printer) PrintTestCounts(summary interfaces.Summary, total int64) {
	passedColor := highlightIf(summary.Passed, textbuf.ColorDarkGreen)
	p.Printfc(passedColor, textbuf.ColorDarkDefault, "%d ", summary.Passed)
	p.Printf("Passed (")
	p.Printfc(passedColor, textbuf.ColorDarkDefault, "%.2f%%", Percent(summary.Passed, total))
	p.Printf("), ")

	skippedColor := highlightIf(summary.Skipped, textbuf.ColorDarkYellow)
	p.Printfc(skippedColor, textbuf.ColorDarkDefault, "%d ", summary.Skipped)
	p.Printf("Skipped (")
	p.Printfc(skippedColor, textbuf.ColorDarkDefault, "%.2f%%", Percent(summary.Skipped, total))
	p.Printf("), ")

	failedColor := highlightIf(summary.Failed, textbuf.ColorDarkRed)
	p.Printfc(failedColor, textbuf.ColorDarkDefault, "%d ", summary.Failed)
	p.Printf("Failed (")
	p.Printfc(failedColor, textbuf.ColorDarkDefault, "%.2f%%", Percent(summary.Failed, total))
	p.Printf("), %d Total\n", total)
}

// PrintTimes writes the "Wall: x u, CPU: y u" line closing a summary block.
func (p *Printer) PrintTimes(wall, cpu interfaces.Measurement, trailer string) {
	p.Printf("Wall: %s, CPU: %s%s", wall, cpu, trailer)
}
