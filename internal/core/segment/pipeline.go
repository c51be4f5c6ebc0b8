package segment

import (
	"time"

	perr "winback/internal/platform/errors"
	ptime "winback/internal/platform/time"
)

// DefaultWindowMonths is the recency window applied when the caller does not
// override it: a customer is lapsed when their last completed order is more
// than six months before the reference date
const DefaultWindowMonths = 6

// Params configures one segmentation run
type Params struct {
	// ReferenceDate anchors the recency window; required
	ReferenceDate time.Time

	// WindowMonths is the recency window in calendar months; must be >= 1
	WindowMonths int

	// Workers is passed through to the aggregation pass; <=1 runs serially
	Workers int
}

// Cutoff derives the lapsed boundary: reference date minus the recency window
func (p Params) Cutoff() time.Time {
	return ptime.MonthsBefore(p.ReferenceDate, p.WindowMonths)
}

// validate rejects configurations the pipeline cannot run with
func (p Params) validate() error {
	if p.ReferenceDate.IsZero() {
		return perr.Configf("reference date is required")
	}
	if p.WindowMonths < 1 {
		return perr.Configf("recency window must be at least 1 month, got %d", p.WindowMonths)
	}
	return nil
}

// Run executes the full segmentation as one pure transformation:
// aggregate -> rank -> lapsed-filter -> assemble. All-or-nothing: any
// integrity or configuration failure returns before a single row is emitted.
// No customers with completed orders is a normal empty result, not an error.
func Run(customers map[string]Customer, orders []Order, lines []LineItem, p Params) ([]ReportRow, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	summaries, err := Aggregate(orders, lines, AggregateOptions{Workers: p.Workers})
	if err != nil {
		return nil, err
	}

	ranked := TopDecile(summaries)
	lapsed := Lapsed(ranked, p.Cutoff())
	return Assemble(lapsed, customers)
}
