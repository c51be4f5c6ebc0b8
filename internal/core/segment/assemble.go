package segment

import (
	perr "winback/internal/platform/errors"
)

// Assemble joins filtered summaries back to customer identity attributes and
// emits the final report rows, preserving the ranked order.
//
// A summary whose customer id is missing from the customer set is a
// data-integrity violation and aborts the run; it is never skipped.
func Assemble(summaries []Summary, customers map[string]Customer) ([]ReportRow, error) {
	out := make([]ReportRow, 0, len(summaries))
	for _, s := range summaries {
		c, ok := customers[s.CustomerID]
		if !ok {
			return nil, perr.WithField(
				perr.Integrityf("summary references unknown customer %s", s.CustomerID),
				"customer_id",
			)
		}
		out = append(out, ReportRow{
			CustomerID:      s.CustomerID,
			Name:            c.Name,
			Email:           c.Email,
			TotalSpend:      s.TotalSpend,
			LastCompletedAt: s.LastCompletedAt,
		})
	}
	return out, nil
}
