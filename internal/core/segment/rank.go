package segment

import "sort"

// TopDecile returns the summaries admitted to the top 10% by total spend.
//
// Ordering is total spend descending with ties broken by customer id
// ascending, so repeated runs over the same input rank identically. The
// decile cutoff is count-based: ceil(N/10) customers are admitted, where N is
// the summary count AFTER exclusion of customers without completed orders.
// N=0 yields an empty slice; any N>=1 admits at least one customer.
func TopDecile(summaries []Summary) []Summary {
	n := len(summaries)
	if n == 0 {
		return []Summary{}
	}

	ranked := make([]Summary, n)
	copy(ranked, summaries)
	sort.Slice(ranked, func(i, j int) bool {
		switch ranked[i].TotalSpend.Cmp(ranked[j].TotalSpend) {
		case 1:
			return true
		case -1:
			return false
		default:
			return ranked[i].CustomerID < ranked[j].CustomerID
		}
	})

	k := (n + 9) / 10 // ceil(n/10)
	return ranked[:k]
}
