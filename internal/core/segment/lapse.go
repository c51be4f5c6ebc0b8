package segment

import "time"

// Lapsed retains summaries whose last completed order is at or before cutoff.
//
// The boundary is inclusive on the lapsed side: a customer whose last
// completed order landed exactly on the cutoff counts as lapsed; anything
// newer does not. Input order is preserved, so feeding ranked summaries
// yields a ranked result.
func Lapsed(summaries []Summary, cutoff time.Time) []Summary {
	out := make([]Summary, 0, len(summaries))
	for _, s := range summaries {
		if !s.LastCompletedAt.After(cutoff) {
			out = append(out, s)
		}
	}
	return out
}
