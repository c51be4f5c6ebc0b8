package segment

import (
	"hash/fnv"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	perr "winback/internal/platform/errors"
)

// AggregateOptions tunes the aggregation pass
type AggregateOptions struct {
	// Workers is the shard count for the parallel reduction.
	// <=1 means a plain serial pass. Output is identical either way:
	// customer groups are disjoint and sum/max commute.
	Workers int
}

type spendAcc struct {
	total decimal.Decimal
	last  time.Time
}

// Aggregate reduces order line items to one Summary per customer, considering
// only line items whose parent order is completed. TotalSpend is
// sum(quantity x unit price); LastCompletedAt is the max creation timestamp
// over the customer's completed ORDERS, so an itemless completed order still
// advances the timestamp of a customer who qualifies through other orders.
//
// Customers with no completed orders, or with no line items on their completed
// orders, emit no summary at all; absence and zero-value spend are excluded
// identically.
//
// Integrity failures abort with no partial output: a line item referencing an
// unknown order, a non-positive quantity, or a non-positive unit price.
// Output is sorted by customer id so the pass is reproducible.
func Aggregate(orders []Order, lines []LineItem, opt AggregateOptions) ([]Summary, error) {
	orderIdx := make(map[string]*Order, len(orders))
	for i := range orders {
		orderIdx[orders[i].ID] = &orders[i]
	}

	// Last completed-order timestamp per customer comes from order headers,
	// independent of whether those orders carry line items
	lastCompleted := make(map[string]time.Time)
	for i := range orders {
		o := &orders[i]
		if o.Status != StatusCompleted {
			continue
		}
		if ts, ok := lastCompleted[o.CustomerID]; !ok || o.CreatedAt.After(ts) {
			lastCompleted[o.CustomerID] = o.CreatedAt
		}
	}

	workers := opt.Workers
	if workers <= 1 {
		totals, err := reduceLines(lines, orderIdx)
		if err != nil {
			return nil, err
		}
		return summarize(totals, lastCompleted), nil
	}

	// Partition line items by customer so shard reductions stay disjoint.
	// Validation happens inside the shards; first error wins, nothing is emitted.
	shards := make([][]LineItem, workers)
	for _, li := range lines {
		o, ok := orderIdx[li.OrderID]
		if !ok {
			// route orphans to shard 0; reduceLines reports them
			shards[0] = append(shards[0], li)
			continue
		}
		shards[shardFor(o.CustomerID, workers)] = append(shards[shardFor(o.CustomerID, workers)], li)
	}

	results := make([]map[string]decimal.Decimal, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w], errs[w] = reduceLines(shards[w], orderIdx)
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	merged := make(map[string]decimal.Decimal)
	for _, part := range results {
		for cust, total := range part {
			if cur, ok := merged[cust]; ok {
				merged[cust] = cur.Add(total)
			} else {
				merged[cust] = total
			}
		}
	}
	return summarize(merged, lastCompleted), nil
}

// reduceLines validates and sums completed-order spend per customer
func reduceLines(lines []LineItem, orderIdx map[string]*Order) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, li := range lines {
		o, ok := orderIdx[li.OrderID]
		if !ok {
			return nil, perr.WithField(
				perr.Integrityf("line item %s references unknown order %s", li.ID, li.OrderID),
				"order_id",
			)
		}
		if li.Quantity <= 0 {
			return nil, perr.WithField(
				perr.Integrityf("line item %s has non-positive quantity %d", li.ID, li.Quantity),
				"quantity",
			)
		}
		if li.UnitPrice.Sign() <= 0 {
			return nil, perr.WithField(
				perr.Integrityf("line item %s has non-positive unit price %s", li.ID, li.UnitPrice),
				"unit_price",
			)
		}
		if o.Status != StatusCompleted {
			continue
		}
		amount := li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
		if cur, ok := totals[o.CustomerID]; ok {
			totals[o.CustomerID] = cur.Add(amount)
		} else {
			totals[o.CustomerID] = amount
		}
	}
	return totals, nil
}

// summarize joins spend totals with last-completed timestamps, ordered by customer id
func summarize(totals map[string]decimal.Decimal, lastCompleted map[string]time.Time) []Summary {
	out := make([]Summary, 0, len(totals))
	for cust, total := range totals {
		out = append(out, Summary{
			CustomerID:      cust,
			TotalSpend:      total,
			LastCompletedAt: lastCompleted[cust],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out
}

func shardFor(customerID string, workers int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(customerID))
	return int(h.Sum32() % uint32(workers))
}
