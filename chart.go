package tracker

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Wedge is one category's slice of the expense pie.
type Wedge struct {
	Category string
	Total    Amount
	Start    int // degrees, 0 at 3 o'clock, counter-clockwise
	Sweep    int // degrees
	Color    colorful.Color
}

// Breakdown is the expense-by-category aggregate together with its pie
// layout. Wedges are ordered by the first appearance of their category in
// the transaction sequence, so the layout is stable across runs.
type Breakdown struct {
	Wedges []Wedge
	Total  Amount
}

// Empty reports whether there is nothing to chart.
func (b Breakdown) Empty() bool { return len(b.Wedges) == 0 }

// wedgeColor returns the color of the i-th category. The hue advances 0.14
// of the wheel per category and wraps, so a category's color depends only on
// its rank in the breakdown.
func wedgeColor(i int) colorful.Color {
	hue := math.Mod(float64(i)*0.14, 1.0)
	return colorful.Hsv(hue*360, 0.6, 0.9)
}

// NewBreakdown groups the expense transactions by category and lays out one
// pie wedge per category.
//
// Each sweep is the category's share of 360 degrees rounded to the nearest
// whole degree, half away from zero. Per-wedge rounding means the sweeps may
// sum to slightly more or less than 360. Non-expense transactions are
// ignored.
func NewBreakdown(txs []Transaction) Breakdown {
	var order []string
	totals := make(map[string]Amount)
	var total Amount
	for _, tx := range txs {
		if tx.Kind != Expense {
			continue
		}
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
		total = total.Add(tx.Amount)
	}

	breakdown := Breakdown{Total: total}
	grand := total.Float64()
	start := 0
	for i, category := range order {
		amount := totals[category]
		sweep := 0
		if grand > 0 {
			sweep = int(math.Round(amount.Float64() / grand * 360))
		}
		breakdown.Wedges = append(breakdown.Wedges, Wedge{
			Category: category,
			Total:    amount,
			Start:    start,
			Sweep:    sweep,
			Color:    wedgeColor(i),
		})
		start += sweep
	}
	return breakdown
}

// ExpenseBreakdown aggregates this book's expenses by category.
func (b *Book) ExpenseBreakdown() Breakdown {
	return NewBreakdown(b.transactions)
}
