package tracker

import (
	"reflect"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNewBreakdown_Empty(t *testing.T) {
	if got := NewBreakdown(nil); !got.Empty() {
		t.Errorf("NewBreakdown(nil).Empty() = false, want true")
	}

	incomeOnly := []Transaction{
		NewIncome(MustParse("2024-01-06"), "Pay", "Salary", A(1000)),
	}
	if got := NewBreakdown(incomeOnly); !got.Empty() {
		t.Errorf("NewBreakdown() over income only is not empty, got %d wedges", len(got.Wedges))
	}
}

func TestNewBreakdown_GroupsByCategory(t *testing.T) {
	txs := []Transaction{
		NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5)),
		NewExpense(MustParse("2024-01-07"), "Transport", "Metro", A(2.75)),
		NewExpense(MustParse("2024-01-09"), "Food", "Groceries", A(54.3)),
		NewIncome(MustParse("2024-01-06"), "Pay", "Salary", A(1000)),
	}
	breakdown := NewBreakdown(txs)

	if len(breakdown.Wedges) != 2 {
		t.Fatalf("NewBreakdown() gave %d wedges, want 2", len(breakdown.Wedges))
	}
	// Wedges follow the first appearance of each category.
	if got, want := breakdown.Wedges[0].Category, "Food"; got != want {
		t.Errorf("first wedge category = %q, want %q", got, want)
	}
	if got, want := breakdown.Wedges[1].Category, "Transport"; got != want {
		t.Errorf("second wedge category = %q, want %q", got, want)
	}
	if got, want := breakdown.Wedges[0].Total, A(66.8); !got.Equal(want) {
		t.Errorf("Food wedge total = %s, want %s", got, want)
	}
	if got, want := breakdown.Total, A(69.55); !got.Equal(want) {
		t.Errorf("breakdown total = %s, want %s", got, want)
	}
}

// The wedge totals always add up to the expense total, whatever the rounding
// does to the angles.
func TestNewBreakdown_ConservesTotals(t *testing.T) {
	txs := []Transaction{
		NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5)),
		NewExpense(MustParse("2024-01-07"), "Transport", "Metro", A(2.75)),
		NewExpense(MustParse("2024-01-09"), "Food", "Groceries", A(54.3)),
		NewExpense(MustParse("2024-01-10"), "Gift", "Birthday", A(30)),
	}
	breakdown := NewBreakdown(txs)

	var sum Amount
	for _, w := range breakdown.Wedges {
		sum = sum.Add(w.Total)
	}
	if !sum.Equal(breakdown.Total) {
		t.Errorf("wedge totals sum to %s, want %s", sum, breakdown.Total)
	}
}

func TestNewBreakdown_Angles(t *testing.T) {
	tests := []struct {
		name   string
		txs    []Transaction
		sweeps []int
	}{
		{
			name: "Single category fills the circle",
			txs: []Transaction{
				NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5)),
			},
			sweeps: []int{360},
		},
		{
			name: "Equal thirds",
			txs: []Transaction{
				NewExpense(MustParse("2024-01-05"), "Food", "", A(100)),
				NewExpense(MustParse("2024-01-06"), "Transport", "", A(100)),
				NewExpense(MustParse("2024-01-07"), "Gift", "", A(100)),
			},
			sweeps: []int{120, 120, 120},
		},
		{
			// Per-wedge rounding drifts one degree short of the full circle.
			name: "Rounding drift",
			txs: []Transaction{
				NewExpense(MustParse("2024-01-05"), "Rent", "", A(331.67)),
				NewExpense(MustParse("2024-01-06"), "Food", "", A(331.67)),
				NewExpense(MustParse("2024-01-07"), "Travel", "", A(336.66)),
			},
			sweeps: []int{119, 119, 121},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			breakdown := NewBreakdown(test.txs)

			var sweeps []int
			coverage := 0
			for _, w := range breakdown.Wedges {
				sweeps = append(sweeps, w.Sweep)
				coverage += w.Sweep
			}
			if !reflect.DeepEqual(sweeps, test.sweeps) {
				t.Errorf("sweeps = %v, want %v", sweeps, test.sweeps)
			}
			if coverage < 359 || coverage > 361 {
				t.Errorf("sweeps cover %d degrees, want within one degree of 360", coverage)
			}
		})
	}
}

func TestNewBreakdown_StartIsRunningSum(t *testing.T) {
	txs := []Transaction{
		NewExpense(MustParse("2024-01-05"), "Rent", "", A(331.67)),
		NewExpense(MustParse("2024-01-06"), "Food", "", A(331.67)),
		NewExpense(MustParse("2024-01-07"), "Travel", "", A(336.66)),
	}
	breakdown := NewBreakdown(txs)

	start := 0
	for i, w := range breakdown.Wedges {
		if w.Start != start {
			t.Errorf("wedge %d starts at %d, want %d", i, w.Start, start)
		}
		start += w.Sweep
	}
}

func TestNewBreakdown_Deterministic(t *testing.T) {
	txs := []Transaction{
		NewExpense(MustParse("2024-01-05"), "Food", "Lunch", A(12.5)),
		NewExpense(MustParse("2024-01-07"), "Transport", "Metro", A(2.75)),
		NewExpense(MustParse("2024-01-09"), "Food", "Groceries", A(54.3)),
		NewExpense(MustParse("2024-01-10"), "Gift", "Birthday", A(30)),
	}

	first := NewBreakdown(txs)
	second := NewBreakdown(txs)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two breakdowns of the same transactions differ.\nGot: %+v\nand: %+v", first, second)
	}
}

func TestWedgeColor(t *testing.T) {
	if got, want := wedgeColor(0), colorful.Hsv(0, 0.6, 0.9); got != want {
		t.Errorf("wedgeColor(0) = %v, want %v", got, want)
	}
	// Neighboring categories get visibly distinct colors.
	for i := 0; i < 7; i++ {
		if wedgeColor(i) == wedgeColor(i+1) {
			t.Errorf("wedgeColor(%d) and wedgeColor(%d) are identical", i, i+1)
		}
	}
}
