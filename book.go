package tracker

import (
	"iter"
	"maps"
	"slices"
)

// Book represents the list of recorded transactions.
//
// Transactions stay in the order they were entered, duplicates are legal.
type Book struct {
	transactions []Transaction
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{transactions: make([]Transaction, 0)}
}

// Len returns the number of recorded transactions.
func (b *Book) Len() int { return len(b.transactions) }

// Append appends transactions to this book, preserving entry order.
func (b *Book) Append(txs ...Transaction) {
	b.transactions = append(b.transactions, txs...)
}

// RemoveAt deletes the i-th transaction and reports whether something was
// removed. An index outside the book is a no-op.
func (b *Book) RemoveAt(i int) bool {
	if i < 0 || i >= len(b.transactions) {
		return false
	}
	b.transactions = slices.Delete(b.transactions, i, i+1)
	return true
}

// Transactions returns an iterator that yields each transaction in entry order.
//
// Without filters every transaction is yielded. Otherwise a transaction is
// yielded when at least one filter accepts it.
func (b *Book) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range b.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// TotalIncome sums the amounts of all income transactions.
func (b *Book) TotalIncome() Amount {
	var total Amount
	for _, tx := range b.transactions {
		if tx.Kind == Income {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// TotalExpense sums the amounts of all expense transactions.
func (b *Book) TotalExpense() Amount {
	var total Amount
	for _, tx := range b.transactions {
		if tx.Kind == Expense {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Balance returns total income minus total expense. It is negative when more
// was spent than received.
func (b *Book) Balance() Amount {
	return b.TotalIncome().Sub(b.TotalExpense())
}

// Categories returns all distinct categories used in the book, sorted.
func (b *Book) Categories() []string {
	visited := make(map[string]struct{})
	for _, tx := range b.transactions {
		visited[tx.Category] = struct{}{}
	}
	categories := slices.Collect(maps.Keys(visited))
	slices.Sort(categories)
	return categories
}

// ByKind returns a predicate that filters transactions by kind.
func ByKind(kind Kind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Kind == kind }
}

// ByCategory returns a predicate that filters transactions by exact category.
func ByCategory(category string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == category }
}
