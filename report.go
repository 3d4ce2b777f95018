package tracker

// Summary provides an at-a-glance overview of the book's totals on a given
// date.
type Summary struct {
	Date    Date
	Income  Amount
	Expense Amount
	Balance Amount
	Records int
}

// NewSummary computes the totals of a book.
func NewSummary(book *Book, on Date) *Summary {
	return &Summary{
		Date:    on,
		Income:  book.TotalIncome(),
		Expense: book.TotalExpense(),
		Balance: book.Balance(),
		Records: book.Len(),
	}
}
