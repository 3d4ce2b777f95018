package renderer

import (
	"fmt"

	"github.com/Rudhira-web/tracker"
)

// Transaction renders a transaction to a string.
func Transaction(tx tracker.Transaction, currency string) string {
	switch tx.Kind {
	case tracker.Expense:
		if tx.Description != "" {
			return fmt.Sprintf("%s Spent %s on %s (%s)", tx.Date, Money(tx.Amount, currency), tx.Category, tx.Description)
		}
		return fmt.Sprintf("%s Spent %s on %s", tx.Date, Money(tx.Amount, currency), tx.Category)
	case tracker.Income:
		if tx.Description != "" {
			return fmt.Sprintf("%s Received %s from %s (%s)", tx.Date, Money(tx.Amount, currency), tx.Category, tx.Description)
		}
		return fmt.Sprintf("%s Received %s from %s", tx.Date, Money(tx.Amount, currency), tx.Category)
	default:
		return fmt.Sprintf("%s %s %s %s", tx.Date, tx.Category, Money(tx.Amount, currency), tx.Kind)
	}
}
