package tracker

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tells whether a transaction brings money in or takes money out.
type Kind int

const (
	// Income is money received.
	Income Kind = iota
	// Expense is money spent.
	Expense
)

// String returns the canonical name used in data files.
func (k Kind) String() string {
	switch k {
	case Income:
		return "INCOME"
	case Expense:
		return "EXPENSE"
	default:
		return "unknown"
	}
}

// ParseKind parses the canonical name of a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "INCOME":
		return Income, nil
	case "EXPENSE":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is a single dated money movement.
//
// Amount is a magnitude, the direction is carried by Kind. Category and
// Description are free text, Description may be empty.
type Transaction struct {
	Date        Date
	Category    string
	Description string
	Amount      Amount
	Kind        Kind
}

// NewTransaction creates a new Transaction.
func NewTransaction(day Date, category, description string, amount Amount, kind Kind) Transaction {
	return Transaction{
		Date:        day,
		Category:    category,
		Description: description,
		Amount:      amount,
		Kind:        kind,
	}
}

// NewIncome creates a new income transaction.
func NewIncome(day Date, category, description string, amount Amount) Transaction {
	return NewTransaction(day, category, description, amount, Income)
}

// NewExpense creates a new expense transaction.
func NewExpense(day Date, category, description string, amount Amount) Transaction {
	return NewTransaction(day, category, description, amount, Expense)
}

// When returns the date of the transaction.
func (t Transaction) When() Date { return t.Date }

func (t Transaction) Equal(o Transaction) bool {
	return t.Date == o.Date &&
		t.Category == o.Category &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Kind == o.Kind
}

// Validate checks a transaction for correctness before it enters a book.
// The book itself accepts any transaction, the gate is here.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	if t.Kind != Income && t.Kind != Expense {
		return fmt.Errorf("unknown transaction kind: %d", int(t.Kind))
	}
	if strings.TrimSpace(t.Category) == "" {
		return errors.New("transaction category is missing")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	return nil
}
