package renderer

import (
	"bytes"
	"strconv"

	"github.com/Rudhira-web/tracker"
	md "github.com/nao1215/markdown"
)

// Entry is one row of the transactions table: a transaction together with its
// position in the book. The position is what the remove command takes.
type Entry struct {
	Index       int
	Transaction tracker.Transaction
}

func TransactionsMarkdown(entries []Entry, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	if len(entries) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"#", "Date", "Category", "Description", "Amount", "Kind"},
		Rows:   [][]string{},
	}
	for _, entry := range entries {
		tx := entry.Transaction
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(entry.Index),
			tx.Date.String(),
			tx.Category,
			tx.Description,
			Money(tx.Amount, currency),
			tx.Kind.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
