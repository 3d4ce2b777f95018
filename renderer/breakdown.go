package renderer

import (
	"bytes"
	"fmt"

	"github.com/Rudhira-web/tracker"
	md "github.com/nao1215/markdown"
)

// BreakdownMarkdown renders the expense breakdown as a legend table, one row
// per wedge in the pie order.
func BreakdownMarkdown(b tracker.Breakdown, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expense Breakdown")

	if b.Empty() {
		doc.PlainText("No expense data to display")
		return doc.String()
	}

	doc.PlainText(fmt.Sprintf("Total Expense: %s", Money(b.Total, currency)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Color", "Category", "Amount", "Share", "Angle"},
		Rows:   [][]string{},
	}
	grand := b.Total.Float64()
	for _, w := range b.Wedges {
		share := ""
		if grand > 0 {
			share = fmt.Sprintf("%.1f%%", w.Total.Float64()/grand*100)
		}
		table.Rows = append(table.Rows, []string{
			w.Color.Hex(),
			w.Category,
			Money(w.Total, currency),
			share,
			fmt.Sprintf("%d°", w.Sweep),
		})
	}
	doc.Table(table)

	return doc.String()
}
