package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/Rudhira-web/tracker"
	md "github.com/nao1215/markdown"
)

func SummaryMarkdown(s *tracker.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Tracker Summary on %s", s.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Income", Money(s.Income, currency)},
			{"Total Expense", Money(s.Expense, currency)},
			{md.Bold("Balance"), md.Bold(Money(s.Balance, currency))},
			{"Records", strconv.Itoa(s.Records)},
		},
	})

	return doc.String()
}
