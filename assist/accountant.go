package assist

import (
	"context"
	"strings"

	"github.com/Rudhira-web/tracker"
	"github.com/Rudhira-web/tracker/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// NewAccountant builds the expert in charge of the user's book. The current
// totals go into the system instruction, the details are fetched through
// tools.
func NewAccountant(book *tracker.Book, currency string) *Expert {
	lib := []Function{
		transactionsFunc(book, currency),
		breakdownFunc(book, currency),
	}

	summary := renderer.SummaryMarkdown(tracker.NewSummary(book, tracker.Today()), currency)

	return &Expert{
		Name:      "Accountant",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a personal accountant in charge of the user's book of income
				and expense records. Answer questions about what they earn and spend,
				plainly and with figures taken from the book.

				Use the available tools to read the book:
				  - Transactions: the raw records, with optional category or kind filter
				  - Breakdown: expenses grouped by category, with each category's share

				Today's totals:

` + summary}}},
		},
		Library: NewLibrary(lib),
	}
}

func transactionsFunc(book *tracker.Book, currency string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Transactions",
			Description: `Transactions lists the recorded transactions in their book order.
			Filter by category, by kind, or both, to narrow the list down.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {
						Type:        genai.TypeString,
						Description: "Only transactions of this category.",
					},
					"kind": {
						Type:        genai.TypeString,
						Description: "Only transactions of this kind: INCOME or EXPENSE.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of transactions: index, date, category, description, amount and kind.",
			},
		},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			table, err := transactionsTable(book, currency, args)
			if err != nil {
				return &genai.FunctionResponse{
					ID:   id,
					Name: "Transactions",
					Response: map[string]any{
						"error": err.Error(),
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Transactions",
				Response: map[string]any{
					"output": table,
				},
			}
		},
	}
}

func transactionsTable(book *tracker.Book, currency string, args map[string]any) (string, error) {
	var preds []func(tracker.Transaction) bool
	if category, ok := args["category"].(string); ok && category != "" {
		preds = append(preds, tracker.ByCategory(category))
	}
	if kindStr, ok := args["kind"].(string); ok && kindStr != "" {
		kind, err := tracker.ParseKind(strings.ToUpper(kindStr))
		if err != nil {
			return "", err
		}
		preds = append(preds, tracker.ByKind(kind))
	}
	// All predicates must hold, unlike the book's one-of filters.
	accept := func(tx tracker.Transaction) bool {
		for _, p := range preds {
			if !p(tx) {
				return false
			}
		}
		return true
	}

	var entries []renderer.Entry
	for i, tx := range book.Transactions(accept) {
		entries = append(entries, renderer.Entry{Index: i, Transaction: tx})
	}
	return renderer.TransactionsMarkdown(entries, currency), nil
}

func breakdownFunc(book *tracker.Book, currency string) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Breakdown",
			Description: `Breakdown groups the expenses by category. It details each category's
			total, its share of all expenses, and its slice of the pie chart.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of expense categories with totals and shares.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Breakdown",
				Response: map[string]any{
					"output": renderer.BreakdownMarkdown(book.ExpenseBreakdown(), currency),
				},
			}
		},
	}
}
