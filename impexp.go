package tracker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to import records from external exports.
// Unlike loading a book, imports are strict: one bad record aborts.

// ImportRecords reads records from 'r' in the book line format. A line that
// fails to decode aborts the import, nothing partial is returned.
func ImportRecords(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		tx, err := DecodeRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return txs, nil
}

// JSONMapping tells the JSON importer where to find records and their fields
// inside a bank export. Paths use the JSONPath syntax.
type JSONMapping struct {
	Records     string // path to the list of records
	Date        string // paths below are relative to one record
	Category    string
	Description string // optional, description stays empty when missing
	Amount      string
	Kind        string // optional, the amount sign decides when missing
}

// DefaultJSONMapping matches exports of the form
//
//	{"transactions":[{"date":"2025-01-05","category":"Food","description":"Lunch","amount":-12.5}]}
func DefaultJSONMapping() JSONMapping {
	return JSONMapping{
		Records:     "$.transactions",
		Date:        "$.date",
		Category:    "$.category",
		Description: "$.description",
		Amount:      "$.amount",
		Kind:        "$.kind",
	}
}

// ImportJSON extracts records from a JSON bank export using the given
// mapping.
//
// When no kind can be read for a record the amount sign decides: negative
// amounts are expenses, the rest income. Either way only the magnitude is
// kept.
func ImportJSON(r io.Reader, m JSONMapping) ([]Transaction, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse JSON export: %w", err)
	}

	jval, err := jsonpath.Get(m.Records, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot locate records at %q: %w", m.Records, err)
	}
	jrecords, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("records at %q: not a list", m.Records)
	}

	var txs []Transaction
	for i, jrecord := range jrecords {
		tx, err := importJSONRecord(jrecord, m)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func importJSONRecord(jrecord any, m JSONMapping) (Transaction, error) {
	dateStr, err := jsonString(jrecord, m.Date)
	if err != nil {
		return Transaction{}, err
	}
	day, err := ParseDate(dateStr)
	if err != nil {
		return Transaction{}, err
	}

	category, err := jsonString(jrecord, m.Category)
	if err != nil {
		return Transaction{}, err
	}

	description := ""
	if m.Description != "" {
		// Optional in the export, a missing path is not an error.
		description, _ = jsonString(jrecord, m.Description)
	}

	amount, err := jsonAmount(jrecord, m.Amount)
	if err != nil {
		return Transaction{}, err
	}

	kind := Income
	if amount.IsNegative() {
		kind = Expense
		amount = amount.Abs()
	}
	if m.Kind != "" {
		if s, kerr := jsonString(jrecord, m.Kind); kerr == nil {
			k, err := ParseKind(s)
			if err != nil {
				return Transaction{}, err
			}
			kind = k
		}
	}

	return NewTransaction(day, category, description, amount, kind), nil
}

// jsonString extracts the string at path, unwrapping the list-of-one answers
// jsonpath sometimes returns.
func jsonString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string %v", path, jval)
	}
	return s, nil
}

// jsonAmount extracts the number at path, accepting the string form some
// exports use.
func jsonAmount(jobj any, path string) (Amount, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Amount{}, fmt.Errorf("error parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return A(v), nil
	case string:
		return ParseAmount(v)
	default:
		return Amount{}, fmt.Errorf("error parsing %q: not a number %v", path, jval)
	}
}
