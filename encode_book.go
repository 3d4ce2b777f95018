package tracker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"
)

// A book file holds one record per line, five fields joined by commas:
//
//	date,category,description,amount,kind
//
// Category and description are free text. A backslash escapes the next
// character, so a literal comma or backslash in those fields is written
// as `\,` and `\\`. There is no header line.

// ErrMalformedRecord reports a line that cannot be decoded into a Transaction.
var ErrMalformedRecord = errors.New("malformed record")

const (
	fieldSeparator = ','
	escapeRune     = '\\'
)

// escapeField protects the field separator and the escape character itself.
func escapeField(s string) string {
	if !strings.ContainsAny(s, `,\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if r == fieldSeparator || r == escapeRune {
			b.WriteRune(escapeRune)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitRecord splits a line on unescaped separators. A backslash escapes the
// character after it, a lone trailing backslash is kept literally.
func splitRecord(line string) []string {
	fields := make([]string, 0, 5)
	var field strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == escapeRune:
			escaped = true
		case r == fieldSeparator:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	if escaped {
		field.WriteRune(escapeRune)
	}
	return append(fields, field.String())
}

// EncodeRecord writes a single transaction to the writer as one line.
func EncodeRecord(w io.Writer, tx Transaction) error {
	line := strings.Join([]string{
		tx.Date.String(),
		escapeField(tx.Category),
		escapeField(tx.Description),
		tx.Amount.String(),
		tx.Kind.String(),
	}, string(fieldSeparator))

	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// DecodeRecord decodes a single line into a Transaction. The returned error
// wraps ErrMalformedRecord when the line does not hold exactly five parseable
// fields.
func DecodeRecord(line string) (Transaction, error) {
	fields := splitRecord(line)
	if len(fields) != 5 {
		return Transaction{}, fmt.Errorf("%w: got %d fields, want 5", ErrMalformedRecord, len(fields))
	}

	on, err := time.Parse(readDateFormat, fields[0])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	amount, err := ParseAmount(fields[3])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	kind, err := ParseKind(fields[4])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return Transaction{
		Date:        NewDate(on.Date()),
		Category:    fields[1],
		Description: fields[2],
		Amount:      amount,
		Kind:        kind,
	}, nil
}

// DecodeBook decodes transactions line by line from an io.Reader and returns
// a Book holding them in file order.
//
// Damaged lines do not poison the rest of the file: a line that fails to
// decode is logged and skipped. Only a reader error aborts the decoding.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		tx, err := DecodeRecord(line)
		if err != nil {
			log.Printf("line %d: skipping %v", n, err)
			continue
		}
		book.Append(tx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return book, nil
}

// EncodeBook persists all transactions to an io.Writer, one line per record,
// in the book's order.
func EncodeBook(w io.Writer, book *Book) error {
	for _, tx := range book.transactions {
		if err := EncodeRecord(w, tx); err != nil {
			return err
		}
	}
	return nil
}
