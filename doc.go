// Package tracker provides the core types and functions for recording and
// analysing personal income and expenses. It is designed to be local-first
// and auditable, keeping all data in a single human-readable file that the
// user fully owns.
//
// The core functionalities include:
//   - Record Keeping: Recording dated income and expense transactions with a
//     free-text category and description, preserving the order in which they
//     were entered.
//   - Data Persistence: Encoding and decoding transactions to and from a
//     plain-text, one-record-per-line format that tolerates hand edits and
//     recovers from damaged lines.
//   - Derived Totals: Computing total income, total expense and the running
//     balance from the recorded transactions.
//   - Category Analytics: Aggregating expenses by category and laying out a
//     proportional pie chart (angles and a deterministic color palette) from
//     the aggregate.
//
// This package serves as the foundational logic for the `xt` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tracker
