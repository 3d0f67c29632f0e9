// Package finance provides the types and persistence logic for a
// single-user personal finance wallet. It is designed to be local-first
// and transparent: all data lives in two plain files the user can read
// and version.
//
// The core functionalities include:
//   - Record Management: appending, looking up and editing transaction
//     records (id, date, type, amount, category, description), all stored
//     as raw text with no numeric or date interpretation.
//   - Data Persistence: a CSV store file holding the records and a
//     separate one-line counter file holding the last assigned id, behind
//     a Storage port with file-backed and in-memory implementations.
//   - Identifier Assignment: sequential ids derived from the persisted
//     counter, faithful to the original tool's semantics (the counter is
//     trusted, never reconciled with the store).
//
// This package serves as the foundational logic for the `fin`
// command-line tool.
package finance
