// Package sanitizer normalizes user input before validation and storage.
//
// All functions are idempotent. None of them fail: input that cannot be
// normalized is returned trimmed so the validator can still judge it.
//
// Normalization includes:
//   - Phone numbers: E.164 (+[country][number]) when parseable
//   - Strings: trim leading/trailing whitespace, inner text is kept
//   - Slices: nil becomes empty, entries are kept as sent and in order
package sanitizer
