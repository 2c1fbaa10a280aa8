// Package token provides tokenization support for the Bydysawd chemical
// notation.
//
// [Tokenize] turns raw bytes into a flat token sequence over the notation's
// alphabet: upper-case element letters, decimal digit runs, '+' and '='.
// Whitespace separates tokens and is otherwise ignored.
package token
