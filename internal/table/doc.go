// Package table provides the row-oriented table model shared by every
// pipeline stage.
//
// A Table is an ordered list of rows plus an explicit column ordering. Every
// row carries a value for every column; a missing value is stored as nil, not
// as an absent key. Cells hold strings, ints, or float64s. Tables round-trip
// through CSV with the convention that nil and the empty string both
// serialize to an empty field.
package table
