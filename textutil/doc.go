// Package textutil provides standalone helper predicates for text values.
//
// The core predicate is [IsEmpty], which treats a string as empty when it is
// blank after trimming leading and trailing whitespace:
//
//	textutil.IsEmpty("")        // → true
//	textutil.IsEmpty("\t\n  ")  // → true
//	textutil.IsEmpty("a")       // → false
//
// [IsEmptyValue] extends the same test to loosely-typed values: nil and nil
// *string count as empty, and any non-text value is rejected with
// [ErrNotText].
package textutil
