// Package seqs provides pure generic helpers over slices: slicing
// (Chunk, Drop, Initial), predicate-based search (FindIndex, DropWhile),
// element access with explicit absence (Head, Last, Nth) and mapping glue
// (Map, Filter, Zip3).
//
// No function mutates its input except [Reverse], and no result aliases the
// caller's slice. Absent values are reported with a (value, ok) pair rather
// than an error; the index-returning search functions keep the conventional
// -1 for "not found".
package seqs
