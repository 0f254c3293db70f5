// Package tuple provides immutable, generic product types for Go.
//
// Triple[T1, T2, T3] holds three independently typed values in a fixed
// position order. A Triple never changes after construction: every transform
// returns a new value and leaves the receiver untouched, so a Triple can be
// shared between goroutines without locking.
//
// Key operations:
// - New/From: construct from three values or copy an existing Triple
// - First/Second/Third/Values: positional accessors
// - Map: unpack the three values into a function and return its result
// - MapFirst/MapSecond/MapThird: replace one position via a function
// - ToArray/ToList/All: positional views ([first, second, third])
// - CompareTo/Compare/CompareFunc: lexicographic ordering, first field most significant
// - Equal/Hash/String: value semantics
// - Copy/DeepCopy: shallow and deep duplication
//
// Copy and From are shallow: maps, slices and pointers held by a Triple are
// shared with the copy. Use DeepCopy when the copy must be independent; it
// fails with ErrNotCopyable rather than return a partial copy.
package tuple
