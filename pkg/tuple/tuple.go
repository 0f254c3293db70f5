package tuple

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOrderingUnsupported is returned by CompareTo when a field value has no
// natural order.
var ErrOrderingUnsupported = errors.New("tuple: ordering unsupported")

// ErrNotCopyable is returned by DeepCopy when a value cannot be copied in
// full.
var ErrNotCopyable = errors.New("tuple: value not deep copyable")

// Tuple is the positional view shared by tuple types. ToArray is left out
// because its fixed-size array result differs per arity.
type Tuple interface {
	fmt.Stringer
	// Degree returns the number of positions in the tuple.
	Degree() int
	// ToList returns the values in position order.
	ToList() []any
	// All iterates the values in position order.
	All() iter.Seq[any]
}

// Comparable is implemented by types with a natural three-way order.
// CompareTo returns a negative number, zero or a positive number when the
// receiver sorts before, equal to or after other.
type Comparable[T any] interface {
	CompareTo(other T) int
}

// Hasher lets a field value supply its own hash. Values that implement a
// custom Equal should implement Hasher too, so equal values hash equal.
type Hasher interface {
	Hash() uint64
}

func orderingError(position string, v any) error {
	return fmt.Errorf("%w: %s value of type %T", ErrOrderingUnsupported, position, v)
}
