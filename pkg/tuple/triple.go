package tuple

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/mitchellh/copystructure"
)

// Degree is the number of positions in a Triple.
const Degree = 3

const hashPrime = 31

type deepCopier interface {
	deepCopyAny() (any, error)
}

// Triple is an immutable tuple of degree 3.
type Triple[T1, T2, T3 any] struct {
	first  T1
	second T2
	third  T3
}

// New builds a Triple holding v1, v2 and v3 as given.
func New[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Triple[T1, T2, T3] {
	return Triple[T1, T2, T3]{
		first:  v1,
		second: v2,
		third:  v3,
	}
}

// From returns a field-wise copy of other.
func From[T1, T2, T3 any](other Triple[T1, T2, T3]) Triple[T1, T2, T3] {
	return New(other.first, other.second, other.third)
}

func (t Triple[T1, T2, T3]) First() T1 {
	return t.first
}

func (t Triple[T1, T2, T3]) Second() T2 {
	return t.second
}

func (t Triple[T1, T2, T3]) Third() T3 {
	return t.third
}

// Values returns all three values in position order.
func (t Triple[T1, T2, T3]) Values() (T1, T2, T3) {
	return t.first, t.second, t.third
}

func (t Triple[T1, T2, T3]) Degree() int {
	return Degree
}

func (t Triple[T1, T2, T3]) ToArray() [Degree]any {
	return [Degree]any{t.first, t.second, t.third}
}

// ToList returns a new slice over the values. Changing it does not affect t.
func (t Triple[T1, T2, T3]) ToList() []any {
	arr := t.ToArray()
	return arr[:]
}

// All returns an iterator over first, second and third. Every range over the
// returned sequence starts from the first position.
func (t Triple[T1, T2, T3]) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		if !yield(t.first) {
			return
		}
		if !yield(t.second) {
			return
		}
		yield(t.third)
	}
}

// Equal reports whether other is a Triple of the same type whose fields are
// pairwise equal. Absent values (nil pointers, interfaces, maps, slices,
// funcs and channels) are equal only to each other.
func (t Triple[T1, T2, T3]) Equal(other any) bool {
	that, ok := other.(Triple[T1, T2, T3])
	if !ok {
		return false
	}

	return valueEqual(t.first, that.first) &&
		valueEqual(t.second, that.second) &&
		valueEqual(t.third, that.third)
}

// Hash combines the field hashes with a fixed multiplier. Equal triples
// always produce equal hashes. The result is not salted.
func (t Triple[T1, T2, T3]) Hash() uint64 {
	var result uint64 = 1

	result = hashPrime*result + valueHash(t.first)
	result = hashPrime*result + valueHash(t.second)
	result = hashPrime*result + valueHash(t.third)

	return result
}

// String renders t as "(v1, v2, v3)" using the %v form of each value.
func (t Triple[T1, T2, T3]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.first, t.second, t.third)
}

// Copy returns a shallow duplicate of t, same as From(t).
func (t Triple[T1, T2, T3]) Copy() Triple[T1, T2, T3] {
	return From(t)
}

// DeepCopy duplicates every field, including nested maps, slices and
// pointed-to values. Triples held directly in a field are deep copied as
// well. DeepCopy returns an error wrapping ErrNotCopyable, instead of a
// partial copy, when a field reaches a cycle or a struct with unexported
// fields (an errors.New value, a Triple inside a slice) other than the
// types copystructure knows, such as time.Time.
func (t Triple[T1, T2, T3]) DeepCopy() (Triple[T1, T2, T3], error) {
	v1, err := deepCopyValue(t.first)
	if err != nil {
		return Triple[T1, T2, T3]{}, fmt.Errorf("tuple: copy first: %w", err)
	}
	v2, err := deepCopyValue(t.second)
	if err != nil {
		return Triple[T1, T2, T3]{}, fmt.Errorf("tuple: copy second: %w", err)
	}
	v3, err := deepCopyValue(t.third)
	if err != nil {
		return Triple[T1, T2, T3]{}, fmt.Errorf("tuple: copy third: %w", err)
	}

	return New(v1, v2, v3), nil
}

func (t Triple[T1, T2, T3]) deepCopyAny() (any, error) {
	return t.DeepCopy()
}

func deepCopyValue[T any](v T) (T, error) {
	if IsNil(v) {
		return v, nil
	}

	var c any
	var err error
	if dc, ok := any(v).(deepCopier); ok {
		c, err = dc.deepCopyAny()
	} else if err = checkCopyable(reflect.ValueOf(v)); err == nil {
		c, err = copystructure.Copy(v)
	}
	if err != nil {
		return v, err
	}

	out, ok := c.(T)
	if !ok {
		return v, fmt.Errorf("unexpected copy type %T", c)
	}
	return out, nil
}

// checkCopyable rejects values copystructure would copy only partly: it
// skips unexported struct fields and does not track cycles.
func checkCopyable(v reflect.Value) error {
	var bad reflect.Type
	w := newWalker(func(v reflect.Value) (flag, descend bool) {
		t := v.Type()
		if _, ok := copystructure.Copiers[t]; ok {
			return false, false
		}
		if t.Kind() == reflect.Struct && hasUnexportedField(t) {
			bad = t
			return true, false
		}
		return false, true
	})

	switch {
	case w.walk(v):
		return fmt.Errorf("%w: %s has unexported fields", ErrNotCopyable, bad)
	case w.cycle:
		return fmt.Errorf("%w: cyclic %s", ErrNotCopyable, v.Type())
	default:
		return nil
	}
}

func hasUnexportedField(t reflect.Type) bool {
	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
