package tuple

import (
	"cmp"
	"reflect"

	"golang.org/x/exp/constraints"
)

// CompareTo orders t and other lexicographically: first values decide, ties
// fall through to second and then third values. Each value is ordered by its
// CompareTo or Compare method when it has one, otherwise by the natural
// order of its underlying integer, float, string or bool kind. Absent values
// sort before present ones.
//
// CompareTo returns an error wrapping ErrOrderingUnsupported when a value it
// needs to look at has no order.
func (t Triple[T1, T2, T3]) CompareTo(other Triple[T1, T2, T3]) (int, error) {
	if c, err := compareValues("first", t.first, other.first); err != nil || c != 0 {
		return c, err
	}
	if c, err := compareValues("second", t.second, other.second); err != nil || c != 0 {
		return c, err
	}
	return compareValues("third", t.third, other.third)
}

// Compare orders two triples of ordered values lexicographically.
func Compare[T1, T2, T3 constraints.Ordered](a, b Triple[T1, T2, T3]) int {
	return CompareFunc(a, b, cmp.Compare[T1], cmp.Compare[T2], cmp.Compare[T3])
}

// Less reports whether a sorts before b.
func Less[T1, T2, T3 constraints.Ordered](a, b Triple[T1, T2, T3]) bool {
	return Compare(a, b) < 0
}

// CompareFunc orders two triples lexicographically using one comparator per
// position.
func CompareFunc[T1, T2, T3 any](a, b Triple[T1, T2, T3],
	cmp1 func(T1, T1) int,
	cmp2 func(T2, T2) int,
	cmp3 func(T3, T3) int) int {

	if c := cmp1(a.first, b.first); c != 0 {
		return c
	}
	if c := cmp2(a.second, b.second); c != 0 {
		return c
	}
	return cmp3(a.third, b.third)
}

func compareValues[T any](position string, a, b T) (int, error) {
	aNil, bNil := IsNil(a), IsNil(b)
	switch {
	case aNil && bNil:
		return 0, nil
	case aNil:
		return -1, nil
	case bNil:
		return 1, nil
	}

	switch c := any(a).(type) {
	case Comparable[T]:
		return c.CompareTo(b), nil
	case interface{ Compare(T) int }:
		return c.Compare(b), nil
	case interface{ CompareTo(T) (int, error) }:
		// nested tuples
		return c.CompareTo(b)
	}

	// interface-typed fields: look the methods up on the dynamic type
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if c, ok, err := compareByMethod(av, bv); ok {
		return c, err
	}

	if av.Type() != bv.Type() {
		return 0, orderingError(position, b)
	}

	switch av.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(av.Int(), bv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(av.Uint(), bv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(av.Float(), bv.Float()), nil
	case reflect.String:
		return cmp.Compare(av.String(), bv.String()), nil
	case reflect.Bool:
		return compareBool(av.Bool(), bv.Bool()), nil
	default:
		return 0, orderingError(position, a)
	}
}

var errorType = reflect.TypeFor[error]()

func compareByMethod(av, bv reflect.Value) (c int, ok bool, err error) {
	for _, name := range []string{"CompareTo", "Compare"} {
		m := av.MethodByName(name)
		if !m.IsValid() {
			continue
		}

		mt := m.Type()
		if mt.NumIn() != 1 || !bv.Type().AssignableTo(mt.In(0)) ||
			mt.NumOut() == 0 || mt.Out(0).Kind() != reflect.Int {
			continue
		}

		switch {
		case mt.NumOut() == 1:
			return int(m.Call([]reflect.Value{bv})[0].Int()), true, nil
		case mt.NumOut() == 2 && mt.Out(1) == errorType:
			out := m.Call([]reflect.Value{bv})
			err, _ = out[1].Interface().(error)
			return int(out[0].Int()), true, err
		}
	}
	return 0, false, nil
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
