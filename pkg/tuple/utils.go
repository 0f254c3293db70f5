package tuple

import (
	"math"
	"reflect"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mitchellh/hashstructure"
)

const (
	// unhashable is the hash of values hashstructure cannot walk, such as funcs.
	unhashable uint64 = 0x9e3779b97f4a7c15
	// looseHash is the hash of values whose equality is looser than their
	// bits: anything holding floats, a type with its own Equal, or a cycle.
	looseHash uint64 = 0xc2b2ae3d27d4eb4f
	nanHash   uint64 = 0x7ff8000000000001
)

var equalOptions = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// IsNil reports whether i is an absence marker: a nil interface or a nil
// pointer, map, slice, func, channel or unsafe pointer.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// valueEqual and valueHash must agree: valueEqual(a, b) implies
// valueHash(a) == valueHash(b).
func valueEqual[T any](a, b T) bool {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil || bNil {
		return aNil && bNil
	}

	switch e := any(a).(type) {
	case interface{ Equal(T) bool }:
		return e.Equal(b)
	case interface{ Equal(any) bool }:
		return e.Equal(b)
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}

	switch av.Kind() {
	case reflect.Float32, reflect.Float64:
		return floatEqual(av.Float(), bv.Float())
	case reflect.Complex64, reflect.Complex128:
		x, y := av.Complex(), bv.Complex()
		return floatEqual(real(x), real(y)) && floatEqual(imag(x), imag(y))
	case reflect.Struct, reflect.Array, reflect.Slice, reflect.Map:
		return cmp.Equal(a, b, equalOptions...)
	case reflect.Func:
		// non-nil funcs are never equal
		return false
	default:
		return any(a) == any(b)
	}
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func valueHash[T any](v T) uint64 {
	if IsNil(v) {
		return 0
	}

	switch h := any(v).(type) {
	case Hasher:
		return h.Hash()
	case time.Time:
		// Equal on time.Time ignores the location.
		return uint64(h.UnixNano())
	case interface{ Equal(T) bool }, interface{ Equal(any) bool }:
		return looseHash
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if h, ok := floatHash(rv.Float()); ok {
			return h
		}
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		hr, okr := floatHash(real(c))
		hi, oki := floatHash(imag(c))
		if okr && oki {
			return hashPrime*hr + hi
		}
		if okr || oki {
			return looseHash
		}
	default:
		if isLoose(rv) {
			return looseHash
		}
	}

	hash, err := hashstructure.Hash(v, nil)
	if err != nil {
		return unhashable
	}
	return hash
}

// floatHash covers the floats whose bits do not decide equality: -0 == +0
// and NaN == NaN.
func floatHash(f float64) (uint64, bool) {
	switch {
	case f == 0:
		return 0, true
	case math.IsNaN(f):
		return nanHash, true
	default:
		return 0, false
	}
}

func isLoose(v reflect.Value) bool {
	w := newWalker(func(v reflect.Value) (flag, descend bool) {
		switch v.Kind() {
		case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
			return true, false
		case reflect.Interface:
			return false, true
		}
		return hasEqualMethod(v.Type()), true
	})
	return w.walk(v) || w.cycle
}

func hasEqualMethod(t reflect.Type) bool {
	if _, ok := t.MethodByName("Equal"); ok {
		return true
	}
	if t.Kind() != reflect.Ptr {
		_, ok := reflect.PointerTo(t).MethodByName("Equal")
		return ok
	}
	return false
}

type visitKey struct {
	ptr uintptr
	typ reflect.Type
	n   int
}

// walker visits a value and everything reachable from it. visit returns flag
// to stop the walk with a positive result, and descend to look below the
// value. Elements of scalar types without an Equal method are skipped, so
// visit must not flag those.
type walker struct {
	visit func(reflect.Value) (flag, descend bool)
	path  map[visitKey]struct{}
	cycle bool
}

func newWalker(visit func(reflect.Value) (flag, descend bool)) *walker {
	return &walker{visit: visit, path: map[visitKey]struct{}{}}
}

func (w *walker) walk(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}

	flag, descend := w.visit(v)
	if flag || !descend {
		return flag
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		key := visitKey{ptr: v.Pointer(), typ: v.Type()}
		if v.Kind() != reflect.Ptr {
			key.n = v.Len()
		}
		if _, ok := w.path[key]; ok {
			w.cycle = true
			return false
		}
		w.path[key] = struct{}{}
		defer delete(w.path, key)
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return w.walk(v.Elem())
	case reflect.Array, reflect.Slice:
		if isScalar(v.Type().Elem()) {
			return false
		}
		for i := range v.Len() {
			if w.walk(v.Index(i)) {
				return true
			}
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if w.walk(v.Field(i)) {
				return true
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if w.walk(iter.Key()) || w.walk(iter.Value()) {
				return true
			}
		}
	}
	return false
}

func isScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return !hasEqualMethod(t)
	default:
		return false
	}
}
