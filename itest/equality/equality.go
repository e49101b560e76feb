package equality

import (
	"reflect"

	"github.com/mitchellh/hashstructure/v2"
)

// Equatable lets a type define its own value equality, overriding the
// structural comparison below.
type Equatable interface {
	Equals(other any) bool
}

// Equal reports whether left and right are equal by value.
//
// Values of different dynamic types are never equal; there is no numeric
// coercion, so int(2) and float64(2) compare unequal. Comparable types
// use ==, composite types are compared structurally.
func Equal(left, right any) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	if eq, ok := left.(Equatable); ok {
		return eq.Equals(right)
	}

	lt := reflect.TypeOf(left)
	rt := reflect.TypeOf(right)
	if lt != rt {
		return false
	}
	if fastComparable(lt) {
		return left == right
	}

	// Composite values hash before the deep walk. Differing hashes can
	// never be equal; a matching hash still has to be confirmed
	// structurally.
	lh, lerr := hashstructure.Hash(left, hashstructure.FormatV2, nil)
	rh, rerr := hashstructure.Hash(right, hashstructure.FormatV2, nil)
	if lerr == nil && rerr == nil && lh != rh {
		return false
	}
	return reflect.DeepEqual(left, right)
}

// fastComparable reports whether == on values of type t can never
// panic. Arrays and structs can satisfy reflect's Comparable while
// holding interface elements whose dynamic values are not comparable,
// so they take the structural path instead.
func fastComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array, reflect.Struct:
		return false
	default:
		return t.Comparable()
	}
}
