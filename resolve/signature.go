package resolve

import (
	"context"
	"reflect"
)

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

// compatible reports whether a parameter list can carry the field's arguments
// under the given search. The required count is the field's own argument
// count, plus one when the search demands a leading parameter. One extra
// trailing parameter is tolerated when its type is injectable; it does not
// count against the field's arity.
func (b *Binder) compatible(params []reflect.Type, argCount int, s Search) bool {
	required := argCount
	if s.Leading != nil {
		required++
	}
	switch len(params) {
	case required:
	case required + 1:
		if !b.injectable(params[len(params)-1]) {
			return false
		}
	default:
		return false
	}
	if s.Leading == nil {
		return true
	}
	// A matching count with a wrong leading type is still a rejection.
	return leadingCompatible(params[0], s)
}

// leadingCompatible checks the first parameter against the search's required
// leading type: the type itself, an interface it satisfies, or, when the
// search allows batching, a slice of it (many source keys resolved at once).
func leadingCompatible(param reflect.Type, s Search) bool {
	if param == s.Leading || s.Leading.AssignableTo(param) {
		return true
	}
	if s.Batched && param.Kind() == reflect.Slice && param.Elem() == s.Leading {
		return true
	}
	return false
}

// injectable reports whether t may appear as a framework-supplied trailing
// parameter.
func (b *Binder) injectable(t reflect.Type) bool {
	for _, it := range b.injectables {
		if t == it {
			return true
		}
	}
	return false
}
