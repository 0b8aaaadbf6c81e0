package resolve

import "reflect"

// Search is one candidate binding context for a field: a host type to scan
// and the shape of the leading parameter, if any, that a member on that host
// must accept before the field's own arguments.
type Search struct {
	// Host is the type whose methods, struct fields, or map keys are scanned.
	Host reflect.Type
	// Label names the resolution context for diagnostics, e.g. "resolver"
	// or "source object".
	Label string
	// Leading is the required first parameter type. Nil when the search
	// requires no leading parameter.
	Leading reflect.Type
	// Batched marks that a slice of Leading is also acceptable as the first
	// parameter, for members that resolve many source keys at once.
	Batched bool
}

// ResolverInfo supplies the ordered searches for a field and reports whether
// the field belongs to a root operation type (query, mutation, subscription).
// Implementations are expected to be immutable value data.
type ResolverInfo interface {
	Searches() []Search
	Root() bool
}

// NewResolverInfo builds a static ResolverInfo from a fixed search list.
func NewResolverInfo(root bool, searches ...Search) ResolverInfo {
	return &staticInfo{root: root, searches: searches}
}

type staticInfo struct {
	root     bool
	searches []Search
}

func (i *staticInfo) Searches() []Search { return i.searches }
func (i *staticInfo) Root() bool         { return i.root }
