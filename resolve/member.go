package resolve

import (
	"reflect"
	"strings"
)

// MemberKind discriminates the closed set of member shapes a field can bind to.
type MemberKind int

const (
	// MemberMethod is a method on the search host.
	MemberMethod MemberKind = iota
	// MemberProperty is an exported struct field on the search host.
	MemberProperty
	// MemberMapAccess is a deferred key lookup on a string-keyed map host.
	MemberMapAccess
	// MemberMissing is the permissive-mode placeholder. It carries no
	// callable member; invoking it must fail at request time.
	MemberMissing
)

func (k MemberKind) String() string {
	switch k {
	case MemberMethod:
		return "method"
	case MemberProperty:
		return "property"
	case MemberMapAccess:
		return "map access"
	default:
		return "missing"
	}
}

// Member is the tagged member variant. Only the fields implied by Kind are set.
type Member struct {
	Kind   MemberKind
	Method reflect.Method      // MemberMethod
	Params []reflect.Type      // MemberMethod: parameters without the receiver
	Field  reflect.StructField // MemberProperty
}

// ResolvedMember is the outcome of binding one field: the chosen member,
// tagged with the search it was found under.
type ResolvedMember struct {
	Member
	Search Search
	// Warning is set on MemberMissing placeholders so the caller decides
	// whether and how to surface it.
	Warning *Diagnostic
}

type methodCandidate struct {
	method reflect.Method
	params []reflect.Type
}

// methodsOf returns the eligible methods of host: declared and promoted,
// exported only, deduplicated by (name, parameter-type sequence). Non-pointer
// hosts are scanned through their pointer method set so that value-receiver
// and pointer-receiver methods are covered by a single pass. Enumeration
// order follows reflect's sorted method order, so the result is deterministic
// for a given host.
func methodsOf(host reflect.Type) []methodCandidate {
	scan := host
	if scan.Kind() != reflect.Interface && scan.Kind() != reflect.Pointer {
		scan = reflect.PointerTo(scan)
	}
	seen := make(map[string]struct{}, scan.NumMethod())
	out := make([]methodCandidate, 0, scan.NumMethod())
	for i := 0; i < scan.NumMethod(); i++ {
		m := scan.Method(i)
		if m.PkgPath != "" {
			continue // unexported
		}
		params := methodParams(scan, m)
		key := memberKey(m.Name, params)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, methodCandidate{method: m, params: params})
	}
	return out
}

// methodParams strips the receiver from a method's input list. Methods of
// interface types carry no receiver in their reflect signature.
func methodParams(scan reflect.Type, m reflect.Method) []reflect.Type {
	start := 1
	if scan.Kind() == reflect.Interface {
		start = 0
	}
	params := make([]reflect.Type, 0, m.Type.NumIn()-start)
	for i := start; i < m.Type.NumIn(); i++ {
		params = append(params, m.Type.In(i))
	}
	return params
}

func memberKey(name string, params []reflect.Type) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}

// propertyOf looks up an exported struct field named name on host, following
// pointers and promoted fields. Ambiguous promotions report no match.
func propertyOf(host reflect.Type, name string) (reflect.StructField, bool) {
	for host.Kind() == reflect.Pointer {
		host = host.Elem()
	}
	if host.Kind() != reflect.Struct {
		return reflect.StructField{}, false
	}
	f, ok := host.FieldByName(name)
	if !ok || f.PkgPath != "" {
		return reflect.StructField{}, false
	}
	return f, true
}

// mapShaped reports whether host is a string-keyed map after pointer
// unwrapping. Such hosts satisfy any field by runtime key lookup.
func mapShaped(host reflect.Type) bool {
	for host.Kind() == reflect.Pointer {
		host = host.Elem()
	}
	return host.Kind() == reflect.Map && host.Key().Kind() == reflect.String
}
