package resolve

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/hanpama/graphbind/schema"
)

// Diagnostic is a structured, position-carrying message attached to
// non-fatal outcomes so the caller decides whether and how to surface it.
type Diagnostic struct {
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

func missingDiagnostic(field *schema.FieldDefinition, detail string) *Diagnostic {
	d := &Diagnostic{Message: detail}
	if field.Position != nil {
		d.File = field.Position.File
		d.Line = field.Position.Line
		d.Column = field.Position.Column
	}
	return d
}

// MissingResolverError reports that no search produced a compatible member
// for a field. Detail lists every signature that was tried.
type MissingResolverError struct {
	Field  *schema.FieldDefinition
	Detail string
}

func (e *MissingResolverError) Error() string { return e.Detail }

// AmbiguousResolverError reports that a root-level field matched under more
// than one search. Root resolvers must be mutually exclusive; the ambiguity
// is never settled by search order.
type AmbiguousResolverError struct {
	Field   *schema.FieldDefinition
	Matches []*ResolvedMember
}

func (e *AmbiguousResolverError) Error() string {
	found := make([]string, len(e.Matches))
	for i, m := range e.Matches {
		found[i] = describeMatch(m)
	}
	return fmt.Sprintf("ambiguous resolution for root field %q (%s): matched by %s",
		e.Field.Name, e.Field.Position, strings.Join(found, " and "))
}

func describeMatch(m *ResolvedMember) string {
	host := typeName(m.Search.Host)
	switch m.Kind {
	case MemberMethod:
		return fmt.Sprintf("method %s.%s", host, m.Method.Name)
	case MemberProperty:
		return fmt.Sprintf("struct field %s.%s", host, m.Field.Name)
	default:
		return fmt.Sprintf("map access on %s", host)
	}
}

// formatSignatures reconstructs, per search, every signature the matcher
// would have accepted, in the matcher's priority order. Field arguments
// render as ~name to mark that only the argument name is declared here; the
// parameter type is inferred at invocation. This listing must mirror the
// matcher's variant order, or the diagnostic would lie about what was tried.
func formatSignatures(field *schema.FieldDefinition, searches []Search, scanProperties bool, injectables []reflect.Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "no method, struct field or map access found for schema field %q (%s)\n",
		field.Name, field.Position)
	fmt.Fprintf(&b, "searched for any of the following signatures, each optionally with a trailing %s parameter:\n",
		renderInjectables(injectables))
	for _, s := range searches {
		label := s.Label
		if label == "" {
			label = "candidate"
		}
		fmt.Fprintf(&b, "\non %s (%s):\n", typeName(s.Host), label)
		for _, name := range nameVariants(field) {
			fmt.Fprintf(&b, "  func %s.%s(%s)\n", typeName(s.Host), name, renderParams(field, s))
		}
		if scanProperties {
			fmt.Fprintf(&b, "  %s.%s (struct field)\n", typeName(s.Host), strcase.ToCamel(field.Name))
		}
	}
	return b.String()
}

func renderParams(field *schema.FieldDefinition, s Search) string {
	parts := make([]string, 0, len(field.Args)+1)
	if s.Leading != nil {
		lead := s.Leading.String()
		if s.Batched {
			lead = fmt.Sprintf("%s or []%s", lead, lead)
		}
		parts = append(parts, lead)
	}
	for _, arg := range field.Args {
		parts = append(parts, "~"+arg.Name)
	}
	return strings.Join(parts, ", ")
}

func renderInjectables(injectables []reflect.Type) string {
	names := make([]string, len(injectables))
	for i, t := range injectables {
		names[i] = t.String()
	}
	return strings.Join(names, " or ")
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
