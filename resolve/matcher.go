package resolve

import (
	"github.com/iancoleman/strcase"

	"github.com/hanpama/graphbind/schema"
)

// nameVariants returns the method names tried for a field, in priority order.
// The Is form applies to Boolean fields only. The GetList and GetField forms
// are convention-driven variants ranked below the plain Get form; they carry
// no semantic distinction of their own.
func nameVariants(field *schema.FieldDefinition) []string {
	name := strcase.ToCamel(field.Name)
	variants := make([]string, 0, 5)
	variants = append(variants, name)
	if field.Type.IsBoolean() {
		variants = append(variants, "Is"+name)
	}
	variants = append(variants, "Get"+name, "Get"+name+"List", "GetField"+name)
	return variants
}

// match scans one search for the first member compatible with the field.
// A name hit with an incompatible signature is skipped, not taken: every
// variant is independently gated by the signature check. Methods are tried
// first, then the struct-field fallback for zero-argument fields, then the
// map-accessor fallback for string-keyed map hosts.
func (b *Binder) match(field *schema.FieldDefinition, s Search, scanProperties bool) *ResolvedMember {
	candidates := methodsOf(s.Host)
	for _, name := range nameVariants(field) {
		for _, c := range candidates {
			if c.method.Name != name {
				continue
			}
			if !b.compatible(c.params, len(field.Args), s) {
				continue
			}
			return &ResolvedMember{
				Member: Member{Kind: MemberMethod, Method: c.method, Params: c.params},
				Search: s,
			}
		}
	}
	if scanProperties {
		if f, ok := propertyOf(s.Host, strcase.ToCamel(field.Name)); ok {
			return &ResolvedMember{
				Member: Member{Kind: MemberProperty, Field: f},
				Search: s,
			}
		}
	}
	if mapShaped(s.Host) {
		return &ResolvedMember{
			Member: Member{Kind: MemberMapAccess},
			Search: s,
		}
	}
	return nil
}
