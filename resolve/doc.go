// Package resolve binds schema field definitions to concrete members on
// candidate Go host types: a method, an exported struct field, or a key
// lookup on a string-keyed map.
//
// Binding happens once per field during schema setup, not per request. For
// each field the Binder walks an ordered list of searches supplied by a
// ResolverInfo. A search names the host type to scan, the resolution context
// it belongs to, and optionally a leading parameter type the member must
// accept before the field's own arguments (the source object or a batch key).
//
// Within one search, method names are tried in a fixed priority order:
// the field name itself, the Is form for Boolean fields, then the Get,
// GetList, and GetField forms. A name hit whose signature cannot carry the
// field's arguments is skipped rather than taken. Methods may accept one
// extra trailing parameter beyond the field's arity when its type is
// injectable (context.Context, or a request-context type registered on the
// Binder); that parameter is filled by the invocation layer, not by schema
// arguments. When the field declares no arguments, an exported struct field
// with the same name satisfies it. A string-keyed map host satisfies any
// remaining field through a deferred key lookup.
//
// Resolution is deterministic: identical inputs always select the identical
// member. A root-level field matched under more than one search is a fatal
// ambiguity regardless of search order. A field matched under no search is
// fatal in strict mode, with a diagnostic listing every signature that was
// tried; in permissive mode it binds to a MemberMissing placeholder whose
// Warning carries the same diagnostic, and invocation of the placeholder is
// expected to fail at request time instead.
//
// The Binder holds no cross-field state and all matching is pure, so
// distinct fields may be resolved concurrently; ResolveAll does exactly
// that and keeps results index-aligned with its input.
package resolve
