package resolve

import (
	"context"
	"reflect"

	"github.com/jensneuse/abstractlogger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/hanpama/graphbind/schema"
)

// Binder resolves schema fields to members on candidate host types.
// A Binder is immutable after construction and safe for concurrent use.
type Binder struct {
	allowMissing bool
	injectables  []reflect.Type
	log          abstractlogger.Logger
}

// Option configures a Binder.
type Option func(*Binder)

// WithAllowUnimplementedResolvers switches the binder to permissive mode:
// a field with no matching member binds to a MemberMissing placeholder
// instead of failing.
func WithAllowUnimplementedResolvers() Option {
	return func(b *Binder) { b.allowMissing = true }
}

// WithRequestContext registers an additional type accepted as an injectable
// trailing parameter, alongside context.Context.
func WithRequestContext(t reflect.Type) Option {
	return func(b *Binder) { b.injectables = append(b.injectables, t) }
}

// WithLogger sets the logger used for permissive-mode warnings.
// The default is a no-op logger.
func WithLogger(log abstractlogger.Logger) Option {
	return func(b *Binder) { b.log = log }
}

// NewBinder builds a Binder. Without options it is strict and accepts only
// context.Context as an injectable trailing parameter.
func NewBinder(opts ...Option) *Binder {
	b := &Binder{
		injectables: []reflect.Type{contextType},
		log:         abstractlogger.Noop{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Resolve binds one field against the ordered searches supplied by info.
//
// Every search is scanned and all matches are collected. Root resolution
// fails on more than one match; otherwise the first match in search order
// wins. With no match the binder fails carrying the full signature
// diagnostic, or, in permissive mode, logs a warning and returns a
// MemberMissing placeholder whose Warning holds the same diagnostic.
func (b *Binder) Resolve(field *schema.FieldDefinition, info ResolverInfo) (*ResolvedMember, error) {
	searches := info.Searches()
	scanProperties := len(field.Args) == 0

	var matches []*ResolvedMember
	for _, s := range searches {
		if m := b.match(field, s, scanProperties); m != nil {
			matches = append(matches, m)
		}
	}

	if info.Root() && len(matches) > 1 {
		return nil, &AmbiguousResolverError{Field: field, Matches: matches}
	}
	if len(matches) > 0 {
		return matches[0], nil
	}

	detail := formatSignatures(field, searches, scanProperties, b.injectables)
	if b.allowMissing {
		b.log.Warn("no resolver member found, binding placeholder",
			abstractlogger.String("field", field.Name),
			abstractlogger.String("position", field.Position.String()),
		)
		return &ResolvedMember{
			Member:  Member{Kind: MemberMissing},
			Warning: missingDiagnostic(field, detail),
		}, nil
	}
	return nil, &MissingResolverError{Field: field, Detail: detail}
}

// ResolveAll binds many fields concurrently. results[i] corresponds to
// fields[i]; the first fatal resolution error aborts the batch. Fields are
// independent, so no ordering between their resolutions is required.
func (b *Binder) ResolveAll(ctx context.Context, fields []*schema.FieldDefinition, infoFor func(*schema.FieldDefinition) ResolverInfo) ([]*ResolvedMember, error) {
	ctx, span := otel.Tracer("graphbind").Start(ctx, "graphbind.resolve_all",
		trace.WithAttributes(attribute.Int("graphbind.fields", len(fields))))
	defer span.End()

	out := make([]*ResolvedMember, len(fields))
	g, _ := errgroup.WithContext(ctx)
	for i, field := range fields {
		g.Go(func() error {
			resolved, err := b.Resolve(field, infoFor(field))
			if err != nil {
				return err
			}
			out[i] = resolved
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}
