package resolve

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/graphbind/schema"
)

type order struct {
	ID string
}

type orderResolver struct{}

func (orderResolver) Total(o *order, tax bool, tip bool, ctx context.Context) int { return 0 }
func (orderResolver) Weird(a, b, c string) string                                 { return "" }

type rootQuery struct{}

func (rootQuery) Version() string { return "" }

type altRootQuery struct{}

func (altRootQuery) Version() string { return "" }

type emptyResolver struct{}

func orderSearch() Search {
	return Search{
		Host:    reflect.TypeOf(orderResolver{}),
		Label:   "resolver",
		Leading: reflect.TypeOf(&order{}),
	}
}

func TestResolve(t *testing.T) {
	b := NewBinder()

	t.Run("trailing context does not count against declared arity", func(t *testing.T) {
		field := &schema.FieldDefinition{
			Name: "total",
			Type: schema.NamedType("Int"),
			Args: []*schema.ArgumentDefinition{
				{Name: "tax", Type: schema.NamedType("Boolean")},
				{Name: "tip", Type: schema.NamedType("Boolean")},
			},
		}
		resolved, err := b.Resolve(field, NewResolverInfo(false, orderSearch()))
		require.NoError(t, err)
		require.Equal(t, MemberMethod, resolved.Kind)
		require.Equal(t, "Total", resolved.Method.Name)
	})

	t.Run("unrelated extra parameters fail resolution", func(t *testing.T) {
		field := &schema.FieldDefinition{
			Name: "weird",
			Type: schema.NamedType("String"),
			Args: []*schema.ArgumentDefinition{
				{Name: "a", Type: schema.NamedType("String")},
				{Name: "b", Type: schema.NamedType("String")},
			},
		}
		_, err := b.Resolve(field, NewResolverInfo(false, Search{Host: reflect.TypeOf(orderResolver{})}))
		var missing *MissingResolverError
		require.ErrorAs(t, err, &missing)
		require.Equal(t, field, missing.Field)
	})

	t.Run("root fields matched by two searches are ambiguous", func(t *testing.T) {
		field := zeroArgField("version", "String")
		searches := []Search{
			{Host: reflect.TypeOf(rootQuery{}), Label: "query resolver"},
			{Host: reflect.TypeOf(altRootQuery{}), Label: "query resolver"},
		}
		_, err := b.Resolve(field, NewResolverInfo(true, searches...))
		var ambiguous *AmbiguousResolverError
		require.ErrorAs(t, err, &ambiguous)
		require.Len(t, ambiguous.Matches, 2)

		// Order does not rescue the ambiguity.
		_, err = b.Resolve(field, NewResolverInfo(true, searches[1], searches[0]))
		require.ErrorAs(t, err, &ambiguous)
	})

	t.Run("non-root fields take the first match in search order", func(t *testing.T) {
		field := zeroArgField("version", "String")
		first := Search{Host: reflect.TypeOf(rootQuery{})}
		second := Search{Host: reflect.TypeOf(altRootQuery{})}

		resolved, err := b.Resolve(field, NewResolverInfo(false, first, second))
		require.NoError(t, err)
		require.Equal(t, first.Host, resolved.Search.Host)

		resolved, err = b.Resolve(field, NewResolverInfo(false, second, first))
		require.NoError(t, err)
		require.Equal(t, second.Host, resolved.Search.Host)
	})

	t.Run("map-shaped hosts resolve instead of going missing", func(t *testing.T) {
		field := zeroArgField("anything", "String")
		resolved, err := b.Resolve(field, NewResolverInfo(false, Search{Host: reflect.TypeOf(map[string]any{})}))
		require.NoError(t, err)
		require.Equal(t, MemberMapAccess, resolved.Kind)
	})

	t.Run("resolution is deterministic across calls", func(t *testing.T) {
		field := zeroArgField("title", "String")
		info := NewResolverInfo(false,
			Search{Host: reflect.TypeOf(productResolver{})},
			Search{Host: reflect.TypeOf(product{})},
		)
		first, err := b.Resolve(field, info)
		require.NoError(t, err)
		second, err := b.Resolve(field, info)
		require.NoError(t, err)
		require.Equal(t, first.Kind, second.Kind)
		require.Equal(t, first.Method.Name, second.Method.Name)
		require.Equal(t, first.Search.Host, second.Search.Host)
	})

	t.Run("permissive mode binds a placeholder and never fails", func(t *testing.T) {
		permissive := NewBinder(WithAllowUnimplementedResolvers())
		field := &schema.FieldDefinition{
			Name:     "ghost",
			Type:     schema.NamedType("String"),
			Position: &schema.Position{File: "orders.graphql", Line: 12, Column: 3},
		}
		resolved, err := permissive.Resolve(field, NewResolverInfo(false, Search{Host: reflect.TypeOf(emptyResolver{})}))
		require.NoError(t, err)
		require.Equal(t, MemberMissing, resolved.Kind)
		require.NotNil(t, resolved.Warning)
		require.Contains(t, resolved.Warning.Message, "GetGhost")
		require.Equal(t, "orders.graphql", resolved.Warning.File)
		require.Equal(t, 12, resolved.Warning.Line)
	})

	t.Run("strict diagnostics list every signature tried", func(t *testing.T) {
		field := &schema.FieldDefinition{
			Name:     "active",
			Type:     schema.NamedType("Boolean"),
			Position: &schema.Position{File: "users.graphql", Line: 4, Column: 5},
		}
		search := Search{
			Host:    reflect.TypeOf(emptyResolver{}),
			Label:   "resolver",
			Leading: reflect.TypeOf(&order{}),
		}
		_, err := b.Resolve(field, NewResolverInfo(false, search))
		var missing *MissingResolverError
		require.ErrorAs(t, err, &missing)

		for _, want := range []string{
			"Active", "IsActive", "GetActive", "GetActiveList", "GetFieldActive",
			"(struct field)",
			"users.graphql:4:5",
			"context.Context",
			"*resolve.order",
		} {
			require.Contains(t, err.Error(), want)
		}
	})

	t.Run("argument names render distinctly from parameters", func(t *testing.T) {
		field := &schema.FieldDefinition{
			Name: "lines",
			Type: schema.NamedType("String"),
			Args: []*schema.ArgumentDefinition{{Name: "first", Type: schema.NamedType("Int")}},
		}
		_, err := b.Resolve(field, NewResolverInfo(false, Search{Host: reflect.TypeOf(emptyResolver{})}))
		require.Error(t, err)
		require.Contains(t, err.Error(), "~first")
		require.Contains(t, err.Error(), "<unknown>")
	})
}

func TestResolveAll(t *testing.T) {
	b := NewBinder()

	t.Run("results stay index-aligned with fields", func(t *testing.T) {
		fields := []*schema.FieldDefinition{
			zeroArgField("title", "String"),
			zeroArgField("archived", "Boolean"),
		}
		infoFor := func(*schema.FieldDefinition) ResolverInfo {
			return NewResolverInfo(false, Search{Host: reflect.TypeOf(productResolver{})})
		}
		resolved, err := b.ResolveAll(context.Background(), fields, infoFor)
		require.NoError(t, err)
		require.Len(t, resolved, 2)
		require.Equal(t, "Title", resolved[0].Method.Name)
		require.Equal(t, "IsArchived", resolved[1].Method.Name)
	})

	t.Run("the first fatal error aborts the batch", func(t *testing.T) {
		fields := []*schema.FieldDefinition{
			zeroArgField("title", "String"),
			zeroArgField("ghost", "String"),
		}
		infoFor := func(*schema.FieldDefinition) ResolverInfo {
			return NewResolverInfo(false, Search{Host: reflect.TypeOf(productResolver{})})
		}
		resolved, err := b.ResolveAll(context.Background(), fields, infoFor)
		require.Nil(t, resolved)
		var missing *MissingResolverError
		require.True(t, errors.As(err, &missing))
	})
}
