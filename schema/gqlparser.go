package schema

import "github.com/vektah/gqlparser/v2/ast"

// FieldFromAST converts a gqlparser field definition into the binder's view.
func FieldFromAST(def *ast.FieldDefinition) *FieldDefinition {
	field := &FieldDefinition{
		Name:     def.Name,
		Type:     typeRefFromAST(def.Type),
		Position: positionFromAST(def.Position),
	}
	for _, arg := range def.Arguments {
		field.Args = append(field.Args, &ArgumentDefinition{
			Name: arg.Name,
			Type: typeRefFromAST(arg.Type),
		})
	}
	return field
}

// FieldsFromAST converts every field of an object or interface definition,
// preserving declaration order.
func FieldsFromAST(def *ast.Definition) []*FieldDefinition {
	fields := make([]*FieldDefinition, 0, len(def.Fields))
	for _, fd := range def.Fields {
		fields = append(fields, FieldFromAST(fd))
	}
	return fields
}

func typeRefFromAST(t *ast.Type) *TypeRef {
	if t == nil {
		return nil
	}
	var ref *TypeRef
	if t.Elem != nil {
		ref = ListType(typeRefFromAST(t.Elem))
	} else {
		ref = NamedType(t.NamedType)
	}
	if t.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

func positionFromAST(p *ast.Position) *Position {
	if p == nil {
		return nil
	}
	pos := &Position{Line: p.Line, Column: p.Column}
	if p.Src != nil {
		pos.File = p.Src.Name
	}
	return pos
}
