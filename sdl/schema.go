/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package sdl builds graphql-go schema from type definitions written in GraphQL SDL. The types are
// created without resolvers. Use relay.Bindable's to attach resolvers to them.
package sdl

import (
	"sort"
	"strings"

	"github.com/botobag/relay"
	"github.com/graphql-go/graphql"
	"github.com/jensneuse/abstractlogger"
	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// DefaultDeprecationReason is the reason given to the elements marked with @deprecated without
// a reason.
const DefaultDeprecationReason = "No longer supported"

// BuildSchema parses typeDefs and creates a graphql-go schema from them. Multiple type definitions
// are concatenated (so a type could be extended in a later one.) Interfaces and unions are given
// relay.ResolveTypeByTypename as type resolver.
func BuildSchema(typeDefs ...string) (*graphql.Schema, error) {
	if len(typeDefs) == 0 {
		return nil, errors.New("sdl: no type definitions")
	}

	sources := make([]*ast.Source, len(typeDefs))
	for i, typeDef := range typeDefs {
		sources[i] = &ast.Source{
			Name:  "typeDefs",
			Input: typeDef,
		}
	}

	doc, gqlErr := gqlparser.LoadSchema(sources...)
	if gqlErr != nil {
		return nil, errors.Wrap(gqlErr, "sdl: invalid type definitions")
	}

	b := &builder{
		doc:   doc,
		types: map[string]graphql.Type{},
	}

	config := graphql.SchemaConfig{}
	if doc.Query == nil {
		return nil, errors.New("sdl: schema doesn't define query type")
	}
	config.Query = b.namedType(doc.Query.Name).(*graphql.Object)
	if doc.Mutation != nil {
		config.Mutation = b.namedType(doc.Mutation.Name).(*graphql.Object)
	}
	if doc.Subscription != nil {
		config.Subscription = b.namedType(doc.Subscription.Name).(*graphql.Object)
	}

	// Include types that are not reachable from the root types (e.g., an object that implements an
	// interface but is never referenced by a field).
	names := make([]string, 0, len(doc.Types))
	for name, def := range doc.Types {
		if !def.BuiltIn {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		config.Types = append(config.Types, b.namedType(name))
	}

	schema, err := graphql.NewSchema(config)
	if err != nil {
		return nil, errors.Wrap(err, "sdl: build schema")
	}

	relay.Logger().Debug("sdl.BuildSchema",
		abstractlogger.Int("types", len(names)))

	return &schema, nil
}

// MakeExecutableSchema builds a schema from typeDefs and binds resolvers in bindables to it.
func MakeExecutableSchema(typeDefs string, bindables ...relay.Bindable) (*graphql.Schema, error) {
	schema, err := BuildSchema(typeDefs)
	if err != nil {
		return nil, err
	}

	if err := relay.BindToSchema(schema, bindables...); err != nil {
		return nil, err
	}

	return schema, nil
}

//===----------------------------------------------------------------------------------------====//
// builder
//===----------------------------------------------------------------------------------------====//

type builder struct {
	doc *ast.Schema

	// Created types keyed by name
	types map[string]graphql.Type
}

func (b *builder) namedType(name string) graphql.Type {
	if t, exists := b.types[name]; exists {
		return t
	}

	var t graphql.Type
	switch name {
	case "Int":
		t = graphql.Int
	case "Float":
		t = graphql.Float
	case "String":
		t = graphql.String
	case "Boolean":
		t = graphql.Boolean
	case "ID":
		t = graphql.ID
	default:
		t = b.newType(b.doc.Types[name])
	}

	b.types[name] = t
	return t
}

func (b *builder) newType(def *ast.Definition) graphql.Type {
	switch def.Kind {
	case ast.Scalar:
		return b.newScalar(def)
	case ast.Object:
		return b.newObject(def)
	case ast.Interface:
		return b.newInterface(def)
	case ast.Union:
		return b.newUnion(def)
	case ast.Enum:
		return b.newEnum(def)
	case ast.InputObject:
		return b.newInputObject(def)
	}
	panic("sdl: unknown definition kind " + string(def.Kind))
}

func (b *builder) typeRef(t *ast.Type) graphql.Type {
	var result graphql.Type
	if t.Elem != nil {
		result = graphql.NewList(b.typeRef(t.Elem))
	} else {
		result = b.namedType(t.NamedType)
	}
	if t.NonNull {
		result = graphql.NewNonNull(result)
	}
	return result
}

func (b *builder) outputType(t *ast.Type) graphql.Output {
	return b.typeRef(t).(graphql.Output)
}

func (b *builder) inputType(t *ast.Type) graphql.Input {
	return b.typeRef(t).(graphql.Input)
}

func (b *builder) newObject(def *ast.Definition) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        def.Name,
		Description: def.Description,
		Interfaces: graphql.InterfacesThunk(func() []*graphql.Interface {
			interfaces := make([]*graphql.Interface, len(def.Interfaces))
			for i, name := range def.Interfaces {
				interfaces[i] = b.namedType(name).(*graphql.Interface)
			}
			return interfaces
		}),
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return b.fields(def)
		}),
	})
}

func (b *builder) newInterface(def *ast.Definition) *graphql.Interface {
	return graphql.NewInterface(graphql.InterfaceConfig{
		Name:        def.Name,
		Description: def.Description,
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return b.fields(def)
		}),
		ResolveType: relay.ResolveTypeByTypename,
	})
}

func (b *builder) newUnion(def *ast.Definition) *graphql.Union {
	return graphql.NewUnion(graphql.UnionConfig{
		Name:        def.Name,
		Description: def.Description,
		Types: graphql.UnionTypesThunk(func() []*graphql.Object {
			types := make([]*graphql.Object, len(def.Types))
			for i, name := range def.Types {
				types[i] = b.namedType(name).(*graphql.Object)
			}
			return types
		}),
		ResolveType: relay.ResolveTypeByTypename,
	})
}

func (b *builder) newEnum(def *ast.Definition) *graphql.Enum {
	values := graphql.EnumValueConfigMap{}
	for _, value := range def.EnumValues {
		values[value.Name] = &graphql.EnumValueConfig{
			Value:             value.Name,
			Description:       value.Description,
			DeprecationReason: deprecationReason(value.Directives),
		}
	}

	return graphql.NewEnum(graphql.EnumConfig{
		Name:        def.Name,
		Description: def.Description,
		Values:      values,
	})
}

func (b *builder) newInputObject(def *ast.Definition) *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        def.Name,
		Description: def.Description,
		Fields: graphql.InputObjectConfigFieldMapThunk(func() graphql.InputObjectConfigFieldMap {
			fields := graphql.InputObjectConfigFieldMap{}
			for _, field := range def.Fields {
				fields[field.Name] = &graphql.InputObjectFieldConfig{
					Type:         b.inputType(field.Type),
					DefaultValue: defaultValue(field.DefaultValue),
					Description:  field.Description,
				}
			}
			return fields
		}),
	})
}

// newScalar creates a custom scalar which passes values through. Literals are converted to Go
// values with valueFromLiteral.
func (b *builder) newScalar(def *ast.Definition) *graphql.Scalar {
	identity := func(value interface{}) interface{} {
		return value
	}
	return graphql.NewScalar(graphql.ScalarConfig{
		Name:         def.Name,
		Description:  def.Description,
		Serialize:    identity,
		ParseValue:   identity,
		ParseLiteral: valueFromLiteral,
	})
}

func (b *builder) fields(def *ast.Definition) graphql.Fields {
	fields := graphql.Fields{}
	for _, field := range def.Fields {
		// Skip __schema and __type added to the query type by gqlparser.
		if strings.HasPrefix(field.Name, "__") {
			continue
		}

		args := graphql.FieldConfigArgument{}
		for _, arg := range field.Arguments {
			args[arg.Name] = &graphql.ArgumentConfig{
				Type:         b.inputType(arg.Type),
				DefaultValue: defaultValue(arg.DefaultValue),
				Description:  arg.Description,
			}
		}

		fields[field.Name] = &graphql.Field{
			Name:              field.Name,
			Type:              b.outputType(field.Type),
			Args:              args,
			Description:       field.Description,
			DeprecationReason: deprecationReason(field.Directives),
		}
	}
	return fields
}

func defaultValue(value *ast.Value) interface{} {
	if value == nil {
		return nil
	}
	v, err := value.Value(nil)
	if err != nil {
		return nil
	}
	return v
}

func deprecationReason(directives ast.DirectiveList) string {
	directive := directives.ForName("deprecated")
	if directive == nil {
		return ""
	}
	// Directives on enum values carry no Definition so ArgumentMap can't be used.
	if arg := directive.Arguments.ForName("reason"); arg != nil && arg.Value != nil && arg.Value.Raw != "" {
		return arg.Value.Raw
	}
	return DefaultDeprecationReason
}
