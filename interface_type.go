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

package relay

import (
	"github.com/graphql-go/graphql"
)

// InterfaceType binds a type resolver, field resolvers and connection resolvers to an interface
// type. Field resolvers are also bound to the object types that implement the interface unless the
// object field already has one.
type InterfaceType struct {
	name         string
	typeResolver graphql.ResolveTypeFn
	fields       fieldResolvers
}

var _ Bindable = (*InterfaceType)(nil)

// NewInterfaceType creates an InterfaceType for binding to the interface with the given name.
// typeResolver could be nil in which case the one in the schema is kept.
func NewInterfaceType(name string, typeResolver graphql.ResolveTypeFn) *InterfaceType {
	return &InterfaceType{
		name:         name,
		typeResolver: typeResolver,
	}
}

// Name implements Bindable.
func (t *InterfaceType) Name() string {
	return t.name
}

// SetTypeResolver sets the function to determine the object type of a value of the interface.
func (t *InterfaceType) SetTypeResolver(typeResolver graphql.ResolveTypeFn) *InterfaceType {
	t.typeResolver = typeResolver
	return t
}

// SetField sets the resolver for the named field.
func (t *InterfaceType) SetField(name string, resolver graphql.FieldResolveFn) *InterfaceType {
	t.fields.setField(name, resolver)
	return t
}

// SetAlias makes the named field resolve to the value of the source field of the parent value.
func (t *InterfaceType) SetAlias(name string, source string) *InterfaceType {
	t.fields.setAlias(name, source)
	return t
}

// SetConnection sets resolver for a connection field. See ObjectType.SetConnection.
func (t *InterfaceType) SetConnection(name string, resolver ConnectionResolver, opts ...ConnectionOption) *InterfaceType {
	t.fields.setConnection(name, resolver, opts...)
	return t
}

// Bind implements Bindable.
func (t *InterfaceType) Bind(schema *graphql.Schema, replaceExisting bool) error {
	const op Op = "relay.InterfaceType.Bind"
	graphqlType, err := lookupType(op, schema, t.name, "interface")
	if err != nil {
		return err
	}

	iface := graphqlType.(*graphql.Interface)
	if err := t.BindInterface(iface, replaceExisting); err != nil {
		return err
	}

	for _, object := range objectsImplementing(schema, iface) {
		if err := t.fields.bind(op, t.name, object.Fields(), false); err != nil {
			return err
		}
	}

	return nil
}

// BindInterface installs the type resolver and field resolvers onto the given interface.
func (t *InterfaceType) BindInterface(iface *graphql.Interface, replaceExisting bool) error {
	if t.typeResolver != nil && (iface.ResolveType == nil || replaceExisting) {
		iface.ResolveType = t.typeResolver
	}
	return t.fields.bind("relay.InterfaceType.BindInterface", t.name, iface.Fields(), replaceExisting)
}
