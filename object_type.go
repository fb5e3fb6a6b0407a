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

// ObjectType binds field resolvers and connection resolvers to an object type.
type ObjectType struct {
	name   string
	fields fieldResolvers
}

var _ Bindable = (*ObjectType)(nil)

// NewObjectType creates an ObjectType for binding to the object type with the given name.
func NewObjectType(name string) *ObjectType {
	return &ObjectType{name: name}
}

// NewQueryType is a shorthand for NewObjectType("Query").
func NewQueryType() *ObjectType {
	return NewObjectType("Query")
}

// NewMutationType is a shorthand for NewObjectType("Mutation").
func NewMutationType() *ObjectType {
	return NewObjectType("Mutation")
}

// Name implements Bindable.
func (t *ObjectType) Name() string {
	return t.name
}

// SetField sets the resolver for the named field.
func (t *ObjectType) SetField(name string, resolver graphql.FieldResolveFn) *ObjectType {
	t.fields.setField(name, resolver)
	return t
}

// SetAlias makes the named field resolve to the value of the source field (or map entry) of the
// parent value using graphql.DefaultResolveFn.
func (t *ObjectType) SetAlias(name string, source string) *ObjectType {
	t.fields.setAlias(name, source)
	return t
}

// SetConnection sets resolver for a connection field. resolver loads data, and the connection
// value is built from the data with the ConnectionFactory given in opts (or the default one.)
func (t *ObjectType) SetConnection(name string, resolver ConnectionResolver, opts ...ConnectionOption) *ObjectType {
	t.fields.setConnection(name, resolver, opts...)
	return t
}

// Bind implements Bindable.
func (t *ObjectType) Bind(schema *graphql.Schema, replaceExisting bool) error {
	const op Op = "relay.ObjectType.Bind"
	graphqlType, err := lookupType(op, schema, t.name, "object")
	if err != nil {
		return err
	}
	return t.BindObject(graphqlType.(*graphql.Object), replaceExisting)
}

// BindObject installs the resolvers onto the given object.
func (t *ObjectType) BindObject(object *graphql.Object, replaceExisting bool) error {
	return t.fields.bind("relay.ObjectType.BindObject", t.name, object.Fields(), replaceExisting)
}
