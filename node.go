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
	"fmt"
	"sync"

	"github.com/graphql-go/graphql"
	"github.com/jensneuse/abstractlogger"
)

// IDResolver returns the local ID of p.Source which is an object of a node type. The ID is
// converted to string with graphql.ID before being encoded into a global ID. It could return a
// thunk.
type IDResolver func(p graphql.ResolveParams) (interface{}, error)

// InstanceResolver loads the object of a node type with the given local ID. It is called by
// ResolveNodeQuery. p is the ResolveParams given to the "node" field. It could return a thunk.
type InstanceResolver func(id string, p graphql.ResolveParams) (interface{}, error)

// TypenameResolver returns the type name to be encoded in the global ID of p.Source. It could
// return a thunk.
type TypenameResolver func(p graphql.ResolveParams) (interface{}, error)

//===----------------------------------------------------------------------------------------====//
// Resolver Registry
//===----------------------------------------------------------------------------------------====//

// nodeResolvers holds the resolvers in the three roles for a type.
type nodeResolvers struct {
	id       IDResolver
	instance InstanceResolver
	typename TypenameResolver
}

// The registry attaches nodeResolvers to named types in a schema. graphql-go's type objects don't
// carry user data so the resolvers are kept here keyed by the type object. Entries are written when
// binding and are read by field resolvers at execution. They live as long as the process unless
// ReleaseSchema is called.
var registry = struct {
	sync.RWMutex
	types map[graphql.Type]*nodeResolvers
}{
	types: map[graphql.Type]*nodeResolvers{},
}

// nodeResolversOf returns a copy of the resolvers registered for t.
func nodeResolversOf(t graphql.Type) nodeResolvers {
	registry.RLock()
	defer registry.RUnlock()
	if r := registry.types[t]; r != nil {
		return *r
	}
	return nodeResolvers{}
}

// register writes the non-nil resolvers in r to the registry entry for t. An existing entry is
// overwritten only if replaceExisting is true. The instance resolver is registered only if
// registerInstance is true.
func (r *nodeResolvers) register(t graphql.Type, registerInstance bool, replaceExisting bool) {
	registry.Lock()
	defer registry.Unlock()

	entry := registry.types[t]
	if entry == nil {
		entry = &nodeResolvers{}
		registry.types[t] = entry
	}

	if r.id != nil && (entry.id == nil || replaceExisting) {
		entry.id = r.id
	}
	if registerInstance && r.instance != nil && (entry.instance == nil || replaceExisting) {
		entry.instance = r.instance
	}
	if r.typename != nil && (entry.typename == nil || replaceExisting) {
		entry.typename = r.typename
	}
}

// ReleaseSchema drops the node resolvers registered for the types in schema. It should be called
// when a schema built at runtime is discarded. The "id" fields keep working afterwards but fall back
// to the type name and the "id" value of the object, and ResolveNodeQuery no longer finds objects
// of the released types.
func ReleaseSchema(schema *graphql.Schema) {
	registry.Lock()
	defer registry.Unlock()
	for _, t := range schema.TypeMap() {
		delete(registry.types, t)
	}
}

// bind installs the "id" field resolver onto a type and registers the resolvers for it. name is the
// name of the Bindable.
func (r *nodeResolvers) bind(
	op Op,
	name string,
	graphqlType graphql.Type,
	fields graphql.FieldDefinitionMap,
	replaceExisting bool) error {

	field, exists := fields["id"]
	if !exists {
		return newFieldNotDefinedError(op, "id", name, fields)
	}

	if field.Resolve == nil || replaceExisting {
		field.Resolve = resolveNodeIDField
	}

	r.register(graphqlType, graphqlType.Name() == name, replaceExisting)

	Logger().Debug("relay.bindNode",
		abstractlogger.String("bindable", name),
		abstractlogger.String("type", graphqlType.Name()))

	return nil
}

// resolveNodeIDField resolves the "id" field of a node type to a global ID.
func resolveNodeIDField(p graphql.ResolveParams) (interface{}, error) {
	resolvers := nodeResolversOf(p.Info.ParentType)

	var (
		typename interface{} = p.Info.ParentType.Name()
		id       interface{}
		err      error
	)

	if resolvers.typename != nil {
		typename, err = resolvers.typename(p)
		if err != nil {
			return nil, err
		}
	}

	if resolvers.id != nil {
		id, err = resolvers.id(p)
	} else {
		id, err = graphql.DefaultResolveFn(p)
	}
	if err != nil {
		return nil, err
	}

	return then(typename, func(typename interface{}) (interface{}, error) {
		return then(id, func(id interface{}) (interface{}, error) {
			return globalIDOf(typename, id), nil
		})
	})
}

// globalIDOf stringifies typename and id and encodes them into a global ID. Return nil if id is nil.
func globalIDOf(typename interface{}, id interface{}) interface{} {
	if id == nil {
		return nil
	}

	name, ok := typename.(string)
	if !ok {
		name = fmt.Sprint(typename)
	}

	localID, ok := graphql.ID.Serialize(id).(string)
	if !ok {
		return nil
	}

	return ToGlobalID(name, localID)
}

//===----------------------------------------------------------------------------------------====//
// NodeTypeOption
//===----------------------------------------------------------------------------------------====//

// NodeTypeOption configures NodeObjectType and NodeInterfaceType.
type NodeTypeOption func(r *nodeResolvers)

// WithIDResolver sets the resolver to obtain local ID from an object. If not set, the "id" field (or
// map entry) of the object is used.
func WithIDResolver(resolver IDResolver) NodeTypeOption {
	return func(r *nodeResolvers) {
		r.id = resolver
	}
}

// WithInstanceResolver sets the resolver to load object from local ID for ResolveNodeQuery.
func WithInstanceResolver(resolver InstanceResolver) NodeTypeOption {
	return func(r *nodeResolvers) {
		r.instance = resolver
	}
}

// WithTypenameResolver sets the resolver to determine the type name in the global ID. If not set,
// the name of the object type is used.
func WithTypenameResolver(resolver TypenameResolver) NodeTypeOption {
	return func(r *nodeResolvers) {
		r.typename = resolver
	}
}

//===----------------------------------------------------------------------------------------====//
// NodeObjectType
//===----------------------------------------------------------------------------------------====//

// NodeObjectType is an ObjectType for an object that implements the Node interface. In addition to
// the field resolvers, it resolves the "id" field to a global ID and registers the resolvers used by
// ResolveNodeQuery.
type NodeObjectType struct {
	*ObjectType
	node nodeResolvers
}

var _ Bindable = (*NodeObjectType)(nil)

// NewNodeObjectType creates a NodeObjectType for binding to the object type with the given name.
func NewNodeObjectType(name string, opts ...NodeTypeOption) *NodeObjectType {
	t := &NodeObjectType{
		ObjectType: NewObjectType(name),
	}
	for _, opt := range opts {
		opt(&t.node)
	}
	return t
}

// SetIDResolver sets the resolver to obtain local ID from an object.
func (t *NodeObjectType) SetIDResolver(resolver IDResolver) *NodeObjectType {
	t.node.id = resolver
	return t
}

// SetInstanceResolver sets the resolver to load object from local ID.
func (t *NodeObjectType) SetInstanceResolver(resolver InstanceResolver) *NodeObjectType {
	t.node.instance = resolver
	return t
}

// SetTypenameResolver sets the resolver to determine the type name in the global ID.
func (t *NodeObjectType) SetTypenameResolver(resolver TypenameResolver) *NodeObjectType {
	t.node.typename = resolver
	return t
}

// Bind implements Bindable.
func (t *NodeObjectType) Bind(schema *graphql.Schema, replaceExisting bool) error {
	const op Op = "relay.NodeObjectType.Bind"
	graphqlType, err := lookupType(op, schema, t.name, "object")
	if err != nil {
		return err
	}
	return t.BindObject(graphqlType.(*graphql.Object), replaceExisting)
}

// BindObject installs the resolvers onto the given object.
func (t *NodeObjectType) BindObject(object *graphql.Object, replaceExisting bool) error {
	if err := t.ObjectType.BindObject(object, replaceExisting); err != nil {
		return err
	}
	return t.node.bind("relay.NodeObjectType.BindObject", t.name, object, object.Fields(), replaceExisting)
}

//===----------------------------------------------------------------------------------------====//
// NodeInterfaceType
//===----------------------------------------------------------------------------------------====//

// NodeInterfaceType is an InterfaceType for the Node interface or an interface that extends it.
// The "id" field resolver, the ID resolver and the typename resolver are also bound to the object
// types that implement the interface (without replacing the ones bound by NodeObjectType.) The
// instance resolver is registered for the interface only.
type NodeInterfaceType struct {
	*InterfaceType
	node nodeResolvers
}

var _ Bindable = (*NodeInterfaceType)(nil)

// NewNodeInterfaceType creates a NodeInterfaceType for binding to the interface with the given
// name. typeResolver could be nil in which case the one in the schema is kept.
func NewNodeInterfaceType(name string, typeResolver graphql.ResolveTypeFn, opts ...NodeTypeOption) *NodeInterfaceType {
	t := &NodeInterfaceType{
		InterfaceType: NewInterfaceType(name, typeResolver),
	}
	for _, opt := range opts {
		opt(&t.node)
	}
	return t
}

// SetIDResolver sets the resolver to obtain local ID from an object.
func (t *NodeInterfaceType) SetIDResolver(resolver IDResolver) *NodeInterfaceType {
	t.node.id = resolver
	return t
}

// SetInstanceResolver sets the resolver to load object from local ID.
func (t *NodeInterfaceType) SetInstanceResolver(resolver InstanceResolver) *NodeInterfaceType {
	t.node.instance = resolver
	return t
}

// SetTypenameResolver sets the resolver to determine the type name in the global ID.
func (t *NodeInterfaceType) SetTypenameResolver(resolver TypenameResolver) *NodeInterfaceType {
	t.node.typename = resolver
	return t
}

// Bind implements Bindable.
func (t *NodeInterfaceType) Bind(schema *graphql.Schema, replaceExisting bool) error {
	const op Op = "relay.NodeInterfaceType.Bind"
	graphqlType, err := lookupType(op, schema, t.name, "interface")
	if err != nil {
		return err
	}

	iface := graphqlType.(*graphql.Interface)
	if err := t.BindInterface(iface, replaceExisting); err != nil {
		return err
	}

	for _, object := range objectsImplementing(schema, iface) {
		fields := object.Fields()
		if err := t.fields.bind(op, t.name, fields, false); err != nil {
			return err
		}
		if err := t.node.bind(op, t.name, object, fields, false); err != nil {
			return err
		}
	}

	return nil
}

// BindInterface installs the resolvers onto the given interface.
func (t *NodeInterfaceType) BindInterface(iface *graphql.Interface, replaceExisting bool) error {
	if err := t.InterfaceType.BindInterface(iface, replaceExisting); err != nil {
		return err
	}
	return t.node.bind("relay.NodeInterfaceType.BindInterface", t.name, iface, iface.Fields(), replaceExisting)
}
