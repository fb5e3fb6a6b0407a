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
	"github.com/jensneuse/abstractlogger"
)

// ResolveNodeQuery resolves the root field "node(id: ID!): Node". It decodes the global ID in the
// "id" argument and calls the InstanceResolver registered for the decoded type name by
// NodeObjectType or NodeInterfaceType.
//
// The field resolves to null without error when the ID cannot be decoded, when the decoded type
// name is not in the schema, or when no InstanceResolver is registered for the type.
func ResolveNodeQuery(p graphql.ResolveParams) (interface{}, error) {
	globalID, _ := p.Args["id"].(string)
	return resolveNode(p, globalID)
}

// ResolveNodesQuery resolves the root field "nodes(ids: [ID!]!): [Node]!". Each ID is resolved as
// in ResolveNodeQuery and the result list has the same order as ids.
func ResolveNodesQuery(p graphql.ResolveParams) (interface{}, error) {
	ids, _ := p.Args["ids"].([]interface{})

	var (
		nodes    = make([]interface{}, len(ids))
		hasThunk bool
	)
	for i, id := range ids {
		globalID, _ := id.(string)
		node, err := resolveNode(p, globalID)
		if err != nil {
			return nil, err
		}
		if _, ok := node.(Thunk); ok {
			hasThunk = true
		}
		nodes[i] = node
	}

	if !hasThunk {
		return nodes, nil
	}

	// Let graphql-go call the thunks after the other fields at the same level are resolved. This
	// gives chance for the thunks to be batched.
	return Thunk(func() (interface{}, error) {
		for i, node := range nodes {
			value, err := ResolveThunk(node)
			if err != nil {
				return nil, err
			}
			nodes[i] = value
		}
		return nodes, nil
	}), nil
}

func resolveNode(p graphql.ResolveParams, globalID string) (interface{}, error) {
	resolved, ok := FromGlobalID(globalID)
	if !ok {
		Logger().Debug("relay.ResolveNodeQuery",
			abstractlogger.String("id", globalID),
			abstractlogger.String("reason", "malformed global ID"))
		return nil, nil
	}

	nodeType := p.Info.Schema.Type(resolved.Type)
	if nodeType == nil {
		Logger().Debug("relay.ResolveNodeQuery",
			abstractlogger.String("id", globalID),
			abstractlogger.String("reason", "unknown type "+resolved.Type))
		return nil, nil
	}

	instanceResolver := nodeResolversOf(nodeType).instance
	if instanceResolver == nil {
		Logger().Debug("relay.ResolveNodeQuery",
			abstractlogger.String("id", globalID),
			abstractlogger.String("reason", "no instance resolver for "+resolved.Type))
		return nil, nil
	}

	return instanceResolver(resolved.ID, p)
}

//===----------------------------------------------------------------------------------------====//
// Type Resolution
//===----------------------------------------------------------------------------------------====//

// Typenamed is implemented by values which know their GraphQL type name.
type Typenamed interface {
	GraphQLTypename() string
}

// TypenameOf returns the GraphQL type name carried by value. It recognizes values implementing
// Typenamed and maps containing a "__typename" string entry. Return an empty string otherwise.
func TypenameOf(value interface{}) string {
	switch value := value.(type) {
	case Typenamed:
		return value.GraphQLTypename()
	case map[string]interface{}:
		if typename, ok := value["__typename"].(string); ok {
			return typename
		}
	}
	return ""
}

// ResolveTypeByTypename is a graphql.ResolveTypeFn which finds the object type named by
// TypenameOf(p.Value) in the schema. If value doesn't carry a type name, the possible types whose
// IsTypeOf accepts the value are tried in turn.
func ResolveTypeByTypename(p graphql.ResolveTypeParams) *graphql.Object {
	if typename := TypenameOf(p.Value); len(typename) > 0 {
		if object, ok := p.Info.Schema.Type(typename).(*graphql.Object); ok {
			return object
		}
		return nil
	}

	if abstractType, ok := graphql.GetNamed(p.Info.ReturnType).(graphql.Abstract); ok {
		for _, object := range p.Info.Schema.PossibleTypes(abstractType) {
			if object.IsTypeOf != nil && object.IsTypeOf(graphql.IsTypeOfParams{
				Value:   p.Value,
				Info:    p.Info,
				Context: p.Context,
			}) {
				return object
			}
		}
	}

	return nil
}
