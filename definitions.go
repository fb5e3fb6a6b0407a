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

// This file provides type definitions for building a Relay schema in code with graphql-go instead
// of from SDL.

//===----------------------------------------------------------------------------------------====//
// Connection Types
//===----------------------------------------------------------------------------------------====//

// PageInfoType is the object type "PageInfo" which resolves from *PageInfo.
var PageInfoType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "PageInfo",
	Description: "Information about pagination in a connection.",
	Fields: graphql.Fields{
		"hasNextPage": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.Boolean),
			Description: "When paginating forwards, are there more items?",
		},
		"hasPreviousPage": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.Boolean),
			Description: "When paginating backwards, are there more items?",
		},
		"startCursor": &graphql.Field{
			Type:        graphql.String,
			Description: "When paginating backwards, the cursor to continue.",
		},
		"endCursor": &graphql.Field{
			Type:        graphql.String,
			Description: "When paginating forwards, the cursor to continue.",
		},
	},
})

// ConnectionConfig specifies a connection type to be created by NewConnectionDefinitions.
type ConnectionConfig struct {
	// (Required) The type of nodes in the connection; It must be an output type.
	NodeType graphql.Output

	// (Optional) Prefix of the names of the connection type and the edge type; Default to the name
	// of NodeType.
	Name string

	// (Optional) Additional fields of the edge type
	EdgeFields graphql.Fields

	// (Optional) Additional fields of the connection type
	ConnectionFields graphql.Fields
}

// ConnectionDefinitions contains the types created by NewConnectionDefinitions.
type ConnectionDefinitions struct {
	EdgeType       *graphql.Object
	ConnectionType *graphql.Object
}

// NewConnectionDefinitions creates "<Name>Edge" and "<Name>Connection" types which resolve from
// *Edge and *Connection, respectively.
func NewConnectionDefinitions(config ConnectionConfig) *ConnectionDefinitions {
	name := config.Name
	if len(name) == 0 {
		name = graphql.GetNamed(config.NodeType).String()
	}

	edgeFields := graphql.Fields{
		"node": &graphql.Field{
			Type:        config.NodeType,
			Description: "The item at the end of the edge",
		},
		"cursor": &graphql.Field{
			Type:        graphql.NewNonNull(graphql.String),
			Description: "A cursor for use in pagination",
		},
	}
	for fieldName, field := range config.EdgeFields {
		edgeFields[fieldName] = field
	}

	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name:        name + "Edge",
		Description: "An edge in a connection",
		Fields:      edgeFields,
	})

	connectionFields := graphql.Fields{
		"pageInfo": &graphql.Field{
			Type:        graphql.NewNonNull(PageInfoType),
			Description: "Information to aid in pagination.",
		},
		"edges": &graphql.Field{
			Type:        graphql.NewList(edgeType),
			Description: "A list of edges.",
		},
	}
	for fieldName, field := range config.ConnectionFields {
		connectionFields[fieldName] = field
	}

	connectionType := graphql.NewObject(graphql.ObjectConfig{
		Name:        name + "Connection",
		Description: "A connection to a list of items.",
		Fields:      connectionFields,
	})

	return &ConnectionDefinitions{
		EdgeType:       edgeType,
		ConnectionType: connectionType,
	}
}

//===----------------------------------------------------------------------------------------====//
// Node Types
//===----------------------------------------------------------------------------------------====//

// NodeDefinitions contains the Node interface and the root fields to fetch nodes by global IDs.
type NodeDefinitions struct {
	NodeInterface *graphql.Interface
	NodeField     *graphql.Field
	NodesField    *graphql.Field
}

// NewNodeDefinitions creates the "Node" interface and the "node" and "nodes" fields which resolve
// with ResolveNodeQuery and ResolveNodesQuery. If typeResolver is nil, ResolveTypeByTypename is
// used.
func NewNodeDefinitions(typeResolver graphql.ResolveTypeFn) *NodeDefinitions {
	if typeResolver == nil {
		typeResolver = ResolveTypeByTypename
	}

	nodeInterface := graphql.NewInterface(graphql.InterfaceConfig{
		Name:        "Node",
		Description: "An object with an ID",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.ID),
				Description: "The id of the object",
			},
		},
		ResolveType: typeResolver,
	})

	return &NodeDefinitions{
		NodeInterface: nodeInterface,
		NodeField: &graphql.Field{
			Type:        nodeInterface,
			Description: "Fetches an object given its ID",
			Args: graphql.FieldConfigArgument{
				"id": &graphql.ArgumentConfig{
					Type:        graphql.NewNonNull(graphql.ID),
					Description: "The ID of an object",
				},
			},
			Resolve: ResolveNodeQuery,
		},
		NodesField: &graphql.Field{
			Type:        graphql.NewNonNull(graphql.NewList(nodeInterface)),
			Description: "Fetches objects given their IDs",
			Args: graphql.FieldConfigArgument{
				"ids": &graphql.ArgumentConfig{
					Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
					Description: "The IDs of objects",
				},
			},
			Resolve: ResolveNodesQuery,
		},
	}
}

// GlobalIDField creates the "id" field of a node type in code. It resolves in the same way as the
// "id" field bound by NodeObjectType.
func GlobalIDField() *graphql.Field {
	return &graphql.Field{
		Type:        graphql.NewNonNull(graphql.ID),
		Description: "The ID of an object",
		Resolve:     resolveNodeIDField,
	}
}
