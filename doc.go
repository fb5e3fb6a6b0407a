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

// Package relay provides helpers for serving Relay-compliant schemas with graphql-go [0]. It
// implements the two server-side pieces that Relay expects from a GraphQL server:
//
//  1. Cursor Connections [1]: ConnectionFromArraySlice computes a page of edges and a PageInfo from
//     a slice of data and the "first", "last", "after" and "before" arguments. A connection field
//     is registered with ObjectType.SetConnection which wraps a data resolver and a
//     ConnectionFactory into a field resolver.
//
//  2. Global Object Identification [2]: ToGlobalID and FromGlobalID convert between a (type name,
//     local id) pair and an opaque ID. NodeObjectType and NodeInterfaceType install resolvers for
//     the "id" field and register per-type resolvers which are used by ResolveNodeQuery to look up
//     an object from its global ID.
//
// Types are bound onto an already built graphql.Schema. That is, a schema is first built (usually
// from SDL with package sdl) and then a list of Bindable's attaches resolvers to the named types:
//
//	query := relay.NewQueryType()
//	query.SetField("node", relay.ResolveNodeQuery)
//	query.SetConnection("ships", func(p graphql.ResolveParams, args relay.ConnectionArguments) (interface{}, error) {
//		return loadShips(p.Context)
//	})
//
//	ship := relay.NewNodeObjectType("Ship",
//		relay.WithInstanceResolver(func(id string, p graphql.ResolveParams) (interface{}, error) {
//			return loadShip(p.Context, id)
//		}))
//
//	schema, err := sdl.MakeExecutableSchema(typeDefs, query, ship)
//
// The per-type resolvers of node types are kept in a process-wide registry. A program that builds
// schemas at runtime should call ReleaseSchema on a schema it no longer serves.
//
// Resolvers may return a thunk (a value of type func() (interface{}, error)) instead of a value.
// graphql-go defers the call until all fields at the same depth have been resolved which makes it
// possible to batch backend requests (see package dataloader).
//
// [0]: https://github.com/graphql-go/graphql
// [1]: https://relay.dev/graphql/connections.htm
// [2]: https://graphql.org/learn/global-object-identification/
package relay
