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

package relay_test

import (
	"fmt"

	"github.com/botobag/relay"
	"github.com/botobag/relay/internal/testutil"
	"github.com/graphql-go/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Definitions", func() {
	var (
		schema          graphql.Schema
		fooType         *graphql.Object
		nodeDefinitions *relay.NodeDefinitions
		fooDefinitions  *relay.ConnectionDefinitions
		foos            []interface{}
	)

	BeforeEach(func() {
		foos = []interface{}{
			&foo{ID: "1", Name: "foo1"},
			&foo{ID: "2", Name: "foo2"},
			&foo{ID: "3", Name: "foo3"},
		}

		nodeDefinitions = relay.NewNodeDefinitions(nil)

		fooType = graphql.NewObject(graphql.ObjectConfig{
			Name:       "Foo",
			Interfaces: []*graphql.Interface{nodeDefinitions.NodeInterface},
			Fields: graphql.Fields{
				"id": relay.GlobalIDField(),
				"name": &graphql.Field{
					Type: graphql.String,
				},
			},
		})

		fooDefinitions = relay.NewConnectionDefinitions(relay.ConnectionConfig{
			NodeType: fooType,
			ConnectionFields: graphql.Fields{
				"totalCount": &graphql.Field{
					Type: graphql.Int,
					Resolve: func(p graphql.ResolveParams) (interface{}, error) {
						return len(foos), nil
					},
				},
			},
		})

		var err error
		schema, err = graphql.NewSchema(graphql.SchemaConfig{
			Query: graphql.NewObject(graphql.ObjectConfig{
				Name: "Query",
				Fields: graphql.Fields{
					"node":  nodeDefinitions.NodeField,
					"nodes": nodeDefinitions.NodesField,
					"foos": &graphql.Field{
						Type: fooDefinitions.ConnectionType,
						Args: relay.ConnectionArgs(nil),
						Resolve: func(p graphql.ResolveParams) (interface{}, error) {
							return relay.ConnectionFromArray(foos, relay.ConnectionArgumentsFromMap(p.Args))
						},
					},
				},
			}),
		})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(relay.NewNodeObjectType("Foo", relay.WithInstanceResolver(
			func(id string, p graphql.ResolveParams) (interface{}, error) {
				for _, object := range foos {
					if object.(*foo).ID == id {
						return object, nil
					}
				}
				return nil, nil
			})).Bind(&schema, false)).Should(Succeed())
	})

	It("names connection types after node type", func() {
		Expect(fooDefinitions.EdgeType.Name()).Should(Equal("FooEdge"))
		Expect(fooDefinitions.ConnectionType.Name()).Should(Equal("FooConnection"))

		Expect(fooDefinitions.EdgeType.Fields()).Should(HaveKey("node"))
		Expect(fooDefinitions.EdgeType.Fields()).Should(HaveKey("cursor"))
		Expect(fooDefinitions.ConnectionType.Fields()).Should(HaveKey("edges"))
		Expect(fooDefinitions.ConnectionType.Fields()).Should(HaveKey("pageInfo"))
		Expect(fooDefinitions.ConnectionType.Fields()).Should(HaveKey("totalCount"))

		named := relay.NewConnectionDefinitions(relay.ConnectionConfig{
			NodeType: graphql.NewNonNull(fooType),
			Name:     "Friend",
		})
		Expect(named.EdgeType.Name()).Should(Equal("FriendEdge"))
		Expect(named.ConnectionType.Name()).Should(Equal("FriendConnection"))
	})

	It("resolves connection", func() {
		result := graphql.Do(graphql.Params{
			Schema: schema,
			RequestString: `{
				foos(last: 2) {
					totalCount
					edges {
						node { id name }
					}
					pageInfo { hasPreviousPage hasNextPage }
				}
			}`,
		})
		Expect(result).Should(testutil.MatchResultInJSON(fmt.Sprintf(`{
			"data": {
				"foos": {
					"totalCount": 3,
					"edges": [
						{ "node": { "id": "%s", "name": "foo2" } },
						{ "node": { "id": "%s", "name": "foo3" } }
					],
					"pageInfo": {
						"hasPreviousPage": true,
						"hasNextPage": false
					}
				}
			}
		}`, relay.ToGlobalID("Foo", "2"), relay.ToGlobalID("Foo", "3"))))
	})

	It("resolves node", func() {
		result := graphql.Do(graphql.Params{
			Schema: schema,
			RequestString: `{
				node(id: "` + relay.ToGlobalID("Foo", "3") + `") {
					id
					... on Foo { name }
				}
				nodes(ids: ["` + relay.ToGlobalID("Foo", "1") + `", "` + relay.ToGlobalID("Foo", "4") + `"]) {
					id
				}
			}`,
		})
		Expect(result).Should(testutil.MatchResultInJSON(fmt.Sprintf(`{
			"data": {
				"node": { "id": "%s", "name": "foo3" },
				"nodes": [
					{ "id": "%s" },
					null
				]
			}
		}`, relay.ToGlobalID("Foo", "3"), relay.ToGlobalID("Foo", "1"))))
	})
})
