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
	"github.com/botobag/relay/sdl"
	"github.com/graphql-go/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const connectionTypeDefs = `
type Foo {
	id: ID!
	name: String
}

type FooEdge {
	node: Foo
	cursor: String!
}

type PageInfo {
	hasNextPage: Boolean!
	hasPreviousPage: Boolean!
	startCursor: String
	endCursor: String
}

type FooConnection {
	edges: [FooEdge]
	pageInfo: PageInfo!
}

type Query {
	foos(first: Int, after: String, last: Int, before: String, prefix: String = "foo"): FooConnection
}
`

func loadFoos(p graphql.ResolveParams, args relay.ConnectionArguments) (interface{}, error) {
	prefix, _ := p.Args["prefix"].(string)
	foos := make([]map[string]interface{}, 10)
	for i := range foos {
		foos[i] = map[string]interface{}{
			"id":   fmt.Sprint(i),
			"name": fmt.Sprintf("%s%d", prefix, i),
		}
	}
	return foos, nil
}

var _ = Describe("ObjectType", func() {
	It("binds field resolvers", func() {
		schema, err := sdl.MakeExecutableSchema(`
			type Query {
				hello: String
				greeting: String
			}
		`, relay.NewQueryType().
			SetField("hello", func(p graphql.ResolveParams) (interface{}, error) {
				return "world", nil
			}).
			SetAlias("greeting", "hi"))
		Expect(err).ShouldNot(HaveOccurred())

		result := graphql.Do(graphql.Params{
			Schema:        *schema,
			RequestString: `{ hello greeting }`,
			RootObject: map[string]interface{}{
				"hi": "hi there",
			},
		})
		Expect(result).Should(testutil.MatchResultInJSON(`{
			"data": {
				"hello": "world",
				"greeting": "hi there"
			}
		}`))
	})

	It("keeps existing resolver unless asked to replace", func() {
		schema, err := sdl.BuildSchema(`
			type Query {
				hello: String
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())

		resolveTo := func(value string) graphql.FieldResolveFn {
			return func(p graphql.ResolveParams) (interface{}, error) {
				return value, nil
			}
		}

		Expect(relay.NewQueryType().SetField("hello", resolveTo("first")).Bind(schema, false)).Should(Succeed())
		Expect(relay.NewQueryType().SetField("hello", resolveTo("second")).Bind(schema, false)).Should(Succeed())
		Expect(execute(schema, `{ hello }`)).Should(testutil.MatchResultInJSON(`{
			"data": { "hello": "first" }
		}`))

		Expect(relay.NewQueryType().SetField("hello", resolveTo("third")).Bind(schema, true)).Should(Succeed())
		Expect(execute(schema, `{ hello }`)).Should(testutil.MatchResultInJSON(`{
			"data": { "hello": "third" }
		}`))
	})

	It("rejects field that is not defined on type", func() {
		schema, err := sdl.BuildSchema(`
			type Query {
				hello: String
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())

		err = relay.BindToSchema(schema, relay.NewQueryType().
			SetField("bye", func(p graphql.ResolveParams) (interface{}, error) {
				return nil, nil
			}))
		Expect(err).Should(testutil.MatchRelayError(
			testutil.MessageEqual("Field bye is not defined on type Query."),
			testutil.KindIs(relay.ErrKindConfiguration),
		))
	})

	It("suggests similar names", func() {
		schema, err := sdl.BuildSchema(`
			type Query {
				hello: String
				help: String
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())

		err = relay.BindToSchema(schema, relay.NewQueryType().
			SetField("helo", func(p graphql.ResolveParams) (interface{}, error) {
				return nil, nil
			}))
		Expect(err).Should(testutil.MatchRelayError(
			testutil.MessageEqual(`Field helo is not defined on type Query. Did you mean "hello" or "help"?`),
		))

		err = relay.BindToSchema(schema, relay.NewObjectType("query"))
		Expect(err).Should(testutil.MatchRelayError(
			testutil.MessageEqual(`Type query is not defined in the schema. Did you mean "Query"?`),
		))
	})

	It("rejects type that is not defined in schema", func() {
		schema, err := sdl.BuildSchema(`
			type Query {
				hello: String
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())

		err = relay.BindToSchema(schema, relay.NewMutationType())
		Expect(err).Should(testutil.MatchRelayError(
			testutil.MessageEqual("Type Mutation is not defined in the schema."),
			testutil.KindIs(relay.ErrKindConfiguration),
			testutil.OpIs("relay.ObjectType.Bind"),
		))
	})

	It("rejects type of wrong kind", func() {
		schema, err := sdl.BuildSchema(`
			interface Named {
				name: String
			}

			type Query {
				named: Named
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())

		err = relay.NewObjectType("Named").Bind(schema, true)
		Expect(err).Should(testutil.MatchRelayError(
			testutil.MessageContainSubstring("(expected object)"),
			testutil.KindIs(relay.ErrKindConfiguration),
		))

		err = relay.NewInterfaceType("Query", nil).Bind(schema, true)
		Expect(err).Should(testutil.MatchRelayError(
			testutil.MessageContainSubstring("(expected interface)"),
			testutil.KindIs(relay.ErrKindConfiguration),
		))
	})

	It("requires id field on node object type", func() {
		_, err := sdl.MakeExecutableSchema(`
			type Foo {
				name: String
			}

			type Query {
				foo: Foo
			}
		`, relay.NewNodeObjectType("Foo"))
		Expect(err).Should(testutil.MatchRelayError(
			testutil.MessageEqual("Field id is not defined on type Foo."),
			testutil.KindIs(relay.ErrKindConfiguration),
		))
	})

	It("logs binding steps", func() {
		logs := observeLogs()

		_, err := sdl.MakeExecutableSchema(connectionTypeDefs,
			relay.NewQueryType().SetConnection("foos", loadFoos))
		Expect(err).ShouldNot(HaveOccurred())

		Expect(logs.FilterMessage("relay.bindConnection").All()).Should(HaveLen(1))
		Expect(logs.FilterMessage("relay.BindToSchema").All()).Should(HaveLen(1))
	})
})

var _ = Describe("InterfaceType", func() {
	const typeDefs = `
		interface Named {
			name: String
		}

		type Dog implements Named {
			name: String
		}

		type Cat implements Named {
			name: String
		}

		type Query {
			pets: [Named]
		}
	`

	pets := func(p graphql.ResolveParams) (interface{}, error) {
		return []interface{}{
			map[string]interface{}{"kind": "Dog", "title": "Rex"},
			map[string]interface{}{"kind": "Cat", "title": "Tom"},
		}, nil
	}

	It("binds type resolver and field resolvers to implementations", func() {
		schema, err := sdl.MakeExecutableSchema(typeDefs,
			relay.NewQueryType().SetField("pets", pets),
			relay.NewInterfaceType("Named", func(p graphql.ResolveTypeParams) *graphql.Object {
				typename := p.Value.(map[string]interface{})["kind"].(string)
				return p.Info.Schema.Type(typename).(*graphql.Object)
			}).SetAlias("name", "title"),
		)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(execute(schema, `{ pets { __typename name } }`)).Should(testutil.MatchResultInJSON(`{
			"data": {
				"pets": [
					{ "__typename": "Dog", "name": "Rex" },
					{ "__typename": "Cat", "name": "Tom" }
				]
			}
		}`))
	})

	It("doesn't override resolvers bound to object", func() {
		schema, err := sdl.MakeExecutableSchema(typeDefs,
			relay.NewQueryType().SetField("pets", pets),
			relay.NewObjectType("Cat").SetField("name", func(p graphql.ResolveParams) (interface{}, error) {
				return "Garfield", nil
			}),
			relay.NewInterfaceType("Named", nil).
				SetTypeResolver(func(p graphql.ResolveTypeParams) *graphql.Object {
					typename := p.Value.(map[string]interface{})["kind"].(string)
					return p.Info.Schema.Type(typename).(*graphql.Object)
				}).
				SetAlias("name", "title"),
		)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(execute(schema, `{ pets { name } }`)).Should(testutil.MatchResultInJSON(`{
			"data": {
				"pets": [
					{ "name": "Rex" },
					{ "name": "Garfield" }
				]
			}
		}`))
	})
})

var _ = Describe("Connection Field", func() {
	query := func(schema *graphql.Schema, args string) *graphql.Result {
		return execute(schema, `{
			foos`+args+` {
				edges {
					cursor
					node {
						name
					}
				}
				pageInfo {
					hasNextPage
					hasPreviousPage
					startCursor
					endCursor
				}
			}
		}`)
	}

	It("resolves connection from array", func() {
		schema, err := sdl.MakeExecutableSchema(connectionTypeDefs,
			relay.NewQueryType().SetConnection("foos", loadFoos))
		Expect(err).ShouldNot(HaveOccurred())

		result := query(schema, `(first: 2, after: "`+relay.OffsetToCursor(4)+`", prefix: "bar")`)
		Expect(result).Should(testutil.MatchResultInJSON(fmt.Sprintf(`{
			"data": {
				"foos": {
					"edges": [
						{ "cursor": "%[1]s", "node": { "name": "bar5" } },
						{ "cursor": "%[2]s", "node": { "name": "bar6" } }
					],
					"pageInfo": {
						"hasNextPage": true,
						"hasPreviousPage": false,
						"startCursor": "%[1]s",
						"endCursor": "%[2]s"
					}
				}
			}
		}`, relay.OffsetToCursor(5), relay.OffsetToCursor(6))))
	})

	It("passes default values of other arguments", func() {
		schema, err := sdl.MakeExecutableSchema(connectionTypeDefs,
			relay.NewQueryType().SetConnection("foos", loadFoos))
		Expect(err).ShouldNot(HaveOccurred())

		result := query(schema, `(last: 1)`)
		Expect(result).Should(testutil.MatchResultInJSON(fmt.Sprintf(`{
			"data": {
				"foos": {
					"edges": [
						{ "cursor": "%[1]s", "node": { "name": "foo9" } }
					],
					"pageInfo": {
						"hasNextPage": false,
						"hasPreviousPage": true,
						"startCursor": "%[1]s",
						"endCursor": "%[1]s"
					}
				}
			}
		}`, relay.OffsetToCursor(9))))
	})

	It("reports argument error", func() {
		schema, err := sdl.MakeExecutableSchema(connectionTypeDefs,
			relay.NewQueryType().SetConnection("foos", loadFoos))
		Expect(err).ShouldNot(HaveOccurred())

		result := query(schema, `(first: -1)`)
		Expect(result.Data).Should(Equal(map[string]interface{}{
			"foos": nil,
		}))
		Expect(result.Errors).Should(ConsistOf(
			testutil.MatchResultError(
				testutil.MessageEqual("Argument 'first' must be a non-negative integer."),
			),
		))

		result = query(schema, `(last: -1)`)
		Expect(result.Errors).Should(ConsistOf(
			testutil.MatchResultError(
				testutil.MessageEqual("Argument 'last' must be a non-negative integer."),
			),
		))
	})

	It("defers building connection from thunk", func() {
		var called bool
		schema, err := sdl.MakeExecutableSchema(connectionTypeDefs,
			relay.NewQueryType().SetConnection("foos",
				func(p graphql.ResolveParams, args relay.ConnectionArguments) (interface{}, error) {
					return relay.Thunk(func() (interface{}, error) {
						called = true
						return loadFoos(p, args)
					}), nil
				}))
		Expect(err).ShouldNot(HaveOccurred())

		result := query(schema, `(first: 1)`)
		Expect(called).Should(BeTrue())
		Expect(result).Should(testutil.MatchResultInJSON(fmt.Sprintf(`{
			"data": {
				"foos": {
					"edges": [
						{ "cursor": "%[1]s", "node": { "name": "foo0" } }
					],
					"pageInfo": {
						"hasNextPage": true,
						"hasPreviousPage": false,
						"startCursor": "%[1]s",
						"endCursor": "%[1]s"
					}
				}
			}
		}`, relay.OffsetToCursor(0))))
	})

	It("reports error from connection resolver", func() {
		schema, err := sdl.MakeExecutableSchema(connectionTypeDefs,
			relay.NewQueryType().SetConnection("foos",
				func(p graphql.ResolveParams, args relay.ConnectionArguments) (interface{}, error) {
					return nil, relay.NewError("backend unavailable", relay.Op("loadFoos"))
				}))
		Expect(err).ShouldNot(HaveOccurred())

		result := query(schema, ``)
		Expect(result.Errors).Should(ConsistOf(
			testutil.MatchResultError(testutil.MessageEqual("loadFoos: backend unavailable")),
		))
	})
})
