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

// The types in this file are returned from connection resolvers. Field names and tags are chosen so
// that graphql.DefaultResolveFn in graphql-go can read them without extra resolvers.

//===----------------------------------------------------------------------------------------====//
// Connection
//===----------------------------------------------------------------------------------------====//

// Connection is a page of data returned by a connection field.
//
// Reference: https://relay.dev/graphql/connections.htm#sec-Connection-Types
type Connection struct {
	Edges    []*Edge   `json:"edges"`
	PageInfo *PageInfo `json:"pageInfo"`
}

// Edge is an item in a connection together with the cursor that locates it.
//
// Reference: https://relay.dev/graphql/connections.htm#sec-Edge-Types
type Edge struct {
	Node   interface{} `json:"node"`
	Cursor string      `json:"cursor"`
}

// PageInfo tells whether there're more edges available before or after the current page.
//
// Reference: https://relay.dev/graphql/connections.htm#sec-undefined.PageInfo
type PageInfo struct {
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	HasNextPage     bool    `json:"hasNextPage"`
}

// CustomConnection holds edges and page info built by the constructors of BaseConnectionFactory
// when no ConnectionConstructor is given.
type CustomConnection struct {
	Edges    []interface{} `json:"edges"`
	PageInfo interface{}   `json:"pageInfo"`
}

//===----------------------------------------------------------------------------------------====//
// Snake-case Connection
//===----------------------------------------------------------------------------------------====//

// SnakeCaseConnection is a Connection for schemas that name the fields in snake case (page_info,
// has_next_page, etc.)
type SnakeCaseConnection struct {
	Edges    []*Edge            `json:"edges"`
	PageInfo *SnakeCasePageInfo `json:"page_info"`
}

// SnakeCasePageInfo is the PageInfo used by SnakeCaseConnection.
type SnakeCasePageInfo struct {
	StartCursor     *string `json:"start_cursor"`
	EndCursor       *string `json:"end_cursor"`
	HasPreviousPage bool    `json:"has_previous_page"`
	HasNextPage     bool    `json:"has_next_page"`
}
