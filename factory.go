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
	"sync"
)

// ConnectionFactory turns the data returned by a connection resolver into the value of the
// connection field.
type ConnectionFactory interface {
	// CreateConnection builds the connection value from data. It could return a thunk (i.e., a
	// func() (interface{}, error)) to defer the work.
	CreateConnection(data interface{}, args ConnectionArguments) (interface{}, error)
}

// The ConnectionFactoryFunc type is an adapter to allow the use of ordinary functions as
// ConnectionFactory. If f is a function with the appropriate signature, ConnectionFactoryFunc(f) is
// a ConnectionFactory that calls f.
type ConnectionFactoryFunc func(data interface{}, args ConnectionArguments) (interface{}, error)

// CreateConnection implements ConnectionFactory by simply calling f(data, args).
func (f ConnectionFactoryFunc) CreateConnection(data interface{}, args ConnectionArguments) (interface{}, error) {
	return f(data, args)
}

//===----------------------------------------------------------------------------------------====//
// BaseConnectionFactory
//===----------------------------------------------------------------------------------------====//

// ConnectionConstructor creates a connection value from edges and page info.
type ConnectionConstructor func(edges []interface{}, pageInfo interface{}) interface{}

// EdgeConstructor creates an edge value.
type EdgeConstructor func(node interface{}, cursor string) interface{}

// PageInfoConstructor creates a page info value.
type PageInfoConstructor func(pageInfo *PageInfo) interface{}

// BaseConnectionFactory computes a Connection with ConnectionFromArraySlice from the data which
// must be accepted by SliceOf. The whole data is taken as the slice. The constructors, if set,
// convert the computed Connection to custom types. Each of them can be used without the others.
type BaseConnectionFactory struct {
	// (Optional) Build the value for the connection; If it is set, the result value of
	// CreateConnection is the one that it returns. Otherwise, CreateConnection returns a *Connection
	// when neither NewEdge nor NewPageInfo is set, or a *CustomConnection holding their values.
	NewConnection ConnectionConstructor

	// (Optional) Build the value for each edge; *Edge is used if it is not set.
	NewEdge EdgeConstructor

	// (Optional) Build the value for page info; *PageInfo is used if it is not set.
	NewPageInfo PageInfoConstructor
}

var _ ConnectionFactory = (*BaseConnectionFactory)(nil)

// CreateConnection implements ConnectionFactory.
func (factory *BaseConnectionFactory) CreateConnection(data interface{}, args ConnectionArguments) (interface{}, error) {
	slice, err := SliceOf(data)
	if err != nil {
		return nil, err
	}

	connection, err := ConnectionFromArraySlice(slice, args, ArraySliceLength(slice.Len()))
	if err != nil {
		return nil, err
	}

	if factory.NewConnection == nil && factory.NewEdge == nil && factory.NewPageInfo == nil {
		return connection, nil
	}

	edges := make([]interface{}, len(connection.Edges))
	for i, edge := range connection.Edges {
		if factory.NewEdge != nil {
			edges[i] = factory.NewEdge(edge.Node, edge.Cursor)
		} else {
			edges[i] = edge
		}
	}

	var pageInfo interface{} = connection.PageInfo
	if factory.NewPageInfo != nil {
		pageInfo = factory.NewPageInfo(connection.PageInfo)
	}

	if factory.NewConnection == nil {
		return &CustomConnection{
			Edges:    edges,
			PageInfo: pageInfo,
		}, nil
	}
	return factory.NewConnection(edges, pageInfo), nil
}

// ReferenceConnectionFactory creates a factory that produces *Connection.
func ReferenceConnectionFactory() ConnectionFactory {
	return &BaseConnectionFactory{}
}

// SnakeCaseConnectionFactory creates a factory that produces *SnakeCaseConnection.
func SnakeCaseConnectionFactory() ConnectionFactory {
	return ConnectionFactoryFunc(func(data interface{}, args ConnectionArguments) (interface{}, error) {
		slice, err := SliceOf(data)
		if err != nil {
			return nil, err
		}

		connection, err := ConnectionFromArraySlice(slice, args, ArraySliceLength(slice.Len()))
		if err != nil {
			return nil, err
		}

		pageInfo := connection.PageInfo
		return &SnakeCaseConnection{
			Edges: connection.Edges,
			PageInfo: &SnakeCasePageInfo{
				StartCursor:     pageInfo.StartCursor,
				EndCursor:       pageInfo.EndCursor,
				HasPreviousPage: pageInfo.HasPreviousPage,
				HasNextPage:     pageInfo.HasNextPage,
			},
		}, nil
	})
}

// connectionProxy serves as type for ConnectionProxy.
type connectionProxy int

// CreateConnection implements ConnectionFactory.
func (connectionProxy) CreateConnection(data interface{}, args ConnectionArguments) (interface{}, error) {
	return data, nil
}

// ConnectionProxy is a factory for resolvers that build the connection value on their own (e.g.,
// using a cursor-based query to the data store.) It passes the data through unchanged.
const ConnectionProxy connectionProxy = 0

var _ ConnectionFactory = ConnectionProxy

//===----------------------------------------------------------------------------------------====//
// Default Factory
//===----------------------------------------------------------------------------------------====//

var defaultConnectionFactory = struct {
	sync.RWMutex
	factory ConnectionFactory
}{
	factory: ReferenceConnectionFactory(),
}

// DefaultConnectionFactory returns the factory used by SetConnection when WithConnectionFactory is
// not given. It is ReferenceConnectionFactory() unless changed by SetDefaultConnectionFactory.
func DefaultConnectionFactory() ConnectionFactory {
	defaultConnectionFactory.RLock()
	defer defaultConnectionFactory.RUnlock()
	return defaultConnectionFactory.factory
}

// SetDefaultConnectionFactory changes the factory returned by DefaultConnectionFactory. It only
// affects connections that are registered afterwards. Passing nil restores the reference factory.
func SetDefaultConnectionFactory(factory ConnectionFactory) {
	if factory == nil {
		factory = ReferenceConnectionFactory()
	}
	defaultConnectionFactory.Lock()
	defaultConnectionFactory.factory = factory
	defaultConnectionFactory.Unlock()
}
