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
	"sort"

	"github.com/botobag/relay/internal/util"
	"github.com/graphql-go/graphql"
	"github.com/jensneuse/abstractlogger"
)

// ConnectionResolver loads the data for a connection field. The pagination arguments are given in
// args; the other arguments of the field are available in p.Args. The returned data is given to the
// ConnectionFactory of the field to build the connection value. It could return a thunk.
type ConnectionResolver func(p graphql.ResolveParams, args ConnectionArguments) (interface{}, error)

// ConnectionOption configures a connection field registered with SetConnection.
type ConnectionOption func(config *connectionConfig)

// WithConnectionFactory sets the factory to build the connection value. Default to the one returned
// by DefaultConnectionFactory at the time SetConnection is called.
func WithConnectionFactory(factory ConnectionFactory) ConnectionOption {
	return func(config *connectionConfig) {
		config.factory = factory
	}
}

type connectionConfig struct {
	resolver ConnectionResolver
	factory  ConnectionFactory
}

// fieldResolvers stores resolvers to be bound to fields of an object or an interface.
type fieldResolvers struct {
	resolvers   map[string]graphql.FieldResolveFn
	connections map[string]*connectionConfig
}

func (fr *fieldResolvers) setField(name string, resolver graphql.FieldResolveFn) {
	if fr.resolvers == nil {
		fr.resolvers = map[string]graphql.FieldResolveFn{}
	}
	fr.resolvers[name] = resolver
}

func (fr *fieldResolvers) setAlias(name string, source string) {
	fr.setField(name, func(p graphql.ResolveParams) (interface{}, error) {
		p.Info.FieldName = source
		return graphql.DefaultResolveFn(p)
	})
}

func (fr *fieldResolvers) setConnection(name string, resolver ConnectionResolver, opts ...ConnectionOption) {
	config := &connectionConfig{
		resolver: resolver,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.factory == nil {
		config.factory = DefaultConnectionFactory()
	}

	if fr.connections == nil {
		fr.connections = map[string]*connectionConfig{}
	}
	fr.connections[name] = config
}

// bind installs the resolvers onto fields. Fields are visited in the order of their names to make
// the returned error deterministic.
func (fr *fieldResolvers) bind(
	op Op,
	typeName string,
	fields graphql.FieldDefinitionMap,
	replaceExisting bool) error {

	for _, name := range sortedKeys(fr.resolvers) {
		field, exists := fields[name]
		if !exists {
			return newFieldNotDefinedError(op, name, typeName, fields)
		}
		if field.Resolve == nil || replaceExisting {
			field.Resolve = fr.resolvers[name]
		}
	}

	names := make([]string, 0, len(fr.connections))
	for name := range fr.connections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field, exists := fields[name]
		if !exists {
			return newFieldNotDefinedError(op, name, typeName, fields)
		}
		if field.Resolve == nil || replaceExisting {
			config := fr.connections[name]
			field.Resolve = newConnectionFieldResolver(config.resolver, config.factory)
			Logger().Debug("relay.bindConnection",
				abstractlogger.String("type", typeName),
				abstractlogger.String("field", name))
		}
	}

	return nil
}

func sortedKeys(m map[string]graphql.FieldResolveFn) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// newFieldNotDefinedError reports a field which is expected by a Bindable but is missing in fields.
// Similar field names are suggested in the message.
func newFieldNotDefinedError(
	op Op,
	fieldName string,
	typeName string,
	fields graphql.FieldDefinitionMap) error {

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return NewError(fmt.Sprintf("Field %s is not defined on type %s.%s", fieldName, typeName,
		util.DidYouMean(util.SuggestionList(fieldName, names))), op, ErrKindConfiguration)
}

// newConnectionFieldResolver creates a field resolver which calls resolver to obtain data and then
// feeds the data to factory to build connection. If either resolver or factory returns a thunk, the
// field resolver returns a thunk which completes the whole process when called.
func newConnectionFieldResolver(resolver ConnectionResolver, factory ConnectionFactory) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		args := ConnectionArgumentsFromMap(p.Args)

		data, err := resolver(p, args)
		if err != nil {
			return nil, err
		}

		return then(data, func(data interface{}) (interface{}, error) {
			return factory.CreateConnection(data, args)
		})
	}
}
