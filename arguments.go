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

// ConnectionArguments contains the arguments that a connection field accepts for pagination. A nil
// value means that the argument is not given.
//
// Reference: https://relay.dev/graphql/connections.htm#sec-Arguments
type ConnectionArguments struct {
	After  *string
	Before *string
	First  *int
	Last   *int
}

// ConnectionArgumentsFromMap reads "after", "before", "first" and "last" from the argument values
// given to a field resolver (i.e., graphql.ResolveParams.Args). Other entries in args are ignored.
func ConnectionArgumentsFromMap(args map[string]interface{}) ConnectionArguments {
	return ConnectionArguments{
		After:  stringArg(args, "after"),
		Before: stringArg(args, "before"),
		First:  intArg(args, "first"),
		Last:   intArg(args, "last"),
	}
}

func stringArg(args map[string]interface{}, name string) *string {
	switch value := args[name].(type) {
	case string:
		return &value
	case *string:
		return value
	}
	return nil
}

func intArg(args map[string]interface{}, name string) *int {
	switch value := args[name].(type) {
	case int:
		return &value
	case int32:
		v := int(value)
		return &v
	case int64:
		v := int(value)
		return &v
	case float64:
		v := int(value)
		return &v
	case *int:
		return value
	}
	return nil
}

// Map returns arguments in a map. Arguments that are not given are omitted.
func (args ConnectionArguments) Map() map[string]interface{} {
	m := map[string]interface{}{}
	if args.After != nil {
		m["after"] = *args.After
	}
	if args.Before != nil {
		m["before"] = *args.Before
	}
	if args.First != nil {
		m["first"] = *args.First
	}
	if args.Last != nil {
		m["last"] = *args.Last
	}
	return m
}

//===----------------------------------------------------------------------------------------====//
// Argument Definitions
//===----------------------------------------------------------------------------------------====//

// ForwardConnectionArgs returns the arguments for a connection that supports forward pagination
// ("after" and "first".)
func ForwardConnectionArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"after": &graphql.ArgumentConfig{
			Type: graphql.String,
		},
		"first": &graphql.ArgumentConfig{
			Type: graphql.Int,
		},
	}
}

// BackwardConnectionArgs returns the arguments for a connection that supports backward pagination
// ("before" and "last".)
func BackwardConnectionArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"before": &graphql.ArgumentConfig{
			Type: graphql.String,
		},
		"last": &graphql.ArgumentConfig{
			Type: graphql.Int,
		},
	}
}

// ConnectionArgs returns the arguments for a connection that supports pagination in both
// directions, merged with the given extra arguments.
func ConnectionArgs(extra graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	args := ForwardConnectionArgs()
	for name, arg := range BackwardConnectionArgs() {
		args[name] = arg
	}
	for name, arg := range extra {
		args[name] = arg
	}
	return args
}
