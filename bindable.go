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
	"strings"

	"github.com/botobag/relay/internal/util"
	"github.com/graphql-go/graphql"
	"github.com/jensneuse/abstractlogger"
)

// A Bindable attaches resolvers to a named type in a schema that has been built.
type Bindable interface {
	// Name of the type in the schema to bind to
	Name() string

	// Bind looks up the type in the schema and installs resolvers onto it. A resolver that has been
	// set on the type is kept unless replaceExisting is true. It returns an error with
	// ErrKindConfiguration if the type or a field expected by the Bindable is not defined.
	Bind(schema *graphql.Schema, replaceExisting bool) error
}

// BindToSchema binds each of bindables to the schema, replacing existing resolvers. It stops at the
// first error.
func BindToSchema(schema *graphql.Schema, bindables ...Bindable) error {
	for _, bindable := range bindables {
		if err := bindable.Bind(schema, true); err != nil {
			return err
		}
		Logger().Debug("relay.BindToSchema", abstractlogger.String("type", bindable.Name()))
	}
	return nil
}

// lookupType finds the named type from schema and checks its kind. expected describes the kind for
// error message.
func lookupType(op Op, schema *graphql.Schema, name string, expected string) (graphql.Type, error) {
	t := schema.Type(name)
	if t == nil {
		names := make([]string, 0, len(schema.TypeMap()))
		for typeName := range schema.TypeMap() {
			if !strings.HasPrefix(typeName, "__") {
				names = append(names, typeName)
			}
		}
		sort.Strings(names)

		return nil, NewError(fmt.Sprintf("Type %s is not defined in the schema.%s", name,
			util.DidYouMean(util.SuggestionList(name, names))), op, ErrKindConfiguration)
	}

	var ok bool
	switch expected {
	case "object":
		_, ok = t.(*graphql.Object)
	case "interface":
		_, ok = t.(*graphql.Interface)
	}
	if !ok {
		return nil, NewError(fmt.Sprintf("%s is defined in the schema, but it is instance of %T "+
			"(expected %s)", name, t, expected), op, ErrKindConfiguration)
	}

	return t, nil
}

// objectsImplementing returns the object types in schema which implement iface.
func objectsImplementing(schema *graphql.Schema, iface *graphql.Interface) []*graphql.Object {
	return schema.PossibleTypes(iface)
}
