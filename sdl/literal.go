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

package sdl

import (
	"strconv"

	"github.com/graphql-go/graphql/language/ast"
)

// valueFromLiteral converts a literal in query to Go value for custom scalars. Variables are not
// available at this point so a literal that contains a variable results in nil.
func valueFromLiteral(valueAST ast.Value) interface{} {
	switch value := valueAST.(type) {
	case *ast.StringValue:
		return value.Value

	case *ast.BooleanValue:
		return value.Value

	case *ast.EnumValue:
		return value.Value

	case *ast.IntValue:
		if i, err := strconv.ParseInt(value.Value, 10, 64); err == nil {
			return i
		}
		// Out of int64 range
		if f, err := strconv.ParseFloat(value.Value, 64); err == nil {
			return f
		}
		return nil

	case *ast.FloatValue:
		if f, err := strconv.ParseFloat(value.Value, 64); err == nil {
			return f
		}
		return nil

	case *ast.ListValue:
		list := make([]interface{}, len(value.Values))
		for i, v := range value.Values {
			list[i] = valueFromLiteral(v)
		}
		return list

	case *ast.ObjectValue:
		object := make(map[string]interface{}, len(value.Fields))
		for _, field := range value.Fields {
			object[field.Name.Value] = valueFromLiteral(field.Value)
		}
		return object
	}

	return nil
}
