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
	"reflect"
)

// A Sliceable is a sequence of values from which a connection takes a sub-range to build edges. It
// could be backed by an in-memory array or by a query to a data store that applies offset and limit.
type Sliceable interface {
	// Slice returns values in the range [start, end). Both start and end are within [0, Len()] for a
	// SizedSliceable and start <= end.
	Slice(start, end int) ([]interface{}, error)
}

// SizedSliceable provides the number of values in a Sliceable.
type SizedSliceable interface {
	Sliceable

	// Len returns the number of values.
	Len() int
}

// Values implements SizedSliceable for []interface{}.
type Values []interface{}

var _ SizedSliceable = Values(nil)

// Slice implements Sliceable.
func (values Values) Slice(start, end int) ([]interface{}, error) {
	return values[start:end], nil
}

// Len implements SizedSliceable.
func (values Values) Len() int {
	return len(values)
}

// reflectSliceable wraps a Go slice or array with reflection.
type reflectSliceable struct {
	value reflect.Value
}

var _ SizedSliceable = reflectSliceable{}

// Slice implements Sliceable.
func (s reflectSliceable) Slice(start, end int) ([]interface{}, error) {
	values := make([]interface{}, end-start)
	for i := range values {
		values[i] = s.value.Index(start + i).Interface()
	}
	return values, nil
}

// Len implements SizedSliceable.
func (s reflectSliceable) Len() int {
	return s.value.Len()
}

// SliceOf converts data to a SizedSliceable. data could be a SizedSliceable, a []interface{}, or
// any Go slice or array (which is accessed via reflection). A nil data gives an empty sequence.
// Otherwise, an error is returned.
func SliceOf(data interface{}) (SizedSliceable, error) {
	switch data := data.(type) {
	case nil:
		return Values(nil), nil
	case SizedSliceable:
		return data, nil
	case []interface{}:
		return Values(data), nil
	}

	value := reflect.ValueOf(data)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectSliceable{value}, nil
	case reflect.Ptr:
		if value.Elem().Kind() == reflect.Array {
			return reflectSliceable{value.Elem()}, nil
		}
	}

	return nil, NewError(
		fmt.Sprintf("expect a slice, an array or a relay.SizedSliceable to build a connection, but got %T", data),
		ErrKindInternal)
}
