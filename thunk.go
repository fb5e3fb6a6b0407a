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

// Thunk is a value to be computed later. graphql-go calls a thunk returned from a field resolver
// after it has resolved all the other fields at the same level in the response. It is an alias
// because graphql-go tests for the unnamed function type.
type Thunk = func() (interface{}, error)

// ResolveThunk calls v repeatedly while it is a Thunk and returns the final value.
func ResolveThunk(v interface{}) (interface{}, error) {
	for {
		thunk, ok := v.(Thunk)
		if !ok {
			return v, nil
		}

		var err error
		v, err = thunk()
		if err != nil {
			return nil, err
		}
	}
}

// then applies f to the value of v. If v is a Thunk, f is deferred and a new Thunk is returned.
func then(v interface{}, f func(interface{}) (interface{}, error)) (interface{}, error) {
	if _, ok := v.(Thunk); !ok {
		return f(v)
	}

	return Thunk(func() (interface{}, error) {
		value, err := ResolveThunk(v)
		if err != nil {
			return nil, err
		}
		result, err := f(value)
		if err != nil {
			return nil, err
		}
		return ResolveThunk(result)
	}), nil
}
