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
	"encoding/base64"
	"strings"
)

// ResolvedGlobalID is the result of decoding a global ID with FromGlobalID.
type ResolvedGlobalID struct {
	// Name of the GraphQL type that the object belongs to
	Type string

	// The identifier of the object which is unique among objects of the same Type
	ID string
}

// ToGlobalID takes a type name and an ID specific to that type name, and returns a "global ID" that
// is unique among all types.
func ToGlobalID(typename string, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(typename + ":" + id))
}

// FromGlobalID takes the "global ID" created by ToGlobalID, and returns the type name and ID used
// to create it. The second return value is false if the given string is not a valid global ID. That
// is, it is not encoded in base64, it doesn't contain a ":" to separate type name and ID, or either
// of the two parts is empty.
func FromGlobalID(globalID string) (ResolvedGlobalID, bool) {
	decoded, err := base64.StdEncoding.DecodeString(globalID)
	if err != nil {
		return ResolvedGlobalID{}, false
	}

	s := string(decoded)
	sep := strings.IndexByte(s, ':')
	if sep <= 0 || sep == len(s)-1 {
		return ResolvedGlobalID{}, false
	}

	return ResolvedGlobalID{
		Type: s[:sep],
		ID:   s[sep+1:],
	}, true
}
