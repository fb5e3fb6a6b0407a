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
	"reflect"
	"strconv"
	"strings"
)

const cursorPrefix = "arrayconnection:"

// OffsetToCursor creates the cursor string from an offset.
func OffsetToCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// CursorToOffset extracts the offset from the cursor string. The second return value is false if
// cursor was not created by OffsetToCursor.
func CursorToOffset(cursor string) (int, bool) {
	decoded, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, false
	}

	s := string(decoded)
	if !strings.HasPrefix(s, cursorPrefix) {
		return 0, false
	}

	offset, err := strconv.Atoi(s[len(cursorPrefix):])
	if err != nil {
		return 0, false
	}

	return offset, true
}

// GetOffsetWithDefault returns the offset in the given cursor. If cursor is nil or invalid, return
// defaultOffset.
func GetOffsetWithDefault(cursor *string, defaultOffset int) int {
	if cursor == nil {
		return defaultOffset
	}
	offset, ok := CursorToOffset(*cursor)
	if !ok {
		return defaultOffset
	}
	return offset
}

// CursorForObjectInConnection returns the cursor associated with an object in an array. Objects are
// compared with reflect.DeepEqual. Return nil if object is not found in data.
func CursorForObjectInConnection(data []interface{}, object interface{}) *string {
	for i, value := range data {
		if reflect.DeepEqual(value, object) {
			cursor := OffsetToCursor(i)
			return &cursor
		}
	}
	return nil
}
