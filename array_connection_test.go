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

package relay_test

import (
	"github.com/botobag/relay"
	"github.com/botobag/relay/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func intArg(i int) *int {
	return &i
}

func stringArg(s string) *string {
	return &s
}

func cursorArg(offset int) *string {
	return stringArg(relay.OffsetToCursor(offset))
}

// edgesFrom creates edges for nodes which are located in array starting at the given offset.
func edgesFrom(offset int, nodes ...interface{}) []*relay.Edge {
	edges := make([]*relay.Edge, len(nodes))
	for i, node := range nodes {
		edges[i] = &relay.Edge{
			Node:   node,
			Cursor: relay.OffsetToCursor(offset + i),
		}
	}
	return edges
}

func pageInfoFor(edges []*relay.Edge, hasPreviousPage bool, hasNextPage bool) *relay.PageInfo {
	pageInfo := &relay.PageInfo{
		HasPreviousPage: hasPreviousPage,
		HasNextPage:     hasNextPage,
	}
	if len(edges) > 0 {
		pageInfo.StartCursor = stringArg(edges[0].Cursor)
		pageInfo.EndCursor = stringArg(edges[len(edges)-1].Cursor)
	}
	return pageInfo
}

func expectConnection(
	connection *relay.Connection,
	err error,
	edges []*relay.Edge,
	hasPreviousPage bool,
	hasNextPage bool) {

	Expect(err).ShouldNot(HaveOccurred())
	Expect(connection.Edges).Should(Equal(edges))
	Expect(connection.PageInfo).Should(Equal(pageInfoFor(edges, hasPreviousPage, hasNextPage)))
}

var _ = Describe("ConnectionFromArray", func() {
	letters := []interface{}{"A", "B", "C", "D", "E"}

	Describe("basic slicing", func() {
		It("returns all elements without filters", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{})
			expectConnection(c, err, edgesFrom(0, "A", "B", "C", "D", "E"), false, false)
		})

		It("respects a smaller first", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				First: intArg(2),
			})
			expectConnection(c, err, edgesFrom(0, "A", "B"), false, true)
		})

		It("respects an overly large first", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				First: intArg(10),
			})
			expectConnection(c, err, edgesFrom(0, "A", "B", "C", "D", "E"), false, false)
		})

		It("respects a smaller last", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Last: intArg(2),
			})
			expectConnection(c, err, edgesFrom(3, "D", "E"), true, false)
		})

		It("respects an overly large last", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Last: intArg(10),
			})
			expectConnection(c, err, edgesFrom(0, "A", "B", "C", "D", "E"), false, false)
		})
	})

	Describe("pagination", func() {
		It("respects first and after", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				First: intArg(2),
				After: cursorArg(1),
			})
			expectConnection(c, err, edgesFrom(2, "C", "D"), false, true)
		})

		It("respects first and after with long first", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				First: intArg(10),
				After: cursorArg(1),
			})
			expectConnection(c, err, edgesFrom(2, "C", "D", "E"), false, false)
		})

		It("respects last and before", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Last:   intArg(2),
				Before: cursorArg(3),
			})
			expectConnection(c, err, edgesFrom(1, "B", "C"), true, false)
		})

		It("respects last and before with long last", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Last:   intArg(10),
				Before: cursorArg(3),
			})
			expectConnection(c, err, edgesFrom(0, "A", "B", "C"), false, false)
		})

		It("respects first and after and before, too few", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				First:  intArg(2),
				After:  cursorArg(0),
				Before: cursorArg(4),
			})
			expectConnection(c, err, edgesFrom(1, "B", "C"), false, true)
		})

		It("respects first and after and before, too many", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				First:  intArg(4),
				After:  cursorArg(0),
				Before: cursorArg(4),
			})
			expectConnection(c, err, edgesFrom(1, "B", "C", "D"), false, false)
		})

		It("respects first and after and before, exactly right", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				First:  intArg(3),
				After:  cursorArg(0),
				Before: cursorArg(4),
			})
			expectConnection(c, err, edgesFrom(1, "B", "C", "D"), false, false)
		})

		It("respects last and after and before, too few", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Last:   intArg(2),
				After:  cursorArg(0),
				Before: cursorArg(4),
			})
			expectConnection(c, err, edgesFrom(2, "C", "D"), true, false)
		})

		It("respects last and after and before, too many", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Last:   intArg(4),
				After:  cursorArg(0),
				Before: cursorArg(4),
			})
			expectConnection(c, err, edgesFrom(1, "B", "C", "D"), false, false)
		})

		It("returns no elements if first is 0", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				First: intArg(0),
			})
			expectConnection(c, err, []*relay.Edge{}, false, true)
		})

		It("returns all elements if cursors are invalid", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Before: stringArg("invalid"),
				After:  stringArg("invalid"),
			})
			expectConnection(c, err, edgesFrom(0, "A", "B", "C", "D", "E"), false, false)
		})

		It("returns all elements if cursors are on the outside", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Before: cursorArg(6),
				After:  cursorArg(-1),
			})
			expectConnection(c, err, edgesFrom(0, "A", "B", "C", "D", "E"), false, false)
		})

		It("returns no elements if cursors cross", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Before: cursorArg(2),
				After:  cursorArg(4),
			})
			expectConnection(c, err, []*relay.Edge{}, false, false)
		})

		It("treats empty cursor as absent", func() {
			c, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Last:  intArg(2),
				After: stringArg(""),
			})
			expectConnection(c, err, edgesFrom(3, "D", "E"), true, false)
		})
	})

	Describe("argument errors", func() {
		It("rejects negative first", func() {
			_, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				First: intArg(-1),
			})
			Expect(err).Should(testutil.MatchRelayError(
				testutil.MessageEqual("Argument 'first' must be a non-negative integer."),
				testutil.KindIs(relay.ErrKindArgument),
			))
		})

		It("rejects negative last", func() {
			_, err := relay.ConnectionFromArray(letters, relay.ConnectionArguments{
				Last: intArg(-1),
			})
			Expect(err).Should(testutil.MatchRelayError(
				testutil.MessageEqual("Argument 'last' must be a non-negative integer."),
				testutil.KindIs(relay.ErrKindArgument),
			))
		})
	})

	Describe("data", func() {
		It("accepts typed slices", func() {
			c, err := relay.ConnectionFromArray([]string{"A", "B", "C"}, relay.ConnectionArguments{
				First: intArg(2),
			})
			expectConnection(c, err, edgesFrom(0, "A", "B"), false, true)
		})

		It("accepts arrays", func() {
			c, err := relay.ConnectionFromArray([3]int{1, 2, 3}, relay.ConnectionArguments{
				Last: intArg(1),
			})
			expectConnection(c, err, edgesFrom(2, 3), true, false)
		})

		It("treats nil as empty array", func() {
			c, err := relay.ConnectionFromArray(nil, relay.ConnectionArguments{})
			expectConnection(c, err, []*relay.Edge{}, false, false)
		})

		It("rejects values that are not array", func() {
			_, err := relay.ConnectionFromArray(42, relay.ConnectionArguments{})
			Expect(err).Should(testutil.MatchRelayError(
				testutil.KindIs(relay.ErrKindInternal),
			))
		})
	})
})

var _ = Describe("ConnectionFromArraySlice", func() {
	letters := []interface{}{"A", "B", "C", "D", "E"}

	It("works with a just right array slice", func() {
		c, err := relay.ConnectionFromArraySlice(relay.Values(letters[1:3]), relay.ConnectionArguments{
			First: intArg(2),
			After: cursorArg(0),
		}, relay.SliceStart(1), relay.ArrayLength(5))
		expectConnection(c, err, edgesFrom(1, "B", "C"), false, true)
	})

	It("works with an oversized array slice (left side)", func() {
		c, err := relay.ConnectionFromArraySlice(relay.Values(letters[0:3]), relay.ConnectionArguments{
			First: intArg(2),
			After: cursorArg(0),
		}, relay.SliceStart(0), relay.ArrayLength(5))
		expectConnection(c, err, edgesFrom(1, "B", "C"), false, true)
	})

	It("works with an oversized array slice (right side)", func() {
		c, err := relay.ConnectionFromArraySlice(relay.Values(letters[2:4]), relay.ConnectionArguments{
			First: intArg(1),
			After: cursorArg(1),
		}, relay.SliceStart(2), relay.ArrayLength(5))
		expectConnection(c, err, edgesFrom(2, "C"), false, true)
	})

	It("works with an oversized array slice (both sides)", func() {
		c, err := relay.ConnectionFromArraySlice(relay.Values(letters[1:4]), relay.ConnectionArguments{
			First: intArg(1),
			After: cursorArg(1),
		}, relay.SliceStart(1), relay.ArrayLength(5))
		expectConnection(c, err, edgesFrom(2, "C"), false, true)
	})

	It("works with an undersized array slice (left side)", func() {
		c, err := relay.ConnectionFromArraySlice(relay.Values(letters[3:5]), relay.ConnectionArguments{
			First: intArg(3),
			After: cursorArg(1),
		}, relay.SliceStart(3), relay.ArrayLength(5))
		expectConnection(c, err, edgesFrom(3, "D", "E"), false, false)
	})

	It("works with an undersized array slice (right side)", func() {
		c, err := relay.ConnectionFromArraySlice(relay.Values(letters[2:4]), relay.ConnectionArguments{
			First: intArg(3),
			After: cursorArg(1),
		}, relay.SliceStart(2), relay.ArrayLength(5))
		expectConnection(c, err, edgesFrom(2, "C", "D"), false, true)
	})

	It("works with an undersized array slice (both sides)", func() {
		c, err := relay.ConnectionFromArraySlice(relay.Values(letters[3:4]), relay.ConnectionArguments{
			First: intArg(3),
			After: cursorArg(1),
		}, relay.SliceStart(3), relay.ArrayLength(5))
		expectConnection(c, err, edgesFrom(3, "D"), false, true)
	})

	It("requires length of unsized slice", func() {
		slice := unsizedSlice(letters)

		_, err := relay.ConnectionFromArraySlice(slice, relay.ConnectionArguments{})
		Expect(err).Should(testutil.MatchRelayError(
			testutil.KindIs(relay.ErrKindInternal),
		))

		c, err := relay.ConnectionFromArraySlice(slice, relay.ConnectionArguments{
			Last: intArg(1),
		}, relay.ArraySliceLength(len(letters)))
		expectConnection(c, err, edgesFrom(4, "E"), true, false)
	})
})

// unsizedSlice implements relay.Sliceable without relay.SizedSliceable.
type unsizedSlice []interface{}

func (s unsizedSlice) Slice(start, end int) ([]interface{}, error) {
	return s[start:end], nil
}
