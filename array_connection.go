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

// arraySliceInfo describes where a slice is located in the whole array.
type arraySliceInfo struct {
	sliceStart       int
	arrayLength      int
	hasArrayLength   bool
	arraySliceLength int
	hasSliceLength   bool
}

// ArraySliceOption configures ConnectionFromArraySlice.
type ArraySliceOption func(info *arraySliceInfo)

// SliceStart sets the offset of the first value of the slice in the whole array. Default is 0.
func SliceStart(offset int) ArraySliceOption {
	return func(info *arraySliceInfo) {
		info.sliceStart = offset
	}
}

// ArrayLength sets the number of values in the whole array. Default is the end of the slice (i.e.,
// the slice is the tail of the array.)
func ArrayLength(length int) ArraySliceOption {
	return func(info *arraySliceInfo) {
		info.arrayLength = length
		info.hasArrayLength = true
	}
}

// ArraySliceLength sets the number of values in the slice. It is required if the slice doesn't
// implement SizedSliceable.
func ArraySliceLength(length int) ArraySliceOption {
	return func(info *arraySliceInfo) {
		info.arraySliceLength = length
		info.hasSliceLength = true
	}
}

var (
	errNegativeFirst = NewError("Argument 'first' must be a non-negative integer.", ErrKindArgument)
	errNegativeLast  = NewError("Argument 'last' must be a non-negative integer.", ErrKindArgument)
	errMissingLength = NewError("the length of the array slice is unknown; provide it with "+
		"ArraySliceLength or pass a SizedSliceable", ErrKindInternal)
)

// ConnectionFromArray is a simple function that accepts an array and connection arguments, and
// returns a connection object for use in GraphQL. It uses array offsets as pagination, so
// pagination will only work if the array is static.
func ConnectionFromArray(data interface{}, args ConnectionArguments) (*Connection, error) {
	slice, err := SliceOf(data)
	if err != nil {
		return nil, err
	}
	return ConnectionFromArraySlice(slice, args, ArrayLength(slice.Len()))
}

// ConnectionFromArraySlice builds a connection from a slice of a larger array. The slice doesn't
// need to hold the whole array. Options tell where the slice starts in the array and how long the
// array is. Edges are created from values in the slice which are selected by args, and the cursor
// of an edge encodes the offset of the value in the whole array.
//
// An error is returned if either "first" or "last" is negative.
func ConnectionFromArraySlice(
	slice Sliceable,
	args ConnectionArguments,
	opts ...ArraySliceOption) (*Connection, error) {

	var info arraySliceInfo
	for _, opt := range opts {
		opt(&info)
	}

	arraySliceLength := info.arraySliceLength
	if !info.hasSliceLength {
		sized, ok := slice.(SizedSliceable)
		if !ok {
			return nil, errMissingLength
		}
		arraySliceLength = sized.Len()
	}

	var (
		sliceStart  = info.sliceStart
		sliceEnd    = sliceStart + arraySliceLength
		arrayLength = sliceEnd
	)
	if info.hasArrayLength {
		arrayLength = info.arrayLength
	}

	startOffset := maxInt(sliceStart, 0)
	endOffset := minInt(sliceEnd, arrayLength)

	afterOffset := GetOffsetWithDefault(args.After, -1)
	if 0 <= afterOffset && afterOffset < arrayLength {
		startOffset = maxInt(startOffset, afterOffset+1)
	}

	beforeOffset := GetOffsetWithDefault(args.Before, endOffset)
	if 0 <= beforeOffset && beforeOffset < arrayLength {
		endOffset = minInt(endOffset, beforeOffset)
	}

	if args.First != nil {
		first := *args.First
		if first < 0 {
			return nil, errNegativeFirst
		}
		endOffset = minInt(endOffset, startOffset+first)
	}

	if args.Last != nil {
		last := *args.Last
		if last < 0 {
			return nil, errNegativeLast
		}
		startOffset = maxInt(startOffset, endOffset-last)
	}

	// If supplied slice is too large, trim it down before mapping over it. Offsets are relative to
	// the slice.
	var (
		lo    = startOffset - sliceStart
		hi    = minInt(endOffset-sliceStart, arraySliceLength)
		edges []*Edge
	)
	if lo < hi {
		values, err := slice.Slice(lo, hi)
		if err != nil {
			return nil, err
		}

		edges = make([]*Edge, len(values))
		for i, value := range values {
			edges[i] = &Edge{
				Node:   value,
				Cursor: OffsetToCursor(startOffset + i),
			}
		}
	} else {
		edges = []*Edge{}
	}

	pageInfo := &PageInfo{}
	if len(edges) > 0 {
		startCursor := edges[0].Cursor
		endCursor := edges[len(edges)-1].Cursor
		pageInfo.StartCursor = &startCursor
		pageInfo.EndCursor = &endCursor
	}

	lowerBound := 0
	if hasCursor(args.After) {
		lowerBound = afterOffset + 1
	}
	upperBound := arrayLength
	if hasCursor(args.Before) {
		upperBound = beforeOffset
	}

	if args.Last != nil {
		pageInfo.HasPreviousPage = startOffset > lowerBound
	}
	if args.First != nil {
		pageInfo.HasNextPage = endOffset < upperBound
	}

	return &Connection{
		Edges:    edges,
		PageInfo: pageInfo,
	}, nil
}

func hasCursor(cursor *string) bool {
	return cursor != nil && len(*cursor) > 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
