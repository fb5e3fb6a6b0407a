/**
 * Copyright (c) 2018, The Artemis Authors.
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

// Package util provides helpers shared by the packages in this module.
package util

import (
	"sort"
	"strings"
)

// SuggestionList given an invalid input string and a list of valid options, returns a filtered
// list of valid options sorted based on their similarity with the input. Options with the same
// distance keep their relative order.
func SuggestionList(input string, options []string) []string {
	type suggestion struct {
		option   string
		distance int
	}

	var (
		suggestions    []suggestion
		inputThreshold = len(input) / 2
	)
	for _, option := range options {
		distance := lexicalDistance(input, option)

		threshold := inputThreshold
		if t := len(option) / 2; t > threshold {
			threshold = t
		}
		if threshold < 1 {
			threshold = 1
		}

		if distance <= threshold {
			suggestions = append(suggestions, suggestion{option, distance})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].distance < suggestions[j].distance
	})

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.option
	}
	return result
}

// lexicalDistance computes the minimum number of edits needed to transform a into b. An edit can be
// an insertion, deletion, or substitution of a single character, or a swap of two adjacent
// characters. Changing the case of the whole string counts as a single edit.
func lexicalDistance(a string, b string) int {
	if a == b {
		return 0
	}

	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1
	}

	// d[i][j] is the distance between a[:i] and b[:j].
	d := make([][]int, len(a)+1)
	for i := range d {
		d[i] = make([]int, len(b)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			min := minOf(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				min = minOf(min, d[i-2][j-2]+cost)
			}

			d[i][j] = min
		}
	}

	return d[len(a)][len(b)]
}

func minOf(x int, others ...int) int {
	for _, y := range others {
		if y < x {
			x = y
		}
	}
	return x
}
