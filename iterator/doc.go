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

// Package iterator defines Done, the sentinel error that ends an iteration, and documents the
// iterator pattern used in this module (the one in the Google Cloud Client Libraries for Go [0]).
//
// An iterable resource has a method returning an iterator. The iterator has a single method Next
// that returns the next element and a nil error, or iterator.Done when no element is left. For
// example, dataloader.Keys returns a dataloader.KeyIterator:
//
//	keyIter := keys.Iterator()
//	for {
//		key, err := keyIter.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			return err
//		}
//		process(key)
//	}
//
// Any other error returned by Next aborts the iteration.
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
