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
	"github.com/botobag/relay/dataloader"
	"github.com/graphql-go/graphql"
)

// LoaderFunc returns the DataLoader for a resolve call. It typically fetches the loader from a
// dataloader.Manager carried by p.Context so loaders are scoped to a request.
type LoaderFunc func(p graphql.ResolveParams) (*dataloader.DataLoader, error)

// BatchedInstanceResolver creates an InstanceResolver which loads object from the DataLoader
// returned by getLoader with the local ID as the key. The load is deferred with a thunk so the
// "node" fields in a query are fetched in one batch.
func BatchedInstanceResolver(getLoader LoaderFunc) InstanceResolver {
	return func(id string, p graphql.ResolveParams) (interface{}, error) {
		loader, err := getLoader(p)
		if err != nil {
			return nil, err
		}
		thunk, err := loader.Load(p.Context, id)
		if err != nil {
			return nil, err
		}
		return Thunk(thunk), nil
	}
}

// ManagedLoader returns a LoaderFunc that gets or creates the DataLoader registered with info in
// the dataloader.Manager attached to p.Context by dataloader.NewContext.
func ManagedLoader(info *dataloader.RegisterInfo) LoaderFunc {
	return func(p graphql.ResolveParams) (*dataloader.DataLoader, error) {
		const op Op = "relay.ManagedLoader"
		manager, ok := dataloader.FromContext(p.Context)
		if !ok {
			return nil, NewError("no dataloader.Manager in context", op, ErrKindInternal)
		}
		return manager.GetOrCreate(info)
	}
}

// StaticLoader returns a LoaderFunc that always gives loader. The loader caches values across all
// requests that resolve with it.
func StaticLoader(loader *dataloader.DataLoader) LoaderFunc {
	return func(graphql.ResolveParams) (*dataloader.DataLoader, error) {
		return loader, nil
	}
}
