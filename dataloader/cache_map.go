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

package dataloader

import (
	"sync"
)

// CacheMap stores the tasks created by a DataLoader keyed by the task key so the loads for the same
// key share one task. All methods must be safe for concurrent use by multiple goroutines.
type CacheMap interface {
	// Get returns the task cached for key or nil if there's none.
	Get(key Key) *Task

	// Set adds task to the cache unless a task with the same key is already there, in which case
	// that one is returned. Otherwise task itself is returned.
	Set(task *Task) *Task

	// Delete removes the task cached for key.
	Delete(key Key)

	// Clear removes all tasks.
	Clear()
}

//===----------------------------------------------------------------------------------------====//
// DefaultCacheMap
//===----------------------------------------------------------------------------------------====//

// DefaultCacheMap is used when Config.CacheMap is not set. Keys are compared with ==.
type DefaultCacheMap struct {
	m sync.Map
}

var _ CacheMap = (*DefaultCacheMap)(nil)

// Get implements CacheMap.
func (cacheMap *DefaultCacheMap) Get(key Key) *Task {
	return cacheMap.get(key)
}

// Set implements CacheMap.
func (cacheMap *DefaultCacheMap) Set(task *Task) *Task {
	return cacheMap.set(task.Key(), task)
}

// Delete implements CacheMap.
func (cacheMap *DefaultCacheMap) Delete(key Key) {
	cacheMap.m.Delete(key)
}

// Clear implements CacheMap.
func (cacheMap *DefaultCacheMap) Clear() {
	cacheMap.m.Range(func(key, _ interface{}) bool {
		cacheMap.m.Delete(key)
		return true
	})
}

func (cacheMap *DefaultCacheMap) get(cacheKey interface{}) *Task {
	if task, ok := cacheMap.m.Load(cacheKey); ok {
		return task.(*Task)
	}
	return nil
}

func (cacheMap *DefaultCacheMap) set(cacheKey interface{}, task *Task) *Task {
	t, _ := cacheMap.m.LoadOrStore(cacheKey, task)
	return t.(*Task)
}

//===----------------------------------------------------------------------------------------====//
// CustomKeyCacheMap
//===----------------------------------------------------------------------------------------====//

// CacheKeyFunc maps a Key to a comparable value which is used as the key in cache.
type CacheKeyFunc func(key Key) interface{}

// CustomKeyCacheMap is a DefaultCacheMap which stores tasks under the cache keys returned by
// KeyFunc. It allows keys that are not comparable (such as maps and slices) or keys that should be
// compared by their contents.
type CustomKeyCacheMap struct {
	DefaultCacheMap

	// (Required) KeyFunc computes cache key for a Key.
	KeyFunc CacheKeyFunc
}

var _ CacheMap = (*CustomKeyCacheMap)(nil)

// NewCustomKeyCacheMap creates a CustomKeyCacheMap with the given key function.
func NewCustomKeyCacheMap(keyFunc CacheKeyFunc) *CustomKeyCacheMap {
	return &CustomKeyCacheMap{
		KeyFunc: keyFunc,
	}
}

// Get implements CacheMap.
func (cacheMap *CustomKeyCacheMap) Get(key Key) *Task {
	return cacheMap.get(cacheMap.KeyFunc(key))
}

// Set implements CacheMap.
func (cacheMap *CustomKeyCacheMap) Set(task *Task) *Task {
	return cacheMap.set(cacheMap.KeyFunc(task.Key()), task)
}

// Delete implements CacheMap.
func (cacheMap *CustomKeyCacheMap) Delete(key Key) {
	cacheMap.DefaultCacheMap.Delete(cacheMap.KeyFunc(key))
}

//===----------------------------------------------------------------------------------------====//
// NoCacheMap
//===----------------------------------------------------------------------------------------====//

type noCacheMap int

var _ CacheMap = NoCacheMap

// Get implements CacheMap.
func (noCacheMap) Get(key Key) *Task {
	return nil
}

// Set implements CacheMap.
func (noCacheMap) Set(task *Task) *Task {
	return task
}

// Delete implements CacheMap.
func (noCacheMap) Delete(key Key) {}

// Clear implements CacheMap.
func (noCacheMap) Clear() {}

// NoCacheMap is given to Config.CacheMap to disable cache for a DataLoader.
const NoCacheMap noCacheMap = 0
