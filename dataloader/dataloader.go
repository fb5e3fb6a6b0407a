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
	"context"
	"errors"
	"sync"

	"github.com/botobag/relay/iterator"
	"github.com/jensneuse/abstractlogger"
)

// Key is an unique identifier of a value loaded by a DataLoader.
type Key interface{}

// Keys specifies a list of keys and provides an iterator over the keys.
type Keys interface {
	Iterator() KeyIterator
}

// KeysWithSize is a Keys with size hint.
type KeysWithSize interface {
	Keys
	Size() int
}

// KeyIterator is an iterator over keys in Keys.
type KeyIterator interface {
	// Next returns the next key in the iteration. It conforms the iterator pattern described in
	// iterator package.
	Next() (Key, error)
}

// keysArray is a return value for KeysFromArray which implements KeysWithSize.
type keysArray []Key

type keysArrayIterator struct {
	keys keysArray
	i    int
}

// Iterator implements Keys.
func (a keysArray) Iterator() KeyIterator {
	return &keysArrayIterator{keys: a}
}

// Size implements KeysWithSize.
func (a keysArray) Size() int {
	return len(a)
}

// Next implements KeyIterator.
func (iter *keysArrayIterator) Next() (Key, error) {
	if iter.i < len(iter.keys) {
		key := iter.keys[iter.i]
		iter.i++
		return key, nil
	}
	return nil, iterator.Done
}

// KeysFromArray creates from an array of Key's.
func KeysFromArray(keys ...Key) KeysWithSize {
	return keysArray(keys)
}

//===----------------------------------------------------------------------------------------====//
// taskQueue
//===----------------------------------------------------------------------------------------====//

type taskQueue struct {
	// DataLoader that creates and executes the tasks in the queue.
	loader *DataLoader

	// tasks stored in a linked list
	tasks TaskList
}

func newTaskQueue(loader *DataLoader) *taskQueue {
	return &taskQueue{
		loader: loader,
	}
}

func (queue *taskQueue) enqueue(key Key) *Task {
	task := newTask(queue, key)

	if cacheMap := queue.loader.cacheMap; cacheMap != nil {
		if cachedTask := cacheMap.Set(task); cachedTask != task {
			// Someone has requested the key. Share its task.
			return cachedTask
		}
	}

	queue.tasks.push(task)

	return task
}

//===----------------------------------------------------------------------------------------====//
// DataLoader
//===----------------------------------------------------------------------------------------====//

// A DataLoader loads data from a data backend with unique keys such as the id column of a SQL
// table.
//
// Load doesn't fetch data immediately. The keys are queued and the returned thunk dispatches the
// queue to the BatchLoader the first time it is called. graphql-go calls the thunks returned by the
// field resolvers after all fields at the same level are resolved so the loads made by the sibling
// fields are sent in one batch.
type DataLoader struct {
	config *Config
	logger abstractlogger.Logger

	// Lock that guard accesses to queue
	queueMutex sync.Mutex

	// Queue containing the pending tasks for data loading
	queue *taskQueue

	// cacheMap caches loaded data. It is nil if the cache is disabled.
	cacheMap CacheMap
}

var (
	errMissingBatchLoader = errors.New("batch loader is required to construct a DataLoader")
	errMissingKey         = errors.New("must specify key to identify data to be loaded")
)

// New creates a DataLoader instance from given config.
func New(config Config) (*DataLoader, error) {
	if config.BatchLoader == nil {
		return nil, errMissingBatchLoader
	}

	cacheMap := config.CacheMap
	if cacheMap == nil {
		cacheMap = &DefaultCacheMap{}
	} else if cacheMap == NoCacheMap {
		cacheMap = nil
	}

	logger := config.Logger
	if logger == nil {
		logger = abstractlogger.NoopLogger
	}

	loader := &DataLoader{
		config:   &config,
		logger:   logger,
		cacheMap: cacheMap,
	}
	loader.queue = newTaskQueue(loader)

	return loader, nil
}

// BatchLoader returns loader.config.BatchLoader.
func (loader *DataLoader) BatchLoader() BatchLoader {
	return loader.config.BatchLoader
}

// Load loads a data identified by the key. It returns a thunk for the value represented by that
// key. ctx is passed to the BatchLoader when the thunk dispatches the load.
func (loader *DataLoader) Load(ctx context.Context, key Key) (func() (interface{}, error), error) {
	if key == nil {
		return nil, errMissingKey
	}

	if cacheMap := loader.cacheMap; cacheMap != nil {
		if task := cacheMap.Get(key); task != nil {
			return task.thunk(ctx), nil
		}
	}

	loader.queueMutex.Lock()
	task := loader.queue.enqueue(key)
	loader.queueMutex.Unlock()

	return task.thunk(ctx), nil
}

// LoadMany loads collection of data identified by multiple keys. It returns a thunk for the values
// represented by those keys. The thunk fails with the first error in the loads.
func (loader *DataLoader) LoadMany(ctx context.Context, keys Keys) (func() (interface{}, error), error) {
	var thunks []func() (interface{}, error)

	// Pre-allocate when size hint is available.
	if keys, ok := keys.(KeysWithSize); ok {
		thunks = make([]func() (interface{}, error), 0, keys.Size())
	}

	keyIter := keys.Iterator()
	for {
		key, err := keyIter.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			return nil, err
		}

		thunk, err := loader.Load(ctx, key)
		if err != nil {
			return nil, err
		}

		thunks = append(thunks, thunk)
	}

	return func() (interface{}, error) {
		values := make([]interface{}, len(thunks))
		for i, thunk := range thunks {
			value, err := thunk()
			if err != nil {
				return nil, err
			}
			values[i] = value
		}
		return values, nil
	}, nil
}

// Dispatch sends the tasks in current queue as of the time this function is called to the
// BatchLoader. It returns after the BatchLoader returns.
func (loader *DataLoader) Dispatch(ctx context.Context) {
	loader.queueMutex.Lock()
	queue := loader.queue
	loader.queueMutex.Unlock()

	loader.dispatchQueue(ctx, queue)
}

// dispatchQueue runs batch load for given queue. Note that the work is performed by the one who
// successfully "detaches" the queue from the loader.
func (loader *DataLoader) dispatchQueue(ctx context.Context, queue *taskQueue) {
	loader.queueMutex.Lock()

	// Return quickly if someone has dispatched the given queue or the queue is empty.
	if queue != loader.queue || queue.tasks.Empty() {
		loader.queueMutex.Unlock()
		return
	}

	// Replace with an empty queue.
	loader.queue = newTaskQueue(loader)
	loader.queueMutex.Unlock()

	maxBatchSize := loader.config.MaxBatchSize
	if maxBatchSize == 0 {
		loader.runBatch(ctx, queue.tasks)
		return
	}

	var (
		// tasks will be split into some small sub-lists each of which has at most maxBatchSize tasks.
		// firstTask marks the first task of the sub-list in current batch.
		firstTask = queue.tasks.first
		task      = firstTask
		counter   = maxBatchSize
	)

	for task != nil {
		nextTask := task.next

		counter--
		if counter == 0 {
			loader.runBatch(ctx, TaskList{
				first: firstTask,
				last:  task,
			})
			counter = maxBatchSize
			firstTask = nextTask
		}

		task = nextTask
	}

	// Dispatch the last batch.
	if firstTask != nil {
		loader.runBatch(ctx, TaskList{
			first: firstTask,
		})
	}
}

func (loader *DataLoader) runBatch(ctx context.Context, tasks TaskList) {
	job := &batchLoadJob{
		loader: loader,
		tasks:  tasks,
	}
	job.run(ctx)
}

// Clear the value for the given key from the cache.
func (loader *DataLoader) Clear(key Key) {
	if cacheMap := loader.cacheMap; cacheMap != nil {
		cacheMap.Delete(key)
	}
}

// ClearAll clears the entire cache.
func (loader *DataLoader) ClearAll() {
	if cacheMap := loader.cacheMap; cacheMap != nil {
		cacheMap.Clear()
	}
}

// Prime adds the provided key and value to the cache. If the key already exists, no change is made.
func (loader *DataLoader) Prime(key Key, value interface{}) error {
	return loader.prime(key, value, nil)
}

// PrimeError adds the provided key with an error value to the cache. If the key already exists, no
// change is made.
func (loader *DataLoader) PrimeError(key Key, err error) error {
	return loader.prime(key, nil, err)
}

func (loader *DataLoader) prime(key Key, value interface{}, err error) error {
	if key == nil {
		return errMissingKey
	}

	cacheMap := loader.cacheMap
	if cacheMap == nil {
		return nil
	}

	task := newTask(nil, key)
	if err := task.complete(value, err); err != nil {
		return err
	}
	cacheMap.Set(task)

	return nil
}
