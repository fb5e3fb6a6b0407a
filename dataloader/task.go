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
	"fmt"
	"sync"
)

//===----------------------------------------------------------------------------------------====//
// Task
//===----------------------------------------------------------------------------------------====//

// Task specifies key for BatchLoader to load data and provides storage to write result on
// completion. A task can be completed only once with either Complete or SetError.
type Task struct {
	key Key

	// Queue that contains this task; Could be nil if the task is never placed in a queue (e.g.,
	// created by Prime.)
	parent *taskQueue

	// mutex guards completed, value and err.
	mutex     sync.Mutex
	completed bool
	value     interface{}
	err       error

	// done is closed when the task is completed.
	done chan struct{}

	// The next task in the list
	next *Task
}

func newTask(parent *taskQueue, key Key) *Task {
	return &Task{
		key:    key,
		parent: parent,
		done:   make(chan struct{}),
	}
}

// Key returns t.key.
func (t *Task) Key() Key {
	return t.key
}

func (t *Task) complete(value interface{}, err error) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.completed {
		if t.err != nil {
			return fmt.Errorf("task for key %v was already completed with an error (%s)", t.key, t.err)
		}
		return fmt.Errorf("task for key %v was already completed with a value (%+v)", t.key, t.value)
	}

	t.completed = true
	t.value = value
	t.err = err
	close(t.done)
	return nil
}

// Complete the task with the given value.
func (t *Task) Complete(value interface{}) error {
	return t.complete(value, nil)
}

// SetError completes the task with an error value.
func (t *Task) SetError(err error) error {
	return t.complete(nil, err)
}

// Completed returns true if the task has been completed (with either a value or an error.)
func (t *Task) Completed() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// wait blocks until the task is completed or ctx is done.
func (t *Task) wait(ctx context.Context) (interface{}, error) {
	select {
	case <-t.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.value, t.err
}

// thunk returns a function that returns the result of the task. If the task has not been
// dispatched, calling the function dispatches the queue containing the task which allows all loads
// made before the call to be batched.
func (t *Task) thunk(ctx context.Context) func() (interface{}, error) {
	return func() (interface{}, error) {
		if queue := t.parent; queue != nil && !t.Completed() {
			queue.loader.dispatchQueue(ctx, queue)
		}
		return t.wait(ctx)
	}
}

//===----------------------------------------------------------------------------------------====//
// TaskList
//===----------------------------------------------------------------------------------------====//

// TaskList represents a list of Task's stored in a linked list from first to last (both included).
type TaskList struct {
	first *Task
	last  *Task
}

// Begin returns an iterator pointing to the first task in the list.
func (tasks *TaskList) Begin() TaskIterator {
	return TaskIterator{tasks.first}
}

// End returns an iterator refers to the pass-to-the-end task in the list.
func (tasks *TaskList) End() TaskIterator {
	if tasks.last != nil {
		return TaskIterator{tasks.last.next}
	}
	return TaskIterator{nil}
}

// Empty returns true if the TaskList doesn't contain any tasks.
func (tasks *TaskList) Empty() bool {
	return tasks.first == nil
}

// Len counts the tasks in the list.
func (tasks *TaskList) Len() int {
	n := 0
	for taskIter, taskEnd := tasks.Begin(), tasks.End(); taskIter != taskEnd; taskIter = taskIter.Next() {
		n++
	}
	return n
}

// Keys returns keys of the tasks in the list.
func (tasks *TaskList) Keys() []Key {
	var keys []Key
	for taskIter, taskEnd := tasks.Begin(), tasks.End(); taskIter != taskEnd; taskIter = taskIter.Next() {
		keys = append(keys, taskIter.Key())
	}
	return keys
}

func (tasks *TaskList) push(task *Task) {
	last := tasks.last
	if last == nil {
		tasks.first = task
	} else {
		last.next = task
	}
	tasks.last = task
}

// TaskIterator is used to access Task in a TaskList.
//
// Example:
//
//	for taskIter, taskEnd := tasks.Begin(), tasks.End(); taskIter != taskEnd; taskIter = taskIter.Next() {
//		task := taskIter.Task
//		...
//	}
type TaskIterator struct {
	// The referring task by this iterator
	*Task
}

// Next returns a TaskIterator that refers to the Task next to the one referred by iter in the list.
func (iter TaskIterator) Next() TaskIterator {
	return TaskIterator{iter.Task.next}
}
