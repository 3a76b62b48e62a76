// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package containers

import "reflect"

// LinkedList is a singly-linked sequence addressed by zero-based index.
type LinkedList[T any] struct {
	tracer
	head *node[T]
	size int
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Append adds value after the last element. It walks the whole list.
func (l *LinkedList[T]) Append(value T) {
	n := &node[T]{data: value}
	if l.head == nil {
		l.head = n
	} else {
		cur := l.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = n
	}
	l.size++
	l.tracef("list: append %v (size %d)", value, l.size)
}

// Prepend adds value before the first element.
func (l *LinkedList[T]) Prepend(value T) {
	l.head = &node[T]{data: value, next: l.head}
	l.size++
	l.tracef("list: prepend %v (size %d)", value, l.size)
}

// InsertAt places value so that it ends up at index. It reports false and
// leaves the list untouched when index is outside [0, size].
func (l *LinkedList[T]) InsertAt(index int, value T) bool {
	if index < 0 || index > l.size {
		return false
	}
	if index == 0 {
		l.Prepend(value)
		return true
	}

	prev := l.nodeAt(index - 1)
	prev.next = &node[T]{data: value, next: prev.next}
	l.size++
	l.tracef("list: insert %v at %d (size %d)", value, index, l.size)
	return true
}

// RemoveAt unlinks and returns the element at index. It reports false when
// index is outside [0, size).
func (l *LinkedList[T]) RemoveAt(index int) (T, bool) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, false
	}

	var removed *node[T]
	if index == 0 {
		removed = l.head
		l.head = removed.next
	} else {
		prev := l.nodeAt(index - 1)
		removed = prev.next
		prev.next = removed.next
	}
	removed.next = nil
	l.size--
	l.tracef("list: remove %v at %d (size %d)", removed.data, index, l.size)
	return removed.data, true
}

// Remove unlinks the first element deeply equal to value.
func (l *LinkedList[T]) Remove(value T) bool {
	_, ok := l.RemoveFunc(func(v T) bool {
		return reflect.DeepEqual(v, value)
	})
	return ok
}

// RemoveFunc unlinks and returns the first element matching pred.
func (l *LinkedList[T]) RemoveFunc(pred func(T) bool) (T, bool) {
	var prev *node[T]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if !pred(cur.data) {
			continue
		}
		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		cur.next = nil
		l.size--
		l.tracef("list: remove %v (size %d)", cur.data, l.size)
		return cur.data, true
	}
	var zero T
	return zero, false
}

// Find returns the first element matching pred.
func (l *LinkedList[T]) Find(pred func(T) bool) (T, bool) {
	return search(l.head, pred)
}

// Get returns the element at index.
func (l *LinkedList[T]) Get(index int) (T, bool) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, false
	}
	return l.nodeAt(index).data, true
}

// nodeAt assumes 0 <= index < size.
func (l *LinkedList[T]) nodeAt(index int) *node[T] {
	cur := l.head
	for i := 0; i < index; i++ {
		cur = cur.next
	}
	return cur
}

// ToArray copies the elements, head first. Later mutations do not affect
// the returned slice.
func (l *LinkedList[T]) ToArray() []T {
	return collect(l.head, l.size)
}

func (l *LinkedList[T]) IsEmpty() bool { return l.size == 0 }

func (l *LinkedList[T]) GetSize() int { return l.size }

func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.size = 0
	l.tracef("list: cleared")
}

// collect snapshots a next-linked chain.
func collect[T any](head *node[T], size int) []T {
	result := make([]T, 0, size)
	for cur := head; cur != nil; cur = cur.next {
		result = append(result, cur.data)
	}
	return result
}

// search returns the first payload in a next-linked chain matching pred.
func search[T any](head *node[T], pred func(T) bool) (T, bool) {
	for cur := head; cur != nil; cur = cur.next {
		if pred(cur.data) {
			return cur.data, true
		}
	}
	var zero T
	return zero, false
}
