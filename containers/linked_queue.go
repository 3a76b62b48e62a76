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

// LinkedQueue is a FIFO queue with O(1) Enqueue and Dequeue.
type LinkedQueue[T any] struct {
	tracer
	head *node[T]
	tail *node[T]
	size int
}

func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Enqueue adds value at the tail.
func (q *LinkedQueue[T]) Enqueue(value T) {
	n := &node[T]{data: value}
	if q.tail == nil {
		q.head = n
		q.tail = n
	} else {
		q.tail.next = n
		q.tail = n
	}
	q.size++
	q.tracef("queue: enqueue %v (size %d)", value, q.size)
}

// Dequeue removes and returns the head. It reports false on an empty queue.
func (q *LinkedQueue[T]) Dequeue() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}

	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.size--
	q.tracef("queue: dequeue %v (size %d)", n.data, q.size)
	return n.data, true
}

// Peek returns the head without removing it.
func (q *LinkedQueue[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.data, true
}

// Search returns the element closest to the head that matches pred.
func (q *LinkedQueue[T]) Search(pred func(T) bool) (T, bool) {
	return search(q.head, pred)
}

// ToArray copies the queue, head first.
func (q *LinkedQueue[T]) ToArray() []T {
	return collect(q.head, q.size)
}

func (q *LinkedQueue[T]) IsEmpty() bool { return q.size == 0 }

func (q *LinkedQueue[T]) GetSize() int { return q.size }

func (q *LinkedQueue[T]) Clear() {
	q.head, q.tail = nil, nil
	q.size = 0
	q.tracef("queue: cleared")
}
