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

// Stack is a LIFO stack over a single top pointer.
type Stack[T any] struct {
	tracer
	top  *node[T]
	size int
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Push(value T) {
	s.top = &node[T]{data: value, next: s.top}
	s.size++
	s.tracef("stack: push %v (size %d)", value, s.size)
}

// Pop removes and returns the top. It reports false on an empty stack.
func (s *Stack[T]) Pop() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.size--
	s.tracef("stack: pop %v (size %d)", n.data, s.size)
	return n.data, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	return s.top.data, true
}

// Search returns the matching element nearest the top.
func (s *Stack[T]) Search(pred func(T) bool) (T, bool) {
	return search(s.top, pred)
}

// ToArray copies the stack, top first.
func (s *Stack[T]) ToArray() []T {
	return collect(s.top, s.size)
}

func (s *Stack[T]) IsEmpty() bool { return s.size == 0 }

func (s *Stack[T]) GetSize() int { return s.size }

func (s *Stack[T]) Clear() {
	s.top = nil
	s.size = 0
	s.tracef("stack: cleared")
}
