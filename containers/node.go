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

// Package containers holds the in-memory structures backing pharmadex:
// an AVL tree used as the product index, plus a singly-linked list, a FIFO
// queue and a LIFO stack. None of them lock; callers that share an instance
// across goroutines must serialize access themselves.
package containers

// node is shared by every container. Lists, queues and stacks use next,
// the tree uses left, right and height.
type node[T any] struct {
	data   T
	next   *node[T]
	left   *node[T]
	right  *node[T]
	height int
}

// TraceFunc receives diagnostic narration from a container. log.Printf and
// (*testing.T).Logf both satisfy it.
type TraceFunc func(format string, args ...any)

// tracer is embedded by every container so tracing stays optional.
type tracer struct {
	trace TraceFunc
}

// SetTracer installs fn as the diagnostic hook. A nil fn disables tracing.
func (t *tracer) SetTracer(fn TraceFunc) {
	t.trace = fn
}

func (t *tracer) tracef(format string, args ...any) {
	if t.trace != nil {
		t.trace(format, args...)
	}
}
