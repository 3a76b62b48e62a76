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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLinkedQueueFIFO(t *testing.T) {
	q := NewLinkedQueue[string]()
	for _, v := range []string{"A", "B", "C"} {
		q.Enqueue(v)
	}

	if v, _ := q.Dequeue(); v != "A" {
		t.Errorf("first Dequeue: expected A, got %q", v)
	}
	if v, _ := q.Dequeue(); v != "B" {
		t.Errorf("second Dequeue: expected B, got %q", v)
	}
	if v, ok := q.Peek(); !ok || v != "C" {
		t.Errorf("Peek: expected C, got %q (%v)", v, ok)
	}
	if q.GetSize() != 1 {
		t.Errorf("GetSize: expected 1, got %d", q.GetSize())
	}
	checkQueue(t, q)
}

func TestLinkedQueueDrainAndReuse(t *testing.T) {
	q := NewLinkedQueue[int]()
	in := []int{1, 2, 3, 4, 5}
	for _, v := range in {
		q.Enqueue(v)
	}
	var out []int
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		out = append(out, v)
		checkQueue(t, q)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("dequeue order (-want +got):\n%s", diff)
	}
	if q.head != nil || q.tail != nil {
		t.Error("empty queue should reset head and tail")
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue: expected empty signal")
	}

	q.Enqueue(9)
	if v, _ := q.Peek(); v != 9 || q.tail != q.head {
		t.Error("enqueue after drain should make head and tail the same node")
	}
}

func TestLinkedQueueSearchAndToArray(t *testing.T) {
	q := NewLinkedQueue[string]()
	q.Enqueue("ana")
	q.Enqueue("bo")
	q.Enqueue("cy")

	if v, ok := q.Search(func(s string) bool { return len(s) == 2 }); !ok || v != "bo" {
		t.Errorf("Search: expected bo, got %q", v)
	}
	if _, ok := q.Search(func(s string) bool { return s == "zed" }); ok {
		t.Error("Search: expected not found")
	}
	if diff := cmp.Diff([]string{"ana", "bo", "cy"}, q.ToArray()); diff != "" {
		t.Errorf("ToArray (-want +got):\n%s", diff)
	}
	q.Clear()
	if !q.IsEmpty() {
		t.Error("Clear: expected empty queue")
	}
	checkQueue(t, q)
}

// checkQueue verifies the tail sits size-1 hops from the head.
func checkQueue[T any](t *testing.T, q *LinkedQueue[T]) {
	t.Helper()
	checkChain(t, q.head, q.size)
	if q.size == 0 {
		if q.head != nil || q.tail != nil {
			t.Error("empty queue with dangling pointers")
		}
		return
	}
	cur := q.head
	for i := 0; i < q.size-1; i++ {
		cur = cur.next
	}
	if cur != q.tail || q.tail.next != nil {
		t.Error("tail is not the last reachable node")
	}
}
