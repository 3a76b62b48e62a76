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
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type record struct {
	ID   int
	Name string
}

func byID(a, b record) int {
	return OrderedComparator[int]()(a.ID, b.ID)
}

type AVLTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // In-order traversal expectation after operations
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{2, 1, 3},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []int{10},
			KeysToInsert:  []int{20, 30},
			ExpectedOrder: []int{10, 20, 30},
		},
		{
			Name:          "Insertion with Balancing (Left-Right)",
			KeysToInsert:  []int{30, 10, 20},
			ExpectedOrder: []int{10, 20, 30},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []int{20, 10, 30, 5},
			KeysToDelete:  []int{30},
			ExpectedOrder: []int{5, 10, 20},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int{40, 30},
			KeysToInsert:  []int{50, 20},
			KeysToDelete:  []int{30},
			ExpectedOrder: []int{20, 40, 50},
		},
		{
			Name:          "Delete Missing Key",
			InitialKeys:   []int{1, 2, 3},
			KeysToDelete:  []int{99},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []int{5, 3, 8, 1, 4},
			KeysToDelete:  []int{3, 5, 1, 8, 4},
			ExpectedOrder: []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewAvlTree(OrderedComparator[int]())
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				tree.Delete(key)
			}
			if diff := cmp.Diff(tc.ExpectedOrder, tree.InOrder()); diff != "" {
				t.Errorf("in-order traversal mismatch (-want +got):\n%s", diff)
			}
			if tree.Len() != len(tc.ExpectedOrder) {
				t.Errorf("Len: expected %d, got %d", len(tc.ExpectedOrder), tree.Len())
			}
			checkAVL(t, tree)
		})
	}
}

func TestAVLTreeLeftRotationOnAscendingInsert(t *testing.T) {
	tree := NewAvlTree(OrderedComparator[int]())
	var trace []string
	tree.SetTracer(func(format string, args ...any) {
		trace = append(trace, fmt.Sprintf(format, args...))
	})
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k)
	}

	if tree.root.data != 20 || tree.root.left.data != 10 || tree.root.right.data != 30 {
		t.Fatalf("expected root 20 with children 10 and 30, got %v/%v/%v",
			tree.root.data, tree.root.left.data, tree.root.right.data)
	}
	rotations := 0
	for _, line := range trace {
		if strings.HasPrefix(line, "avl: rotate") {
			rotations++
			if line != "avl: rotate left at 10" {
				t.Errorf("unexpected rotation %q", line)
			}
		}
	}
	if rotations != 1 {
		t.Errorf("expected exactly one rotation, got %d: %v", rotations, trace)
	}
}

func TestAVLTreeRightRotationOnDelete(t *testing.T) {
	tree := NewAvlTree(OrderedComparator[int]())
	for _, k := range []int{20, 10, 30, 5} {
		tree.Insert(k)
	}
	var trace []string
	tree.SetTracer(func(format string, args ...any) {
		trace = append(trace, fmt.Sprintf(format, args...))
	})

	tree.Delete(30)

	if tree.root.data != 10 || tree.root.left.data != 5 || tree.root.right.data != 20 {
		t.Fatalf("expected root 10 with children 5 and 20, got %v/%v/%v",
			tree.root.data, tree.root.left.data, tree.root.right.data)
	}
	want := []string{"avl: delete 30", "avl: rotate right at 20"}
	var got []string
	for _, line := range trace {
		if strings.HasPrefix(line, "avl: rotate") || strings.HasPrefix(line, "avl: delete") {
			got = append(got, line)
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	checkAVL(t, tree)
}

func TestAVLTreeDeleteRootUsesSuccessor(t *testing.T) {
	tree := NewAvlTree(OrderedComparator[int]())
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k)
	}
	tree.Delete(20)

	if tree.root.data != 30 {
		t.Fatalf("expected root 30, got %v", tree.root.data)
	}
	if tree.root.left == nil || tree.root.left.data != 10 || tree.root.right != nil {
		t.Fatalf("expected single left child 10 under root")
	}
	if diff := cmp.Diff([]int{10, 30}, tree.InOrder()); diff != "" {
		t.Errorf("in-order mismatch (-want +got):\n%s", diff)
	}

	before := tree.InOrder()
	if v, ok := tree.Search(99); ok {
		t.Errorf("Search(99): expected not found, got %v", v)
	}
	if diff := cmp.Diff(before, tree.InOrder()); diff != "" {
		t.Errorf("Search mutated the tree (-before +after):\n%s", diff)
	}
}

func TestAVLTreeUpsert(t *testing.T) {
	tree := NewAvlTree(byID)
	tree.Insert(record{ID: 7, Name: "aspirin"})
	tree.Insert(record{ID: 3, Name: "ibuprofen"})
	tree.Insert(record{ID: 7, Name: "aspirin 500mg"})

	if tree.Len() != 2 {
		t.Fatalf("Len: expected 2, got %d", tree.Len())
	}
	got, ok := tree.Search(record{ID: 7})
	if !ok {
		t.Fatal("Search(7): expected a match")
	}
	if got.Name != "aspirin 500mg" {
		t.Errorf("Search(7): expected replaced payload, got %q", got.Name)
	}
	if n := len(tree.InOrder()); n != 2 {
		t.Errorf("InOrder: expected 2 entries, got %d", n)
	}
}

func TestAVLTreeRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := NewAvlTree(OrderedComparator[int]())
	present := map[int]bool{}

	for step := 0; step < 3000; step++ {
		k := rng.Intn(500)
		if rng.Intn(3) == 0 {
			tree.Delete(k)
			delete(present, k)
		} else {
			tree.Insert(k)
			present[k] = true
		}
		checkAVL(t, tree)
		if t.Failed() {
			t.Fatalf("invariant broken at step %d (key %d)", step, k)
		}
	}

	order := tree.InOrder()
	if len(order) != len(present) {
		t.Fatalf("expected %d keys, got %d", len(present), len(order))
	}
	for i, k := range order {
		if !present[k] {
			t.Errorf("unexpected key %d in traversal", k)
		}
		if i > 0 && order[i-1] >= k {
			t.Errorf("traversal not strictly ascending at %d: %d then %d", i, order[i-1], k)
		}
	}
}

func TestAVLTreeHeightBound(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100, 1000, 4096} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			tree := NewAvlTree(OrderedComparator[int]())
			// Ascending input is the worst case for an unbalanced BST.
			for i := 0; i < n; i++ {
				tree.Insert(i)
			}
			bound := 1.4405 * math.Log2(float64(n+2))
			if h := tree.Height(); float64(h) > bound {
				t.Errorf("height %d exceeds AVL bound %.2f", h, bound)
			}
		})
	}
}

func TestAVLTreeExtremesAndAscend(t *testing.T) {
	tree := NewAvlTree(OrderedComparator[string]())
	if _, ok := tree.Min(); ok {
		t.Error("Min on empty tree: expected not found")
	}
	if !tree.IsEmpty() {
		t.Error("expected empty tree")
	}
	for _, k := range []string{"paracetamol", "amoxicillin", "zinc", "insulin"} {
		tree.Insert(k)
	}
	if v, _ := tree.Min(); v != "amoxicillin" {
		t.Errorf("Min: expected amoxicillin, got %q", v)
	}
	if v, _ := tree.Max(); v != "zinc" {
		t.Errorf("Max: expected zinc, got %q", v)
	}
	if !tree.Contains("insulin") || tree.Contains("codeine") {
		t.Error("Contains returned the wrong answer")
	}

	var firstTwo []string
	tree.Ascend(func(s string) bool {
		firstTwo = append(firstTwo, s)
		return len(firstTwo) < 2
	})
	if diff := cmp.Diff([]string{"amoxicillin", "insulin"}, firstTwo); diff != "" {
		t.Errorf("Ascend early stop mismatch (-want +got):\n%s", diff)
	}

	tree.Clear()
	if tree.Len() != 0 || tree.Height() != 0 || len(tree.InOrder()) != 0 {
		t.Error("Clear left data behind")
	}
}

func TestNewAvlTreeNilComparator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil comparator")
		}
	}()
	NewAvlTree[int](nil)
}

// checkAVL verifies ordering, balance, cached heights and the size counter.
func checkAVL[T any](t *testing.T, tree *AvlTree[T]) {
	t.Helper()
	count := 0
	var walk func(n *node[T], lo, hi *T) int
	walk = func(n *node[T], lo, hi *T) int {
		if n == nil {
			return 0
		}
		count++
		if lo != nil && tree.cmp(*lo, n.data) >= 0 {
			t.Errorf("ordering violated: %v is not greater than %v", n.data, *lo)
		}
		if hi != nil && tree.cmp(n.data, *hi) >= 0 {
			t.Errorf("ordering violated: %v is not less than %v", n.data, *hi)
		}
		lh := walk(n.left, lo, &n.data)
		rh := walk(n.right, &n.data, hi)
		if d := lh - rh; d < -1 || d > 1 {
			t.Errorf("node %v out of balance: %d", n.data, d)
		}
		if h := max(lh, rh) + 1; n.height != h {
			t.Errorf("node %v caches height %d, actual %d", n.data, n.height, h)
		}
		return max(lh, rh) + 1
	}
	walk(tree.root, nil, nil)
	if count != tree.Len() {
		t.Errorf("Len %d disagrees with %d reachable nodes", tree.Len(), count)
	}
}
