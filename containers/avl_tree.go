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

// AvlTree is an ordered index keyed by a caller-supplied Comparator.
// Inserting a value whose key already exists replaces the stored payload.
type AvlTree[T any] struct {
	tracer
	root *node[T]
	cmp  Comparator[T]
	size int
}

// NewAvlTree returns an empty tree ordered by cmp.
func NewAvlTree[T any](cmp Comparator[T]) *AvlTree[T] {
	if cmp == nil {
		panic("containers: NewAvlTree called with a nil comparator")
	}
	return &AvlTree[T]{cmp: cmp}
}

func (tree *AvlTree[T]) getHeight(n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (tree *AvlTree[T]) updateHeight(n *node[T]) {
	n.height = max(tree.getHeight(n.left), tree.getHeight(n.right)) + 1
}

func (tree *AvlTree[T]) getBalanceFactor(n *node[T]) int {
	if n == nil {
		return 0
	}
	return tree.getHeight(n.left) - tree.getHeight(n.right)
}

func (tree *AvlTree[T]) rotateLeft(n *node[T]) *node[T] {
	if n == nil || n.right == nil {
		return n
	}
	tree.tracef("avl: rotate left at %v", n.data)

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	// n is now below pivot, so its height has to be settled first.
	tree.updateHeight(n)
	tree.updateHeight(pivot)
	return pivot
}

func (tree *AvlTree[T]) rotateRight(n *node[T]) *node[T] {
	if n == nil || n.left == nil {
		return n
	}
	tree.tracef("avl: rotate right at %v", n.data)

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	tree.updateHeight(n)
	tree.updateHeight(pivot)
	return pivot
}

// Insert adds value, or overwrites the payload of the node holding an equal key.
func (tree *AvlTree[T]) Insert(value T) {
	tree.root = tree.insertRecursive(tree.root, value)
}

func (tree *AvlTree[T]) insertRecursive(n *node[T], value T) *node[T] {
	if n == nil {
		tree.size++
		tree.tracef("avl: insert %v", value)
		return &node[T]{data: value, height: 1}
	}

	c := tree.cmp(value, n.data)
	switch {
	case c < 0:
		n.left = tree.insertRecursive(n.left, value)
	case c > 0:
		n.right = tree.insertRecursive(n.right, value)
	default:
		tree.tracef("avl: replace payload %v", value)
		n.data = value
		return n
	}

	tree.updateHeight(n)

	balanceFactor := tree.getBalanceFactor(n)
	if balanceFactor > 1 {
		if tree.cmp(value, n.left.data) < 0 {
			return tree.rotateRight(n)
		}
		// Left-Right case
		n.left = tree.rotateLeft(n.left)
		return tree.rotateRight(n)
	} else if balanceFactor < -1 {
		if tree.cmp(value, n.right.data) > 0 {
			return tree.rotateLeft(n)
		}
		// Right-Left case
		n.right = tree.rotateRight(n.right)
		return tree.rotateLeft(n)
	}

	return n
}

// Delete removes the node whose key equals key. Absent keys are ignored.
func (tree *AvlTree[T]) Delete(key T) {
	tree.root = tree.deleteRecursive(tree.root, key)
}

func (tree *AvlTree[T]) deleteRecursive(n *node[T], key T) *node[T] {
	if n == nil {
		return nil
	}

	c := tree.cmp(key, n.data)
	switch {
	case c < 0:
		n.left = tree.deleteRecursive(n.left, key)
	case c > 0:
		n.right = tree.deleteRecursive(n.right, key)
	default:
		if n.left == nil || n.right == nil {
			tree.size--
			tree.tracef("avl: delete %v", n.data)
			if n.left == nil {
				return n.right
			}
			return n.left
		}
		// Two children: take over the in-order successor, then remove it
		// from the right subtree.
		successor := tree.findMin(n.right)
		n.data = successor.data
		n.right = tree.deleteRecursive(n.right, successor.data)
	}

	tree.updateHeight(n)
	return tree.rebalance(n)
}

func (tree *AvlTree[T]) findMin(n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (tree *AvlTree[T]) findMax(n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (tree *AvlTree[T]) rebalance(n *node[T]) *node[T] {
	balanceFactor := tree.getBalanceFactor(n)

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(n.left) >= 0 {
			return tree.rotateRight(n)
		}
		n.left = tree.rotateLeft(n.left)
		return tree.rotateRight(n)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(n.right) <= 0 {
			return tree.rotateLeft(n)
		}
		n.right = tree.rotateRight(n.right)
		return tree.rotateLeft(n)
	}

	return n
}

// Search returns the stored payload whose key equals key.
func (tree *AvlTree[T]) Search(key T) (T, bool) {
	return tree.searchNode(tree.root, key)
}

func (tree *AvlTree[T]) searchNode(n *node[T], key T) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}

	c := tree.cmp(key, n.data)
	switch {
	case c < 0:
		return tree.searchNode(n.left, key)
	case c > 0:
		return tree.searchNode(n.right, key)
	default:
		return n.data, true
	}
}

// Contains reports whether a payload with key is stored.
func (tree *AvlTree[T]) Contains(key T) bool {
	_, ok := tree.Search(key)
	return ok
}

// InOrder returns every payload in ascending comparator order. Each call
// builds a fresh slice.
func (tree *AvlTree[T]) InOrder() []T {
	result := make([]T, 0, tree.size)
	tree.Ascend(func(v T) bool {
		result = append(result, v)
		return true
	})
	return result
}

// Ascend calls fn for each payload in ascending order until fn returns false.
func (tree *AvlTree[T]) Ascend(fn func(T) bool) {
	ascend(tree.root, fn)
}

func ascend[T any](n *node[T], fn func(T) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.data) {
		return false
	}
	return ascend(n.right, fn)
}

// Min returns the smallest payload, or false if the tree is empty.
func (tree *AvlTree[T]) Min() (T, bool) {
	if tree.root == nil {
		var zero T
		return zero, false
	}
	return tree.findMin(tree.root).data, true
}

// Max returns the largest payload, or false if the tree is empty.
func (tree *AvlTree[T]) Max() (T, bool) {
	if tree.root == nil {
		var zero T
		return zero, false
	}
	return tree.findMax(tree.root).data, true
}

// Len returns the number of stored payloads.
func (tree *AvlTree[T]) Len() int { return tree.size }

// Height returns the height of the root, 0 for an empty tree.
func (tree *AvlTree[T]) Height() int { return tree.getHeight(tree.root) }

func (tree *AvlTree[T]) IsEmpty() bool { return tree.root == nil }

// Clear drops every node.
func (tree *AvlTree[T]) Clear() {
	tree.root = nil
	tree.size = 0
}
