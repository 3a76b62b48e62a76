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

import "golang.org/x/exp/constraints"

// Comparator is a three-way comparison: negative when a sorts before b,
// zero when they share a key, positive when a sorts after b.
type Comparator[T any] func(a, b T) int

// OrderedComparator orders values of an ordered type ascending.
func OrderedComparator[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// KeyComparator orders records by an extracted key, e.g. a product ID.
func KeyComparator[T any, K constraints.Ordered](key func(T) K) Comparator[T] {
	ordered := OrderedComparator[K]()
	return func(a, b T) int {
		return ordered(key(a), key(b))
	}
}
