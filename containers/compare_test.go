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

import "testing"

func TestKeyComparator(t *testing.T) {
	byName := KeyComparator(func(r record) string { return r.Name })
	cases := []struct {
		a, b record
		sign int
	}{
		{record{1, "a"}, record{2, "b"}, -1},
		{record{9, "b"}, record{1, "a"}, 1},
		{record{1, "same"}, record{2, "same"}, 0},
	}
	for _, c := range cases {
		got := byName(c.a, c.b)
		if (got < 0 && c.sign >= 0) || (got > 0 && c.sign <= 0) || (got == 0 && c.sign != 0) {
			t.Errorf("KeyComparator(%v, %v) = %d, want sign %d", c.a, c.b, got, c.sign)
		}
	}
}
