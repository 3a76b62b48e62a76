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

package main

import (
	"math/rand"
)

var counterTips = []string{
	"Type low to see which products need reordering",
	"undo reverts the last create, update, delete or sale",
	"Quote product names with spaces: add 7 \"Vitamin C 500mg\" 4.50 20",
	"card <id> renders a report card; copy <id> puts it on the clipboard",
	"join <name> adds a customer to the queue, serve calls the next one",
	"Use the up and down arrows to recall earlier commands",
	"history lists sales oldest first",
	"barcode <code> finds a product by its barcode",
	"Expiry dates are written as YYYY-MM-DD; use none to clear one",
	"actions shows what undo would revert, newest first",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func GetRandomTip() string {
	return pickRandomString(counterTips)
}
