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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Pharmadex %s**

A small pharmacy counter: product catalogue, sales history, customer queue and undo, all held in memory.
Nothing is written to disk; seed the catalogue from a YAML file on start-up instead.

Built with Go %s

# 1. Commands
* **pharmadex** or **pharmadex run**: open the interactive terminal UI
* **pharmadex shell**: line-oriented prompt, handy for scripts (reads stdin)
* **pharmadex exec <command>...**: run each quoted argument as a command against the seeded catalogue
* **pharmadex settings**: show or create ~/.pharmadex.yaml

# 2. Inside the shell
%s
# 3. Seeding
Point *inventory.seed_file* in the config (or pass --seed) at a YAML file:

    products:
      - {id: 1, name: Paracetamol 500mg, price: 2.5, stock: 40, expiry: "2026-03-01"}

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version(), "```\n"+commandHelp()+"```\n")
	result := markdown.Render(message, 80, 3)
	return string(result)
}
