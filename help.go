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
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// usageMarkdown is the usage guide shared by `keytree usage` and the
// console's f1 help.
func usageMarkdown() string {
	var commands strings.Builder
	for _, v := range verbs {
		fmt.Fprintf(&commands, "* `%s`: %s\n", v.usage, v.summary)
	}

	return fmt.Sprintf(`
 **Keytree %s**

An AVL tree over unsigned 32-bit keys you can drive from the shell.
Every insert and delete keeps the tree height-balanced; search shows the
path taken from the root so you can see the rotations at work.

Built with Go %s

# 1. Commands
%s* `+"`help`"+`: list the commands

# 2. Key files
One entry per line: a key, then an optional value. Blank lines and lines
starting with # are ignored.

# 3. Configuration
Settings live in ~/.keytree.yaml, see `+"`keytree settings`"+`.

# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version(), commands.String())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
