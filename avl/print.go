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

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Fprint writes a sideways ASCII picture of the tree to w, right subtrees
// above their parent, and returns the depth of the tree.
func (tree *Tree[V]) Fprint(w io.Writer, withValues bool) int {
	return tree.root.fprint(w, "", root, withValues)
}

func (t *subtree[V]) fprint(w io.Writer, prefix string, br branch, withValues bool) int {
	p := t.n
	if p == nil {
		return 0
	}
	rd := 0
	ld := 0
	if !p.right.empty() {
		pad := "       "
		if left == br {
			pad = "|      "
		}
		rd = p.right.fprint(w, prefix+pad, right, withValues)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if withValues {
		fmt.Fprintf(w, "%d → %v %+2d\n", p.key, p.value, p.balance)
	} else {
		fmt.Fprintf(w, "%d %+2d\n", p.key, p.balance)
	}
	if !p.left.empty() {
		pad := "       "
		if right == br {
			pad = "|      "
		}
		ld = p.left.fprint(w, prefix+pad, left, withValues)
	}
	return 1 + max(ld, rd)
}
