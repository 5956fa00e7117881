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

// Insert adds key with value. It returns false, leaving the tree
// untouched, when key is already present.
func (tree *Tree[V]) Insert(key uint32, value V) bool {
	added, _ := tree.root.insert(key, value)
	if added {
		tree.count += 1
	}
	return added
}

// insert returns whether a node was added and whether the height of t grew.
func (t *subtree[V]) insert(key uint32, value V) (bool, bool) {
	p := t.n
	if p == nil {
		t.n = &node[V]{key: key, value: value}
		return true, true
	}

	added, grew := false, false
	switch {
	case key < p.key:
		added, grew = p.left.insert(key, value)
		if grew {
			p.balance -= 1
		}
	case key > p.key:
		added, grew = p.right.insert(key, value)
		if grew {
			p.balance += 1
		}
	default:
		return false, false
	}
	if !grew {
		return added, false
	}

	switch p.balance {
	case 0:
		// the shorter side caught up
		return added, false
	case -1, 1:
		return added, true
	}
	// an insertion rebalance always restores the previous height
	t.rebalance()
	return added, false
}
