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

// Search returns the keys visited on the way from the root to key,
// ending with key itself. The result is empty if key is not in the tree.
func (tree *Tree[V]) Search(key uint32) []uint32 {
	var path []uint32
	for p := tree.root.n; p != nil; {
		path = append(path, p.key)
		switch {
		case key < p.key:
			p = p.left.n
		case key > p.key:
			p = p.right.n
		default:
			return path
		}
	}
	return []uint32{}
}

// Get returns the value stored under key.
func (tree *Tree[V]) Get(key uint32) (V, bool) {
	if p := tree.root.find(key); p != nil {
		return p.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is in the tree.
func (tree *Tree[V]) Contains(key uint32) bool {
	return tree.root.find(key) != nil
}

func (t *subtree[V]) find(key uint32) *node[V] {
	p := t.n
	for p != nil && p.key != key {
		if key < p.key {
			p = p.left.n
		} else {
			p = p.right.n
		}
	}
	return p
}

// Min returns the smallest key and its value without removing it.
func (tree *Tree[V]) Min() (key uint32, value V, ok bool) {
	p := tree.root.n
	if p == nil {
		return 0, value, false
	}
	for !p.left.empty() {
		p = p.left.n
	}
	return p.key, p.value, true
}

// Max returns the largest key and its value without removing it.
func (tree *Tree[V]) Max() (key uint32, value V, ok bool) {
	p := tree.root.n
	if p == nil {
		return 0, value, false
	}
	for !p.right.empty() {
		p = p.right.n
	}
	return p.key, p.value, true
}
