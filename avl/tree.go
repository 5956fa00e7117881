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

// subtree is a handle to a possibly empty subtree.
type subtree[V any] struct {
	n *node[V]
}

type node[V any] struct {
	key     uint32
	value   V
	balance int // height(right) - height(left)
	left    subtree[V]
	right   subtree[V]
}

// Tree is an AVL tree keyed by uint32.
type Tree[V any] struct {
	root  subtree[V]
	count int
}

// New returns an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// NewWith returns a tree seeded with a single entry.
func NewWith[V any](key uint32, value V) *Tree[V] {
	return &Tree[V]{
		root:  subtree[V]{n: &node[V]{key: key, value: value}},
		count: 1,
	}
}

func (t *subtree[V]) empty() bool {
	return t.n == nil
}

// Len returns the number of keys in the tree.
func (tree *Tree[V]) Len() int {
	return tree.count
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[V]) IsEmpty() bool {
	return tree.root.empty()
}

// Height returns the number of levels in the tree, 0 when empty.
func (tree *Tree[V]) Height() int {
	return tree.root.height()
}

// height walks the heavier side only, relying on the stored balances.
func (t *subtree[V]) height() int {
	h := 0
	for p := t.n; p != nil; h++ {
		if p.balance < 0 {
			p = p.left.n
		} else {
			p = p.right.n
		}
	}
	return h
}
