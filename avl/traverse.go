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

// PreOrder returns the keys in node, left, right order.
func (tree *Tree[V]) PreOrder() []uint32 {
	keys := make([]uint32, 0, tree.count)
	tree.root.preOrder(&keys)
	return keys
}

// InOrder returns the keys in ascending order.
func (tree *Tree[V]) InOrder() []uint32 {
	keys := make([]uint32, 0, tree.count)
	tree.root.inOrder(&keys)
	return keys
}

// PostOrder returns the keys in left, right, node order.
func (tree *Tree[V]) PostOrder() []uint32 {
	keys := make([]uint32, 0, tree.count)
	tree.root.postOrder(&keys)
	return keys
}

func (t *subtree[V]) preOrder(keys *[]uint32) {
	if p := t.n; p != nil {
		*keys = append(*keys, p.key)
		p.left.preOrder(keys)
		p.right.preOrder(keys)
	}
}

func (t *subtree[V]) inOrder(keys *[]uint32) {
	if p := t.n; p != nil {
		p.left.inOrder(keys)
		*keys = append(*keys, p.key)
		p.right.inOrder(keys)
	}
}

func (t *subtree[V]) postOrder(keys *[]uint32) {
	if p := t.n; p != nil {
		p.left.postOrder(keys)
		p.right.postOrder(keys)
		*keys = append(*keys, p.key)
	}
}

// BFT returns the keys level by level, left to right within a level.
func (tree *Tree[V]) BFT() []uint32 {
	keys := make([]uint32, 0, tree.count)
	if tree.root.empty() {
		return keys
	}
	queue := []*node[V]{tree.root.n}
	for len(queue) > 0 {
		p := queue[0]
		queue[0] = nil
		queue = queue[1:]
		keys = append(keys, p.key)
		if !p.left.empty() {
			queue = append(queue, p.left.n)
		}
		if !p.right.empty() {
			queue = append(queue, p.right.n)
		}
	}
	return keys
}

// Walk calls fn for each entry in ascending key order until fn returns
// false.
func (tree *Tree[V]) Walk(fn func(key uint32, value V) bool) {
	tree.root.walk(fn)
}

func (t *subtree[V]) walk(fn func(uint32, V) bool) bool {
	p := t.n
	if p == nil {
		return true
	}
	return p.left.walk(fn) && fn(p.key, p.value) && p.right.walk(fn)
}
