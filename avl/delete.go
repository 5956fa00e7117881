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

// Delete removes key and reports whether it was present.
func (tree *Tree[V]) Delete(key uint32) bool {
	removed, _ := tree.root.delete(key)
	if removed {
		tree.count -= 1
	}
	return removed
}

// ExtractMin removes the smallest key and returns it with its value.
// ok is false on an empty tree.
func (tree *Tree[V]) ExtractMin() (key uint32, value V, ok bool) {
	if tree.root.empty() {
		return 0, value, false
	}
	p, _ := tree.root.extractMin()
	tree.count -= 1
	return p.key, p.value, true
}

// ExtractMax removes the largest key and returns it with its value.
// ok is false on an empty tree.
func (tree *Tree[V]) ExtractMax() (key uint32, value V, ok bool) {
	if tree.root.empty() {
		return 0, value, false
	}
	p, _ := tree.root.extractMax()
	tree.count -= 1
	return p.key, p.value, true
}

// delete returns whether key was removed and whether the height of t shrank.
func (t *subtree[V]) delete(key uint32) (bool, bool) {
	p := t.n
	if p == nil {
		return false, false
	}

	switch {
	case key < p.key:
		removed, shrunk := p.left.delete(key)
		if shrunk {
			shrunk = t.leftShrunk()
		}
		return removed, shrunk
	case key > p.key:
		removed, shrunk := p.right.delete(key)
		if shrunk {
			shrunk = t.rightShrunk()
		}
		return removed, shrunk
	}

	switch {
	case p.left.empty():
		t.n = p.right.n
		return true, true
	case p.right.empty():
		t.n = p.left.n
		return true, true
	}

	// two children: the in-order successor takes over this node's entry
	succ, shrunk := p.right.extractMin()
	p.key, p.value = succ.key, succ.value
	if shrunk {
		shrunk = t.rightShrunk()
	}
	return true, shrunk
}

// extractMin detaches the leftmost node of a non-empty t.
func (t *subtree[V]) extractMin() (*node[V], bool) {
	p := t.n
	if p.left.empty() {
		t.n = p.right.n
		p.right.n = nil
		return p, true
	}
	lo, shrunk := p.left.extractMin()
	if shrunk {
		shrunk = t.leftShrunk()
	}
	return lo, shrunk
}

// extractMax detaches the rightmost node of a non-empty t.
func (t *subtree[V]) extractMax() (*node[V], bool) {
	p := t.n
	if p.right.empty() {
		t.n = p.left.n
		p.left.n = nil
		return p, true
	}
	hi, shrunk := p.right.extractMax()
	if shrunk {
		shrunk = t.rightShrunk()
	}
	return hi, shrunk
}

// leftShrunk adjusts the root of t after its left subtree lost a level
// and reports whether t itself lost a level.
func (t *subtree[V]) leftShrunk() bool {
	p := t.n
	p.balance += 1
	switch p.balance {
	case 0:
		return true
	case 1:
		return false
	}
	return t.rebalance()
}

// rightShrunk is the mirror of leftShrunk.
func (t *subtree[V]) rightShrunk() bool {
	p := t.n
	p.balance -= 1
	switch p.balance {
	case 0:
		return true
	case -1:
		return false
	}
	return t.rebalance()
}
