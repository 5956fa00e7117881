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

// rotateLeft promotes the right child of t into t's position.
//
//	   p                q
//	  / \              / \
//	 a   q     ->     p   c
//	    / \          / \
//	   b   c        a   b
//
// Balances are rewritten from the height relations of a, b and c, which
// holds for any starting balance including the transient +/-2.
func (t *subtree[V]) rotateLeft() {
	p := t.n
	if p == nil || p.right.empty() {
		panic("avl: rotateLeft without right child")
	}
	q := p.right.n

	p.right, q.left.n = q.left, p
	t.n = q

	p.balance = p.balance - 1 - max(q.balance, 0)
	q.balance = q.balance - 1 + min(p.balance, 0)
}

// rotateRight promotes the left child of t into t's position.
//
//	     p            q
//	    / \          / \
//	   q   c   ->   a   p
//	  / \              / \
//	 a   b            b   c
func (t *subtree[V]) rotateRight() {
	p := t.n
	if p == nil || p.left.empty() {
		panic("avl: rotateRight without left child")
	}
	q := p.left.n

	p.left, q.right.n = q.right, p
	t.n = q

	p.balance = p.balance + 1 - min(q.balance, 0)
	q.balance = q.balance + 1 + max(p.balance, 0)
}

// rebalance restores |balance| <= 1 at the root of t and reports whether
// the subtree became one level shorter than it was before the rotation.
// It is a no-op when the root is already within bounds.
func (t *subtree[V]) rebalance() bool {
	p := t.n
	switch {
	case p.balance < -1:
		child := p.left.n.balance
		if child > 0 {
			// left-right
			p.left.rotateLeft()
		}
		t.rotateRight()
		return child != 0
	case p.balance > 1:
		child := p.right.n.balance
		if child < 0 {
			// right-left
			p.right.rotateRight()
		}
		t.rotateLeft()
		return child != 0
	}
	return false
}
