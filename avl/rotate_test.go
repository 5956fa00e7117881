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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape is an immutable tree outline used to enumerate every binary tree
// of a given size.
type shape struct {
	l, r *shape
}

func shapes(n int, memo map[int][]*shape) []*shape {
	if n == 0 {
		return []*shape{nil}
	}
	if s, ok := memo[n]; ok {
		return s
	}
	var all []*shape
	for i := 0; i < n; i++ {
		for _, l := range shapes(i, memo) {
			for _, r := range shapes(n-1-i, memo) {
				all = append(all, &shape{l: l, r: r})
			}
		}
	}
	memo[n] = all
	return all
}

// build materializes s with fresh nodes, keys in order from *next and
// balances taken from the real heights. It returns the subtree and its
// height.
func build(s *shape, next *uint32) (subtree[int], int) {
	if s == nil {
		return subtree[int]{}, 0
	}
	l, lh := build(s.l, next)
	p := &node[int]{key: *next, value: int(*next)}
	*next += 1
	r, rh := build(s.r, next)
	p.left, p.right = l, r
	p.balance = rh - lh
	return subtree[int]{n: p}, 1 + max(lh, rh)
}

// realHeight returns the height of t and fails the test if any stored
// balance differs from the real one. It does not require |balance| <= 1.
func realHeight(t *testing.T, s subtree[int]) int {
	p := s.n
	if p == nil {
		return 0
	}
	lh := realHeight(t, p.left)
	rh := realHeight(t, p.right)
	if rh-lh != p.balance {
		t.Fatalf("key %d: stored balance %d, actual %d", p.key, p.balance, rh-lh)
	}
	return 1 + max(lh, rh)
}

func keysOf(s subtree[int]) []uint32 {
	var keys []uint32
	s.inOrder(&keys)
	return keys
}

func TestRotationsKeepBalancesExact(t *testing.T) {
	memo := map[int][]*shape{}
	for n := 2; n <= 8; n++ {
		for _, sh := range shapes(n, memo) {
			var k uint32
			st, _ := build(sh, &k)
			before := keysOf(st)
			if !st.n.right.empty() {
				st.rotateLeft()
				realHeight(t, st)
				assert.Equal(t, before, keysOf(st))
			}

			k = 0
			st, _ = build(sh, &k)
			if !st.n.left.empty() {
				st.rotateRight()
				realHeight(t, st)
				assert.Equal(t, before, keysOf(st))
			}
		}
	}
}

func TestRebalanceReportsShrink(t *testing.T) {
	memo := map[int][]*shape{}
	cases := 0
	for n := 3; n <= 9; n++ {
		for _, sh := range shapes(n, memo) {
			var k uint32
			st, h := build(sh, &k)
			p := st.n
			if p.balance != -2 && p.balance != 2 {
				continue
			}
			// only heights a single insert or delete can produce below the root
			if p.left.n != nil && (p.left.n.balance < -1 || p.left.n.balance > 1) ||
				p.right.n != nil && (p.right.n.balance < -1 || p.right.n.balance > 1) {
				continue
			}
			cases += 1
			before := keysOf(st)
			shrunk := st.rebalance()
			after := realHeight(t, st)
			assert.Equal(t, h-1 == after, shrunk, "shape with %d nodes", n)
			assert.True(t, after == h || after == h-1)
			assert.LessOrEqual(t, st.n.balance, 1)
			assert.GreaterOrEqual(t, st.n.balance, -1)
			assert.Equal(t, before, keysOf(st))
		}
	}
	require.NotZero(t, cases)
}

func TestRotateWithoutChildPanics(t *testing.T) {
	leaf := subtree[int]{n: &node[int]{key: 1}}
	assert.Panics(t, func() { leaf.rotateLeft() })
	assert.Panics(t, func() { leaf.rotateRight() })

	var empty subtree[int]
	assert.Panics(t, func() { empty.rotateLeft() })
}

func TestHeightFollowsBalances(t *testing.T) {
	memo := map[int][]*shape{}
	for n := 0; n <= 7; n++ {
		for _, sh := range shapes(n, memo) {
			var k uint32
			st, h := build(sh, &k)
			tree := &Tree[int]{root: st, count: n}
			if tree.Check() != nil {
				continue
			}
			assert.Equal(t, h, tree.Height())
		}
	}
}
