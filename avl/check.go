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
	"errors"
	"fmt"
)

// errors reported by Check
var (
	ErrOrder      = errors.New("avl: key out of order")
	ErrBalance    = errors.New("avl: stored balance does not match heights")
	ErrUnbalanced = errors.New("avl: balance factor out of range")
	ErrCount      = errors.New("avl: node count mismatch")
)

// Check verifies the whole tree: search order, that every stored balance
// equals the real height difference and lies in [-1, 1], and that the
// element count is right.
func (tree *Tree[V]) Check() error {
	n := 0
	if _, err := tree.root.check(-1, 1<<32, &n); err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted %d, recorded %d", ErrCount, n, tree.count)
	}
	return nil
}

// check returns the real height of t. Keys must lie strictly in (lo, hi).
func (t *subtree[V]) check(lo int64, hi int64, n *int) (int, error) {
	p := t.n
	if p == nil {
		return 0, nil
	}
	*n += 1
	k := int64(p.key)
	if k <= lo || k >= hi {
		return 0, fmt.Errorf("%w: %d not in (%d, %d)", ErrOrder, p.key, lo, hi)
	}
	lh, err := p.left.check(lo, k, n)
	if err != nil {
		return 0, err
	}
	rh, err := p.right.check(k, hi, n)
	if err != nil {
		return 0, err
	}
	if rh-lh != p.balance {
		return 0, fmt.Errorf("%w: key %d stored %d, actual %d", ErrBalance, p.key, p.balance, rh-lh)
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, fmt.Errorf("%w: key %d balance %d", ErrUnbalanced, p.key, p.balance)
	}
	return 1 + max(lh, rh), nil
}
