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
	"encoding/binary"

	"github.com/willf/bloom"

	"github.com/cybrota/keytree/avl"
)

// keyFilter screens lookups for keys that were never inserted. A bloom
// filter cannot forget, so deleted keys keep answering "maybe" until the
// filter is rebuilt from the live tree.
type keyFilter struct {
	bits    *bloom.BloomFilter
	removed int // deletions since the last rebuild
}

func newKeyFilter(cfg FilterConfig) *keyFilter {
	return &keyFilter{
		bits: bloom.New(cfg.Bits, cfg.Hashes),
	}
}

func keyBytes(key uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, key)
	return b
}

func (f *keyFilter) add(key uint32) {
	f.bits.Add(keyBytes(key))
}

// mayContain is false only for keys that are certainly absent.
func (f *keyFilter) mayContain(key uint32) bool {
	return f.bits.Test(keyBytes(key))
}

// forget records a deletion and rebuilds once deletions outnumber half of
// the live keys.
func (f *keyFilter) forget(tree *avl.Tree[string]) {
	f.removed += 1
	if f.removed > tree.Len()/2+16 {
		f.rebuild(tree)
	}
}

func (f *keyFilter) rebuild(tree *avl.Tree[string]) {
	f.bits.ClearAll()
	tree.Walk(func(key uint32, _ string) bool {
		f.add(key)
		return true
	})
	f.removed = 0
}
