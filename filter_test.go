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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cybrota/keytree/avl"
)

func TestKeyFilter(t *testing.T) {
	f := newKeyFilter(defaultConfig.Filter)
	tree := avl.New[string]()
	for key := uint32(0); key < 100; key++ {
		tree.Insert(key, "")
		f.add(key)
	}
	for key := uint32(0); key < 100; key++ {
		assert.True(t, f.mayContain(key), "no false negatives")
	}

	misses := 0
	for key := uint32(1000); key < 2000; key++ {
		if !f.mayContain(key) {
			misses += 1
		}
	}
	// with 64k bits and 100 keys almost every absent key is screened out
	assert.Greater(t, misses, 950)
}

func TestKeyFilterRebuildForgetsDeletedKeys(t *testing.T) {
	f := newKeyFilter(defaultConfig.Filter)
	tree := avl.New[string]()
	for key := uint32(0); key < 64; key++ {
		tree.Insert(key, "")
		f.add(key)
	}
	for key := uint32(0); key < 48; key++ {
		tree.Delete(key)
		f.forget(tree)
	}
	// 48 deletions against 16 live keys forced a rebuild
	assert.Less(t, f.removed, 48)
	for key := uint32(48); key < 64; key++ {
		assert.True(t, f.mayContain(key))
	}

	f.rebuild(tree)
	assert.Equal(t, 0, f.removed)
	screened := 0
	for key := uint32(0); key < 48; key++ {
		if !f.mayContain(key) {
			screened += 1
		}
	}
	assert.Greater(t, screened, 40)
}
