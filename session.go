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
	"fmt"
	"strings"
	"sync"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/cybrota/keytree/avl"
)

// traversal orders accepted by Traverse
var traversalOrders = map[string]func(*avl.Tree[string]) []uint32{
	"pre":  (*avl.Tree[string]).PreOrder,
	"in":   (*avl.Tree[string]).InOrder,
	"post": (*avl.Tree[string]).PostOrder,
	"bft":  (*avl.Tree[string]).BFT,
}

// Session is the tool's shared tree. The tree itself is not safe for
// concurrent use, so every call goes through mu; lookups and traversals
// take the read lock.
type Session struct {
	mu     sync.RWMutex
	tree   *avl.Tree[string]
	filter *keyFilter
	paths  *cache.Cache
	log    *log.Logger

	showValues bool // print draws values next to keys
}

func NewSession(cfg *Config, logger *log.Logger) *Session {
	return &Session{
		tree:   avl.New[string](),
		filter: newKeyFilter(cfg.Filter),
		paths:  NewPathCache(cfg.Cache),
		log:    logger,

		showValues: cfg.Tree.ShowValues,
	}
}

func (s *Session) Insert(key uint32, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.tree.Insert(key, value)
	if ok {
		s.filter.add(key)
		s.paths.Flush()
	}
	s.log.WithFields(log.Fields{"op": "insert", "key": key, "ok": ok}).Debug("mutation")
	return ok
}

func (s *Session) Delete(key uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.tree.Delete(key)
	if ok {
		s.filter.forget(s.tree)
		s.paths.Flush()
	}
	s.log.WithFields(log.Fields{"op": "delete", "key": key, "ok": ok}).Debug("mutation")
	return ok
}

// ExtractMin removes and returns the smallest entry.
func (s *Session) ExtractMin() (uint32, string, bool) {
	return s.extract("extract-min", s.tree.ExtractMin)
}

// ExtractMax removes and returns the largest entry.
func (s *Session) ExtractMax() (uint32, string, bool) {
	return s.extract("extract-max", s.tree.ExtractMax)
}

func (s *Session) extract(op string, fn func() (uint32, string, bool)) (uint32, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, value, ok := fn()
	if ok {
		s.filter.forget(s.tree)
		s.paths.Flush()
	}
	s.log.WithFields(log.Fields{"op": op, "key": key, "ok": ok}).Debug("mutation")
	return key, value, ok
}

// Search returns the path of keys visited to reach key, empty if absent.
func (s *Session) Search(key uint32) []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.filter.mayContain(key) {
		s.log.WithField("key", key).Trace("filtered lookup")
		return []uint32{}
	}
	if path, ok := GetPath(s.paths, key); ok {
		return path
	}
	path := s.tree.Search(key)
	if len(path) > 0 {
		CachePath(s.paths, key, path)
	}
	return path
}

func (s *Session) Get(key uint32) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.filter.mayContain(key) {
		return "", false
	}
	return s.tree.Get(key)
}

func (s *Session) PeekMin() (uint32, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Min()
}

func (s *Session) PeekMax() (uint32, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Max()
}

// Traverse returns the keys in the named order: pre, in, post or bft.
func (s *Session) Traverse(order string) ([]uint32, error) {
	fn, ok := traversalOrders[order]
	if !ok {
		return nil, fmt.Errorf("unknown traversal order %q", order)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.tree), nil
}

// Render draws the tree sideways.
func (s *Session) Render(withValues bool) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	s.tree.Fprint(&b, withValues)
	return b.String()
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}

func (s *Session) Height() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Height()
}

// Check runs the tree's consistency checker.
func (s *Session) Check() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Check()
}
