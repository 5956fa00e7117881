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
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Search paths stay valid until the next mutation, which flushes the
	// cache; expiry only bounds memory on long idle sessions.
	pathCacheExpiration = 30 * time.Minute
	pathCacheCleanup    = 5 * time.Minute
)

// NewPathCache creates the cache that memoizes search paths by key.
func NewPathCache(cfg CacheConfig) *cache.Cache {
	expiration, cleanup := cfg.Expiration, cfg.Cleanup
	if expiration <= 0 {
		expiration = pathCacheExpiration
	}
	if cleanup <= 0 {
		cleanup = pathCacheCleanup
	}
	return cache.New(expiration, cleanup)
}

func CachePath(c *cache.Cache, key uint32, path []uint32) {
	stored := make([]uint32, len(path))
	copy(stored, path)
	c.Set(strconv.FormatUint(uint64(key), 10), stored, cache.DefaultExpiration)
}

func GetPath(c *cache.Cache, key uint32) ([]uint32, bool) {
	val, ok := c.Get(strconv.FormatUint(uint64(key), 10))
	if !ok {
		return nil, false
	}
	stored := val.([]uint32)
	path := make([]uint32, len(stored))
	copy(path, stored)
	return path, true
}
