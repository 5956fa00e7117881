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

// Package avl implements a height-balanced binary search tree over uint32
// keys, each key carrying an optional value.
//
// Every subtree is a handle that is either empty or owns exactly one node,
// and each node owns its two child subtrees. There are no parent pointers:
// insert and delete are recursive and each frame reports to its caller
// whether the height of its subtree changed, so balance factors are
// updated bottom-up one frame at a time.
//
// Note: a tree is not safe for concurrent use. Callers that share a tree
// between goroutines must serialize access, for example with a
// sync.RWMutex where searches and traversals take the read lock.
package avl
