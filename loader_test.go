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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKeys = `# sample
50 fifty
30
70 seventy   words

20 twenty
50 duplicate
`

func TestParseKeyEntries(t *testing.T) {
	entries, err := parseKeyEntries(strings.NewReader(sampleKeys))
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, KeyEntry{Key: 50, Value: "fifty", Line: 2}, entries[0])
	assert.Equal(t, KeyEntry{Key: 30, Value: "", Line: 3}, entries[1])
	assert.Equal(t, "seventy   words", entries[2].Value)
	assert.Equal(t, 6, entries[3].Line)
}

func TestParseKeyEntriesBadKey(t *testing.T) {
	_, err := parseKeyEntries(strings.NewReader("1 one\nx two\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBadKey))
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadKeyFileMissing(t *testing.T) {
	_, err := readKeyFile(filepath.Join(t.TempDir(), "absent.keys"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPopulateSession(t *testing.T) {
	entries, err := parseKeyEntries(strings.NewReader(sampleKeys))
	require.NoError(t, err)

	s := newTestSession(t)
	var progress bytes.Buffer
	inserted, duplicates := populateSession(s, entries, true, &progress)
	assert.Equal(t, 4, inserted)
	assert.Equal(t, 1, duplicates)
	assert.NotEmpty(t, progress.String())

	// the first value wins
	v, ok := s.Get(50)
	assert.True(t, ok)
	assert.Equal(t, "fifty", v)
	assert.NoError(t, s.Check())
}

func TestLoadSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.keys")
	require.NoError(t, os.WriteFile(path, []byte(sampleKeys), 0644))

	cfg := defaultConfig
	cfg.Log.Level = "error"
	s, err := loadSession(&cfg, path, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())

	keys, err := s.Traverse("in")
	require.NoError(t, err)
	assert.Equal(t, []uint32{20, 30, 50, 70}, keys)

	empty, err := loadSession(&cfg, "", false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}
