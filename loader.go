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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

// KeyEntry is one line of a key file.
type KeyEntry struct {
	Key   uint32
	Value string
	Line  int
}

// readKeyFile reads a key file: one "KEY [VALUE...]" entry per line,
// blank lines and lines starting with # are skipped.
func readKeyFile(path string) ([]KeyEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	return parseKeyEntries(file)
}

func parseKeyEntries(r io.Reader) ([]KeyEntry, error) {
	var entries []KeyEntry

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo += 1
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Example line: "42 the answer"
		word, value, _ := strings.Cut(line, " ")
		key, err := parseKey(word)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, KeyEntry{
			Key:   key,
			Value: strings.TrimSpace(value),
			Line:  lineNo,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// populateSession inserts entries in file order. Keys already present are
// counted as duplicates and keep their first value.
func populateSession(s *Session, entries []KeyEntry, showProgress bool, out io.Writer) (inserted int, duplicates int) {
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("🌳 Loading keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(out, "\n")
			}),
		)
	}

	for _, e := range entries {
		if s.Insert(e.Key, e.Value) {
			inserted += 1
		} else {
			duplicates += 1
			s.log.WithField("line", e.Line).Debugf("duplicate key %d", e.Key)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}
	return inserted, duplicates
}

// loadSession builds a session from the key file at path, or an empty
// session when path is empty.
func loadSession(cfg *Config, path string, showProgress bool, out io.Writer) (*Session, error) {
	s := NewSession(cfg, newLogger(cfg.Log.Level))
	if path == "" {
		return s, nil
	}

	entries, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	inserted, duplicates := populateSession(s, entries, showProgress, out)
	s.log.WithFields(log.Fields{
		"file":       path,
		"inserted":   inserted,
		"duplicates": duplicates,
	}).Info("loaded key file")
	return s, nil
}
