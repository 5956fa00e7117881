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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errBadKey         = errors.New("key must be an unsigned 32-bit integer")
	errArgCount       = errors.New("wrong number of arguments")
)

// verb is one interpreter command. maxArgs < 0 means no upper bound.
type verb struct {
	name    string
	usage   string
	summary string
	minArgs int
	maxArgs int
	run     func(s *Session, args []string) (string, error)
}

var verbs = []verb{
	{"insert", "insert KEY [VALUE...]", "add a key, the rest of the line is its value", 1, -1, runInsert},
	{"delete", "delete KEY", "remove a key", 1, 1, runDelete},
	{"search", "search KEY", "show the keys visited from the root to KEY", 1, 1, runSearch},
	{"get", "get KEY", "show the value stored under KEY", 1, 1, runGet},
	{"min", "min", "remove and show the smallest key", 0, 0, runExtract(true)},
	{"max", "max", "remove and show the largest key", 0, 0, runExtract(false)},
	{"peek-min", "peek-min", "show the smallest key", 0, 0, runPeek(true)},
	{"peek-max", "peek-max", "show the largest key", 0, 0, runPeek(false)},
	{"pre", "pre", "keys in pre-order", 0, 0, runTraverse("pre")},
	{"in", "in", "keys in ascending order", 0, 0, runTraverse("in")},
	{"post", "post", "keys in post-order", 0, 0, runTraverse("post")},
	{"bft", "bft", "keys level by level", 0, 0, runTraverse("bft")},
	{"print", "print", "draw the tree with balance factors", 0, 0, runPrint},
	{"len", "len", "number of keys", 0, 0, runLen},
	{"height", "height", "number of levels", 0, 0, runHeight},
	{"check", "check", "verify ordering and balance of every node", 0, 0, runCheck},
}

// splitCommand splits an interpreter line into words.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	return args, nil
}

func parseKey(word string) (uint32, error) {
	k, err := strconv.ParseUint(word, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadKey, word)
	}
	return uint32(k), nil
}

func formatKeys(keys []uint32) string {
	words := make([]string, len(keys))
	for i, k := range keys {
		words[i] = strconv.FormatUint(uint64(k), 10)
	}
	return strings.Join(words, " ")
}

// Execute runs one interpreter line against the session and returns the
// text to show. A blank line does nothing.
func (s *Session) Execute(line string) (string, error) {
	parts, err := splitCommand(line)
	if err != nil {
		return "", err
	}
	if len(parts) == 0 {
		return "", nil
	}

	name, args := strings.ToLower(parts[0]), parts[1:]
	if name == "help" {
		return commandSummary(), nil
	}
	for _, v := range verbs {
		if v.name != name {
			continue
		}
		if len(args) < v.minArgs || (v.maxArgs >= 0 && len(args) > v.maxArgs) {
			return "", fmt.Errorf("%w: usage: %s", errArgCount, v.usage)
		}
		return v.run(s, args)
	}
	return "", fmt.Errorf("%w %q, try help", errUnknownCommand, parts[0])
}

// commandSummary lists every verb with its usage.
func commandSummary() string {
	var b strings.Builder
	for _, v := range verbs {
		fmt.Fprintf(&b, "%-24s %s\n", v.usage, v.summary)
	}
	fmt.Fprintf(&b, "%-24s %s\n", "help", "this list")
	return b.String()
}

func runInsert(s *Session, args []string) (string, error) {
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}
	if !s.Insert(key, strings.Join(args[1:], " ")) {
		return fmt.Sprintf("%d already present", key), nil
	}
	return fmt.Sprintf("inserted %d", key), nil
}

func runDelete(s *Session, args []string) (string, error) {
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}
	if !s.Delete(key) {
		return fmt.Sprintf("%d not found", key), nil
	}
	return fmt.Sprintf("deleted %d", key), nil
}

func runSearch(s *Session, args []string) (string, error) {
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}
	path := s.Search(key)
	if len(path) == 0 {
		return fmt.Sprintf("%d not found", key), nil
	}
	return "path: " + formatKeys(path), nil
}

func runGet(s *Session, args []string) (string, error) {
	key, err := parseKey(args[0])
	if err != nil {
		return "", err
	}
	value, ok := s.Get(key)
	if !ok {
		return fmt.Sprintf("%d not found", key), nil
	}
	return fmt.Sprintf("%d = %q", key, value), nil
}

func runExtract(smallest bool) func(*Session, []string) (string, error) {
	return func(s *Session, _ []string) (string, error) {
		extract := s.ExtractMax
		if smallest {
			extract = s.ExtractMin
		}
		key, value, ok := extract()
		if !ok {
			return "tree is empty", nil
		}
		return fmt.Sprintf("extracted %d = %q", key, value), nil
	}
}

func runPeek(smallest bool) func(*Session, []string) (string, error) {
	return func(s *Session, _ []string) (string, error) {
		peek := s.PeekMax
		if smallest {
			peek = s.PeekMin
		}
		key, value, ok := peek()
		if !ok {
			return "tree is empty", nil
		}
		return fmt.Sprintf("%d = %q", key, value), nil
	}
}

func runTraverse(order string) func(*Session, []string) (string, error) {
	return func(s *Session, _ []string) (string, error) {
		keys, err := s.Traverse(order)
		if err != nil {
			return "", err
		}
		return formatKeys(keys), nil
	}
}

func runPrint(s *Session, _ []string) (string, error) {
	if s.Len() == 0 {
		return "tree is empty", nil
	}
	return strings.TrimRight(s.Render(s.showValues), "\n"), nil
}

func runLen(s *Session, _ []string) (string, error) {
	return strconv.Itoa(s.Len()), nil
}

func runHeight(s *Session, _ []string) (string, error) {
	return strconv.Itoa(s.Height()), nil
}

func runCheck(s *Session, _ []string) (string, error) {
	if err := s.Check(); err != nil {
		return "", err
	}
	return "ok", nil
}

// runScript executes every line read from r, writing results to out and
// errors to errOut. Lines starting with # are skipped. It returns the
// number of lines that failed.
func runScript(s *Session, r io.Reader, out io.Writer, errOut io.Writer) (int, error) {
	failures := 0
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo += 1
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result, err := s.Execute(line)
		if err != nil {
			failures += 1
			fmt.Fprintf(errOut, "%sline %d: %v%s\n", Error, lineNo, err, Reset)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
	return failures, scanner.Err()
}
