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
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	s := newTestSession(t)

	tests := []struct {
		line     string
		expected string
		err      error
	}{
		{"", "", nil},
		{"insert 10 ten", "inserted 10", nil},
		{"insert 20", "inserted 20", nil},
		{`insert 30 "thirty and some"`, "inserted 30", nil},
		{"insert 10 again", "10 already present", nil},
		{"pre", "20 10 30", nil},
		{"in", "10 20 30", nil},
		{"post", "10 30 20", nil},
		{"bft", "20 10 30", nil},
		{"search 30", "path: 20 30", nil},
		{"search 31", "31 not found", nil},
		{"get 30", `30 = "thirty and some"`, nil},
		{"get 10", `10 = "ten"`, nil},
		{"len", "3", nil},
		{"height", "2", nil},
		{"check", "ok", nil},
		{"peek-min", `10 = "ten"`, nil},
		{"min", `extracted 10 = "ten"`, nil},
		{"max", `extracted 30 = "thirty and some"`, nil},
		{"delete 20", "deleted 20", nil},
		{"delete 20", "20 not found", nil},
		{"max", "tree is empty", nil},
		{"print", "tree is empty", nil},
		{"INSERT 7", "inserted 7", nil},
		{"insert -1", "", errBadKey},
		{"insert 4294967296", "", errBadKey},
		{"delete", "", errArgCount},
		{"len 3", "", errArgCount},
		{"rotate 3", "", errUnknownCommand},
	}

	for _, tc := range tests {
		got, err := s.Execute(tc.line)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("Execute(%q) error = %v; want %v", tc.line, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Execute(%q) returned error: %v", tc.line, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("Execute(%q) = %q; want %q", tc.line, got, tc.expected)
		}
	}
}

func TestExecuteUnbalancedQuote(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Execute(`insert 1 "open`); err == nil {
		t.Error("Expected error for unterminated quote, got nil")
	}
}

func TestExecutePrint(t *testing.T) {
	s := newTestSession(t)
	for _, line := range []string{"insert 2 b", "insert 1 a", "insert 3 c"} {
		if _, err := s.Execute(line); err != nil {
			t.Fatal(err)
		}
	}
	got, err := s.Execute("print")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("print returned %d lines: %q", len(lines), got)
	}
	if !strings.Contains(lines[1], "2 → b") {
		t.Errorf("root line = %q; want key 2 with its value", lines[1])
	}
}

func TestHelpListsEveryVerb(t *testing.T) {
	s := newTestSession(t)
	out, err := s.Execute("help")
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range verbs {
		if !strings.Contains(out, v.usage) {
			t.Errorf("help output missing %q", v.usage)
		}
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"insert 1", []string{"insert", "1"}},
		{`insert 2 "two words"`, []string{"insert", "2", "two words"}},
		{"  search   9 ", []string{"search", "9"}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if strings.Join(parts, "|") != strings.Join(tc.expected, "|") {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
		}
	}
}

func TestRunScript(t *testing.T) {
	s := newTestSession(t)
	script := strings.NewReader(`# build a small tree
insert 30
insert 10
insert 20

pre
bogus
search 10
`)
	var out, errOut bytes.Buffer
	failures, err := runScript(s, script, &out, &errOut)
	if err != nil {
		t.Fatal(err)
	}
	if failures != 1 {
		t.Errorf("failures = %d; want 1", failures)
	}
	want := "inserted 30\ninserted 10\ninserted 20\n20 10 30\npath: 20 10\n"
	if out.String() != want {
		t.Errorf("output = %q; want %q", out.String(), want)
	}
	if !strings.Contains(errOut.String(), "line 7") {
		t.Errorf("error output %q does not name line 7", errOut.String())
	}
}
