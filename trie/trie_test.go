// Copyright 2026 Ian Lewis
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

package trie_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-suffixtrie/trie"
)

// TestTree_Search tests Tree.Search.
func TestTree_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		pattern string

		expected []trie.Span
	}{
		{
			name:    "whole text",
			text:    "GCAA",
			pattern: "GCAA",

			expected: []trie.Span{
				{Start: 0, End: 3},
			},
		},
		{
			name:    "interior",
			text:    "GCAA",
			pattern: "CA",

			expected: []trie.Span{
				{Start: 1, End: 2},
			},
		},
		{
			name:    "multiple occurrences",
			text:    "GCAA",
			pattern: "A",

			expected: []trie.Span{
				{Start: 2, End: 2},
				{Start: 3, End: 3},
			},
		},
		{
			name:    "prefix present pattern absent",
			text:    "GCAA",
			pattern: "AT",

			expected: nil,
		},
		{
			name:    "first byte absent",
			text:    "GCAA",
			pattern: "T",

			expected: nil,
		},
		{
			name:    "empty pattern",
			text:    "GCAA",
			pattern: "",

			expected: nil,
		},
		{
			name:    "pattern longer than text",
			text:    "GCAA",
			pattern: "GCAAG",

			expected: nil,
		},
		{
			name:    "empty text",
			text:    "",
			pattern: "A",

			expected: nil,
		},
		{
			name:    "empty text empty pattern",
			text:    "",
			pattern: "",

			expected: nil,
		},
		{
			name:    "repeated occurrences",
			text:    "ABAB",
			pattern: "AB",

			expected: []trie.Span{
				{Start: 0, End: 1},
				{Start: 2, End: 3},
			},
		},
		{
			name:    "overlapping occurrences",
			text:    "AAA",
			pattern: "AA",

			expected: []trie.Span{
				{Start: 0, End: 1},
				{Start: 1, End: 2},
			},
		},
		{
			name:    "single byte text",
			text:    "X",
			pattern: "X",

			expected: []trie.Span{
				{Start: 0, End: 0},
			},
		},
		{
			// Multi-byte characters match byte-wise; the span covers
			// both bytes of the character.
			name:    "multi-byte character",
			text:    "héllo",
			pattern: "é",

			expected: []trie.Span{
				{Start: 1, End: 2},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tree := trie.Build([]byte(test.text))

			result := tree.Search(test.pattern)
			if diff := cmp.Diff(test.expected, result); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestTree_Search_allSubstrings checks that every substring of the text is
// found at every position where it occurs and that no reported span spells
// anything else.
func TestTree_Search_allSubstrings(t *testing.T) {
	t.Parallel()

	text := "abracadabra"
	tree := trie.Build([]byte(text))

	for i := 0; i < len(text); i++ {
		for j := i; j < len(text); j++ {
			pattern := text[i : j+1]
			spans := tree.Search(pattern)

			found := false
			for _, s := range spans {
				if got := text[s.Start : s.End+1]; got != pattern {
					t.Fatalf("Search(%q): span (%d,%d) spells %q", pattern, s.Start, s.End, got)
				}
				if s.Start == uint32(i) {
					found = true
				}
			}
			if !found {
				t.Fatalf("Search(%q): no span starting at %d", pattern, i)
			}
		}
	}
}

// TestBuild_structure checks the structural invariants of built tries: the
// root holds no spans, every other node holds at least one, edge labels are
// unique, and every span locates an occurrence of the node's path in the
// text.
func TestBuild_structure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{
			name: "empty",
			text: "",
		},
		{
			name: "single byte",
			text: "X",
		},
		{
			name: "two bytes",
			text: "AB",
		},
		{
			name: "dna fragment",
			text: "GCAA",
		},
		{
			name: "repeats",
			text: "ABAB",
		},
		{
			name: "single byte run",
			text: "AAA",
		},
		{
			name: "english word",
			text: "mississippi",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tree := trie.Build([]byte(test.text))

			root := tree.Root()
			if diff := cmp.Diff([]trie.Span(nil), root.Spans()); diff != "" {
				t.Fatalf("root spans (-want, +got):\n%s", diff)
			}

			type item struct {
				n    *trie.Node
				path string
			}
			stack := []item{{root, ""}}
			for len(stack) > 0 {
				it := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				if it.path != "" && len(it.n.Spans()) == 0 {
					t.Fatalf("node %q has no spans", it.path)
				}
				for _, s := range it.n.Spans() {
					if s.Len() != len(it.path) {
						t.Fatalf("node %q: span (%d,%d) has length %d", it.path, s.Start, s.End, s.Len())
					}
					if got := test.text[s.Start : s.End+1]; got != it.path {
						t.Fatalf("node %q: span (%d,%d) spells %q", it.path, s.Start, s.End, got)
					}
				}

				seen := map[byte]bool{}
				for _, e := range it.n.Edges() {
					if seen[e.Label] {
						t.Fatalf("node %q: duplicate edge %q", it.path, e.Label)
					}
					seen[e.Label] = true
					if e.Node == nil {
						t.Fatalf("node %q: edge %q has no node", it.path, e.Label)
					}
					stack = append(stack, item{e.Node, it.path + string(e.Label)})
				}
			}
		})
	}
}

// TestNode_Child tests Node.Child.
func TestNode_Child(t *testing.T) {
	t.Parallel()

	tree := trie.Build([]byte("GCAA"))
	root := tree.Root()

	e, ok := root.Child('G')
	if !ok {
		t.Fatalf("Child('G'): not found")
	}
	if e.Label != 'G' {
		t.Fatalf("Child('G'): label %q", e.Label)
	}
	if e.Node == nil {
		t.Fatalf("Child('G'): no node")
	}

	if _, ok := root.Child('T'); ok {
		t.Fatalf("Child('T'): unexpectedly found")
	}

	// Edges are ordered by first appearance in the text.
	var labels []byte
	for _, e := range root.Edges() {
		labels = append(labels, e.Label)
	}
	if diff := cmp.Diff([]byte("GCA"), labels); diff != "" {
		t.Fatalf("root edge labels (-want, +got):\n%s", diff)
	}
}

// TestTree_Text tests that the indexed text can be reconstructed from the
// tree alone.
func TestTree_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{
			name: "empty",
			text: "",
		},
		{
			name: "single byte",
			text: "X",
		},
		{
			name: "dna fragment",
			text: "GCAA",
		},
		{
			name: "repeats",
			text: "ABAB",
		},
		{
			name: "english word",
			text: "mississippi",
		},
		{
			name: "multi-byte characters",
			text: "héllo",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tree := trie.Build([]byte(test.text))
			if diff := cmp.Diff(test.text, string(tree.Text())); diff != "" {
				t.Fatalf("Text (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestTree_Stats tests Tree.Stats.
func TestTree_Stats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string

		expected trie.Stats
	}{
		{
			name: "empty",
			text: "",

			expected: trie.Stats{
				Nodes: 1,
			},
		},
		{
			name: "single byte",
			text: "X",

			expected: trie.Stats{
				Nodes: 2,
				Spans: 1,
				Depth: 1,
			},
		},
		{
			name: "two bytes",
			text: "AB",

			expected: trie.Stats{
				Nodes: 4,
				Spans: 3,
				Depth: 2,
			},
		},
		{
			name: "single byte run",
			text: "AAA",

			expected: trie.Stats{
				Nodes: 4,
				Spans: 6,
				Depth: 3,
			},
		},
		{
			name: "dna fragment",
			text: "GCAA",

			expected: trie.Stats{
				Nodes: 10,
				Spans: 10,
				Depth: 4,
			},
		},
		{
			// 53 distinct substrings plus the root; spans total the sum
			// of all suffix lengths.
			name: "english word",
			text: "mississippi",

			expected: trie.Stats{
				Nodes: 54,
				Spans: 66,
				Depth: 11,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tree := trie.Build([]byte(test.text))
			if diff := cmp.Diff(test.expected, tree.Stats()); diff != "" {
				t.Fatalf("Stats (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestTree_zero tests that the zero value behaves as an empty tree.
func TestTree_zero(t *testing.T) {
	t.Parallel()

	var tree trie.Tree

	if got := tree.Search("a"); got != nil {
		t.Fatalf("Search: %v", got)
	}
	if got := tree.Text(); got != nil {
		t.Fatalf("Text: %q", got)
	}
	if diff := cmp.Diff(trie.Stats{}, tree.Stats()); diff != "" {
		t.Fatalf("Stats (-want, +got):\n%s", diff)
	}

	_, err := tree.MarshalBinary()
	if diff := cmp.Diff(trie.ErrEncode, err, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("MarshalBinary (-want, +got):\n%s", diff)
	}
}
