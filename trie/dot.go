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

package trie

import (
	"fmt"
	"io"
	"strings"
)

// WriteDot writes the tree to w as a Graphviz directed graph. Nodes are
// labeled with their occurrence spans and edges with their transition byte.
// The output is deterministic for a given tree.
func (t *Tree) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph suffixtrie {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\tnode [shape=circle];"); err != nil {
		return err
	}

	if t.root != nil {
		type item struct {
			n  *Node
			id int
		}
		id := 0
		stack := []item{{t.root, id}}
		for len(stack) > 0 {
			it := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			label := "root"
			if it.id != 0 {
				label = spanLabel(it.n.spans)
			}
			if _, err := fmt.Fprintf(w, "\tn%d [label=%q];\n", it.id, label); err != nil {
				return err
			}

			// Children get their ids in edge order and are pushed in
			// reverse so the walk stays depth-first in edge order.
			first := id + 1
			for _, e := range it.n.edges {
				id++
				if _, err := fmt.Fprintf(w, "\tn%d -> n%d [label=%q];\n", it.id, id, string(e.Label)); err != nil {
					return err
				}
			}
			for i := len(it.n.edges) - 1; i >= 0; i-- {
				stack = append(stack, item{it.n.edges[i].Node, first + i})
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}

// Fprint writes every substring in the index with its occurrence spans, one
// per line, in depth-first edge order. It is a debugging aid for small
// texts; the line count is the number of distinct substrings.
func (t *Tree) Fprint(w io.Writer) error {
	if t.root == nil {
		return nil
	}

	type item struct {
		n      *Node
		prefix string
	}
	stack := []item{{t.root, ""}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.prefix != "" {
			if _, err := fmt.Fprintf(w, "%s %s\n", it.prefix, spanLabel(it.n.spans)); err != nil {
				return err
			}
		}
		for i := len(it.n.edges) - 1; i >= 0; i-- {
			e := it.n.edges[i]
			stack = append(stack, item{e.Node, it.prefix + string(e.Label)})
		}
	}
	return nil
}

// spanLabel formats spans for display, e.g. "(2,2) (3,3)".
func spanLabel(spans []Span) string {
	var b strings.Builder
	for i, s := range spans {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%d,%d)", s.Start, s.End)
	}
	return b.String()
}
