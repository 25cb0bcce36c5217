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

// Tree is an in-memory suffix trie over a single text.
//
// The zero value is an empty tree with no root; it is only useful as an
// UnmarshalBinary target. Use Build or Decode to obtain a populated tree.
type Tree struct {
	root *Node
}

// Build constructs the suffix trie for text. Every suffix is inserted one
// byte at a time from its start to the end of the text, creating nodes as
// needed, and each node visited records the occurrence as an inclusive
// (start, end) span. A node reached by k different suffix starts holds k
// spans. The root holds no spans.
//
// Construction visits every (start, end) pair once, so time and memory are
// quadratic in len(text). Build is intended for the short texts this index
// structure is designed around.
func Build(text []byte) *Tree {
	root := &Node{}
	for i := range text {
		n := root
		for j := i; j < len(text); j++ {
			c := text[j]
			child := n.childNode(c)
			if child == nil {
				child = &Node{}
				n.edges = append(n.edges, Edge{Label: c, Node: child})
			}
			n = child
			n.spans = append(n.spans, Span{Start: uint32(i), End: uint32(j)})
		}
	}
	return &Tree{root: root}
}

// Root returns the tree's root node. The root's path spells the empty
// string and its span list is always empty.
func (t *Tree) Root() *Node {
	return t.root
}

// Search returns every occurrence of pattern in the indexed text by walking
// one transition per pattern byte. The result shares the node's span slice
// and must not be modified.
//
// A pattern that does not occur in the text yields nil. The empty pattern
// resolves to the root and also yields nil.
func (t *Tree) Search(pattern string) []Span {
	if t.root == nil {
		return nil
	}
	n := t.root
	for i := 0; i < len(pattern); i++ {
		e, ok := n.Child(pattern[i])
		if !ok {
			return nil
		}
		n = e.Node
	}
	return n.spans
}

// Text reconstructs the indexed text from the tree alone. The suffix
// starting at index zero is the whole text, and at every depth exactly one
// child lies on its path, so following the edges whose nodes hold a span
// starting at zero spells the text back out byte by byte.
func (t *Tree) Text() []byte {
	if t.root == nil {
		return nil
	}
	var text []byte
	n := t.root
	for n != nil {
		var next *Node
		for _, e := range n.edges {
			if e.Node.onTextPrefix() {
				text = append(text, e.Label)
				next = e.Node
				break
			}
		}
		n = next
	}
	return text
}

// Stats summarize the size and shape of a tree.
type Stats struct {
	// Nodes is the total number of nodes including the root.
	Nodes int

	// Spans is the total number of occurrence spans over all nodes. It
	// equals the sum of all suffix lengths of the indexed text.
	Spans int

	// Depth is the length of the longest root-to-leaf path, which equals
	// the length of the text.
	Depth int
}

// Stats walks the tree and returns its size statistics.
func (t *Tree) Stats() Stats {
	var st Stats
	if t.root == nil {
		return st
	}

	type item struct {
		n     *Node
		depth int
	}
	stack := []item{{t.root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		st.Nodes++
		st.Spans += len(it.n.spans)
		if it.depth > st.Depth {
			st.Depth = it.depth
		}
		for _, e := range it.n.edges {
			stack = append(stack, item{e.Node, it.depth + 1})
		}
	}
	return st
}
