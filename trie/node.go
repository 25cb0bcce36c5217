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

// Span is a single occurrence of a substring in the indexed text. Start and
// End are inclusive byte indexes: the substring spelled by the path from the
// root to the node holding the span occurs at text[Start : End+1].
type Span struct {
	Start uint32
	End   uint32
}

// Len returns the length of the occurrence in bytes.
func (s Span) Len() int {
	return int(s.End) - int(s.Start) + 1
}

// Edge is a labeled transition from a node to one of its children. Node is
// the child subtree when it has been materialized. Nodes read by DecodeNode
// leave their children unresolved: Node is nil and Offset holds the absolute
// byte offset of the child's record in the encoded index.
type Edge struct {
	// Label is the transition byte.
	Label byte

	// Node is the child subtree, or nil if the child is unresolved.
	Node *Node

	// Offset is the absolute byte offset of the child's record in the
	// encoded index. It is zero for trees built in memory.
	Offset uint32
}

// Node is a single node of a suffix trie. The path from the root to a node
// spells a substring of the indexed text; the node's spans record every
// occurrence of that substring.
type Node struct {
	spans []Span
	edges []Edge
}

// Spans returns the node's occurrences in insertion order. Occurrences are
// ordered by start index because suffixes are inserted left to right. The
// returned slice is shared with the node and must not be modified.
func (n *Node) Spans() []Span {
	return n.spans
}

// Edges returns the node's child transitions in the order the labels first
// appeared in the text. The returned slice is shared with the node and must
// not be modified.
func (n *Node) Edges() []Edge {
	return n.edges
}

// Child returns the edge for the given transition byte. Nodes have few
// children in practice so lookup is a linear scan.
func (n *Node) Child(label byte) (Edge, bool) {
	for _, e := range n.edges {
		if e.Label == label {
			return e, true
		}
	}
	return Edge{}, false
}

// childNode returns the materialized child for label, or nil if there is no
// such child.
func (n *Node) childNode(label byte) *Node {
	for _, e := range n.edges {
		if e.Label == label {
			return e.Node
		}
	}
	return nil
}

// onTextPrefix reports whether the node's path is a prefix of the whole
// text, that is, whether the suffix starting at index zero passes through
// the node.
func (n *Node) onTextPrefix() bool {
	for _, s := range n.spans {
		if s.Start == 0 {
			return true
		}
	}
	return false
}
