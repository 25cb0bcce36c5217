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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrDecode indicates that index data is malformed or truncated.
var ErrDecode = errors.New("invalid index")

// ErrEncode indicates that a tree cannot be represented in the index
// encoding.
var ErrEncode = errors.New("cannot encode tree")

const (
	// headerLen is the fixed node header size: two big-endian 32 bit
	// counts (spans, children).
	headerLen = 8

	// spanEntryLen is the size of one span table entry: a 32 bit start
	// and a 32 bit end.
	spanEntryLen = 8

	// childEntryLen is the size of one child table entry: one label byte
	// and a 32 bit absolute offset.
	childEntryLen = 5
)

// recordLen returns the encoded size of a single node record. It depends
// only on the node's counts, never on where its children land, so it is
// known before any child is serialized.
func recordLen(n *Node) int {
	return headerLen + len(n.spans)*spanEntryLen + len(n.edges)*childEntryLen
}

// Encode writes the tree to w in the index encoding and returns the total
// encoded size. The root record is written at offset 0 and every node's
// children are laid out in the region immediately following its record, so
// all child offsets point forward.
//
// A node's record size is known up front but its child offsets are not, so
// each node first reserves its record range with zeros, serializes its
// children behind it, and then overwrites the placeholder once every child
// offset is resolved. The traversal keeps an explicit stack; call depth
// would otherwise grow with the length of the longest suffix.
//
// Encode only ever writes the range [0, size). Callers reusing a backing
// file must truncate it first.
func (t *Tree) Encode(w io.WriterAt) (int64, error) {
	if t.root == nil {
		return 0, fmt.Errorf("%w: no root", ErrEncode)
	}

	type frame struct {
		n    *Node
		off  int64    // start of this node's record
		next int64    // next free offset after the children encoded so far
		ci   int      // index of the next child to encode
		offs []uint32 // resolved child offsets in edge order
	}

	push := func(stack []frame, n *Node, off int64) ([]frame, error) {
		if off > math.MaxUint32 {
			return nil, fmt.Errorf("%w: node offset %d too large", ErrEncode, off)
		}
		l := recordLen(n)
		if _, err := w.WriteAt(make([]byte, l), off); err != nil {
			return nil, fmt.Errorf("writing placeholder at offset %d: %w", off, err)
		}
		return append(stack, frame{n: n, off: off, next: off + int64(l)}), nil
	}

	stack, err := push(nil, t.root, 0)
	if err != nil {
		return 0, err
	}

	var size int64
	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		if f.ci < len(f.n.edges) {
			e := f.n.edges[f.ci]
			if e.Node == nil {
				return 0, fmt.Errorf("%w: unresolved child %q", ErrEncode, e.Label)
			}
			off := f.next
			f.offs = append(f.offs, uint32(off))
			f.ci++
			stack, err = push(stack, e.Node, off)
			if err != nil {
				return 0, err
			}
			continue
		}

		// All children are in place; replace the placeholder with the
		// real record.
		if err := writeRecord(w, f.n, f.off, f.offs); err != nil {
			return 0, err
		}
		size = f.next
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			stack[len(stack)-1].next = size
		}
	}

	return size, nil
}

// writeRecord writes n's header, span table, and child table at off. offs
// holds the resolved absolute offset of each child in edge order.
func writeRecord(w io.WriterAt, n *Node, off int64, offs []uint32) error {
	b := make([]byte, recordLen(n))
	binary.BigEndian.PutUint32(b[0:], uint32(len(n.spans)))
	binary.BigEndian.PutUint32(b[4:], uint32(len(n.edges)))
	p := headerLen
	for _, s := range n.spans {
		binary.BigEndian.PutUint32(b[p:], s.Start)
		binary.BigEndian.PutUint32(b[p+4:], s.End)
		p += spanEntryLen
	}
	for i, e := range n.edges {
		b[p] = e.Label
		binary.BigEndian.PutUint32(b[p+1:], offs[i])
		p += childEntryLen
	}
	if _, err := w.WriteAt(b, off); err != nil {
		return fmt.Errorf("writing node record at offset %d: %w", off, err)
	}
	return nil
}

// DecodeNode reads the single node record at off. The node's children are
// left unresolved: each edge carries the absolute offset of its child's
// record and a nil Node. This is the building block for searches that walk
// an encoded index directly on storage.
//
// size is the total size of the encoded index and is used to validate the
// record's counts before its tables are read. Pass a negative size when the
// total is unknown to skip the validation.
func DecodeNode(r io.ReaderAt, off, size int64) (*Node, error) {
	if size >= 0 && (off < 0 || off+headerLen > size) {
		return nil, fmt.Errorf("%w: node header at offset %d out of range (index size %d)", ErrDecode, off, size)
	}

	hdr := make([]byte, headerLen)
	if _, err := r.ReadAt(hdr, off); err != nil {
		return nil, fmt.Errorf("%w: reading node header at offset %d: %v", ErrDecode, off, err)
	}
	spanCount := int64(binary.BigEndian.Uint32(hdr[0:]))
	childCount := int64(binary.BigEndian.Uint32(hdr[4:]))

	tableLen := spanCount*spanEntryLen + childCount*childEntryLen
	if size >= 0 && off+headerLen+tableLen > size {
		return nil, fmt.Errorf("%w: node at offset %d declares %d spans and %d children but only %d bytes remain",
			ErrDecode, off, spanCount, childCount, size-off-headerLen)
	}

	n := &Node{}
	if tableLen == 0 {
		return n, nil
	}

	b := make([]byte, tableLen)
	if _, err := r.ReadAt(b, off+headerLen); err != nil {
		return nil, fmt.Errorf("%w: reading node tables at offset %d: %v", ErrDecode, off+headerLen, err)
	}

	parseTables(n, b, spanCount, childCount)
	return n, nil
}

// parseTables fills in the node's spans and edges from b, which must hold
// the record's span and child tables contiguously.
func parseTables(n *Node, b []byte, spanCount, childCount int64) {
	if spanCount > 0 {
		n.spans = make([]Span, spanCount)
		for i := range n.spans {
			n.spans[i] = Span{
				Start: binary.BigEndian.Uint32(b[int64(i)*spanEntryLen:]),
				End:   binary.BigEndian.Uint32(b[int64(i)*spanEntryLen+4:]),
			}
		}
	}
	if childCount > 0 {
		n.edges = make([]Edge, childCount)
		cb := b[spanCount*spanEntryLen:]
		for i := range n.edges {
			n.edges[i] = Edge{
				Label:  cb[int64(i)*childEntryLen],
				Offset: binary.BigEndian.Uint32(cb[int64(i)*childEntryLen+1:]),
			}
		}
	}
}

// Decode reads a whole tree from r, materializing every node. The root
// record is read from offset 0 and child offsets are resolved into owned
// subtrees with an explicit stack.
//
// Child offsets must point forward; an offset at or before its parent's is
// rejected so that cyclic references in corrupt data fail cleanly instead
// of looping. size is the total size of the encoded index; a negative size
// skips range validation.
func Decode(r io.ReaderAt, size int64) (*Tree, error) {
	root, err := DecodeNode(r, 0, size)
	if err != nil {
		return nil, err
	}

	type item struct {
		n   *Node
		off int64
	}
	stack := []item{{root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := range it.n.edges {
			off := int64(it.n.edges[i].Offset)
			if off <= it.off {
				return nil, fmt.Errorf("%w: child offset %d of node at offset %d is not a forward reference", ErrDecode, off, it.off)
			}
			child, err := DecodeNode(r, off, size)
			if err != nil {
				return nil, err
			}
			it.n.edges[i].Node = child
			stack = append(stack, item{child, off})
		}
	}

	return &Tree{root: root}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The returned bytes are
// the index encoding with the root record at offset 0.
func (t *Tree) MarshalBinary() ([]byte, error) {
	var w sliceWriter
	if _, err := t.Encode(&w); err != nil {
		return nil, err
	}
	return w.b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces the
// tree with the one decoded from data.
func (t *Tree) UnmarshalBinary(data []byte) error {
	dt, err := Decode(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}
	t.root = dt.root
	return nil
}

// sliceWriter is an in-memory io.WriterAt that grows as needed. It backs
// MarshalBinary.
type sliceWriter struct {
	b []byte
}

func (w *sliceWriter) WriteAt(p []byte, off int64) (int, error) {
	if need := off + int64(len(p)); need > int64(len(w.b)) {
		w.b = append(w.b, make([]byte, need-int64(len(w.b)))...)
	}
	copy(w.b[off:], p)
	return len(p), nil
}
