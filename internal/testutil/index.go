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

package testutil

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-suffixtrie/trie"
)

// MakeIndexOptions configures MakeTempIndex.
type MakeIndexOptions struct {
	// Ext is an optional file extension for the index file. Defaults to
	// ".stx.dz" if DictZip is true. Otherwise ".stx".
	Ext string

	// Dir is an optional directory to create the index file in. Defaults to
	// the system temporary directory.
	Dir string

	// DictZip indicates that the index file should be compressed with
	// dictzip.
	DictZip bool
}

func (o *MakeIndexOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".stx.dz"
		}
	}
	return ".stx"
}

func (o *MakeIndexOptions) GetDir() string {
	if o != nil {
		return o.Dir
	}
	return ""
}

// MakeNode encodes a single node record from its spans and child entries.
// Only the label and offset of each edge are encoded.
func MakeNode(spans []trie.Span, edges []trie.Edge) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint32(b[:4], uint32(len(spans)))
	binary.BigEndian.PutUint32(b[4:8], uint32(len(edges)))
	for _, s := range spans {
		b2 := make([]byte, 8)
		binary.BigEndian.PutUint32(b2[:4], s.Start)
		binary.BigEndian.PutUint32(b2[4:8], s.End)
		b = append(b, b2...)
	}
	for _, e := range edges {
		b2 := make([]byte, 5)
		b2[0] = e.Label
		binary.BigEndian.PutUint32(b2[1:5], e.Offset)
		b = append(b, b2...)
	}
	return b
}

// MakeIndex creates an encoded suffix trie index for text.
func MakeIndex(t *testing.T, text string) []byte {
	t.Helper()

	data, err := trie.Build([]byte(text)).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	return data
}

// MakeTempIndex creates a temporary index file for text and returns its
// path. The file is removed when the test completes.
func MakeTempIndex(t *testing.T, text string, opts *MakeIndexOptions) string {
	t.Helper()

	f, err := os.CreateTemp(opts.GetDir(), "suffixtrie.*"+opts.GetExt())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Remove(f.Name())
	})

	data := MakeIndex(t, text)

	if opts != nil && opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	} else {
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	return f.Name()
}
