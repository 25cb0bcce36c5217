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

// Package trie implements the suffix trie index structure and its binary
// encoding.
//
// The trie indexes every suffix of a single text with one node per text byte
// consumed: the path from the root to a node spells a substring of the text,
// and the node's spans record every occurrence of that substring as inclusive
// (start, end) byte indexes. The structure is a naive suffix trie with no
// edge compression and no suffix links, so construction time and storage are
// quadratic in the text length and every transition consumes exactly one
// byte. Texts are indexed byte-wise; a multi-byte UTF-8 character becomes one
// transition per byte.
//
// Each node is encoded as a single record with fixed-width big-endian fields:
//  1. The span count: a 32 bit integer.
//  2. The child count: a 32 bit integer.
//  3. The span table: two 32 bit integers (start, end) per span.
//  4. The child table: one label byte and a 32 bit absolute file offset per
//     child.
//
// The root record begins at offset 0 and child offsets always point forward
// in the file. A tree can be decoded whole with Decode, one record at a time
// with DecodeNode, or sequentially with Scanner. DecodeNode backs searches
// that walk an index directly on storage without ever materializing the full
// structure.
package trie
