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

// Package suffixtrie implements building, storing, and searching suffix trie
// substring indexes in pure Go.
//
// A suffix trie index records every occurrence of every substring of a
// single text. An index file (.stx) holds one node record per distinct
// substring:
//  1. The number of occurrence spans as a 32 bit big-endian integer.
//  2. The number of children as a 32 bit big-endian integer.
//  3. The span table: inclusive (start, end) byte indexes into the text,
//     two 32 bit big-endian integers per span.
//  4. The child table: a transition byte and the 32 bit big-endian absolute
//     file offset of the child's record, per child.
//
// The root node's record starts at offset 0 and child offsets always point
// forward in the file. Index files can be compressed using the dictzip
// format (.stx.dz), which preserves random access.
//
// Searching never needs the original text. A pattern is looked up either by
// walking node records directly on storage, reading one record per pattern
// byte (Index.Search), or by decoding the whole index into memory first
// (Index.Tree) when many lookups will be made against the same index.
package suffixtrie
