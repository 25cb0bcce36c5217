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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Scanner reads the node records of an encoded index from start to end in
// offset order. It decodes one record at a time and never materializes the
// tree, so a scan needs memory for only a single record. The Scanner does
// not take ownership of the reader.
type Scanner struct {
	s *bufio.Scanner
}

// NewScanner returns a new scanner that reads node records from r. The
// first record scanned is the root record.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(bufio.NewReader(r)),
	}
	// A record holding many occurrence spans can be almost as large as the
	// index itself so the default token size limit is lifted.
	s.s.Buffer(nil, math.MaxInt)
	s.s.Split(s.splitRecord)
	return s
}

// Scan advances the scanner to the next node record. It returns false if
// the scan stops either by reaching the end of the index or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Node decodes the most recently scanned record. The node's children are
// left unresolved as in [DecodeNode].
func (s *Scanner) Node() *Node {
	b := s.s.Bytes()
	spanCount := int64(binary.BigEndian.Uint32(b[0:]))
	childCount := int64(binary.BigEndian.Uint32(b[4:]))

	n := &Node{}
	parseTables(n, b[headerLen:], spanCount, childCount)
	return n
}

// splitRecord splits one node record. The record's header holds its span
// and child counts which give the exact record length.
func (s *Scanner) splitRecord(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if len(data) >= headerLen {
		spanCount := int64(binary.BigEndian.Uint32(data[0:]))
		childCount := int64(binary.BigEndian.Uint32(data[4:]))
		size := headerLen + spanCount*spanEntryLen + childCount*childEntryLen
		if int64(len(data)) >= size {
			return int(size), data[:size], nil
		}
	}

	if atEOF {
		return 0, nil, fmt.Errorf("%w: truncated record at end of index", ErrDecode)
	}

	// Request more data.
	return 0, nil, nil
}
