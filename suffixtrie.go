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

package suffixtrie

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-suffixtrie/trie"
)

// ErrNoIndex indicates that no index file was found.
var ErrNoIndex = errors.New("no index found")

// CreateOptions are options for Create.
type CreateOptions struct {
	// Folder returns a [transform.Transformer] that folds the text before
	// it is indexed (e.g. case folding or whitespace removal). Lookups only
	// match the folded text, so patterns must be folded the same way.
	Folder func() transform.Transformer
}

// DefaultCreateOptions are the options used by Create when none are given.
var DefaultCreateOptions = &CreateOptions{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
}

// Create builds the suffix trie index for the text read from r and writes
// it to an index file at path. Index files whose path ends in .dz are
// compressed with dictzip. An existing file at path is replaced.
//
// Building is quadratic in the text length in both time and memory; see
// [trie.Build].
func Create(path string, r io.Reader, opts *CreateOptions) error {
	folder := DefaultCreateOptions.Folder
	if opts != nil && opts.Folder != nil {
		folder = opts.Folder
	}

	text, err := io.ReadAll(transform.NewReader(r, folder()))
	if err != nil {
		return fmt.Errorf("reading text: %w", err)
	}

	tree := trie.Build(text)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %q: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".dz") {
		err = encodeDictZip(f, tree)
	} else {
		_, err = tree.Encode(f)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("error writing %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	return nil
}

// encodeDictZip writes the tree to f as dictzip compressed data. The
// dictzip writer is sequential so the index is staged in memory rather than
// written through the encoder's random access writes.
func encodeDictZip(f *os.File, tree *trie.Tree) error {
	data, err := tree.MarshalBinary()
	if err != nil {
		return err
	}

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return err
	}
	if _, err := z.Write(data); err != nil {
		return err
	}
	return z.Close()
}

// Index is an open suffix trie index file.
//
// An Index is not safe for concurrent use.
type Index struct {
	f    *os.File
	z    *dictzip.Reader
	r    io.ReaderAt
	root *trie.Node
	tree *trie.Tree

	path string

	// size is the size of the encoded index data, or -1 when it is not
	// known up front (compressed indexes).
	size int64

	// fileSize is the on-disk size of the index file.
	fileSize int64
}

// OpenAll opens all indexes under a directory. This function will return
// all successfully opened indexes along with any errors that occurred.
func OpenAll(path string) ([]*Index, []error) {
	var indexes []*Index
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		name := strings.ToLower(info.Name())
		if strings.HasSuffix(name, ".stx") || strings.HasSuffix(name, ".stx.dz") {
			index, err := Open(path)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			indexes = append(indexes, index)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return indexes, errs
}

// Open opens the index file at the given path. If no file exists at path it
// is treated as a base path and the known index extensions are tried
// against it.
func Open(path string) (*Index, error) {
	idxPath, err := findIndexPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(idxPath)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", idxPath, err)
	}

	index := &Index{
		f:    f,
		r:    f,
		path: idxPath,
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error reading %q: %w", idxPath, err)
	}
	index.size = fi.Size()
	index.fileSize = fi.Size()

	if strings.EqualFold(filepath.Ext(idxPath), ".dz") {
		z, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("error opening %q: %w", idxPath, err)
		}
		index.z = z
		index.r = z
		// The decompressed size is not known until the data is read.
		index.size = -1
	}

	// Read the root record eagerly. This validates that the file holds an
	// index before the first search.
	root, err := trie.DecodeNode(index.r, 0, index.size)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error reading %q: %w", idxPath, err)
	}
	index.root = root

	return index, nil
}

// findIndexPath resolves the index file for path. An existing file at path
// wins; otherwise the known index extensions are appended, which also
// resolves the compressed variant of an uncompressed path.
func findIndexPath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	exts := []string{".stx", ".stx.dz", ".dz", ".STX", ".STX.dz", ".STX.DZ", ".DZ"}
	for _, ext := range exts {
		idxPath := path + ext
		if _, err := os.Stat(idxPath); err == nil {
			return idxPath, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNoIndex, path)
}

// Search returns every occurrence of pattern recorded in the index. The
// lookup walks node records directly on storage reading one record per
// pattern byte, so single lookups stay cheap even for large indexes. If the
// tree has already been materialized with Tree then the in-memory copy is
// searched instead.
//
// A pattern that is not in the index yields a nil result and no error.
func (ix *Index) Search(pattern string) ([]trie.Span, error) {
	if ix.tree != nil {
		return ix.tree.Search(pattern), nil
	}

	n := ix.root
	for i := 0; i < len(pattern); i++ {
		e, ok := n.Child(pattern[i])
		if !ok {
			return nil, nil
		}
		var err error
		n, err = trie.DecodeNode(ix.r, int64(e.Offset), ix.size)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", ix.path, err)
		}
	}
	return n.Spans(), nil
}

// Tree decodes the whole index into memory. The tree is decoded once and
// cached; subsequent calls and searches reuse it. Prefer Tree when making
// many lookups against the same index.
func (ix *Index) Tree() (*trie.Tree, error) {
	if ix.tree != nil {
		return ix.tree, nil
	}

	tree, err := trie.Decode(ix.r, ix.size)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", ix.path, err)
	}
	ix.tree = tree
	return ix.tree, nil
}

// Text reconstructs the indexed text. The text is recovered from the index
// itself; no copy of it is stored.
func (ix *Index) Text() ([]byte, error) {
	tree, err := ix.Tree()
	if err != nil {
		return nil, err
	}
	return tree.Text(), nil
}

// Stats returns size statistics for the index. If the tree has not been
// materialized the statistics are computed in one sequential scan of the
// node records without decoding the whole tree.
func (ix *Index) Stats() (trie.Stats, error) {
	if ix.tree != nil {
		return ix.tree.Stats(), nil
	}

	size := ix.size
	if size < 0 {
		size = math.MaxInt64
	}

	var st trie.Stats
	s := trie.NewScanner(io.NewSectionReader(ix.r, 0, size))
	for s.Scan() {
		n := s.Node()
		spans := n.Spans()

		st.Nodes++
		st.Spans += len(spans)

		// A span's length is the depth of the node holding it.
		for _, sp := range spans {
			if l := sp.Len(); l > st.Depth {
				st.Depth = l
			}
		}
	}
	if err := s.Err(); err != nil {
		return trie.Stats{}, fmt.Errorf("error reading %q: %w", ix.path, err)
	}
	return st, nil
}

// Path returns the path of the open index file.
func (ix *Index) Path() string {
	return ix.path
}

// Size returns the on-disk size of the index file in bytes. For compressed
// indexes this is the compressed size.
func (ix *Index) Size() int64 {
	return ix.fileSize
}

// Close closes the index and its underlying file.
func (ix *Index) Close() error {
	if ix.z != nil {
		if err := ix.z.Close(); err != nil {
			return fmt.Errorf("closing index file: %w", err)
		}
	}
	if err := ix.f.Close(); err != nil {
		return fmt.Errorf("closing index file: %w", err)
	}
	return nil
}
