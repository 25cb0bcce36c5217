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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-suffixtrie"
)

var dotCommand = &cli.Command{
	Name:        "dot",
	Usage:       "Render an index as a Graphviz DOT graph",
	ArgsUsage:   "INDEX",
	Description: "Decode the index and write its tree in Graphviz DOT format.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write output to `FILE` instead of stdout",
			Aliases: []string{"o"},
		},
	},
	Action: func(c *cli.Context) error {
		args := c.Args()
		if args.Len() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		if outPath := c.String("output"); outPath != "" {
			return writeDotFile(args.Get(0), outPath)
		}
		return writeDot(args.Get(0), c.App.Writer)
	},
}

// writeDot renders the index at indexPath as a DOT graph on w.
func writeDot(indexPath string, w io.Writer) error {
	ix, err := suffixtrie.Open(indexPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", indexPath, err)
	}
	defer ix.Close()

	tree, err := ix.Tree()
	if err != nil {
		return fmt.Errorf("reading %q: %w", indexPath, err)
	}

	if err := tree.WriteDot(w); err != nil {
		return fmt.Errorf("writing dot graph: %w", err)
	}

	return nil
}

// writeDotFile renders the index at indexPath as a DOT graph in a new file
// at outPath.
func writeDotFile(indexPath, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", outPath, err)
	}

	if err := writeDot(indexPath, f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", outPath, err)
	}

	return nil
}
