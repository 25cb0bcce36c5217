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
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-suffixtrie"
	"github.com/ianlewis/go-suffixtrie/internal/folding"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "Build an index from a text file",
	ArgsUsage: "TEXTFILE INDEX",
	Description: strings.Join([]string{
		"Build a suffix trie index for the contents of TEXTFILE and write it",
		"to INDEX. The index records every occurrence of every substring of",
		"the text. An INDEX path ending in .dz is written dictzip compressed.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strip-whitespace",
			Usage: "remove whitespace before indexing",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "upper",
			Usage: "fold the text to upper case before indexing",
		},
		&cli.BoolFlag{
			Name:  "html",
			Usage: "convert HTML input to plain text before indexing",
		},
		&cli.StringFlag{
			Name:  "dot",
			Usage: "also write a Graphviz DOT rendering to `FILE`",
		},
	},
	Action: func(c *cli.Context) error {
		args := c.Args()
		if args.Len() != 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		textPath := args.Get(0)
		indexPath := args.Get(1)

		b, err := os.ReadFile(textPath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", textPath, err)
		}

		if c.Bool("html") {
			b = []byte(html2text.HTML2Text(string(b)))
		}

		var folders []transform.Transformer
		if c.Bool("strip-whitespace") {
			folders = append(folders, &folding.StripFolder{})
		}
		if c.Bool("upper") {
			folders = append(folders, &folding.UpperFolder{})
		}

		opts := suffixtrie.DefaultCreateOptions
		if len(folders) > 0 {
			opts = &suffixtrie.CreateOptions{
				Folder: func() transform.Transformer {
					return transform.Chain(folders...)
				},
			}
		}

		if err := suffixtrie.Create(indexPath, bytes.NewReader(b), opts); err != nil {
			return fmt.Errorf("creating %q: %w", indexPath, err)
		}

		if dotPath := c.String("dot"); dotPath != "" {
			return writeDotFile(indexPath, dotPath)
		}

		return nil
	},
}
