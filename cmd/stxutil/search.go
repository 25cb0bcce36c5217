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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-suffixtrie"
	"github.com/ianlewis/go-suffixtrie/internal/folding"
)

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "Search an index for a pattern",
	ArgsUsage: "INDEX PATTERN",
	Description: strings.Join([]string{
		"Search the index at INDEX for every occurrence of PATTERN. Each",
		"occurrence is printed as an inclusive start and end offset into the",
		"indexed text. Occurrences are read record by record from the index",
		"file unless --in-memory is given.",
	}, "\n"),
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "in-memory",
			Usage: "decode the whole index and search it in memory",
		},
		&cli.BoolFlag{
			Name:  "upper",
			Usage: "fold the pattern to upper case",
		},
	},
	Action: func(c *cli.Context) error {
		args := c.Args()
		if args.Len() != 2 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		ix, err := suffixtrie.Open(args.Get(0))
		if err != nil {
			return fmt.Errorf("opening %q: %w", args.Get(0), err)
		}
		defer ix.Close()

		pattern := args.Get(1)
		if c.Bool("upper") {
			pattern, _, err = transform.String(&folding.UpperFolder{}, pattern)
			if err != nil {
				return fmt.Errorf("folding pattern: %w", err)
			}
		}

		if c.Bool("in-memory") {
			if _, err := ix.Tree(); err != nil {
				return fmt.Errorf("reading %q: %w", ix.Path(), err)
			}
		}

		spans, err := ix.Search(pattern)
		if err != nil {
			return fmt.Errorf("searching %q: %w", ix.Path(), err)
		}
		if len(spans) == 0 {
			fmt.Fprintf(c.App.Writer, "no occurrences of %q\n", pattern)
			return nil
		}

		tbl := table.New("START", "END", "MATCH").WithWriter(c.App.Writer)
		for _, s := range spans {
			tbl.AddRow(s.Start, s.End, pattern)
		}
		tbl.Print()

		return nil
	},
}
