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
	"os"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-suffixtrie"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List indexes under a directory",
	ArgsUsage: "DIR",
	Action: func(c *cli.Context) error {
		args := c.Args()
		if args.Len() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		indexes, errs := suffixtrie.OpenAll(args.Get(0))
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		defer func() {
			for _, ix := range indexes {
				ix.Close()
			}
		}()

		tbl := table.New("PATH", "SIZE", "NODES", "SPANS", "DEPTH").WithWriter(c.App.Writer)
		for _, ix := range indexes {
			st, err := ix.Stats()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				errs = append(errs, err)
				continue
			}
			tbl.AddRow(ix.Path(), ix.Size(), st.Nodes, st.Spans, st.Depth)
		}
		tbl.Print()

		if len(errs) > 0 {
			return fmt.Errorf("%w: some indexes could not be read", ErrStxutil)
		}

		return nil
	},
}
