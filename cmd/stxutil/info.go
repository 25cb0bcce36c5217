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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-suffixtrie"
)

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "Print index statistics",
	ArgsUsage: "INDEX",
	Action: func(c *cli.Context) error {
		args := c.Args()
		if args.Len() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		ix, err := suffixtrie.Open(args.Get(0))
		if err != nil {
			return fmt.Errorf("opening %q: %w", args.Get(0), err)
		}
		defer ix.Close()

		st, err := ix.Stats()
		if err != nil {
			return fmt.Errorf("reading %q: %w", ix.Path(), err)
		}

		fmt.Fprintf(c.App.Writer, "Path:       %s\n", ix.Path())
		fmt.Fprintf(c.App.Writer, "File Size:  %d\n", ix.Size())
		fmt.Fprintf(c.App.Writer, "Nodes:      %d\n", st.Nodes)
		fmt.Fprintf(c.App.Writer, "Spans:      %d\n", st.Spans)
		fmt.Fprintf(c.App.Writer, "Depth:      %d\n", st.Depth)

		return nil
	},
}
