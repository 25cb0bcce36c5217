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

var textCommand = &cli.Command{
	Name:        "text",
	Usage:       "Print the indexed text",
	ArgsUsage:   "INDEX",
	Description: "Reconstruct the indexed text from the index and print it.",
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

		text, err := ix.Text()
		if err != nil {
			return fmt.Errorf("reading %q: %w", ix.Path(), err)
		}

		fmt.Fprintln(c.App.Writer, string(text))

		return nil
	},
}
