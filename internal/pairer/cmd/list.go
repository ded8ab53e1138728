// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/pairer/pkg/common"
)

func List(config common.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the saved tournaments",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config)
			if err != nil {
				return err
			}

			names, err := store.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No tournaments saved.")
				return nil
			}

			for _, name := range names {
				tour, err := store.Load(name)
				if err != nil {
					fmt.Fprintf(out, "- %-20s (unreadable)\n", name)
					continue
				}

				status := "not started"
				if tour.HasStarted() {
					status = fmt.Sprintf("round %d", tour.CurrentRound())
				}

				fmt.Fprintf(out, "- %-20s %-12s %3d players, %s\n", name, tour.System(), tour.PlayerCount(), status)
			}

			return nil
		},
	}
}

func Remove(config common.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "remove tournament",
		Short: "Delete a saved tournament",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(config)
			if err != nil {
				return err
			}

			if err := store.Delete(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed tournament %s\n", args[0])
			return nil
		},
	}
}
