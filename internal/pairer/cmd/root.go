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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/pairer/pkg/common"
	"laptudirm.com/x/pairer/pkg/store"
)

func Root(config common.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "pairer",
		Short: "Pair chess tournaments",
		Long: heredoc.Doc(`pairer manages chess tournaments: it keeps the players,
			pairs every round with the tournament's pairing system, and
			records the results.

			Tournaments are saved in the directory given by PAIRER_HOME,
			which defaults to a pairer directory in your data directory.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Pairer's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(New(config))
	root.AddCommand(Add(config))
	root.AddCommand(Generate(config))
	root.AddCommand(Withdraw(config))
	root.AddCommand(Pair(config))
	root.AddCommand(Result(config))
	root.AddCommand(Show(config))
	root.AddCommand(List(config))
	root.AddCommand(Remove(config))
	root.AddCommand(Simulate())

	return root
}

func openStore(config common.Config) (*store.Store, error) {
	return store.New(config.TournamentDirectory())
}
