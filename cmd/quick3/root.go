// Copyright 2025 go-quick3 Authors
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
	goflag "flag"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// subCommand pairs a cobra command with its own viper instance so that
// flags, environment variables and config files resolve per command.
type subCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

func newSubCommand(cmd *cobra.Command, envPrefix string) *subCommand {
	return &subCommand{Cmd: cmd, Conf: viper.New(), EnvPrefix: envPrefix}
}

// bindFlags makes every flag in sets readable through conf. It panics on
// error, which only happens for a programming mistake in flag setup.
func bindFlags(conf *viper.Viper, sets ...*flag.FlagSet) {
	for _, set := range sets {
		if err := conf.BindPFlags(set); err != nil {
			panic(err)
		}
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quick3",
		Short: "Three-way partitioning quicksort with partition tracing",
		Long: `
quick3 sorts numbers with Dijkstra's three-way (Dutch National Flag)
partitioning quicksort. Elements equal to the pivot are grouped in a single
pass and never revisited, so inputs with many duplicate keys sort in close
to linear time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden by environment variables and flags.")
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	rootConf := viper.New()
	bindFlags(rootConf, root.PersistentFlags())

	subcommands := []*subCommand{
		newSortCmd(), newDemoCmd(), newBenchCmd(), newVersionCmd(),
	}
	for _, sc := range subcommands {
		root.AddCommand(sc.Cmd)
		bindFlags(sc.Conf, sc.Cmd.Flags())
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
		sc.Conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		sc.Conf.AutomaticEnv()
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return nil
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				return errors.Wrapf(err, "reading config %s", cfg)
			}
		}
		return nil
	}
	return root
}
