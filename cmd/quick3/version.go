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
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-quick3/quick3/contrib/bench"
)

// version is overridden at build time with
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func newVersionCmd() *subCommand {
	sc := newSubCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the quick3 version and host details",
		Args:  cobra.NoArgs,
	}, "QUICK3_VERSION")
	sc.Cmd.Run = func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quick3 %s %s\n%s\n", version, runtime.Version(), bench.Host())
	}
	return sc
}
