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

// Command quick3 sorts numbers with a three-way partitioning quicksort and
// can draw every partition step as it happens.
//
// Usage:
//
//	quick3 sort [file]                 # sort whitespace-separated numbers
//	quick3 sort --trace=bars < data    # draw each partition step
//	quick3 demo 5 40                   # 40 random values with 5 distinct keys
//	quick3 bench --n 100000 --dist reversed --pivot median3
//
// Every flag can also be set through a --config file or through an
// environment variable such as QUICK3_SORT_PIVOT or QUICK3_BENCH_TRIALS.
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/golang/glog"
)

func main() {
	// CLI users expect logs on stderr, not in files under $TMPDIR.
	if err := goflag.Set("logtostderr", "true"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:])
	stop()
	glog.Flush()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
