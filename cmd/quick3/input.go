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
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// readValues reads whitespace-separated numbers until EOF.
func readValues(r io.Reader) ([]float64, error) {
	var values []float64
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := cast.ToFloat64E(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "token %d %q is not a number", len(values)+1, sc.Text())
		}
		values = append(values, v)
	}
	return values, errors.Wrap(sc.Err(), "reading input")
}
