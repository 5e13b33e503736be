/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tdb

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a whitespace-separated transaction file in the common itemset
// benchmark format (e.g. T10I4D100K.dat): one transaction per line, items
// separated by spaces, the 1-based line number serving as the timestamp.
// Blank lines keep their line number so the timestamp scale stays linear.
func Load(path string) (map[int64][]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transaction file: %w", err)
	}
	defer f.Close()

	return Read(bufio.NewScanner(f))
}

// Read consumes transactions line by line from the given scanner. Split out
// of Load so callers can feed any source, not just files.
func Read(scanner *bufio.Scanner) (map[int64][]interface{}, error) {
	raw := make(map[int64][]interface{})
	var line int64

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		items := make([]interface{}, 0, len(fields))
		for _, f := range fields {
			items = append(items, f)
		}
		raw[line] = items
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transaction file: %w", err)
	}
	return raw, nil
}
