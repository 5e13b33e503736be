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

/*
Package rpmine discovers recurring patterns in a time-indexed transaction
database: itemsets that reappear in bursts whose internal gaps never exceed
a period threshold.

The input is a mapping from equally spaced timestamps to item collections.
A recurrence of a pattern is a maximal run of its occurrences with every
consecutive gap <= per; the run qualifies when it holds at least minPS
occurrences; a pattern is reported when at least minRec runs qualify. Mining
uses RP-growth: a timestamp-annotated prefix tree is projected recursively
into conditional trees, with an anti-monotonic bound pruning items that can
no longer reach minRec.

Basic usage:

	package main

	import (
		"fmt"

		"github.com/rulego/rpmine"
	)

	func main() {
		tdb := map[int64][]interface{}{
			1: {"a", "b"},
			2: {"a"},
			3: {"a", "b"},
			7: {"a", "b"},
			8: {"a", "b"},
			9: {"a"},
		}

		finder, err := rpmine.New(tdb, 1, 3, 2)
		if err != nil {
			panic(err)
		}
		patterns, err := finder.FindRecurringPatterns()
		if err != nil {
			panic(err)
		}
		for _, p := range patterns {
			fmt.Println(p)
		}
	}

Options configure filtering, parallelism and the boundary-gap rule:

	finder, err := rpmine.New(tdb, 2, 3, 2,
		rpmine.WithCondition(`timestamp > 0 && "g" in items`),
		rpmine.WithWorkers(4),
	)

The database is fully materialized before mining starts; there is no
streaming mode and no persistence of the mined tree.
*/
package rpmine
