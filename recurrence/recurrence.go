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

// Package recurrence evaluates occurrence-timestamp sequences against the
// periodicity thresholds. A recurrence is a maximal run of occurrences whose
// consecutive gaps never exceed per; it qualifies when it holds at least
// minPS occurrences. All functions are pure.
package recurrence

import (
	"github.com/rulego/rpmine/types"
)

// Result summarizes one evaluation.
type Result struct {
	// Qualifying is the number of recurrences with support >= minPS.
	Qualifying int
	// MaxSupport is the largest support among qualifying recurrences,
	// zero when none qualify.
	MaxSupport int
	// Total is the overall occurrence count of the pattern.
	Total int
}

// Domain carries the first and last timestamp of the whole database, needed
// only for the optional boundary-gap rule.
type Domain struct {
	First int64
	Last  int64
	// BoundaryGaps enables the stricter qualification rule: the leading
	// run must start within per of First, the trailing run must end
	// within per of Last.
	BoundaryGaps bool
}

// Evaluate splits the ascending timestamp sequence into maximal runs and
// counts the qualifying ones. An empty sequence yields a zero Result; a
// single timestamp forms one run of support 1.
func Evaluate(ts []int64, p types.Params, d Domain) Result {
	res := Result{Total: len(ts)}
	if len(ts) == 0 {
		return res
	}

	runStart := ts[0]
	support := 1

	qualify := func(start, end int64, support int) {
		if support < p.MinPS {
			return
		}
		if d.BoundaryGaps {
			if start == ts[0] && start-d.First > p.Per {
				return
			}
			if end == ts[len(ts)-1] && d.Last-end > p.Per {
				return
			}
		}
		res.Qualifying++
		if support > res.MaxSupport {
			res.MaxSupport = support
		}
	}

	for i := 1; i < len(ts); i++ {
		if ts[i]-ts[i-1] <= p.Per {
			support++
			continue
		}
		qualify(runStart, ts[i-1], support)
		runStart = ts[i]
		support = 1
	}
	qualify(runStart, ts[len(ts)-1], support)

	return res
}

// Bound returns an upper bound on the number of qualifying recurrences any
// pattern whose occurrence list is a subsequence of ts can have: each
// maximal run of n occurrences contributes floor(n/minPS). Splitting a run
// never raises its floor sum, which makes the bound anti-monotonic and safe
// for pruning.
func Bound(ts []int64, p types.Params) int {
	if len(ts) == 0 {
		return 0
	}

	bound := 0
	support := 1
	for i := 1; i < len(ts); i++ {
		if ts[i]-ts[i-1] <= p.Per {
			support++
			continue
		}
		bound += support / p.MinPS
		support = 1
	}
	bound += support / p.MinPS

	return bound
}
