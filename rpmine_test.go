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

package rpmine

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/rpmine/types"
)

// the sample database from the RP-growth paper
func paperTDB() map[int64][]interface{} {
	return map[int64][]interface{}{
		1:  {"a", "b", "g"},
		2:  {"a", "c", "d"},
		3:  {"a", "b", "e", "f"},
		4:  {"a", "b", "c", "d"},
		5:  {"c", "d", "e", "f", "g"},
		6:  {"e", "f", "g"},
		7:  {"a", "b", "c", "g"},
		9:  {"c", "d"},
		10: {"c", "d", "e", "f"},
		11: {"a", "b", "e", "f"},
		12: {"a", "b", "c", "d", "e", "f", "g"},
		14: {"a", "b", "g"},
	}
}

func keysOf(patterns []types.Pattern) []string {
	keys := make([]string, 0, len(patterns))
	for _, p := range patterns {
		keys = append(keys, p.Key())
	}
	sort.Strings(keys)
	return keys
}

func itemsKey(items []interface{}) string {
	return types.Pattern{Items: items}.Key()
}

func TestPaperExample(t *testing.T) {
	finder, err := New(paperTDB(), 2, 3, 2)
	require.NoError(t, err)

	patterns, err := finder.FindRecurringPatterns()
	require.NoError(t, err)

	want := []string{
		itemsKey([]interface{}{"a"}),
		itemsKey([]interface{}{"b"}),
		itemsKey([]interface{}{"d"}),
		itemsKey([]interface{}{"e"}),
		itemsKey([]interface{}{"f"}),
		itemsKey([]interface{}{"a", "b"}),
		itemsKey([]interface{}{"c", "d"}),
		itemsKey([]interface{}{"e", "f"}),
	}
	sort.Strings(want)
	assert.Equal(t, want, keysOf(patterns))

	// {a,b,g} occurs at 1, 7, 12, 14: no run ever reaches support 3
	assert.NotContains(t, keysOf(patterns), itemsKey([]interface{}{"a", "b", "g"}))
}

func TestSingleItemPeriodic(t *testing.T) {
	tdb := map[int64][]interface{}{
		1: {"a"},
		2: {"a"},
		3: {"a"},
	}
	finder, err := New(tdb, 1, 1, 1)
	require.NoError(t, err)

	patterns, err := finder.FindRecurringPatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, []interface{}{"a"}, patterns[0].Items)
	assert.Equal(t, 1, patterns[0].Recurrence)
	assert.Equal(t, 3, patterns[0].Support)
}

func TestMinRecBoundary(t *testing.T) {
	// exactly 2 runs of exactly support 2
	tdb := map[int64][]interface{}{
		1: {"a"}, 2: {"a"},
		5: {"a"}, 6: {"a"},
	}

	finder, err := New(tdb, 1, 2, 2)
	require.NoError(t, err)
	patterns, err := finder.FindRecurringPatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 1, "pattern at exactly minRec/minPS must be included")

	finder, err = New(tdb, 1, 2, 3)
	require.NoError(t, err)
	patterns, err = finder.FindRecurringPatterns()
	require.NoError(t, err)
	assert.Empty(t, patterns, "one recurrence short of minRec must be excluded")
}

func TestEmptyDatabase(t *testing.T) {
	finder, err := New(map[int64][]interface{}{}, 1, 1, 1)
	require.NoError(t, err)
	patterns, err := finder.FindRecurringPatterns()
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestOnlyEmptyTransactions(t *testing.T) {
	finder, err := New(map[int64][]interface{}{1: {}, 2: {}}, 1, 1, 1)
	require.NoError(t, err)
	patterns, err := finder.FindRecurringPatterns()
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestDeterminism(t *testing.T) {
	finder, err := New(paperTDB(), 2, 3, 2)
	require.NoError(t, err)

	first, err := finder.FindRecurringPatterns()
	require.NoError(t, err)
	second, err := finder.FindRecurringPatterns()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParallelMatchesSerial(t *testing.T) {
	serial, err := New(paperTDB(), 2, 3, 2)
	require.NoError(t, err)
	parallel, err := New(paperTDB(), 2, 3, 2, WithWorkers(4))
	require.NoError(t, err)

	sp, err := serial.FindRecurringPatterns()
	require.NoError(t, err)
	pp, err := parallel.FindRecurringPatterns()
	require.NoError(t, err)
	assert.Equal(t, sp, pp)
}

func TestContextCancellation(t *testing.T) {
	finder, err := New(paperTDB(), 2, 3, 2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = finder.FindRecurringPatternsContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConditionFiltersTransactions(t *testing.T) {
	tdb := map[int64][]interface{}{
		1: {"a"}, 2: {"a"}, 3: {"a"},
		4: {"b"},
	}
	finder, err := New(tdb, 1, 3, 1, WithCondition(`"a" in items`))
	require.NoError(t, err)

	patterns, err := finder.FindRecurringPatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, []interface{}{"a"}, patterns[0].Items)
}

func TestBoundaryGapsOption(t *testing.T) {
	// b spans the whole domain, a clusters in the middle
	tdb := map[int64][]interface{}{
		1: {"b"}, 2: {"b"}, 3: {"b"}, 4: {"b"},
		5: {"a", "b"}, 6: {"a", "b"},
		7: {"b"}, 8: {"b"}, 9: {"b"}, 10: {"b"},
	}

	loose, err := New(tdb, 1, 2, 1)
	require.NoError(t, err)
	patterns, err := loose.FindRecurringPatterns()
	require.NoError(t, err)
	assert.Contains(t, keysOf(patterns), itemsKey([]interface{}{"a"}))

	strict, err := New(tdb, 1, 2, 1, WithBoundaryGaps())
	require.NoError(t, err)
	patterns, err = strict.FindRecurringPatterns()
	require.NoError(t, err)
	assert.NotContains(t, keysOf(patterns), itemsKey([]interface{}{"a"}),
		"a's only run sits far from both domain edges")
	assert.Contains(t, keysOf(patterns), itemsKey([]interface{}{"b"}))
}

func TestNewFromAny(t *testing.T) {
	raw := map[interface{}]interface{}{
		"1": []string{"a"},
		"2": []string{"a"},
		"3": []string{"a"},
	}
	finder, err := NewFromAny(raw, 1, 1, 1)
	require.NoError(t, err)

	patterns, err := finder.FindRecurringPatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, []interface{}{"a"}, patterns[0].Items)
}

// oracleQualifying is an independent straight-line reimplementation of the
// recurrence definition, kept deliberately separate from the production
// evaluator so the comparison below is not tautological.
func oracleQualifying(ts []int64, per int64, minPS int) int {
	if len(ts) == 0 {
		return 0
	}
	qualifying := 0
	runLen := 1
	for i := 1; i < len(ts); i++ {
		if ts[i]-ts[i-1] > per {
			if runLen >= minPS {
				qualifying++
			}
			runLen = 0
		}
		runLen++
	}
	if runLen >= minPS {
		qualifying++
	}
	return qualifying
}

// bruteForce enumerates every non-empty itemset and checks it directly
// against the transaction database.
func bruteForce(tdb map[int64][]interface{}, per int64, minPS, minRec int) []string {
	itemSet := make(map[interface{}]struct{})
	for _, items := range tdb {
		for _, it := range items {
			itemSet[it] = struct{}{}
		}
	}
	var items []interface{}
	for it := range itemSet {
		items = append(items, it)
	}
	types.SortItems(items)

	timestamps := make([]int64, 0, len(tdb))
	for ts := range tdb {
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	result := make([]string, 0)
	for mask := 1; mask < 1<<len(items); mask++ {
		var subset []interface{}
		for i, it := range items {
			if mask&(1<<i) != 0 {
				subset = append(subset, it)
			}
		}

		var occ []int64
		for _, ts := range timestamps {
			present := make(map[interface{}]struct{}, len(tdb[ts]))
			for _, it := range tdb[ts] {
				present[it] = struct{}{}
			}
			all := true
			for _, it := range subset {
				if _, ok := present[it]; !ok {
					all = false
					break
				}
			}
			if all {
				occ = append(occ, ts)
			}
		}

		if oracleQualifying(occ, per, minPS) >= minRec {
			result = append(result, itemsKey(subset))
		}
	}
	sort.Strings(result)
	return result
}

func TestAgainstBruteForceOracle(t *testing.T) {
	t.Run("paper database", func(t *testing.T) {
		finder, err := New(paperTDB(), 2, 3, 2)
		require.NoError(t, err)
		patterns, err := finder.FindRecurringPatterns()
		require.NoError(t, err)
		assert.Equal(t, bruteForce(paperTDB(), 2, 3, 2), keysOf(patterns))
	})

	// randomized small databases across several threshold combinations
	rng := rand.New(rand.NewSource(42))
	paramSets := []types.Params{
		{Per: 1, MinPS: 1, MinRec: 1},
		{Per: 2, MinPS: 2, MinRec: 2},
		{Per: 3, MinPS: 2, MinRec: 1},
		{Per: 1, MinPS: 3, MinRec: 2},
	}
	alphabet := []string{"a", "b", "c", "d", "e", "f"}

	for trial := 0; trial < 10; trial++ {
		tdb := make(map[int64][]interface{})
		for ts := int64(1); ts <= 25; ts++ {
			if rng.Float64() < 0.2 {
				continue
			}
			var items []interface{}
			for _, it := range alphabet {
				if rng.Float64() < 0.4 {
					items = append(items, it)
				}
			}
			if len(items) > 0 {
				tdb[ts] = items
			}
		}

		p := paramSets[trial%len(paramSets)]
		finder, err := New(tdb, p.Per, p.MinPS, p.MinRec)
		require.NoError(t, err)
		patterns, err := finder.FindRecurringPatterns()
		require.NoError(t, err)

		assert.Equal(t, bruteForce(tdb, p.Per, p.MinPS, p.MinRec), keysOf(patterns),
			"trial %d with params %+v", trial, p)
	}
}
