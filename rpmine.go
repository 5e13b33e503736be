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
	"fmt"

	"github.com/rulego/rpmine/collector"
	"github.com/rulego/rpmine/condition"
	"github.com/rulego/rpmine/logger"
	"github.com/rulego/rpmine/miner"
	"github.com/rulego/rpmine/recurrence"
	"github.com/rulego/rpmine/rptree"
	"github.com/rulego/rpmine/tdb"
	"github.com/rulego/rpmine/types"
)

// PatternFinder mines recurring patterns from one fixed transaction
// database. The database is normalized and indexed at construction time;
// every call to FindRecurringPatterns runs a fresh mine over it.
type PatternFinder struct {
	params   types.Params
	workers  int
	boundary bool
	condExpr string
	cond     condition.Condition

	txs []types.Transaction
	idx *tdb.Index
}

// New creates a PatternFinder for the given transaction database and
// thresholds.
//
// Parameters:
//   - raw: mapping from timestamp to the items observed at that timestamp
//   - per: maximum gap between consecutive occurrences of one recurrence
//   - minPS: minimum occurrence count for a recurrence to qualify
//   - minRec: minimum number of qualifying recurrences for a pattern
//
// Returns *types.InvalidParameterError when a threshold is non-positive and
// *types.InvalidInputError when the database is malformed. No partial
// results exist: either construction and mining both succeed, or mining
// never starts.
//
// Example:
//
//	finder, err := rpmine.New(tdb, 2, 3, 2, rpmine.WithWorkers(4))
func New(raw map[int64][]interface{}, per int64, minPS, minRec int, opts ...Option) (*PatternFinder, error) {
	f, err := newFinder(per, minPS, minRec, opts)
	if err != nil {
		return nil, err
	}
	txs, err := tdb.Normalize(raw, f.cond)
	if err != nil {
		return nil, err
	}
	f.txs = txs
	f.idx = tdb.BuildIndex(txs)
	return f, nil
}

// NewFromAny is like New but accepts a loosely typed database, coercing
// timestamps and item collections first. Useful when the input comes from
// decoded JSON or similar dynamic sources.
func NewFromAny(raw map[interface{}]interface{}, per int64, minPS, minRec int, opts ...Option) (*PatternFinder, error) {
	f, err := newFinder(per, minPS, minRec, opts)
	if err != nil {
		return nil, err
	}
	txs, err := tdb.NormalizeAny(raw, f.cond)
	if err != nil {
		return nil, err
	}
	f.txs = txs
	f.idx = tdb.BuildIndex(txs)
	return f, nil
}

func newFinder(per int64, minPS, minRec int, opts []Option) (*PatternFinder, error) {
	f := &PatternFinder{
		params: types.Params{Per: per, MinPS: minPS, MinRec: minRec},
	}
	if err := f.params.Validate(); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.condExpr != "" {
		cond, err := condition.New(f.condExpr)
		if err != nil {
			return nil, fmt.Errorf("compile filter condition: %w", err)
		}
		f.cond = cond
	}
	return f, nil
}

// FindRecurringPatterns mines the database and returns every pattern with
// at least minRec qualifying recurrences, sorted by canonical itemset key.
// Two runs over the same finder return identical results.
func (f *PatternFinder) FindRecurringPatterns() ([]types.Pattern, error) {
	return f.FindRecurringPatternsContext(context.Background())
}

// FindRecurringPatternsContext is FindRecurringPatterns with caller-imposed
// cancellation, checked before each top-level mining branch starts.
func (f *PatternFinder) FindRecurringPatternsContext(ctx context.Context) ([]types.Pattern, error) {
	tree := rptree.Build(f.txs, f.idx, f.params)
	logger.Debug("root tree: %d feasible items over %d transactions", len(tree.HeaderItems()), len(f.txs))

	col := collector.New()
	cfg := miner.Config{
		Params: f.params,
		Domain: recurrence.Domain{
			First:        f.idx.First,
			Last:         f.idx.Last,
			BoundaryGaps: f.boundary,
		},
		Workers: f.workers,
	}
	if err := miner.Run(ctx, tree, cfg, col); err != nil {
		return nil, err
	}

	patterns := col.Patterns()
	logger.Info("mined %d recurring patterns (per=%d minPS=%d minRec=%d)",
		len(patterns), f.params.Per, f.params.MinPS, f.params.MinRec)
	return patterns, nil
}

// Transactions exposes the normalized transaction sequence, mainly for
// inspection and tests.
func (f *PatternFinder) Transactions() []types.Transaction {
	return f.txs
}

// Params returns the mining thresholds the finder was built with.
func (f *PatternFinder) Params() types.Params {
	return f.params
}
