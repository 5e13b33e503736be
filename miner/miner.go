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

// Package miner drives the recursive pattern growth over RP-trees. Each
// suffix item of a tree yields a candidate pattern, gated by the recurrence
// evaluator, and a conditional tree that grows the pattern further. The
// root tree is read-only during mining, so top-level branches are
// independent and can run on a worker pool.
package miner

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/rulego/rpmine/collector"
	"github.com/rulego/rpmine/logger"
	"github.com/rulego/rpmine/recurrence"
	"github.com/rulego/rpmine/rptree"
	"github.com/rulego/rpmine/types"
)

// Config bundles the run-wide mining inputs.
type Config struct {
	Params types.Params
	Domain recurrence.Domain
	// Workers > 1 mines top-level branches on a goroutine pool of that
	// size. Zero or one mines serially.
	Workers int
}

// Run mines the root tree into the collector. The context is consulted
// before each top-level branch starts; inside a branch mining is pure
// in-memory recursion with nothing to interrupt.
func Run(ctx context.Context, tree *rptree.Tree, cfg Config, col *collector.Collector) error {
	branches := tree.HeaderItems()
	logger.Debug("mining %d top-level branches", len(branches))

	if cfg.Workers <= 1 {
		for _, e := range branches {
			if err := ctx.Err(); err != nil {
				return err
			}
			mineBranch(tree, e, nil, cfg, col)
		}
		return nil
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return fmt.Errorf("create mining pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, e := range branches {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return err
		}
		e := e
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			mineBranch(tree, e, nil, cfg, col)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("submit mining branch: %w", err)
		}
	}
	wg.Wait()
	return nil
}

// mineBranch grows the suffix by one item: evaluate the extended pattern,
// emit it when enough recurrences qualify, then recurse into the
// conditional tree. The conditional tree is built even when the pattern
// itself misses minRec; only the anti-monotonic bound may cut a branch,
// the exact recurrence count may still rise again for a longer pattern.
func mineBranch(tree *rptree.Tree, e rptree.Entry, suffix []interface{}, cfg Config, col *collector.Collector) {
	ts := tree.PatternTimestamps(e.Key)
	res := recurrence.Evaluate(ts, cfg.Params, cfg.Domain)

	grown := make([]interface{}, len(suffix)+1)
	copy(grown, suffix)
	grown[len(suffix)] = e.Item

	if res.Qualifying >= cfg.Params.MinRec {
		col.Add(types.Pattern{Items: grown, Recurrence: res.Qualifying, Support: res.MaxSupport})
	}

	cond := tree.Conditional(e.Key, cfg.Params)
	if cond.Empty() {
		return
	}
	for _, next := range cond.HeaderItems() {
		mineBranch(cond, next, grown, cfg, col)
	}
}
