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

// Package collector accumulates discovered patterns with set semantics.
// Add is idempotent on the canonical itemset key and safe for concurrent
// use, so parallel mining branches can share one collector.
package collector

import (
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set"

	"github.com/rulego/rpmine/types"
)

// Collector is the only state that survives a whole mining run.
type Collector struct {
	keys     mapset.Set
	mu       sync.RWMutex
	patterns map[string]types.Pattern
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{
		keys:     mapset.NewSet(),
		patterns: make(map[string]types.Pattern),
	}
}

// Add records a pattern unless its itemset was already collected. The item
// slice is copied and canonically sorted, so callers may keep mutating
// their growth buffers.
func (c *Collector) Add(p types.Pattern) {
	items := make([]interface{}, len(p.Items))
	copy(items, p.Items)
	types.SortItems(items)
	p.Items = items

	key := p.Key()
	if !c.keys.Add(key) {
		return
	}
	c.mu.Lock()
	c.patterns[key] = p
	c.mu.Unlock()
}

// Len returns the number of distinct patterns collected so far.
func (c *Collector) Len() int {
	return c.keys.Cardinality()
}

// Contains reports whether the itemset of the given pattern was collected.
func (c *Collector) Contains(p types.Pattern) bool {
	return c.keys.Contains(p.Key())
}

// Patterns returns all collected patterns sorted by canonical key, so two
// identical runs produce identical slices.
func (c *Collector) Patterns() []types.Pattern {
	c.mu.RLock()
	out := make([]types.Pattern, 0, len(c.patterns))
	for _, p := range c.patterns {
		out = append(out, p)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}
