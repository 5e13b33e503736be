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

// Package types defines the shared data model of the rpmine engine:
// transactions, mining parameters, discovered patterns and error types.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Transaction is one entry of the transaction database: the set of items
// observed at a single timestamp. Items are opaque comparable values.
type Transaction struct {
	Timestamp int64
	Items     []interface{}
}

// Params holds the three user-supplied mining thresholds.
type Params struct {
	// Per is the maximum gap between consecutive occurrences that still
	// belong to the same recurrence.
	Per int64
	// MinPS is the minimum number of occurrences a recurrence must contain
	// to qualify (minimum periodic support).
	MinPS int
	// MinRec is the minimum number of qualifying recurrences a pattern must
	// have to be reported.
	MinRec int
}

// Validate checks that all thresholds are positive.
func (p Params) Validate() error {
	if p.Per < 1 {
		return &InvalidParameterError{Name: "per", Value: p.Per}
	}
	if p.MinPS < 1 {
		return &InvalidParameterError{Name: "minPS", Value: p.MinPS}
	}
	if p.MinRec < 1 {
		return &InvalidParameterError{Name: "minRec", Value: p.MinRec}
	}
	return nil
}

// Pattern is one discovered recurring pattern. Items carries the itemset in
// canonical (ItemKey) order. Recurrence is the number of qualifying
// recurrences and Support the size of the largest one.
type Pattern struct {
	Items      []interface{}
	Recurrence int
	Support    int
}

// Key returns the canonical identity of the itemset, independent of the
// order in which the items were collected.
func (p Pattern) Key() string {
	keys := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		keys = append(keys, ItemKey(it))
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x1f")
}

// String renders the pattern for logs and demos, e.g. {a b}(rec=2,ps=3).
func (p Pattern) String() string {
	parts := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		parts = append(parts, fmt.Sprintf("%v", it))
	}
	return fmt.Sprintf("{%s}(rec=%d,ps=%d)", strings.Join(parts, " "), p.Recurrence, p.Support)
}

// ItemKey maps an item value to a stable string identity. The type name is
// part of the key so that e.g. int(1) and string "1" stay distinct.
func ItemKey(item interface{}) string {
	if item == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T\x00%v", item, item)
}

// SortItems orders items by their canonical key, in place.
func SortItems(items []interface{}) {
	sort.Slice(items, func(i, j int) bool {
		return ItemKey(items[i]) < ItemKey(items[j])
	})
}
