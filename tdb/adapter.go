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

// Package tdb turns caller-supplied transaction databases into the ordered,
// validated form the mining engine consumes, and builds the per-item
// occurrence index over it.
package tdb

import (
	"reflect"
	"sort"

	"github.com/spf13/cast"

	"github.com/rulego/rpmine/condition"
	"github.com/rulego/rpmine/types"
)

// Normalize converts the raw timestamp->items mapping into a transaction
// sequence sorted by timestamp ascending. Empty transactions are dropped,
// duplicate items within one transaction are collapsed (a pattern occurs in
// a transaction at most once), and items that cannot key a map are rejected
// with *types.InvalidInputError. An optional condition filters whole
// transactions before they enter the engine.
func Normalize(raw map[int64][]interface{}, cond condition.Condition) ([]types.Transaction, error) {
	txs := make([]types.Transaction, 0, len(raw))

	for ts, items := range raw {
		seen := make(map[string]struct{}, len(items))
		unique := make([]interface{}, 0, len(items))

		for _, it := range items {
			if it != nil && !reflect.TypeOf(it).Comparable() {
				return nil, &types.InvalidInputError{
					Reason:    "item is not comparable",
					Timestamp: ts,
					Item:      it,
				}
			}
			key := types.ItemKey(it)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, it)
		}

		if len(unique) == 0 {
			continue
		}
		if cond != nil && !cond.Evaluate(condition.Env(ts, unique)) {
			continue
		}

		types.SortItems(unique)
		txs = append(txs, types.Transaction{Timestamp: ts, Items: unique})
	}

	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Timestamp < txs[j].Timestamp
	})
	return txs, nil
}

// NormalizeAny accepts a loosely typed database, coercing timestamps to
// int64 and item collections to slices before normalizing. Values that do
// not coerce surface as *types.InvalidInputError. Transactions that coerce
// to the same timestamp are merged.
func NormalizeAny(raw map[interface{}]interface{}, cond condition.Condition) ([]types.Transaction, error) {
	merged := make(map[int64][]interface{}, len(raw))

	for k, v := range raw {
		ts, err := cast.ToInt64E(k)
		if err != nil {
			return nil, &types.InvalidInputError{Reason: "timestamp is not an integer ordinal", Timestamp: k}
		}
		items, err := cast.ToSliceE(v)
		if err != nil {
			// cast only understands []interface{}; unwrap typed slices
			rv := reflect.ValueOf(v)
			if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
				return nil, &types.InvalidInputError{Reason: "transaction is not an item collection", Timestamp: k, Item: v}
			}
			items = make([]interface{}, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				items[i] = rv.Index(i).Interface()
			}
		}
		merged[ts] = append(merged[ts], items...)
	}

	return Normalize(merged, cond)
}
