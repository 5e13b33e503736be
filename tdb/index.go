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
	"github.com/rulego/rpmine/types"
)

// Occurrences is the ascending timestamp list of one item, plus the item
// value itself (the map holding it is keyed by canonical item key).
type Occurrences struct {
	Item       interface{}
	Timestamps []int64
}

// Index maps every distinct item to its occurrence list and records the
// domain boundaries of the whole database. It is built once per mining run
// and read-only afterwards.
type Index struct {
	Items map[string]*Occurrences
	// First and Last are the smallest and largest timestamp in the
	// database, used for boundary-gap checks.
	First int64
	Last  int64
}

// BuildIndex scans the ordered transaction sequence and produces the
// occurrence index. The transaction order guarantees each occurrence list
// comes out ascending without re-sorting.
func BuildIndex(txs []types.Transaction) *Index {
	idx := &Index{Items: make(map[string]*Occurrences)}
	if len(txs) == 0 {
		return idx
	}

	idx.First = txs[0].Timestamp
	idx.Last = txs[len(txs)-1].Timestamp

	for _, tx := range txs {
		for _, it := range tx.Items {
			key := types.ItemKey(it)
			occ, ok := idx.Items[key]
			if !ok {
				occ = &Occurrences{Item: it}
				idx.Items[key] = occ
			}
			occ.Timestamps = append(occ.Timestamps, tx.Timestamp)
		}
	}
	return idx
}

// Support returns the occurrence count of the item with the given key, zero
// when the item is unknown.
func (i *Index) Support(key string) int {
	if occ, ok := i.Items[key]; ok {
		return len(occ.Timestamps)
	}
	return 0
}
