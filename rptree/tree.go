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

// Package rptree implements the recurring-pattern tree: a shared-prefix trie
// over items in a fixed strength order, each node annotated with the
// timestamps of the transactions passing through it. A header table maps
// every item to all of its nodes so conditional pattern bases can be built
// without traversing the whole tree.
package rptree

import (
	"sort"

	"github.com/rulego/rpmine/recurrence"
	"github.com/rulego/rpmine/tdb"
	"github.com/rulego/rpmine/types"
)

// Entry pairs an item with its canonical key inside a tree's item order.
type Entry struct {
	Key  string
	Item interface{}
}

// Tree is one RP-tree. A tree is built, mined and discarded within a single
// recursion branch; it is never shared between branches.
type Tree struct {
	root *Node
	// order lists the feasible items strongest-first; it fixes both the
	// insertion order of transaction items and, reversed, the mining
	// order of the header table.
	order  []Entry
	rank   map[string]int
	header map[string][]*Node
}

// New creates an empty tree over the given item order.
func New(order []Entry) *Tree {
	t := &Tree{
		root:   newNode(nil, nil),
		order:  order,
		rank:   make(map[string]int, len(order)),
		header: make(map[string][]*Node),
	}
	for i, e := range order {
		t.rank[e.Key] = i
	}
	return t
}

// Build constructs the root RP-tree for a transaction sequence. Items whose
// own occurrence list cannot reach minRec qualifying recurrences (by the
// anti-monotonic bound) are dropped from every transaction before
// insertion; what remains is inserted in the fixed strength order
// (occurrence count descending, item key ascending).
func Build(txs []types.Transaction, idx *tdb.Index, p types.Params) *Tree {
	order := make([]Entry, 0, len(idx.Items))
	for key, occ := range idx.Items {
		if recurrence.Bound(occ.Timestamps, p) >= p.MinRec {
			order = append(order, Entry{Key: key, Item: occ.Item})
		}
	}
	sort.Slice(order, func(i, j int) bool {
		si, sj := idx.Support(order[i].Key), idx.Support(order[j].Key)
		if si != sj {
			return si > sj
		}
		return order[i].Key < order[j].Key
	})

	t := New(order)
	ts := make([]int64, 1)
	for _, tx := range txs {
		present := make(map[string]struct{}, len(tx.Items))
		for _, it := range tx.Items {
			present[types.ItemKey(it)] = struct{}{}
		}
		items := make([]interface{}, 0, len(tx.Items))
		for _, e := range t.order {
			if _, ok := present[e.Key]; ok {
				items = append(items, e.Item)
			}
		}
		if len(items) == 0 {
			continue
		}
		ts[0] = tx.Timestamp
		t.Insert(items, ts)
	}
	return t
}

// Insert adds one path to the tree. Items must already be filtered to the
// tree's order and sorted by it. Every node along the path records the
// given timestamps.
func (t *Tree) Insert(items []interface{}, timestamps []int64) {
	current := t.root
	for _, it := range items {
		key := types.ItemKey(it)
		next := current.Child(key)
		if next == nil {
			next = newNode(it, current)
			current.children[key] = next
			t.header[key] = append(t.header[key], next)
		}
		next.record(timestamps)
		current = next
	}
}

// Empty reports whether the tree holds no item nodes.
func (t *Tree) Empty() bool {
	return len(t.header) == 0
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Nodes returns the header-table entry for an item key.
func (t *Tree) Nodes(key string) []*Node {
	return t.header[key]
}

// HeaderItems returns the items present in this tree, weakest-first. This
// is the suffix enumeration order of the miner; it is fixed per tree, so
// runs are deterministic.
func (t *Tree) HeaderItems() []Entry {
	items := make([]Entry, 0, len(t.header))
	for i := len(t.order) - 1; i >= 0; i-- {
		if len(t.header[t.order[i].Key]) > 0 {
			items = append(items, t.order[i])
		}
	}
	return items
}

// PatternTimestamps aggregates the timestamp lists of every node carrying
// the given item into one ascending occurrence list. Branches are disjoint
// per transaction, so the merged list has no duplicates.
func (t *Tree) PatternTimestamps(key string) []int64 {
	var ts []int64
	for _, n := range t.header[key] {
		ts = append(ts, n.Timestamps...)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
	return ts
}

// Conditional builds the conditional tree for the given suffix item: the
// projection of this tree onto the paths above that item's nodes. Ancestor
// items that cannot reach minRec under the projected occurrence lists are
// pruned before insertion. The resulting tree only contains items ordered
// before the suffix item, which is what makes every itemset reachable by
// exactly one growth path.
func (t *Tree) Conditional(key string, p types.Params) *Tree {
	type basePath struct {
		keys       []string
		timestamps []int64
	}

	projected := make(map[string][]int64)
	var base []basePath

	for _, n := range t.Nodes(key) {
		var keys []string
		for a := n.Parent(); a != nil && !a.IsRoot(); a = a.Parent() {
			k := types.ItemKey(a.Item)
			projected[k] = append(projected[k], n.Timestamps...)
			keys = append(keys, k)
		}
		if len(keys) == 0 {
			continue
		}
		// the walk collected the path bottom-up
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
		base = append(base, basePath{keys: keys, timestamps: n.Timestamps})
	}

	feasible := make(map[string]struct{}, len(projected))
	for k, ts := range projected {
		sort.Slice(ts, func(i, j int) bool { return ts[i] < ts[j] })
		if recurrence.Bound(ts, p) >= p.MinRec {
			feasible[k] = struct{}{}
		}
	}

	order := make([]Entry, 0, len(feasible))
	for _, e := range t.order {
		if _, ok := feasible[e.Key]; ok {
			order = append(order, e)
		}
	}

	ct := New(order)
	for _, b := range base {
		items := make([]interface{}, 0, len(b.keys))
		for _, k := range b.keys {
			if _, ok := feasible[k]; ok {
				items = append(items, t.order[t.rank[k]].Item)
			}
		}
		if len(items) == 0 {
			continue
		}
		ct.Insert(items, b.timestamps)
	}
	return ct
}
