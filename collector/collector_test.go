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

package collector

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/rpmine/types"
)

func TestAddIdempotent(t *testing.T) {
	c := New()

	c.Add(types.Pattern{Items: []interface{}{"a", "b"}, Recurrence: 2, Support: 3})
	// same itemset in different order must not create a second entry
	c.Add(types.Pattern{Items: []interface{}{"b", "a"}, Recurrence: 2, Support: 3})

	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Contains(types.Pattern{Items: []interface{}{"a", "b"}}))
}

func TestAddCopiesItems(t *testing.T) {
	c := New()
	buf := []interface{}{"b", "a"}
	c.Add(types.Pattern{Items: buf})
	buf[0] = "mutated"

	got := c.Patterns()
	require.Len(t, got, 1)
	assert.Equal(t, []interface{}{"a", "b"}, got[0].Items)
}

func TestPatternsSorted(t *testing.T) {
	c := New()
	c.Add(types.Pattern{Items: []interface{}{"c"}})
	c.Add(types.Pattern{Items: []interface{}{"a"}})
	c.Add(types.Pattern{Items: []interface{}{"a", "b"}})

	got := c.Patterns()
	require.Len(t, got, 3)
	assert.Equal(t, []interface{}{"a"}, got[0].Items)
	assert.Equal(t, []interface{}{"a", "b"}, got[1].Items)
	assert.Equal(t, []interface{}{"c"}, got[2].Items)
}

func TestConcurrentAdds(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				c.Add(types.Pattern{Items: []interface{}{i % 10}})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, c.Len())
	assert.Len(t, c.Patterns(), 10)
}
