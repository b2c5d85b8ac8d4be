// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	DefaultTopNFrequency = 100
)

type CTItem struct {
	Word string
	Freq int
}

type CTItemList []*CTItem

func (list CTItemList) Cut(maxItems int) CTItemList {
	if maxItems >= 0 && len(list) > maxItems {
		return list[:maxItems]
	}
	return list
}

// CounterTable counts word occurrences and remembers
// the order in which the words were first seen.
type CounterTable struct {
	items map[string]*CTItem
	order CTItemList
}

func (table *CounterTable) Add(word string, val int) {
	v, ok := table.items[word]
	if !ok {
		v = &CTItem{Word: word}
		table.items[word] = v
		table.order = append(table.order, v)
	}
	v.Freq += val
}

func (table *CounterTable) Contains(word string) bool {
	_, ok := table.items[word]
	return ok
}

func (table *CounterTable) Get(word string) int {
	if v, ok := table.items[word]; ok {
		return v.Freq
	}
	return 0
}

// Len returns number of distinct words
func (table *CounterTable) Len() int {
	return len(table.order)
}

// Items returns all the items in the order of first occurrence.
func (table *CounterTable) Items() CTItemList {
	return table.order
}

// MostCommon returns up to n items with the highest frequencies.
// Items with equal frequency keep the order of first occurrence.
// A negative n means no limit.
func (table *CounterTable) MostCommon(n int) CTItemList {
	ans := make(CTItemList, len(table.order))
	copy(ans, table.order)
	sort.SliceStable(
		ans,
		func(i, j int) bool {
			return ans[j].Freq < ans[i].Freq
		},
	)
	return ans.Cut(n)
}

func NewCounterTable(tokens []string) *CounterTable {
	table := &CounterTable{
		items: make(map[string]*CTItem),
		order: make(CTItemList, 0, len(tokens)/4),
	}
	for _, tok := range tokens {
		table.Add(tok, 1)
	}
	return table
}

// FrequencyTable maps words to their counts, ordered
// by count in descending order.
type FrequencyTable = orderedmap.OrderedMap[string, int]

// BuildFrequency returns topN most frequent tokens.
func BuildFrequency(tokens []string, topN int) *FrequencyTable {
	ans := orderedmap.New[string, int]()
	for _, item := range NewCounterTable(tokens).MostCommon(topN) {
		ans.Set(item.Word, item.Freq)
	}
	return ans
}
