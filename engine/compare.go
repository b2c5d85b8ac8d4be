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
	DefaultTopNDistinctive = 20
)

// TokenCorpus maps text IDs to their filtered token sequences
// (in corpus order).
type TokenCorpus = orderedmap.OrderedMap[string, []string]

type OverlapItem struct {
	SharedWords       int     `json:"shared_words"`
	OverlapPercentage float64 `json:"overlap_percentage"`
}

// OverlapTable maps other text IDs to the overlap with
// a single (reference) text
type OverlapTable = orderedmap.OrderedMap[string, OverlapItem]

type VocabularyOverlap = orderedmap.OrderedMap[string, *OverlapTable]

type ScoredWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

type DistinctiveWords = orderedmap.OrderedMap[string, []ScoredWord]

type vocabulary map[string]struct{}

func newVocabulary(tokens []string) vocabulary {
	ans := make(vocabulary)
	for _, tok := range tokens {
		ans[tok] = struct{}{}
	}
	return ans
}

func (v vocabulary) sharedWith(other vocabulary) int {
	var ans int
	for w := range v {
		if _, ok := other[w]; ok {
			ans++
		}
	}
	return ans
}

// CompareVocabularies calculates for each ordered pair of texts (A, B)
// the number of shared distinct words and their share in A's vocabulary.
// The percentage is relative to A so the relation is not symmetric.
func CompareVocabularies(tokens *TokenCorpus) *VocabularyOverlap {
	vocabs := orderedmap.New[string, vocabulary]()
	for pair := tokens.Oldest(); pair != nil; pair = pair.Next() {
		vocabs.Set(pair.Key, newVocabulary(pair.Value))
	}
	ans := orderedmap.New[string, *OverlapTable]()
	for ref := vocabs.Oldest(); ref != nil; ref = ref.Next() {
		table := orderedmap.New[string, OverlapItem]()
		for other := vocabs.Oldest(); other != nil; other = other.Next() {
			if other.Key == ref.Key {
				continue
			}
			shared := ref.Value.sharedWith(other.Value)
			var pct float64
			if len(ref.Value) > 0 {
				pct = float64(shared) / float64(len(ref.Value)) * 100
			}
			table.Set(other.Key, OverlapItem{
				SharedWords:       shared,
				OverlapPercentage: roundTo(pct, 2),
			})
		}
		ans.Set(ref.Key, table)
	}
	return ans
}

// FindDistinctiveWords ranks words of each text by
// count * (number of texts - number of other texts containing the word).
// Words found in all the other texts are ignored. Equal scores keep
// the order of the first occurrence in the text.
func FindDistinctiveWords(tokens *TokenCorpus, topN int) *DistinctiveWords {
	counters := orderedmap.New[string, *CounterTable]()
	for pair := tokens.Oldest(); pair != nil; pair = pair.Next() {
		counters.Set(pair.Key, NewCounterTable(pair.Value))
	}
	numTexts := counters.Len()
	ans := orderedmap.New[string, []ScoredWord]()
	for curr := counters.Oldest(); curr != nil; curr = curr.Next() {
		scores := make([]ScoredWord, 0, 100)
		for _, item := range curr.Value.Items() {
			var appearsIn int
			for other := counters.Oldest(); other != nil; other = other.Next() {
				if other.Key != curr.Key && other.Value.Contains(item.Word) {
					appearsIn++
				}
			}
			if appearsIn < numTexts-1 {
				scores = append(
					scores,
					ScoredWord{Word: item.Word, Score: item.Freq * (numTexts - appearsIn)},
				)
			}
		}
		sort.SliceStable(
			scores,
			func(i, j int) bool {
				return scores[j].Score < scores[i].Score
			},
		)
		if topN >= 0 && len(scores) > topN {
			scores = scores[:topN]
		}
		ans.Set(curr.Key, scores)
	}
	return ans
}
