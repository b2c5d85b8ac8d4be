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

type FreqDistribItem struct {
	Word string `json:"word"`
	Freq int    `json:"freq"`

	// IPM is relative to the number of filtered tokens
	// of the text
	IPM float64 `json:"ipm"`
}

type FreqDistribItemList []*FreqDistribItem

func (flist FreqDistribItemList) Cut(maxItems int) FreqDistribItemList {
	if len(flist) > maxItems {
		return flist[:maxItems]
	}
	return flist
}

type FreqDistrib struct {
	TextID string `json:"textId"`

	// FilteredTokens is always equal to the number of all
	// filtered tokens of the text (even if Freqs are cut)
	FilteredTokens int `json:"filteredTokens"`

	Freqs FreqDistribItemList `json:"freqs"`

	// ExamplesQueryTpl provides a (CQL) query template
	// for obtaining examples matching words from the `Freqs`
	// atribute (one by one).
	ExamplesQueryTpl string `json:"examplesQueryTpl"`
}

// NewFreqDistrib converts a stored word frequency table of a text
// into a list of items with relative frequencies.
func NewFreqDistrib(textID string, res *TextResult) *FreqDistrib {
	ans := &FreqDistrib{
		TextID:         textID,
		FilteredTokens: res.Statistics.FilteredTokens,
		Freqs:          make(FreqDistribItemList, 0, res.WordFrequency.Len()),
	}
	for pair := res.WordFrequency.Oldest(); pair != nil; pair = pair.Next() {
		item := &FreqDistribItem{
			Word: pair.Key,
			Freq: pair.Value,
		}
		if ans.FilteredTokens > 0 {
			item.IPM = float64(pair.Value) / float64(ans.FilteredTokens) * 1e6
		}
		ans.Freqs = append(ans.Freqs, item)
	}
	return ans
}
