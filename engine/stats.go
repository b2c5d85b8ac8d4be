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
	"math"
	"strings"
)

type StatisticsSummary struct {
	TotalWords     int `json:"total_words"`
	TotalSentences int `json:"total_sentences"`

	// UniqueWords counts distinct lower-cased alphabetic words
	// of the raw text (stopwords included)
	UniqueWords int `json:"unique_words"`

	FilteredTokens    int     `json:"filtered_tokens"`
	LexicalDiversity  float64 `json:"lexical_diversity"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// ComputeStatistics calculates basic text statistics out of a raw text,
// its filtered tokens and its sentences.
func ComputeStatistics(text string, tokens []string, sentences []string) StatisticsSummary {
	words := strings.Fields(text)
	unique := make(map[string]bool)
	for _, w := range words {
		if IsAlpha(w) {
			unique[strings.ToLower(w)] = true
		}
	}
	var lexDiversity, avgSentLen float64
	if len(words) > 0 {
		lexDiversity = float64(len(unique)) / float64(len(words))
	}
	if len(sentences) > 0 {
		avgSentLen = float64(len(words)) / float64(len(sentences))
	}
	return StatisticsSummary{
		TotalWords:        len(words),
		TotalSentences:    len(sentences),
		UniqueWords:       len(unique),
		FilteredTokens:    len(tokens),
		LexicalDiversity:  roundTo(lexDiversity, 4),
		AvgSentenceLength: roundTo(avgSentLen, 2),
	}
}
