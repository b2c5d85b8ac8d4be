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
	"regexp"
	"strings"
)

var (
	fakeSentenceRx = regexp.MustCompile(`[^.!?]+[.!?]*`)
	fakeWordRx     = regexp.MustCompile(`[\p{L}']+|[^\s\p{L}']`)
)

type fakeSentenceSplitter struct{}

func (fakeSentenceSplitter) Split(text string) []string {
	ans := make([]string, 0, 10)
	for _, s := range fakeSentenceRx.FindAllString(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			ans = append(ans, s)
		}
	}
	return ans
}

type fakeWordSplitter struct{}

func (fakeWordSplitter) Split(sentence string) []string {
	return fakeWordRx.FindAllString(sentence, -1)
}

// fakeScorer returns predefined scores for known sentences
// and neutral scores for the rest
type fakeScorer struct {
	scores map[string]Polarity
	calls  []string
}

func (fs *fakeScorer) PolarityScores(sentence string) Polarity {
	fs.calls = append(fs.calls, sentence)
	if p, ok := fs.scores[sentence]; ok {
		return p
	}
	return Polarity{Neutral: 1}
}

func newFakeAnalyzer(params AnalysisParams) (*Analyzer, *fakeScorer) {
	scorer := &fakeScorer{scores: make(map[string]Polarity)}
	return NewAnalyzer(params, fakeSentenceSplitter{}, fakeWordSplitter{}, scorer), scorer
}
