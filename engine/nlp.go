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
	"fmt"
	"strings"

	"github.com/jdkato/prose/tokenize"
	"github.com/jonreiter/govader"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// SentenceSplitter segments a running text into sentences.
type SentenceSplitter interface {
	Split(text string) []string
}

// WordSplitter splits a single sentence into word tokens
// (punctuation becomes separate tokens).
type WordSplitter interface {
	Split(sentence string) []string
}

// Polarity contains lexicon based sentiment scores
// of a single sentence.
type Polarity struct {
	Compound float64
	Positive float64
	Neutral  float64
	Negative float64
}

type PolarityScorer interface {
	PolarityScores(sentence string) Polarity
}

// ---------

// PunktSplitter is an unsupervised Punkt sentence tokenizer
// trained for English.
type PunktSplitter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func (ps *PunktSplitter) Split(text string) []string {
	sents := ps.tokenizer.Tokenize(text)
	ans := make([]string, 0, len(sents))
	for _, s := range sents {
		v := strings.TrimSpace(s.Text)
		if v != "" {
			ans = append(ans, v)
		}
	}
	return ans
}

func NewPunktSplitter() (*PunktSplitter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sentence tokenizer: %w", err)
	}
	return &PunktSplitter{tokenizer: tok}, nil
}

// ---------

// TreebankSplitter uses Penn Treebank tokenization conventions.
type TreebankSplitter struct {
	tokenizer *tokenize.TreebankWordTokenizer
}

func (ts *TreebankSplitter) Split(sentence string) []string {
	return ts.tokenizer.Tokenize(sentence)
}

func NewTreebankSplitter() *TreebankSplitter {
	return &TreebankSplitter{tokenizer: tokenize.NewTreebankWordTokenizer()}
}

// ---------

// VaderScorer applies the VADER lexicon and rules.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func (vs *VaderScorer) PolarityScores(sentence string) Polarity {
	s := vs.analyzer.PolarityScores(sentence)
	return Polarity{
		Compound: s.Compound,
		Positive: s.Positive,
		Neutral:  s.Neutral,
		Negative: s.Negative,
	}
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}
