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
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/technical-communicator/American-Transcendentalism/corpus"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// AnalysisParams configures the analyzer
type AnalysisParams struct {
	TopNFrequency       int  `json:"topNFrequency"`
	TopNDistinctive     int  `json:"topNDistinctive"`
	SentimentSampleSize int  `json:"sentimentSampleSize"`
	Stem                bool `json:"stem"`
}

func (p *AnalysisParams) ValidateAndDefaults(confContext string) {
	if p.TopNFrequency <= 0 {
		p.TopNFrequency = DefaultTopNFrequency
		log.Warn().Msgf(
			"%s.topNFrequency not specified, using default: %d", confContext, p.TopNFrequency)
	}
	if p.TopNDistinctive <= 0 {
		p.TopNDistinctive = DefaultTopNDistinctive
		log.Warn().Msgf(
			"%s.topNDistinctive not specified, using default: %d", confContext, p.TopNDistinctive)
	}
	if p.SentimentSampleSize <= 0 {
		p.SentimentSampleSize = DefaultSentimentSampleSize
		log.Warn().Msgf(
			"%s.sentimentSampleSize not specified, using default: %d",
			confContext, p.SentimentSampleSize,
		)
	}
}

func DefaultAnalysisParams() AnalysisParams {
	return AnalysisParams{
		TopNFrequency:       DefaultTopNFrequency,
		TopNDistinctive:     DefaultTopNDistinctive,
		SentimentSampleSize: DefaultSentimentSampleSize,
	}
}

// Analyzer runs the per-text analysis and the comparative
// analysis of a whole corpus.
type Analyzer struct {
	params    AnalysisParams
	tokenizer *Tokenizer
	sentences SentenceSplitter
	scorer    PolarityScorer
}

// AnalyzeText computes all per-text data. The returned tokens are
// needed for the comparative phase.
func (a *Analyzer) AnalyzeText(record corpus.TextRecord, text string) ([]string, *TextResult) {
	tokens := a.tokenizer.Tokens(text)
	log.Debug().Str("textId", record.ID).Msg("building word frequency distribution")
	freq := BuildFrequency(tokens, a.params.TopNFrequency)

	log.Debug().Str("textId", record.ID).Msg("calculating text statistics")
	sentences := a.sentences.Split(text)
	stats := ComputeStatistics(text, tokens, sentences)

	log.Debug().Str("textId", record.ID).Msg("analyzing sentiment")
	sentiment := AnalyzeSentiment(sentences, a.scorer, a.params.SentimentSampleSize)

	return tokens, &TextResult{
		Metadata:      record,
		Statistics:    stats,
		WordFrequency: freq,
		Sentiment:     sentiment,
	}
}

// Run analyzes all the configured texts. Texts which cannot be
// loaded (or are empty) are logged and skipped. Only a cancelled
// context stops the whole run.
func (a *Analyzer) Run(ctx context.Context, texts corpus.CorpusConf, meta RunMetadata) (*Report, error) {
	if meta.RunID == "" {
		meta.RunID = uuid.New().String()
	}
	meta.TotalTexts = len(texts)
	report := NewReport(meta)
	allTokens := orderedmap.New[string, []string]()
	t0 := time.Now()

	for _, props := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Info().
			Str("textId", props.ID).
			Str("title", props.Title).
			Str("author", props.Author).
			Msg("analyzing")
		text, err := corpus.LoadText(props)
		if err != nil {
			log.Error().Err(err).Str("file", props.File).Msg("error loading text")
			continue
		}
		if text == "" {
			log.Warn().Str("file", props.File).Msg("empty text, skipping")
			continue
		}
		tokens, result := a.AnalyzeText(props.Record(), text)
		allTokens.Set(props.ID, tokens)
		report.Texts.Set(props.ID, result)
		log.Info().
			Str("textId", props.ID).
			Int("words", result.Statistics.TotalWords).
			Int("unique", result.Statistics.UniqueWords).
			Str("sentiment", result.Sentiment.Overall).
			Msg("text analysis complete")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Info().Int("texts", allTokens.Len()).Msg("comparing vocabularies")
	report.Comparative.VocabularyOverlap = CompareVocabularies(allTokens)
	log.Info().Msg("finding distinctive words")
	report.Comparative.DistinctiveWords = FindDistinctiveWords(allTokens, a.params.TopNDistinctive)
	log.Info().Float64("durationSec", time.Since(t0).Seconds()).Msg("analysis done")
	return report, nil
}

// NewAnalyzer creates an analyzer with custom NLP collaborators.
func NewAnalyzer(
	params AnalysisParams,
	sentences SentenceSplitter,
	words WordSplitter,
	scorer PolarityScorer,
) *Analyzer {
	return &Analyzer{
		params:    params,
		tokenizer: NewTokenizer(sentences, words, params.Stem),
		sentences: sentences,
		scorer:    scorer,
	}
}

// NewDefaultAnalyzer creates an analyzer with Punkt sentence
// segmentation, Treebank word tokenization and VADER sentiment.
func NewDefaultAnalyzer(params AnalysisParams) (*Analyzer, error) {
	punkt, err := NewPunktSplitter()
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(params, punkt, NewTreebankSplitter(), NewVaderScorer()), nil
}
