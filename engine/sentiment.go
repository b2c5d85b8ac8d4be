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

const (
	DefaultSentimentSampleSize = 1000

	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"

	compoundThreshold = 0.05
)

type SentimentSummary struct {
	Compound          float64 `json:"compound"`
	Positive          float64 `json:"positive"`
	Neutral           float64 `json:"neutral"`
	Negative          float64 `json:"negative"`
	Overall           string  `json:"overall"`
	SentencesAnalyzed int     `json:"sentences_analyzed"`
}

// SampleSentences picks every k-th sentence (k = len/sampleSize) so
// the whole text is covered, up to sampleSize sentences. Shorter
// inputs are returned as they are.
func SampleSentences(sentences []string, sampleSize int) []string {
	if sampleSize <= 0 || len(sentences) <= sampleSize {
		return sentences
	}
	step := len(sentences) / sampleSize
	ans := make([]string, 0, sampleSize)
	for i := 0; i < len(sentences) && len(ans) < sampleSize; i += step {
		ans = append(ans, sentences[i])
	}
	return ans
}

func ClassifyCompound(compound float64) string {
	if compound >= compoundThreshold {
		return SentimentPositive

	} else if compound <= -compoundThreshold {
		return SentimentNegative
	}
	return SentimentNeutral
}

// AnalyzeSentiment scores (sampled) sentences one by one
// and averages the scores.
func AnalyzeSentiment(sentences []string, scorer PolarityScorer, sampleSize int) SentimentSummary {
	sampled := SampleSentences(sentences, sampleSize)
	if len(sampled) == 0 {
		return SentimentSummary{Overall: SentimentNeutral}
	}
	var sum Polarity
	for _, sent := range sampled {
		p := scorer.PolarityScores(sent)
		sum.Compound += p.Compound
		sum.Positive += p.Positive
		sum.Neutral += p.Neutral
		sum.Negative += p.Negative
	}
	n := float64(len(sampled))
	avgCompound := sum.Compound / n
	return SentimentSummary{
		Compound:          roundTo(avgCompound, 4),
		Positive:          roundTo(sum.Positive/n, 4),
		Neutral:           roundTo(sum.Neutral/n, 4),
		Negative:          roundTo(sum.Negative/n, 4),
		Overall:           ClassifyCompound(avgCompound),
		SentencesAnalyzed: len(sampled),
	}
}
