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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/technical-communicator/American-Transcendentalism/corpus"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type RunMetadata struct {
	AnalysisDate string `json:"analysis_date"`

	// TotalTexts is the number of configured texts (including
	// the ones which failed to load)
	TotalTexts  int    `json:"total_texts"`
	Description string `json:"description"`
	RunID       string `json:"run_id"`
}

type TextResult struct {
	Metadata      corpus.TextRecord `json:"metadata"`
	Statistics    StatisticsSummary `json:"statistics"`
	WordFrequency *FrequencyTable   `json:"word_frequency"`
	Sentiment     SentimentSummary  `json:"sentiment"`
}

type Comparative struct {
	VocabularyOverlap *VocabularyOverlap `json:"vocabulary_overlap"`
	DistinctiveWords  *DistinctiveWords  `json:"distinctive_words"`
}

type TextResults = orderedmap.OrderedMap[string, *TextResult]

// Report is the complete result of an analysis run. Texts keep
// the order of the corpus configuration.
type Report struct {
	Metadata    RunMetadata  `json:"metadata"`
	Texts       *TextResults `json:"texts"`
	Comparative Comparative  `json:"comparative"`
}

func (r *Report) GetText(textID string) *TextResult {
	if r.Texts == nil {
		return nil
	}
	ans, _ := r.Texts.Get(textID)
	return ans
}

// WriteJSON writes an indented JSON with non-ASCII characters kept
// as they are.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (r *Report) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := r.WriteJSON(bw); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func NewReport(meta RunMetadata) *Report {
	return &Report{
		Metadata: meta,
		Texts:    orderedmap.New[string, *TextResult](),
		Comparative: Comparative{
			VocabularyOverlap: orderedmap.New[string, *OverlapTable](),
			DistinctiveWords:  orderedmap.New[string, []ScoredWord](),
		},
	}
}

// LoadReport reads a report previously written by Save.
func LoadReport(path string) (*Report, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	ans := NewReport(RunMetadata{})
	if err := json.Unmarshal(rawData, ans); err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", path, err)
	}
	return ans, nil
}
