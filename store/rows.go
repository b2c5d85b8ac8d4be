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

package store

import (
	"github.com/technical-communicator/American-Transcendentalism/engine"
)

// TableRows is a batch of rows prepared for a single table
// (without the table prefix)
type TableRows struct {
	Table string
	Cols  []string
	Rows  [][]any
}

func (tr *TableRows) add(row ...any) {
	tr.Rows = append(tr.Rows, row)
}

func textRows(runID string, report *engine.Report) *TableRows {
	ans := &TableRows{
		Table: "texts",
		Cols: []string{
			"run_id", "text_id", "title", "author", "year", "gutenberg_id",
			"total_words", "total_sentences", "unique_words", "filtered_tokens",
			"lexical_diversity", "avg_sentence_length",
			"sentiment_compound", "sentiment_positive", "sentiment_neutral",
			"sentiment_negative", "sentiment_overall", "sentences_analyzed",
		},
		Rows: make([][]any, 0, report.Texts.Len()),
	}
	for pair := report.Texts.Oldest(); pair != nil; pair = pair.Next() {
		md := pair.Value.Metadata
		st := pair.Value.Statistics
		se := pair.Value.Sentiment
		ans.add(
			runID, pair.Key, md.Title, md.Author, md.Year, md.GutenbergID,
			st.TotalWords, st.TotalSentences, st.UniqueWords, st.FilteredTokens,
			st.LexicalDiversity, st.AvgSentenceLength,
			se.Compound, se.Positive, se.Neutral, se.Negative, se.Overall, se.SentencesAnalyzed,
		)
	}
	return ans
}

func wordFreqRows(runID string, report *engine.Report) *TableRows {
	ans := &TableRows{
		Table: "word_freqs",
		Cols:  []string{"run_id", "text_id", "rank", "word", "freq"},
		Rows:  make([][]any, 0, report.Texts.Len()*engine.DefaultTopNFrequency),
	}
	for pair := report.Texts.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.WordFrequency == nil {
			continue
		}
		var rank int
		for wf := pair.Value.WordFrequency.Oldest(); wf != nil; wf = wf.Next() {
			rank++
			ans.add(runID, pair.Key, rank, wf.Key, wf.Value)
		}
	}
	return ans
}

func distinctiveRows(runID string, report *engine.Report) *TableRows {
	ans := &TableRows{
		Table: "distinctive",
		Cols:  []string{"run_id", "text_id", "rank", "word", "score"},
		Rows:  make([][]any, 0, report.Texts.Len()*engine.DefaultTopNDistinctive),
	}
	if report.Comparative.DistinctiveWords == nil {
		return ans
	}
	for pair := report.Comparative.DistinctiveWords.Oldest(); pair != nil; pair = pair.Next() {
		for i, sw := range pair.Value {
			ans.add(runID, pair.Key, i+1, sw.Word, sw.Score)
		}
	}
	return ans
}

func overlapRows(runID string, report *engine.Report) *TableRows {
	ans := &TableRows{
		Table: "overlap",
		Cols:  []string{"run_id", "text_id", "other_text_id", "shared_words", "overlap_percentage"},
	}
	if report.Comparative.VocabularyOverlap == nil {
		return ans
	}
	for ref := report.Comparative.VocabularyOverlap.Oldest(); ref != nil; ref = ref.Next() {
		for other := ref.Value.Oldest(); other != nil; other = other.Next() {
			ans.add(runID, ref.Key, other.Key, other.Value.SharedWords, other.Value.OverlapPercentage)
		}
	}
	return ans
}

// ReportRows converts a report into rows of all the tables
// in the order they should be written.
func ReportRows(report *engine.Report) []*TableRows {
	runID := report.Metadata.RunID
	return []*TableRows{
		textRows(runID, report),
		wordFreqRows(runID, report),
		distinctiveRows(runID, report),
		overlapRows(runID, report),
	}
}

// chunkRows splits rows into chunks of at most chunkSize items
func chunkRows(rows [][]any, chunkSize int) [][][]any {
	ans := make([][][]any, 0, len(rows)/chunkSize+1)
	for len(rows) > chunkSize {
		ans = append(ans, rows[:chunkSize])
		rows = rows[chunkSize:]
	}
	if len(rows) > 0 {
		ans = append(ans, rows)
	}
	return ans
}
