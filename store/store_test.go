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
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technical-communicator/American-Transcendentalism/corpus"
	"github.com/technical-communicator/American-Transcendentalism/engine"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func sampleReport() *engine.Report {
	report := engine.NewReport(engine.RunMetadata{RunID: "run-1", TotalTexts: 2})
	report.Texts.Set("moby", &engine.TextResult{
		Metadata: corpus.TextRecord{
			ID: "moby", Title: "Moby Dick", Author: "Herman Melville", Year: 1851, GutenbergID: 2701},
		Statistics:    engine.StatisticsSummary{TotalWords: 10, FilteredTokens: 3},
		WordFrequency: engine.BuildFrequency([]string{"whale", "sea", "whale"}, 10),
		Sentiment:     engine.SentimentSummary{Overall: engine.SentimentNeutral, SentencesAnalyzed: 1},
	})
	report.Texts.Set("walden", &engine.TextResult{
		Metadata:      corpus.TextRecord{ID: "walden", Title: "Walden", Year: 1854},
		WordFrequency: engine.BuildFrequency([]string{"pond"}, 10),
	})
	ov := orderedmap.New[string, engine.OverlapItem]()
	ov.Set("walden", engine.OverlapItem{SharedWords: 0})
	report.Comparative.VocabularyOverlap.Set("moby", ov)
	ov = orderedmap.New[string, engine.OverlapItem]()
	ov.Set("moby", engine.OverlapItem{SharedWords: 0})
	report.Comparative.VocabularyOverlap.Set("walden", ov)
	report.Comparative.DistinctiveWords.Set("moby", []engine.ScoredWord{{Word: "whale", Score: 4}, {Word: "sea", Score: 2}})
	report.Comparative.DistinctiveWords.Set("walden", []engine.ScoredWord{{Word: "pond", Score: 2}})
	return report
}

func TestReportRows(t *testing.T) {
	tables := ReportRows(sampleReport())
	require.Len(t, tables, 4)
	for _, tr := range tables {
		for _, row := range tr.Rows {
			assert.Len(t, row, len(tr.Cols), tr.Table)
			assert.Equal(t, "run-1", row[0])
		}
	}

	texts := tables[0]
	assert.Equal(t, "texts", texts.Table)
	require.Len(t, texts.Rows, 2)
	assert.Equal(t, "moby", texts.Rows[0][1])
	assert.Equal(t, "Herman Melville", texts.Rows[0][3])
	assert.Equal(t, 2701, texts.Rows[0][5])
	assert.Equal(t, "neutral", texts.Rows[0][16])

	freqs := tables[1]
	assert.Equal(t, [][]any{
		{"run-1", "moby", 1, "whale", 2},
		{"run-1", "moby", 2, "sea", 1},
		{"run-1", "walden", 1, "pond", 1},
	}, freqs.Rows)

	dist := tables[2]
	assert.Equal(t, [][]any{
		{"run-1", "moby", 1, "whale", 4},
		{"run-1", "moby", 2, "sea", 2},
		{"run-1", "walden", 1, "pond", 2},
	}, dist.Rows)

	overlap := tables[3]
	assert.Equal(t, [][]any{
		{"run-1", "moby", "walden", 0, 0.0},
		{"run-1", "walden", "moby", 0, 0.0},
	}, overlap.Rows)
}

func TestChunkRows(t *testing.T) {
	rows := make([][]any, 1201)
	for i := range rows {
		rows[i] = []any{i}
	}
	chunks := chunkRows(rows, 500)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
	assert.Len(t, chunks[1], 500)
	assert.Len(t, chunks[2], 201)
	assert.Equal(t, 1200, chunks[2][200][0])

	assert.Len(t, chunkRows(rows[:500], 500), 1)
	assert.Empty(t, chunkRows(nil, 500))
}

func TestTableNamesAndDDL(t *testing.T) {
	rdb := NewReportDatabase(context.Background(), nil, "lit")
	assert.Equal(
		t,
		[]string{"lit_texts", "lit_word_freqs", "lit_distinctive", "lit_overlap"},
		rdb.tables(),
	)
	ddl := rdb.tableDDL()
	require.Len(t, ddl, 4)
	for i, stmt := range ddl {
		assert.True(t, strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS "+rdb.tables()[i]+" ("))
	}
	// all the copied columns must exist in the respective table
	for i, tr := range ReportRows(sampleReport()) {
		for _, col := range tr.Cols {
			assert.Contains(t, ddl[i], "\t"+col+" ", col)
		}
	}
}

func TestDBConfValidateAndDefaults(t *testing.T) {
	conf := DBConf{Host: "localhost", Name: "lit", User: "reader"}
	require.NoError(t, conf.ValidateAndDefaults("db"))
	assert.Equal(t, 5432, conf.Port)
	assert.Equal(t, 4, conf.PoolSize)
	assert.Equal(t, "distread", conf.TablePrefix)
	assert.Equal(
		t,
		"user=reader password= host=localhost port=5432 dbname=lit sslmode=disable pool_max_conns=4",
		conf.DSN(),
	)

	assert.Error(t, (&DBConf{Name: "lit", User: "reader"}).ValidateAndDefaults("db"))
	assert.Error(t, (&DBConf{Host: "h", User: "reader"}).ValidateAndDefaults("db"))
	assert.Error(t, (&DBConf{Host: "h", Name: "lit"}).ValidateAndDefaults("db"))
	conf = DBConf{Host: "h", Name: "lit", User: "u", TablePrefix: "x; DROP"}
	assert.Error(t, conf.ValidateAndDefaults("db"))
}
