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

package main

import (
	"net/http"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/technical-communicator/American-Transcendentalism/corpus"
	"github.com/technical-communicator/American-Transcendentalism/cql"
	"github.com/technical-communicator/American-Transcendentalism/engine"
)

const (
	dfltMaxItems = 10
)

type textSummary struct {
	Metadata   corpus.TextRecord        `json:"metadata"`
	Statistics engine.StatisticsSummary `json:"statistics"`
	Sentiment  engine.SentimentSummary  `json:"sentiment"`
}

type distinctiveWordsResp struct {
	TextID           string              `json:"textId"`
	Words            []engine.ScoredWord `json:"words"`
	ExamplesQueryTpl string              `json:"examplesQueryTpl"`
}

type overlapResp struct {
	TextID  string               `json:"textId"`
	Overlap *engine.OverlapTable `json:"overlap"`
}

// Actions serves data of a single analysis report
type Actions struct {
	report *engine.Report
	query  *cql.QueryAttrs
}

// getText returns a text of the report matching the `textId` URL
// parameter. If not found, an error response is written and nil
// is returned.
func (a *Actions) getText(ctx *gin.Context) (string, *engine.TextResult) {
	textID := ctx.Param("textId")
	ans := a.report.GetText(textID)
	if ans == nil {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError("text not found"),
			http.StatusNotFound,
		)
		return textID, nil
	}
	return textID, ans
}

func (a *Actions) getMaxItems(ctx *gin.Context) (int, bool) {
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", dfltMaxItems)
	if !ok {
		return 0, false
	}
	if maxItems < 0 {
		uniresp.RespondWithErrorJSON(
			ctx,
			uniresp.NewActionError("invalid maxItems value"),
			http.StatusUnprocessableEntity,
		)
		return 0, false
	}
	return maxItems, true
}

func (a *Actions) Metadata(ctx *gin.Context) {
	uniresp.WriteJSONResponse(ctx.Writer, a.report.Metadata)
}

func (a *Actions) Texts(ctx *gin.Context) {
	ans := make([]textSummary, 0, a.report.Texts.Len())
	for pair := a.report.Texts.Oldest(); pair != nil; pair = pair.Next() {
		ans = append(ans, textSummary{
			Metadata:   pair.Value.Metadata,
			Statistics: pair.Value.Statistics,
			Sentiment:  pair.Value.Sentiment,
		})
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

func (a *Actions) Text(ctx *gin.Context) {
	_, text := a.getText(ctx)
	if text == nil {
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, text)
}

func (a *Actions) WordFrequency(ctx *gin.Context) {
	textID, text := a.getText(ctx)
	if text == nil {
		return
	}
	maxItems, ok := a.getMaxItems(ctx)
	if !ok {
		return
	}
	resp := engine.NewFreqDistrib(textID, text)
	resp.Freqs = resp.Freqs.Cut(maxItems)
	resp.ExamplesQueryTpl = cql.WordInTextTpl(a.query, textID)
	uniresp.WriteJSONResponse(ctx.Writer, resp)
}

func (a *Actions) DistinctiveWords(ctx *gin.Context) {
	textID, text := a.getText(ctx)
	if text == nil {
		return
	}
	maxItems, ok := a.getMaxItems(ctx)
	if !ok {
		return
	}
	words, _ := a.report.Comparative.DistinctiveWords.Get(textID)
	if len(words) > maxItems {
		words = words[:maxItems]
	}
	if words == nil {
		words = []engine.ScoredWord{}
	}
	uniresp.WriteJSONResponse(
		ctx.Writer,
		distinctiveWordsResp{
			TextID:           textID,
			Words:            words,
			ExamplesQueryTpl: cql.WordInTextTpl(a.query, textID),
		},
	)
}

func (a *Actions) Overlap(ctx *gin.Context) {
	textID, text := a.getText(ctx)
	if text == nil {
		return
	}
	table, _ := a.report.Comparative.VocabularyOverlap.Get(textID)
	uniresp.WriteJSONResponse(ctx.Writer, overlapResp{TextID: textID, Overlap: table})
}

func NewActions(report *engine.Report, query *cql.QueryAttrs) *Actions {
	return &Actions{
		report: report,
		query:  query,
	}
}
