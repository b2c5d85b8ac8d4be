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
	"io"
	"strconv"
	"strings"

	"github.com/technical-communicator/American-Transcendentalism/engine"
	"github.com/technical-communicator/American-Transcendentalism/extract"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	summaryRuleWidth = 60
)

func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func printExtractSummary(w io.Writer, summary *extract.Summary) {
	p := newPrinter()
	for _, f := range summary.Files {
		switch f.Status {
		case extract.StatusExtracted:
			p.Fprintf(w, "✓ %s: extracted %d words to %s\n", f.TextID, f.Words, f.OutputFile)
		case extract.StatusMissing:
			p.Fprintf(w, "⚠ %s: file not found: %s\n", f.TextID, f.SourceFile)
		case extract.StatusFailed:
			p.Fprintf(w, "✗ %s: failed to extract text (%s)\n", f.TextID, f.Err)
		case extract.StatusSkipped:
			p.Fprintf(w, "- %s: skipped\n", f.TextID)
		}
	}
	p.Fprintf(
		w,
		"\nExtraction complete! extracted: %d, missing: %d, failed: %d, skipped: %d\n",
		summary.Count(extract.StatusExtracted),
		summary.Count(extract.StatusMissing),
		summary.Count(extract.StatusFailed),
		summary.Count(extract.StatusSkipped),
	)
}

func printAnalysisSummary(w io.Writer, report *engine.Report) {
	p := newPrinter()
	rule := strings.Repeat("=", summaryRuleWidth)
	p.Fprintf(w, "\n%s\nANALYSIS SUMMARY\n%s\n", rule, rule)
	for pair := report.Texts.Oldest(); pair != nil; pair = pair.Next() {
		meta := pair.Value.Metadata
		stats := pair.Value.Statistics
		sent := pair.Value.Sentiment
		// year is printed without a thousands separator
		p.Fprintf(w, "\n%s (%s, %s)\n", meta.Title, meta.Author, strconv.Itoa(meta.Year))
		p.Fprintf(w, "  Words: %d | Unique: %d\n", stats.TotalWords, stats.UniqueWords)
		p.Fprintf(w, "  Lexical Diversity: %.2f%%\n", stats.LexicalDiversity*100)
		p.Fprintf(
			w,
			"  Sentiment: %s (compound: %+.3f)\n",
			strings.ToUpper(sent.Overall),
			sent.Compound,
		)
	}
}
