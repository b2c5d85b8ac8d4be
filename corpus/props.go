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

package corpus

import (
	"fmt"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
)

const (
	FormatPlain    = "plain"
	FormatVertical = "vertical"

	dfltEncoding = "utf-8"
)

var supportedFormats = []string{FormatPlain, FormatVertical}

// TextRecord is the bibliographic identity of a text
// as it appears in the analysis report.
type TextRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        int    `json:"year"`
	GutenbergID int    `json:"gutenberg_id"`
}

// TextProps configures a single text of the corpus.
type TextProps struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        int    `json:"year"`
	GutenbergID int    `json:"gutenbergId"`

	// SourceFile is a raw Project Gutenberg file the extractor
	// reads. It may be empty for texts which are already clean.
	SourceFile string `json:"sourceFile"`

	// File is the clean text. It is written by the extractor
	// and read by the analyzer.
	File string `json:"file"`

	// Encoding of File (any name known to the WHATWG encoding
	// index, e.g. `utf-8`, `windows-1252`, `iso-8859-2`)
	Encoding string `json:"encoding"`

	// Format is either `plain` or `vertical`
	Format string `json:"format"`
}

func (tp *TextProps) Record() TextRecord {
	return TextRecord{
		ID:          tp.ID,
		Title:       tp.Title,
		Author:      tp.Author,
		Year:        tp.Year,
		GutenbergID: tp.GutenbergID,
	}
}

func (tp *TextProps) IsVertical() bool {
	return tp.Format == FormatVertical
}

func (tp *TextProps) ValidateAndDefaults(confContext string) error {
	if tp.ID == "" {
		return fmt.Errorf("missing `%s.id`", confContext)
	}
	if tp.File == "" {
		return fmt.Errorf("missing `%s.file` (text %s)", confContext, tp.ID)
	}
	if tp.Encoding == "" {
		tp.Encoding = dfltEncoding
	}
	tp.Encoding = strings.ToLower(tp.Encoding)
	if tp.Format == "" {
		tp.Format = FormatPlain
	}
	if !collections.SliceContains(supportedFormats, tp.Format) {
		return fmt.Errorf(
			"invalid `%s.format` value `%s` (text %s)", confContext, tp.Format, tp.ID)
	}
	return nil
}

// CorpusConf is an ordered table of texts. The order
// determines the order of texts in the analysis report.
type CorpusConf []*TextProps

func (cc CorpusConf) GetTextProps(textID string) *TextProps {
	for _, props := range cc {
		if props.ID == textID {
			return props
		}
	}
	return nil
}

func (cc CorpusConf) ValidateAndDefaults(confContext string) error {
	if len(cc) == 0 {
		return fmt.Errorf("`%s` contains no texts", confContext)
	}
	seen := make(map[string]bool)
	for _, props := range cc {
		if err := props.ValidateAndDefaults(confContext); err != nil {
			return err
		}
		if seen[props.ID] {
			return fmt.Errorf("duplicate text id `%s` in `%s`", props.ID, confContext)
		}
		seen[props.ID] = true
	}
	return nil
}

// DefaultCorpus returns the five American Transcendentalist
// texts the project was built for.
func DefaultCorpus() CorpusConf {
	return CorpusConf{
		{
			ID:          "emerson_nature",
			Title:       "Nature",
			Author:      "Ralph Waldo Emerson",
			Year:        1836,
			GutenbergID: 29433,
			SourceFile:  "pg29433.txt",
			File:        "clean_emerson_nature.txt",
		},
		{
			ID:          "thoreau_walden",
			Title:       "Walden, and On The Duty Of Civil Disobedience",
			Author:      "Henry David Thoreau",
			Year:        1854,
			GutenbergID: 205,
			SourceFile:  "pg205.txt",
			File:        "clean_thoreau_walden.txt",
		},
		{
			ID:          "whitman_leaves",
			Title:       "Leaves of Grass",
			Author:      "Walt Whitman",
			Year:        1855,
			GutenbergID: 1322,
			SourceFile:  "pg1322.txt",
			File:        "clean_whitman_leaves.txt",
		},
		{
			ID:          "hawthorne_scarlet",
			Title:       "The Scarlet Letter",
			Author:      "Nathaniel Hawthorne",
			Year:        1850,
			GutenbergID: 25344,
			SourceFile:  "pg25344 (1).txt",
			File:        "clean_hawthorne_scarlet.txt",
		},
		{
			ID:          "melville_moby",
			Title:       "Moby Dick; Or, The Whale",
			Author:      "Herman Melville",
			Year:        1851,
			GutenbergID: 2701,
			SourceFile:  "pg2701.txt",
			File:        "clean_melville_moby.txt",
		},
	}
}
