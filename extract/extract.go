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

// Package extract cuts literary body text out of Project Gutenberg
// files, dropping the license header and footer.
package extract

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/technical-communicator/American-Transcendentalism/corpus"
)

var (
	// ErrDelimiterNotFound means that the START or the END marker
	// is missing in the source file.
	ErrDelimiterNotFound = errors.New("could not find delimiters")

	startMarker = regexp.MustCompile(`(?i)\*\*\* START OF (?:THIS|THE) PROJECT GUTENBERG EBOOK .+ \*\*\*`)
	endMarker   = regexp.MustCompile(`(?i)\*\*\* END OF (?:THIS|THE) PROJECT GUTENBERG EBOOK .+ \*\*\*`)
)

// Extract returns text found between the first START and the first
// END marker with surrounding whitespace removed.
func Extract(content string) (string, error) {
	startLoc := startMarker.FindStringIndex(content)
	endLoc := endMarker.FindStringIndex(content)
	if startLoc == nil || endLoc == nil {
		return "", ErrDelimiterNotFound
	}
	if endLoc[0] < startLoc[1] {
		// markers in reversed order produce an empty body
		return "", nil
	}
	return strings.TrimSpace(content[startLoc[1]:endLoc[0]]), nil
}

type Status string

const (
	StatusExtracted Status = "extracted"
	StatusMissing   Status = "missing"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

// FileResult describes what happened to a single source file.
type FileResult struct {
	TextID     string
	SourceFile string
	OutputFile string
	Status     Status
	Words      int
	Err        error
}

type Summary struct {
	Files []FileResult
}

func (s *Summary) Count(status Status) int {
	var ans int
	for _, f := range s.Files {
		if f.Status == status {
			ans++
		}
	}
	return ans
}

func (s *Summary) add(res FileResult) {
	s.Files = append(s.Files, res)
}

// ExtractFile reads a raw Gutenberg file, extracts its body and
// writes it verbatim to outPath. It returns the number of
// whitespace-separated words written.
func ExtractFile(srcPath, encName, outPath string) (int, error) {
	content, err := corpus.ReadFile(srcPath, encName)
	if err != nil {
		return 0, err
	}
	body, err := Extract(content)
	if err != nil {
		return 0, fmt.Errorf("%w in %s", err, srcPath)
	}
	if body == "" {
		return 0, fmt.Errorf("%w in %s (empty body)", ErrDelimiterNotFound, srcPath)
	}
	if err := os.WriteFile(outPath, []byte(body), 0644); err != nil {
		return 0, fmt.Errorf("%w %s: %w", corpus.ErrIOFailure, outPath, err)
	}
	return len(strings.Fields(body)), nil
}

// Run processes all the corpus texts with a source file. Failures
// are terminal only for the respective file.
func Run(texts corpus.CorpusConf) *Summary {
	summary := &Summary{}
	for _, props := range texts {
		res := FileResult{
			TextID:     props.ID,
			SourceFile: props.SourceFile,
			OutputFile: props.File,
		}
		if props.SourceFile == "" || props.IsVertical() {
			log.Info().Str("textId", props.ID).Msg("no raw source to extract, skipping")
			res.Status = StatusSkipped
			summary.add(res)
			continue
		}
		if _, err := os.Stat(props.SourceFile); err != nil {
			log.Warn().Str("file", props.SourceFile).Err(err).Msg("file not found")
			res.Status = StatusMissing
			res.Err = fmt.Errorf("%w %s: %w", corpus.ErrIOFailure, props.SourceFile, err)
			summary.add(res)
			continue
		}
		log.Info().
			Str("title", props.Title).
			Str("author", props.Author).
			Str("file", props.SourceFile).
			Msg("processing")
		words, err := ExtractFile(props.SourceFile, props.Encoding, props.File)
		if errors.Is(err, ErrDelimiterNotFound) {
			log.Warn().Err(err).Str("file", props.SourceFile).Msg("failed to extract text")
			res.Status = StatusFailed
			res.Err = err

		} else if err != nil {
			log.Error().Err(err).Str("file", props.SourceFile).Msg("failed to process file")
			res.Status = StatusFailed
			res.Err = err

		} else {
			log.Info().
				Int("words", words).
				Str("output", props.File).
				Msg("text extracted")
			res.Status = StatusExtracted
			res.Words = words
		}
		summary.add(res)
	}
	return summary
}
