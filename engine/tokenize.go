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
	_ "embed"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
)

const (
	MinTokenLength = 3
)

// the NLTK English stopword list
//
//go:embed stopwords_en.txt
var stopwordsSrc string

var englishStopwords = loadStopwords(stopwordsSrc)

func loadStopwords(src string) map[string]bool {
	ans := make(map[string]bool)
	for _, w := range strings.Fields(src) {
		ans[w] = true
	}
	return ans
}

func IsStopword(word string) bool {
	return englishStopwords[word]
}

// IsAlpha tells whether the string is non-empty and
// consists of letters only.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Tokenizer produces the filtered token sequence used for frequency
// and vocabulary analysis: lower-cased alphabetic words at least
// MinTokenLength characters long, stopwords removed, text order kept.
type Tokenizer struct {
	sentences SentenceSplitter
	words     WordSplitter
	stem      bool
}

// Keep applies the filtering policy to a single lower-cased token.
func (t *Tokenizer) Keep(token string) bool {
	return IsAlpha(token) &&
		utf8.RuneCountInString(token) >= MinTokenLength &&
		!IsStopword(token)
}

func (t *Tokenizer) Tokens(text string) []string {
	text = strings.ToLower(text)
	ans := make([]string, 0, len(text)/8)
	for _, sent := range t.sentences.Split(text) {
		for _, tok := range t.words.Split(sent) {
			if !t.Keep(tok) {
				continue
			}
			if t.stem {
				tok = english.Stem(tok, false)
			}
			ans = append(ans, tok)
		}
	}
	return ans
}

func NewTokenizer(sentences SentenceSplitter, words WordSplitter, stem bool) *Tokenizer {
	return &Tokenizer{
		sentences: sentences,
		words:     words,
		stem:      stem,
	}
}
