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

package cql

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	dfltWordAttr  = "lc"
	dfltDocStruct = "doc"
	dfltDocIDAttr = "id"
)

// QueryAttrs describes how the texts are encoded in a searchable
// corpus so the produced queries can be used to obtain examples
type QueryAttrs struct {

	// WordAttr is a positional attribute matching filtered tokens
	// (i.e. lowercase word forms)
	WordAttr string `json:"wordAttr"`

	// DocStruct is a structure wrapping individual texts
	DocStruct string `json:"docStruct"`

	// DocIDAttr is an attribute of DocStruct containing text IDs
	DocIDAttr string `json:"docIdAttr"`
}

func (conf *QueryAttrs) ValidateAndDefaults(confContext string) {
	if conf.WordAttr == "" {
		conf.WordAttr = dfltWordAttr
		log.Warn().Msgf("%s.wordAttr not specified, using default: %s", confContext, conf.WordAttr)
	}
	if conf.DocStruct == "" {
		conf.DocStruct = dfltDocStruct
		log.Warn().Msgf("%s.docStruct not specified, using default: %s", confContext, conf.DocStruct)
	}
	if conf.DocIDAttr == "" {
		conf.DocIDAttr = dfltDocIDAttr
		log.Warn().Msgf("%s.docIdAttr not specified, using default: %s", confContext, conf.DocIDAttr)
	}
}

func DefaultQueryAttrs() QueryAttrs {
	return QueryAttrs{
		WordAttr:  dfltWordAttr,
		DocStruct: dfltDocStruct,
		DocIDAttr: dfltDocIDAttr,
	}
}

func escapeValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `"`, `\"`)
}

// WordInText creates a query searching for a word within a single text
func WordInText(conf *QueryAttrs, textID, word string) string {
	return fmt.Sprintf(
		`[%s="%s"] within <%s %s="%s" />`,
		conf.WordAttr, escapeValue(word),
		conf.DocStruct, conf.DocIDAttr, escapeValue(textID),
	)
}

// WordInTextTpl creates a query template for WordInText where
// the word is left as a `%s` placeholder.
func WordInTextTpl(conf *QueryAttrs, textID string) string {
	return fmt.Sprintf(
		`[%s="%%s"] within <%s %s="%s" />`,
		conf.WordAttr,
		conf.DocStruct, conf.DocIDAttr, strings.ReplaceAll(escapeValue(textID), "%", "%%"),
	)
}
