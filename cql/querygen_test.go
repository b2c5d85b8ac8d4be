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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordInText(t *testing.T) {
	attrs := DefaultQueryAttrs()
	assert.Equal(
		t,
		`[lc="whale"] within <doc id="melville_moby" />`,
		WordInText(&attrs, "melville_moby", "whale"),
	)
	assert.Equal(
		t,
		`[lc="say \"no\""] within <doc id="a\\b" />`,
		WordInText(&attrs, `a\b`, `say "no"`),
	)
}

func TestWordInTextTplMatchesWordInText(t *testing.T) {
	attrs := QueryAttrs{WordAttr: "word", DocStruct: "text", DocIDAttr: "ident"}
	for _, textID := range []string{"thoreau_walden", "100%_pure"} {
		tpl := WordInTextTpl(&attrs, textID)
		assert.Equal(t, WordInText(&attrs, textID, "pond"), fmt.Sprintf(tpl, "pond"))
	}
}

func TestQueryAttrsDefaults(t *testing.T) {
	var attrs QueryAttrs
	attrs.ValidateAndDefaults("query")
	assert.Equal(t, DefaultQueryAttrs(), attrs)

	attrs = QueryAttrs{WordAttr: "word"}
	attrs.ValidateAndDefaults("query")
	assert.Equal(t, "word", attrs.WordAttr)
	assert.Equal(t, "doc", attrs.DocStruct)
}
