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

package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technical-communicator/American-Transcendentalism/corpus"
)

const synthetic = "*** START OF THE PROJECT GUTENBERG EBOOK TITLE ***\n\nBODY\n\n" +
	"*** END OF THE PROJECT GUTENBERG EBOOK TITLE ***"

func TestExtractSynthetic(t *testing.T) {
	body, err := Extract(synthetic)
	require.NoError(t, err)
	assert.Equal(t, "BODY", body)
}

func TestExtractCaseInsensitiveAndThisVariant(t *testing.T) {
	content := "The Project Gutenberg eBook of Nature\r\n" +
		"*** start of this project gutenberg ebook nature ***\r\n" +
		"  NATURE.\r\n\r\nA subtle chain of countless rings  \r\n" +
		"*** End of This Project Gutenberg eBook Nature ***\r\nlicense text"
	body, err := Extract(content)
	require.NoError(t, err)
	assert.Equal(t, "NATURE.\r\n\r\nA subtle chain of countless rings", body)
}

func TestExtractMissingMarkers(t *testing.T) {
	_, err := Extract("*** START OF THE PROJECT GUTENBERG EBOOK X ***\nbody only")
	assert.ErrorIs(t, err, ErrDelimiterNotFound)

	_, err = Extract("body\n*** END OF THE PROJECT GUTENBERG EBOOK X ***")
	assert.ErrorIs(t, err, ErrDelimiterNotFound)

	// the title part must not be empty
	_, err = Extract("*** START OF THE PROJECT GUTENBERG EBOOK ***\nbody\n*** END OF THE PROJECT GUTENBERG EBOOK ***")
	assert.ErrorIs(t, err, ErrDelimiterNotFound)
}

func TestExtractMarkerMustStayOnOneLine(t *testing.T) {
	_, err := Extract("*** START OF THE PROJECT GUTENBERG EBOOK X\n***\nbody\n*** END OF THE PROJECT GUTENBERG EBOOK X ***")
	assert.ErrorIs(t, err, ErrDelimiterNotFound)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	okSrc := filepath.Join(dir, "pg1.txt")
	badSrc := filepath.Join(dir, "pg2.txt")
	require.NoError(t, os.WriteFile(okSrc, []byte("header\n"+synthetic+"\nfooter"), 0644))
	require.NoError(t, os.WriteFile(badSrc, []byte("no markers here"), 0644))

	texts := corpus.CorpusConf{
		{ID: "ok", SourceFile: okSrc, File: filepath.Join(dir, "clean_ok.txt"), Encoding: "utf-8"},
		{ID: "bad", SourceFile: badSrc, File: filepath.Join(dir, "clean_bad.txt"), Encoding: "utf-8"},
		{ID: "missing", SourceFile: filepath.Join(dir, "pg3.txt"), File: filepath.Join(dir, "clean_missing.txt")},
		{ID: "vert", File: filepath.Join(dir, "v.vert"), Format: corpus.FormatVertical},
	}
	summary := Run(texts)
	require.Len(t, summary.Files, 4)
	assert.Equal(t, 1, summary.Count(StatusExtracted))
	assert.Equal(t, 1, summary.Count(StatusFailed))
	assert.Equal(t, 1, summary.Count(StatusMissing))
	assert.Equal(t, 1, summary.Count(StatusSkipped))

	assert.Equal(t, StatusExtracted, summary.Files[0].Status)
	assert.Equal(t, 1, summary.Files[0].Words)
	data, err := os.ReadFile(filepath.Join(dir, "clean_ok.txt"))
	require.NoError(t, err)
	assert.Equal(t, "BODY", string(data))

	assert.ErrorIs(t, summary.Files[1].Err, ErrDelimiterNotFound)
	_, err = os.Stat(filepath.Join(dir, "clean_bad.txt"))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, summary.Files[2].Err, corpus.ErrIOFailure)
}
