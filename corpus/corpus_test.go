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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCorpusIsValid(t *testing.T) {
	cc := DefaultCorpus()
	require.NoError(t, cc.ValidateAndDefaults("corpus"))
	assert.Len(t, cc, 5)
	assert.Equal(t, "emerson_nature", cc[0].ID)
	assert.Equal(t, "melville_moby", cc[4].ID)
	for _, tp := range cc {
		assert.Equal(t, "utf-8", tp.Encoding)
		assert.Equal(t, FormatPlain, tp.Format)
	}
}

func TestGetTextProps(t *testing.T) {
	cc := DefaultCorpus()
	tp := cc.GetTextProps("thoreau_walden")
	require.NotNil(t, tp)
	assert.Equal(t, 205, tp.GutenbergID)
	assert.Nil(t, cc.GetTextProps("austen_emma"))
}

func TestRecordKeepsBibliographicFields(t *testing.T) {
	tp := DefaultCorpus()[1]
	rec := tp.Record()
	assert.Equal(t, TextRecord{
		ID:          "thoreau_walden",
		Title:       "Walden, and On The Duty Of Civil Disobedience",
		Author:      "Henry David Thoreau",
		Year:        1854,
		GutenbergID: 205,
	}, rec)
}

func TestValidateRejectsBadEntries(t *testing.T) {
	assert.Error(t, CorpusConf{}.ValidateAndDefaults("corpus"))
	assert.Error(t, CorpusConf{{ID: "a"}}.ValidateAndDefaults("corpus"))
	assert.Error(t, CorpusConf{{File: "a.txt"}}.ValidateAndDefaults("corpus"))
	assert.Error(t, CorpusConf{{ID: "a", File: "a.txt", Format: "xml"}}.ValidateAndDefaults("corpus"))
	assert.Error(t, CorpusConf{
		{ID: "a", File: "a.txt"},
		{ID: "a", File: "b.txt"},
	}.ValidateAndDefaults("corpus"))
}

func TestDecodeText(t *testing.T) {
	s, err := DecodeText([]byte("Brontë"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "Brontë", s)

	s, err = DecodeText([]byte{'B', 'r', 'o', 'n', 't', 0xeb}, "windows-1252")
	require.NoError(t, err)
	assert.Equal(t, "Brontë", s)

	_, err = DecodeText([]byte{'B', 0xff, 0xfe}, "utf-8")
	assert.Error(t, err)

	_, err = DecodeText([]byte("abc"), "no-such-encoding")
	assert.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), "utf-8")
	assert.ErrorIs(t, err, ErrIOFailure)
}

func TestLoadTextPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.txt")
	require.NoError(t, os.WriteFile(path, []byte("Call me Ishmael."), 0644))
	text, err := LoadText(&TextProps{ID: "moby", File: path, Format: FormatPlain})
	require.NoError(t, err)
	assert.Equal(t, "Call me Ishmael.", text)
}

func TestLoadTextVertical(t *testing.T) {
	vert := "<doc id=\"moby\">\n<s>\nCall\tcall\nme\tme\nIshmael\tIshmael\n.\t.\n</s>\n" +
		"<s>\nSome\tsome\nyears\tyear\nago\tago\n</s>\n</doc>\n"
	path := filepath.Join(t.TempDir(), "moby.vert")
	require.NoError(t, os.WriteFile(path, []byte(vert), 0644))
	text, err := LoadText(&TextProps{ID: "moby", File: path, Encoding: "utf-8", Format: FormatVertical})
	require.NoError(t, err)
	assert.Equal(t, "Call me Ishmael .\nSome years ago", text)
}

func TestLoadTextVerticalMissing(t *testing.T) {
	_, err := LoadText(&TextProps{
		ID: "moby", File: filepath.Join(t.TempDir(), "nope.vert"), Format: FormatVertical})
	assert.ErrorIs(t, err, ErrIOFailure)
}
