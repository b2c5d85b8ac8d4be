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
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v5"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ErrIOFailure wraps all the problems with reading an input
// file (missing file, permissions, undecodable content).
var ErrIOFailure = errors.New("cannot load text")

func ioFailure(path string, err error) error {
	return fmt.Errorf("%w %s: %w", ErrIOFailure, path, err)
}

// DecodeText converts raw file content in the specified
// encoding to a UTF-8 string.
func DecodeText(data []byte, encName string) (string, error) {
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("content is not a valid UTF-8 text")
		}
		return string(data), nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		return "", fmt.Errorf("unsupported encoding %s: %w", encName, err)
	}
	ans, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s content: %w", encName, err)
	}
	return string(ans), nil
}

// ReadFile loads a whole file and decodes it to UTF-8.
func ReadFile(path, encName string) (string, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return "", ioFailure(path, err)
	}
	text, err := DecodeText(rawData, encName)
	if err != nil {
		return "", ioFailure(path, err)
	}
	return text, nil
}

// vertTextBuilder rebuilds a running text out of a vertical
// file. Tokens are separated by spaces, closed sentences
// and paragraphs by a newline.
type vertTextBuilder struct {
	buff      strings.Builder
	lineStart bool
}

func (vb *vertTextBuilder) ProcToken(token *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	if vb.buff.Len() > 0 && !vb.lineStart {
		vb.buff.WriteByte(' ')
	}
	vb.buff.WriteString(token.Word)
	vb.lineStart = false
	return nil
}

func (vb *vertTextBuilder) ProcStruct(strc *vertigo.Structure, line int, err error) error {
	return err
}

func (vb *vertTextBuilder) ProcStructClose(strc *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		return err
	}
	if (strc.Name == "s" || strc.Name == "p") && vb.buff.Len() > 0 && !vb.lineStart {
		vb.buff.WriteByte('\n')
		vb.lineStart = true
	}
	return nil
}

func (vb *vertTextBuilder) String() string {
	return strings.TrimSpace(vb.buff.String())
}

// ReadVerticalFile rebuilds a plain text from a vertical file
// (one token per line, XML-like structures).
func ReadVerticalFile(path, encName string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", ioFailure(path, err)
	}
	pc := &vertigo.ParserConf{
		InputFilePath:         path,
		Encoding:              encName,
		StructAttrAccumulator: "comb",
	}
	proc := &vertTextBuilder{}
	if err := vertigo.ParseVerticalFile(pc, proc); err != nil {
		return "", ioFailure(path, err)
	}
	return proc.String(), nil
}

// LoadText reads the clean text of a configured corpus item.
func LoadText(props *TextProps) (string, error) {
	var text string
	var err error
	if props.IsVertical() {
		text, err = ReadVerticalFile(props.File, props.Encoding)

	} else {
		text, err = ReadFile(props.File, props.Encoding)
	}
	if err != nil {
		return "", err
	}
	log.Debug().
		Str("textId", props.ID).
		Str("file", props.File).
		Int("size", len(text)).
		Msg("text loaded")
	return text, nil
}
