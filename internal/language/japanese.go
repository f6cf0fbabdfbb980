// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package language

import (
	"strings"
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// kagomeTokenizer segments Japanese text with the IPA dictionary. The
// dictionary is loaded on first use and shared afterwards; a kagome
// Tokenizer is safe for concurrent use.
type kagomeTokenizer struct {
	once sync.Once
	t    *tokenizer.Tokenizer
	err  error
}

func (k *kagomeTokenizer) load() {
	k.t, k.err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
}

// Words returns surface forms, skipping symbols (記号) and whitespace. If the
// dictionary fails to load it falls back to whitespace splitting.
func (k *kagomeTokenizer) Words(text string) []string {
	k.once.Do(k.load)
	if k.err != nil {
		return defaultTokenizer{}.Words(text)
	}

	var words []string
	for _, tok := range k.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(tok.Surface) == "" {
			continue
		}
		if f := tok.Features(); len(f) > 0 && f[0] == "記号" {
			continue
		}
		words = append(words, tok.Surface)
	}
	return words
}
