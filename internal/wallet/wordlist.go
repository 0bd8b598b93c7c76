// Package wallet implements the SeedCash key engine: BIP39 mnemonic
// encoding and validation, seed derivation, BIP32 key derivation along
// m/44'/145'/0', extended-key serialization, and legacy/CashAddr address
// encoding. All operations are pure functions over immutable values and
// are safe for concurrent use.
package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordlistSize is the required number of words in a mnemonic word list.
const WordlistSize = 2048

// Wordlist is an immutable 2048-word mnemonic list with constant-time
// reverse lookup. Construct one at startup and share it; it is read-only
// after construction.
type Wordlist struct {
	words []string
	index map[string]int
}

// NewWordlist builds a Wordlist from an ordered list of exactly 2048
// words. The slice is copied; the caller keeps no handle into the list.
func NewWordlist(words []string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("word list must have %d words, got %d", WordlistSize, len(words))
	}

	w := &Wordlist{
		words: make([]string, WordlistSize),
		index: make(map[string]int, WordlistSize),
	}
	copy(w.words, words)
	for i, word := range w.words {
		if _, dup := w.index[word]; dup {
			return nil, fmt.Errorf("duplicate word %q in word list", word)
		}
		w.index[word] = i
	}
	return w, nil
}

// EnglishWordlist returns a Wordlist backed by the standard English
// BIP39 word list.
func EnglishWordlist() *Wordlist {
	w, err := NewWordlist(wordlists.English)
	if err != nil {
		// The embedded list is a compile-time constant of the right shape.
		panic(err)
	}
	return w
}

// Word returns the word at index i (0-based).
func (w *Wordlist) Word(i int) string {
	return w.words[i]
}

// Index returns the index of word and whether it is in the list.
func (w *Wordlist) Index(word string) (int, bool) {
	i, ok := w.index[word]
	return i, ok
}

// Contains reports whether word is in the list.
func (w *Wordlist) Contains(word string) bool {
	_, ok := w.index[word]
	return ok
}

// Words returns a copy of the full ordered word list.
func (w *Wordlist) Words() []string {
	out := make([]string, len(w.words))
	copy(out, w.words)
	return out
}
