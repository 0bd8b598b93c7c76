package wallet

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"

	"github.com/seedcash/seedcash/internal/entropy"
)

// Patterns stripped from pasted mnemonic text: numbered-list prefixes
// ("1." "2)" "3:") and bullet markers.
//
//nolint:gochecknoglobals // compiled once
var (
	numberedListRegex = regexp.MustCompile(`(^|\s)\d{1,2}[.):]\s*`)
	bulletListRegex   = regexp.MustCompile(`(^|\s)[-*•]\s*`)
	whitespaceRegex   = regexp.MustCompile(`\s+`)
)

// wordBits is the number of bits encoded by one mnemonic word.
const wordBits = 11

// Supported mnemonic word counts, in ascending order.
//
//nolint:gochecknoglobals // fixed protocol constant
var SupportedWordCounts = []int{12, 15, 18, 21, 24}

// validWordCount reports whether n is a supported mnemonic length.
func validWordCount(n int) bool {
	switch n {
	case 12, 15, 18, 21, 24:
		return true
	}
	return false
}

// checksumBits returns the checksum length in bits for a mnemonic of
// numWords words. Equal to entropy_bits/32.
func checksumBits(numWords int) int {
	return numWords / 3
}

// entropyBytes returns the entropy length in bytes for a mnemonic of
// numWords words.
func entropyBytes(numWords int) int {
	return (numWords*wordBits - checksumBits(numWords)) / 8
}

// EntropyToMnemonic encodes entropy as a mnemonic word sequence. The
// entropy must be 16, 20, 24, 28 or 32 bytes; the result carries a
// trailing SHA256-derived checksum of entropy_bits/32 bits.
func EntropyToMnemonic(ent []byte, list *Wordlist) ([]string, error) {
	switch len(ent) {
	case 16, 20, 24, 28, 32:
	default:
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidEntropyLength, len(ent))
	}

	entBits := len(ent) * 8
	csBits := entBits / 32
	totalBits := entBits + csBits

	buf := make([]byte, (totalBits+7)/8)
	copy(buf, ent)

	// The checksum is the leading csBits bits of SHA256(entropy),
	// appended directly after the entropy (which ends on a byte
	// boundary).
	sum := sha256.Sum256(ent)
	setBits(buf, entBits, csBits, uint32(sum[0])>>(8-csBits))

	words := make([]string, totalBits/wordBits)
	for i := range words {
		words[i] = list.Word(int(getBits(buf, i*wordBits, wordBits)))
	}
	return words, nil
}

// MnemonicToEntropy decodes and validates a mnemonic, returning its raw
// entropy. Fails with ErrInvalidMnemonicWord for a word outside the list,
// ErrInvalidMnemonicLength for an unsupported word count, and
// ErrChecksumMismatch when the embedded checksum does not match the
// checksum recomputed from the entropy.
func MnemonicToEntropy(words []string, list *Wordlist) ([]byte, error) {
	indices := make([]uint32, len(words))
	for i, word := range words {
		idx, ok := list.Index(word)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMnemonicWord, word)
		}
		indices[i] = uint32(idx)
	}

	if !validWordCount(len(words)) {
		return nil, fmt.Errorf("%w: got %d words", ErrInvalidMnemonicLength, len(words))
	}

	totalBits := len(words) * wordBits
	csBits := checksumBits(len(words))
	entBits := totalBits - csBits

	buf := make([]byte, (totalBits+7)/8)
	for i, idx := range indices {
		setBits(buf, i*wordBits, wordBits, idx)
	}

	ent := make([]byte, entBits/8)
	copy(ent, buf[:entBits/8])

	sum := sha256.Sum256(ent)
	want := uint32(sum[0]) >> (8 - csBits)
	if got := getBits(buf, entBits, csBits); got != want {
		return nil, ErrChecksumMismatch
	}
	return ent, nil
}

// ValidateMnemonic checks word membership, length and checksum.
func ValidateMnemonic(words []string, list *Wordlist) error {
	_, err := MnemonicToEntropy(words, list)
	return err
}

// GenerateMnemonic creates a fresh random mnemonic of numWords words
// (12, 15, 18, 21 or 24) from the cryptographically secure source.
// Entropy is drawn per call and never reused.
func GenerateMnemonic(numWords int, list *Wordlist) ([]string, error) {
	if !validWordCount(numWords) {
		return nil, fmt.Errorf("%w: got %d words", ErrInvalidMnemonicLength, numWords)
	}

	ent, err := entropy.RandomBytes(entropyBytes(numWords))
	if err != nil {
		return nil, fmt.Errorf("draw entropy: %w", err)
	}
	return EntropyToMnemonic(ent, list)
}

// FinalWordBits returns how many entropy bits the user must supply for
// the final word of a numWords mnemonic (the rest of the word is
// checksum). Returns 0 for unsupported word counts.
func FinalWordBits(numWords int) int {
	if !validWordCount(numWords) {
		return 0
	}
	return wordBits - checksumBits(numWords)
}

// CompleteMnemonic implements the manual last-word flow: all words but
// the last are fixed, and the caller supplies the final word's remaining
// entropy bits (for example from coin flips) as a string of '0' and '1'
// characters, most significant bit first. The checksum is always
// recomputed from the assembled entropy, never taken from the input.
func CompleteMnemonic(preceding []string, finalBits string, list *Wordlist) ([]string, error) {
	numWords := len(preceding) + 1
	if !validWordCount(numWords) {
		return nil, fmt.Errorf("%w: got %d words", ErrInvalidMnemonicLength, numWords)
	}

	csBits := checksumBits(numWords)
	freeBits := wordBits - csBits
	if len(finalBits) != freeBits {
		return nil, fmt.Errorf("%w: need exactly %d bits, got %d",
			ErrInvalidFinalBits, freeBits, len(finalBits))
	}

	totalBits := numWords * wordBits
	entBits := totalBits - csBits

	buf := make([]byte, (totalBits+7)/8)
	for i, word := range preceding {
		idx, ok := list.Index(word)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMnemonicWord, word)
		}
		setBits(buf, i*wordBits, wordBits, uint32(idx))
	}

	off := len(preceding) * wordBits
	for i := 0; i < len(finalBits); i++ {
		switch finalBits[i] {
		case '0':
		case '1':
			setBits(buf, off+i, 1, 1)
		default:
			return nil, fmt.Errorf("%w: %q is not '0' or '1'",
				ErrInvalidFinalBits, finalBits[i])
		}
	}

	// entBits is a whole number of bytes for every supported length.
	ent := buf[:entBits/8]
	sum := sha256.Sum256(ent)
	setBits(buf, entBits, csBits, uint32(sum[0])>>(8-csBits))

	words := make([]string, numWords)
	for i := range words {
		words[i] = list.Word(int(getBits(buf, i*wordBits, wordBits)))
	}
	return words, nil
}

// NormalizeMnemonicInput cleans up a pasted or typed mnemonic sentence:
// lowercases it, strips numbered-list and bullet prefixes, turns commas
// into spaces and collapses whitespace runs. It does not validate
// anything; feed the result to ParseMnemonic.
func NormalizeMnemonicInput(input string) string {
	input = strings.ToLower(input)
	input = numberedListRegex.ReplaceAllString(input, " ")
	input = bulletListRegex.ReplaceAllString(input, " ")
	input = strings.ReplaceAll(input, ",", " ")
	input = whitespaceRegex.ReplaceAllString(input, " ")
	return strings.TrimSpace(input)
}

// ParseMnemonic normalizes free-form mnemonic text and splits it into
// words.
func ParseMnemonic(input string) []string {
	normalized := NormalizeMnemonicInput(input)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// Sentence joins mnemonic words with single spaces, the canonical text
// form fed to seed derivation.
func Sentence(words []string) string {
	return strings.Join(words, " ")
}

// setBits writes the low n bits of v into buf starting at bit offset off,
// most significant bit first.
func setBits(buf []byte, off, n int, v uint32) {
	for i := 0; i < n; i++ {
		if v>>(uint(n-1-i))&1 == 1 {
			buf[(off+i)/8] |= 1 << uint(7-(off+i)%8)
		}
	}
}

// getBits reads n bits from buf starting at bit offset off, most
// significant bit first.
func getBits(buf []byte, off, n int) uint32 {
	var v uint32
	for i := 0; i < n; i++ {
		v <<= 1
		v |= uint32(buf[(off+i)/8]>>uint(7-(off+i)%8)) & 1
	}
	return v
}
