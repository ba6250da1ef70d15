package game

import (
	"errors"
	"fmt"
	"strings"
)

// WordLen is the number of letters in every word.
const WordLen = 5

var (
	ErrWordLen  = errors.New("word must be exactly 5 letters")
	ErrWordChar = errors.New("word must contain only letters a-z")
)

// Word is a fixed-length lowercase word. Words compare and hash by value,
// so they can key outcome buckets and caches directly.
type Word string

// ParseWord normalizes and validates an externally supplied word.
func ParseWord(s string) (Word, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLen {
		return "", ErrWordLen
	}
	for i := 0; i < WordLen; i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return "", ErrWordChar
		}
	}
	return Word(s), nil
}

func (w Word) String() string { return string(w) }

// letterBit maps a letter to its bit in a 26-bit charset mask.
func letterBit(c byte) uint32 { return 1 << (c - 'a') }

// charSet returns the mask of letters occurring anywhere in w.
func (w Word) charSet() uint32 {
	var set uint32
	for i := 0; i < len(w); i++ {
		set |= letterBit(w[i])
	}
	return set
}

func mustLen(w Word) {
	if len(w) != WordLen {
		panic(fmt.Sprintf("word %q is not %d letters", string(w), WordLen))
	}
}
