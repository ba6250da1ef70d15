// Package vocab supplies the engine's external collaborators: word lists
// and frequency weight tables. The core packages only ever see validated
// game.Word values and weight lookups.
package vocab

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"wordler/game"
)

//go:embed default_words.txt
var defaultWords string

// WordsFileEnv names the word-list file used by LoadDefault.
const WordsFileEnv = "WORDLER_WORDS_FILE"

var ErrEmptyVocabulary = errors.New("vocabulary is empty")

// Load reads a newline-separated word file. Words are lowercased and
// validated; duplicates are dropped, keeping the first occurrence. Blank
// lines and lines starting with '#' are skipped.
func Load(path string) ([]game.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()
	return parseWords(f, path)
}

// LoadDefault loads the list named by WORDLER_WORDS_FILE, falling back to
// a small embedded list so the tool runs without any configuration.
func LoadDefault() ([]game.Word, error) {
	if path := os.Getenv(WordsFileEnv); path != "" {
		return Load(path)
	}
	return parseWords(strings.NewReader(defaultWords), "embedded word list")
}

func parseWords(r io.Reader, source string) ([]game.Word, error) {
	seen := make(map[game.Word]struct{})
	var words []game.Word
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		w, err := game.ParseWord(raw)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", source, line, err)
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmptyVocabulary)
	}
	return words, nil
}
