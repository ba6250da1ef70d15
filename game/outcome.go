package game

import "errors"

// Tile is the feedback for a single guessed letter.
type Tile byte

const (
	TileAbsent  Tile = iota // letter does not occur in the word
	TilePresent             // letter occurs elsewhere in the word
	TileCorrect             // letter is in the right position
)

// Outcome is the per-position feedback for one guess against one assumed
// true word. It is a comparable value and keys outcome buckets directly.
type Outcome [WordLen]Tile

var ErrOutcomeChar = errors.New("outcome must contain only '=', '+' and '-'")

// String renders the wire notation: '=' correct, '+' present, '-' absent.
func (o Outcome) String() string {
	var b [WordLen]byte
	for i, t := range o {
		switch t {
		case TileCorrect:
			b[i] = '='
		case TilePresent:
			b[i] = '+'
		default:
			b[i] = '-'
		}
	}
	return string(b[:])
}

// ParseOutcome reads the wire notation produced by String.
func ParseOutcome(s string) (Outcome, error) {
	if len(s) != WordLen {
		return Outcome{}, ErrWordLen
	}
	var o Outcome
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case '=':
			o[i] = TileCorrect
		case '+':
			o[i] = TilePresent
		case '-':
			o[i] = TileAbsent
		default:
			return Outcome{}, ErrOutcomeChar
		}
	}
	return o, nil
}

// AllCorrect reports whether every tile is correct, i.e. the guess was the
// answer.
func (o Outcome) AllCorrect() bool {
	for _, t := range o {
		if t != TileCorrect {
			return false
		}
	}
	return true
}

// ComputeOutcome scores guess against an assumed true word.
//
// The first pass marks correct positions and counts the leftover true-word
// letters. The second pass marks a remaining guess letter present while a
// count is left, else absent. Multiplicities are tracked only by this
// single counting pass; the constraint accumulation in Advance keeps the
// matching approximation for repeated letters.
//
// Panics if either word is not WordLen letters.
func ComputeOutcome(guess, trueWord Word) Outcome {
	mustLen(guess)
	mustLen(trueWord)

	var out Outcome
	var counts [26]int
	for i := 0; i < WordLen; i++ {
		if guess[i] == trueWord[i] {
			out[i] = TileCorrect
		} else {
			counts[trueWord[i]-'a']++
		}
	}
	for i := 0; i < WordLen; i++ {
		if out[i] == TileCorrect {
			continue
		}
		if c := guess[i] - 'a'; counts[c] > 0 {
			out[i] = TilePresent
			counts[c]--
		} else {
			out[i] = TileAbsent
		}
	}
	return out
}
