package game

// State accumulates tile information across rounds. It is an immutable
// comparable value: Advance returns a new State and never mutates the
// receiver, so a snapshot from an earlier round stays valid for replay and
// a State can key the ranking cache directly.
type State struct {
	fixed            [WordLen]byte   // known letter per position, 0 when unknown
	excludedAt       [WordLen]uint32 // letters ruled out per position
	globallyExcluded uint32          // letters absent from the word entirely
	required         uint32          // letters that must occur somewhere
}

// Initial returns the empty-constraint state.
func Initial() State {
	return State{}
}

// Advance folds one guess and its outcome into a new state.
//
// An absent tile only excludes its letter globally when no other tile of
// the same guess shows that letter; a repeated guess letter is otherwise
// left under-constrained, and a required letter counts at most once. This
// keeps the documented duplicate-letter approximation: tightening it would
// change which historical games are won.
func (s State) Advance(guess Word, outcome Outcome) State {
	mustLen(guess)

	// Letters with a correct or present tile somewhere in this guess.
	var hit uint32
	for i := 0; i < WordLen; i++ {
		if outcome[i] != TileAbsent {
			hit |= letterBit(guess[i])
		}
	}

	next := s
	for i := 0; i < WordLen; i++ {
		c := guess[i]
		bit := letterBit(c)
		switch outcome[i] {
		case TileCorrect:
			next.fixed[i] = c
			// A fixed letter is in the word: it can be neither excluded
			// at its own position nor excluded globally.
			next.excludedAt[i] &^= bit
			next.globallyExcluded &^= bit
			next.required |= bit
		case TilePresent:
			next.excludedAt[i] |= bit
			next.required |= bit
		case TileAbsent:
			if hit&bit == 0 {
				next.globallyExcluded |= bit
			}
		}
	}
	return next
}

// Consistent reports whether candidate satisfies every accumulated
// constraint, rejecting on the first violation.
func (s State) Consistent(candidate Word) bool {
	mustLen(candidate)
	var set uint32
	for i := 0; i < WordLen; i++ {
		c := candidate[i]
		if f := s.fixed[i]; f != 0 && f != c {
			return false
		}
		bit := letterBit(c)
		if s.excludedAt[i]&bit != 0 {
			return false
		}
		if s.globallyExcluded&bit != 0 {
			return false
		}
		set |= bit
	}
	return s.required&^set == 0
}

// Filter returns the subset of words consistent with s. Pools are
// recomputed from scratch each round, never patched in place.
func Filter(words []Word, s State) []Word {
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if s.Consistent(w) {
			out = append(out, w)
		}
	}
	return out
}
