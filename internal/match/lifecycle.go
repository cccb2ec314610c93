package match

// ParseSets validates the wire form of a score record and returns the typed
// sets. A set pair must be recorded fully or not at all, and set N may only be
// recorded when set N-1 is.
func ParseSets(inputs []SetInput) ([]SetScore, error) {
	if len(inputs) > 3 {
		return nil, &ValidationError{Reason: "at most three sets can be recorded"}
	}

	var sets []SetScore
	done := false
	for i, in := range inputs {
		switch {
		case in.Home == nil && in.Away == nil:
			done = true
		case in.Home == nil || in.Away == nil:
			return nil, &ValidationError{Set: i + 1, Reason: "is only half recorded"}
		case done:
			return nil, &ValidationError{Set: i + 1, Reason: "is recorded but an earlier set is not"}
		default:
			if *in.Home < 0 || *in.Away < 0 {
				return nil, &ValidationError{Set: i + 1, Reason: "has a negative score"}
			}
			sets = append(sets, SetScore{Home: *in.Home, Away: *in.Away})
		}
	}
	return sets, nil
}

// SetWins tallies how many recorded sets each side won. A tied set counts for
// neither side.
func SetWins(sets []SetScore) (home, away int) {
	for _, s := range sets {
		switch {
		case s.Home > s.Away:
			home++
		case s.Away > s.Home:
			away++
		}
	}
	return home, away
}

// Decidable reports whether the recorded sets yield a defined winner: two sets
// with one side at 2 set-wins, or three sets with unequal set-win counts.
// Anything else is rejected with a ValidationError naming the missing or tied
// set.
func Decidable(sets []SetScore) error {
	if len(sets) == 0 {
		return &ValidationError{Reason: "no sets recorded"}
	}

	home, away := SetWins(sets)
	if len(sets) == 2 && (home == 2 || away == 2) {
		return nil
	}
	if len(sets) == 3 && home != away {
		return nil
	}

	for i, s := range sets {
		if s.Home == s.Away {
			return &ValidationError{Set: i + 1, Reason: "is tied"}
		}
	}
	return &ValidationError{Set: len(sets) + 1, Reason: "is missing"}
}

// Winner returns the winning team for a decidable score record. ok is false
// when the record is indecisive; an indecisive record must never reach the
// confirmed state.
func Winner(sets []SetScore) (Team, bool) {
	if Decidable(sets) != nil {
		return "", false
	}
	home, away := SetWins(sets)
	if home > away {
		return TeamHome, true
	}
	return TeamAway, true
}

// CanTransition checks a lifecycle move against the state machine. Terminal
// states reject everything with ErrAlreadyFinalized.
func CanTransition(from, to Status) error {
	if from.Terminal() {
		return ErrAlreadyFinalized
	}
	switch to {
	case StatusPendingConfirmation:
		if from == StatusDraft {
			return nil
		}
	case StatusConfirmed:
		if from == StatusPendingConfirmation {
			return nil
		}
	case StatusCancelled:
		return nil
	}
	return ErrInvalidTransition
}
