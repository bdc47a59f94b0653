package candidate

import (
	candidateerrors "go-ats/internal/candidate/errors"
)

var stageTransitions = map[Stage][]Stage{
	StageApplied:   {StageScreening, StageRejected, StageWithdrawn},
	StageScreening: {StageInterview, StageRejected, StageWithdrawn},
	StageInterview: {StageOffered, StageRejected, StageWithdrawn},
	StageOffered:   {StageHired, StageInterview, StageRejected, StageWithdrawn},
}

func ParseStage(s string) (Stage, error) {
	switch st := Stage(s); st {
	case StageApplied, StageScreening, StageInterview, StageOffered,
		StageHired, StageRejected, StageWithdrawn:
		return st, nil
	}
	return "", candidateerrors.ErrInvalidStage
}

func (s Stage) IsTerminal() bool {
	_, open := stageTransitions[s]
	return !open
}

func (s Stage) CanTransitionTo(next Stage) bool {
	for _, allowed := range stageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition moves c to next or explains why it cannot. An offer needs a
// completed profile because the letter prints the PAN.
func Transition(c *Candidate, next Stage) error {
	if c.Stage.IsTerminal() {
		return candidateerrors.ErrCandidateClosed
	}
	if !c.Stage.CanTransitionTo(next) {
		return candidateerrors.ErrInvalidStageTransition
	}
	if next == StageOffered && !c.Wizard().Complete() {
		return candidateerrors.ErrProfileIncomplete
	}
	c.Stage = next
	if next != StageRejected {
		c.RejectionReason = ""
	}
	return nil
}
