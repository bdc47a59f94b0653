package candidate_test

import (
	"testing"

	"go-ats/internal/candidate"
	candidateerrors "go-ats/internal/candidate/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseStage(t *testing.T) {
	s, err := candidate.ParseStage("SCREENING")
	assert.NoError(t, err)
	assert.Equal(t, candidate.StageScreening, s)

	_, err = candidate.ParseStage("screening")
	assert.ErrorIs(t, err, candidateerrors.ErrInvalidStage)
}

func TestTransition(t *testing.T) {
	completed := []string{"personal", "education", "employment", "documents", "review"}

	tests := []struct {
		name    string
		from    candidate.Stage
		to      candidate.Stage
		done    []string
		wantErr error
	}{
		{"applied to screening", candidate.StageApplied, candidate.StageScreening, nil, nil},
		{"applied cannot skip to interview", candidate.StageApplied, candidate.StageInterview, nil, candidateerrors.ErrInvalidStageTransition},
		{"interview to offered with profile", candidate.StageInterview, candidate.StageOffered, completed, nil},
		{"interview to offered without profile", candidate.StageInterview, candidate.StageOffered, []string{"personal"}, candidateerrors.ErrProfileIncomplete},
		{"offered back to interview", candidate.StageOffered, candidate.StageInterview, completed, nil},
		{"any open stage can reject", candidate.StageScreening, candidate.StageRejected, nil, nil},
		{"hired is closed", candidate.StageHired, candidate.StageRejected, completed, candidateerrors.ErrCandidateClosed},
		{"withdrawn is closed", candidate.StageWithdrawn, candidate.StageApplied, nil, candidateerrors.ErrCandidateClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &candidate.Candidate{Stage: tt.from, CurrentSection: len(tt.done), CompletedSections: tt.done}
			err := candidate.Transition(c, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, c.Stage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, c.Stage)
		})
	}
}

func TestTransition_ClearsRejectionReason(t *testing.T) {
	c := &candidate.Candidate{Stage: candidate.StageApplied, RejectionReason: "stale"}
	assert.NoError(t, candidate.Transition(c, candidate.StageScreening))
	assert.Empty(t, c.RejectionReason)
}

func TestStage_IsTerminal(t *testing.T) {
	assert.False(t, candidate.StageOffered.IsTerminal())
	assert.True(t, candidate.StageHired.IsTerminal())
	assert.True(t, candidate.StageRejected.IsTerminal())
}
