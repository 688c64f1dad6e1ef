package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

func TestKindProgress_Record_Correct(t *testing.T) {
	kp := &KindProgress{Kind: problemgen.KindFraction}

	kp.Record(true)

	if kp.TotalAttempts != 1 {
		t.Errorf("TotalAttempts = %d, want 1", kp.TotalAttempts)
	}
	if kp.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", kp.CorrectCount)
	}
	if kp.Accuracy != 1.0 {
		t.Errorf("Accuracy = %f, want 1.0", kp.Accuracy)
	}
}

func TestKindProgress_Record_Mixed(t *testing.T) {
	kp := &KindProgress{Kind: problemgen.KindFraction}

	kp.Record(true)
	kp.Record(true)
	kp.Record(false)
	kp.Record(true)

	if kp.TotalAttempts != 4 {
		t.Errorf("TotalAttempts = %d, want 4", kp.TotalAttempts)
	}
	if kp.CorrectCount != 3 {
		t.Errorf("CorrectCount = %d, want 3", kp.CorrectCount)
	}
	if kp.Accuracy != 0.75 {
		t.Errorf("Accuracy = %f, want 0.75", kp.Accuracy)
	}
}

func TestBuildSummary(t *testing.T) {
	plan := &Plan{
		Slots: []PlanSlot{
			{Kind: problemgen.KindBasicOps, Level: 1},
			{Kind: problemgen.KindEquation, Level: 1, Unknowns: 1},
			{Kind: problemgen.KindEquation, Level: 1, Unknowns: 2},
		},
		Length: 2,
	}
	r, err := NewRound(plan, &fixedSource{}, WithClock(stepClock()))
	require.NoError(t, err)

	for _, input := range []string{"50", "0"} {
		_, err := r.Next(t.Context())
		require.NoError(t, err)
		_, err = r.Answer(input)
		require.NoError(t, err)
	}

	s := BuildSummary(r)
	assert.Equal(t, 2, s.TotalQuestions)
	assert.Equal(t, 1, s.TotalCorrect)
	assert.Equal(t, 0.5, s.Accuracy)
	assert.Equal(t, "✅❌", s.Marks)
	// Start, two questions served and two answered, one tick each.
	assert.Equal(t, 4*time.Second, s.Duration)
	assert.Equal(t, s.Duration, r.Elapsed(), "elapsed is frozen after the last answer")
	require.Len(t, s.KindResults, 2)
	assert.Equal(t, problemgen.KindBasicOps, s.KindResults[0].Kind)
	assert.Equal(t, 2, s.KindResults[0].TotalAttempts)
	assert.Zero(t, s.KindResults[1].TotalAttempts)
}

func TestBuildPlan(t *testing.T) {
	plan, err := BuildPlan(nil, 2, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultRoundLength, plan.Length)
	assert.Len(t, plan.Slots, len(problemgen.Kinds)+2)

	plan, err = BuildPlan([]problemgen.Kind{problemgen.KindEquation}, 1, 2, 6)
	require.NoError(t, err)
	require.Len(t, plan.Slots, 2)
	assert.Equal(t, 2, plan.Slots[1].Unknowns)
	assert.Equal(t, "equation/2 (level 1)", plan.Slots[1].String())

	_, err = BuildPlan(nil, 4, 1, 5)
	assert.ErrorIs(t, err, problemgen.ErrInvalidRequest)
	_, err = BuildPlan(nil, 1, 4, 5)
	assert.ErrorIs(t, err, problemgen.ErrInvalidRequest)
}
