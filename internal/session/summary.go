package session

import (
	"strings"
	"time"
)

// Summary holds the data displayed at the end of a round.
type Summary struct {
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	Marks          string
	KindResults    []KindProgress
}

// BuildSummary creates a Summary from the current round state.
func BuildSummary(r *Round) *Summary {
	var results []KindProgress
	for _, slot := range r.plan.Slots {
		kp, ok := r.progress[slot.Kind]
		if !ok {
			continue
		}
		// Equation slots share one entry.
		found := false
		for _, res := range results {
			if res.Kind == kp.Kind {
				found = true
				break
			}
		}
		if !found {
			results = append(results, *kp)
		}
	}

	var accuracy float64
	if r.totalQuestions > 0 {
		accuracy = float64(r.totalCorrect) / float64(r.totalQuestions)
	}

	return &Summary{
		Duration:       r.Elapsed(),
		TotalQuestions: r.totalQuestions,
		TotalCorrect:   r.totalCorrect,
		Accuracy:       accuracy,
		Marks:          r.MarksString(),
		KindResults:    results,
	}
}

// MarksString renders the marks of a round in answer order.
func (r *Round) MarksString() string {
	var b strings.Builder
	for _, m := range r.marks {
		b.WriteString(m.String())
	}
	return b.String()
}
