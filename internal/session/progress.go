package session

import "github.com/abhisek/mathdrill/internal/problemgen"

// KindProgress tracks answers given for one problem kind.
type KindProgress struct {
	Kind          problemgen.Kind
	TotalAttempts int
	CorrectCount  int
	Accuracy      float64 // CorrectCount / TotalAttempts (computed)
}

// Record adds a new answer result to the progress.
func (kp *KindProgress) Record(correct bool) {
	kp.TotalAttempts++
	if correct {
		kp.CorrectCount++
	}
	if kp.TotalAttempts > 0 {
		kp.Accuracy = float64(kp.CorrectCount) / float64(kp.TotalAttempts)
	}
}

// Mark is the outcome of one answered question.
type Mark struct {
	ProblemID string
	Text      string
	Input     string
	Correct   bool
}

func (m Mark) String() string {
	if m.Correct {
		return "✅"
	}
	return "❌"
}
