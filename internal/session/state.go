package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

var (
	// ErrRoundOver is returned by Next once every question was served.
	ErrRoundOver = errors.New("round is over")

	// ErrNoQuestion is returned by Answer when no question is pending.
	ErrNoQuestion = errors.New("no question pending")
)

// ProblemSource produces problems for a round. *problemgen.Service
// satisfies it.
type ProblemSource interface {
	Generate(ctx context.Context, req problemgen.Request) (*problemgen.Problem, error)
}

// maxDedupAttempts bounds redraws of a problem already seen this round.
const maxDedupAttempts = 5

// Round holds the state of one practice round.
type Round struct {
	plan   *Plan
	source ProblemSource
	logger *slog.Logger
	now    func() time.Time

	// CurrentSlotIndex and QuestionsInSlot drive slot cycling.
	CurrentSlotIndex int
	QuestionsInSlot  int

	current *problemgen.Problem
	served  int

	// PriorQuestions records problem texts already served, for dedup.
	PriorQuestions map[string]bool

	progress       map[problemgen.Kind]*KindProgress
	marks          []Mark
	totalQuestions int
	totalCorrect   int

	startTime         time.Time
	questionStartTime time.Time
	finishedAt        time.Time
}

// Option configures a Round.
type Option func(*Round)

// WithLogger sets the logger used for dedup and slot events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Round) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Round) { r.now = now }
}

// NewRound creates a round over plan. A plan without slots is rejected.
func NewRound(plan *Plan, source ProblemSource, opts ...Option) (*Round, error) {
	if plan == nil || len(plan.Slots) == 0 {
		return nil, errors.New("round plan has no slots")
	}
	if plan.Length <= 0 {
		plan.Length = DefaultRoundLength
	}
	r := &Round{
		plan:           plan,
		source:         source,
		logger:         slog.New(slog.DiscardHandler),
		now:            time.Now,
		PriorQuestions: make(map[string]bool),
		progress:       make(map[problemgen.Kind]*KindProgress),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, slot := range plan.Slots {
		if _, ok := r.progress[slot.Kind]; !ok {
			r.progress[slot.Kind] = &KindProgress{Kind: slot.Kind}
		}
	}
	r.startTime = r.now()
	return r, nil
}

// Plan returns the plan the round follows.
func (r *Round) Plan() *Plan { return r.plan }

// Current returns the pending question, or nil.
func (r *Round) Current() *problemgen.Problem { return r.current }

// Done reports whether every question has been served and answered.
func (r *Round) Done() bool {
	return r.served >= r.plan.Length && r.current == nil
}

// Remaining returns the number of questions not yet served.
func (r *Round) Remaining() int {
	return max(r.plan.Length-r.served, 0)
}

// Score returns the correct and total answer counts.
func (r *Round) Score() (correct, total int) {
	return r.totalCorrect, r.totalQuestions
}

// Marks returns the answer marks in order.
func (r *Round) Marks() []Mark { return r.marks }

// Progress returns the per-kind progress for kind, or nil.
func (r *Round) Progress(kind problemgen.Kind) *KindProgress { return r.progress[kind] }

// Elapsed returns the time since the round started, frozen once it is done.
func (r *Round) Elapsed() time.Duration {
	if !r.finishedAt.IsZero() {
		return r.finishedAt.Sub(r.startTime)
	}
	return r.now().Sub(r.startTime)
}
