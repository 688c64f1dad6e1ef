package session

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// Result is the outcome of answering the pending question.
type Result struct {
	Correct  bool
	Problem  *problemgen.Problem
	Expected string
	Elapsed  time.Duration
}

// Next serves the next question. Calling Next while a question is pending
// returns that question again.
func (r *Round) Next(ctx context.Context) (*problemgen.Problem, error) {
	if r.current != nil {
		return r.current, nil
	}
	if r.served >= r.plan.Length {
		return nil, ErrRoundOver
	}
	if ShouldAdvanceSlot(r) {
		AdvanceSlot(r)
	}

	slot := CurrentSlot(r)
	var p *problemgen.Problem
	for attempt := range maxDedupAttempts {
		req := slot.Request()
		if r.plan.Seed != 0 {
			req.Seed = problemgen.DeriveSeed(
				strconv.FormatUint(r.plan.Seed, 10), strconv.Itoa(r.served), strconv.Itoa(attempt))
		}
		var err error
		p, err = r.source.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		if !r.PriorQuestions[p.Text()] {
			break
		}
		r.logger.Debug("duplicate problem redrawn", "kind", slot.Kind, "text", p.Text(), "attempt", attempt+1)
	}

	r.PriorQuestions[p.Text()] = true
	r.current = p
	r.served++
	r.QuestionsInSlot++
	r.questionStartTime = r.now()
	return p, nil
}

// Answer checks raw against the pending question and records the outcome.
func (r *Round) Answer(raw string) (Result, error) {
	p := r.current
	if p == nil {
		return Result{}, ErrNoQuestion
	}

	correct := problemgen.CheckInput(raw, p)
	r.totalQuestions++
	if correct {
		r.totalCorrect++
	}
	if kp := r.progress[p.Kind]; kp != nil {
		kp.Record(correct)
	}
	r.marks = append(r.marks, Mark{
		ProblemID: p.ID,
		Text:      p.Text(),
		Input:     strings.TrimSpace(raw),
		Correct:   correct,
	})

	r.current = nil
	now := r.now()
	if r.served >= r.plan.Length {
		r.finishedAt = now
	}
	return Result{
		Correct:  correct,
		Problem:  p,
		Expected: ExpectedAnswer(p),
		Elapsed:  now.Sub(r.questionStartTime),
	}, nil
}

// ShouldAdvanceSlot returns true once the current slot's mini-block is used up.
func ShouldAdvanceSlot(r *Round) bool {
	return r.QuestionsInSlot >= QuestionsPerSlot
}

// AdvanceSlot moves to the next slot, wrapping around. It returns false when
// the plan has a single slot.
func AdvanceSlot(r *Round) bool {
	r.QuestionsInSlot = 0
	if len(r.plan.Slots) < 2 {
		return false
	}
	r.CurrentSlotIndex = (r.CurrentSlotIndex + 1) % len(r.plan.Slots)
	r.logger.Debug("advanced slot", "slot", r.plan.Slots[r.CurrentSlotIndex].String())
	return true
}

// CurrentSlot returns the slot questions are currently drawn from.
func CurrentSlot(r *Round) PlanSlot {
	return r.plan.Slots[r.CurrentSlotIndex]
}

// ExpectedAnswer renders the stored answer of p the way a learner would type it.
func ExpectedAnswer(p *problemgen.Problem) string {
	switch a := p.Answer.(type) {
	case problemgen.Solution:
		if a.Integer != nil {
			return strconv.FormatInt(*a.Integer, 10)
		}
		if a.Exact != "" {
			return a.Exact
		}
		return strconv.FormatFloat(a.Decimal, 'f', -1, 64)
	case problemgen.Unknowns:
		parts := make([]string, 0, len(a))
		for _, name := range p.Inputs() {
			parts = append(parts, name+"="+strconv.FormatFloat(a[name], 'f', -1, 64))
		}
		return strings.Join(parts, " ")
	case problemgen.Roots:
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = strconv.FormatInt(v, 10)
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
