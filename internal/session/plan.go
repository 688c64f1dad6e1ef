package session

import (
	"fmt"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

// PlanSlot is a single slot in the round plan. Each slot receives a
// mini-block of QuestionsPerSlot questions before the round moves on.
type PlanSlot struct {
	Kind     problemgen.Kind
	Level    problemgen.Level
	Unknowns int
}

// Request returns the generation request for the slot.
func (s PlanSlot) Request() problemgen.Request {
	return problemgen.Request{Kind: s.Kind, Level: s.Level, Unknowns: s.Unknowns}
}

func (s PlanSlot) String() string {
	if s.Kind == problemgen.KindEquation && s.Unknowns > 1 {
		return fmt.Sprintf("%s/%d (level %d)", s.Kind, s.Unknowns, s.Level)
	}
	return fmt.Sprintf("%s (level %d)", s.Kind, s.Level)
}

// Plan is the ordered list of slots for a round.
type Plan struct {
	Slots  []PlanSlot
	Length int
	Seed   uint64
}

// QuestionsPerSlot is the number of questions served per mini-block.
const QuestionsPerSlot = 3

// DefaultRoundLength is used when a plan does not set Length.
const DefaultRoundLength = 10

// BuildPlan creates a plan cycling through kinds at one level. An
// empty kinds list selects every kind. Equation slots ramp from one
// unknown up to maxUnknowns.
func BuildPlan(kinds []problemgen.Kind, level problemgen.Level, maxUnknowns, length int) (*Plan, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("%w: level %d", problemgen.ErrInvalidRequest, level)
	}
	if len(kinds) == 0 {
		kinds = problemgen.Kinds
	}
	if maxUnknowns < 1 {
		maxUnknowns = 1
	}
	if maxUnknowns > 3 {
		return nil, fmt.Errorf("%w: %d unknowns", problemgen.ErrInvalidRequest, maxUnknowns)
	}
	if length <= 0 {
		length = DefaultRoundLength
	}

	var slots []PlanSlot
	for _, kind := range kinds {
		if kind == problemgen.KindEquation {
			for n := 1; n <= maxUnknowns; n++ {
				slots = append(slots, PlanSlot{Kind: kind, Level: level, Unknowns: n})
			}
			continue
		}
		slots = append(slots, PlanSlot{Kind: kind, Level: level})
	}
	return &Plan{Slots: slots, Length: length}, nil
}
