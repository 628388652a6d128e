package workflow

import (
	"fmt"
	"math"

	"github.com/pelayanandata/portal-go/models"
)

const (
	SkmRatingMin = 1
	SkmRatingMax = 5
)

// SurveyGate aggregates satisfaction-survey answers against a fixed
// question catalog. The catalog is injected once at construction so the
// coverage check runs against a known cardinality.
type SurveyGate struct {
	questions []models.SkmQuestion
}

func NewSurveyGate(questions []models.SkmQuestion) *SurveyGate {
	qs := make([]models.SkmQuestion, len(questions))
	copy(qs, questions)
	return &SurveyGate{questions: qs}
}

// Questions returns the catalog in seed order.
func (g *SurveyGate) Questions() []models.SkmQuestion {
	qs := make([]models.SkmQuestion, len(g.questions))
	copy(qs, g.questions)
	return qs
}

// Aggregate validates that every catalog question has exactly one rating in
// [1,5] and returns the rounded arithmetic mean. Unknown question ids and
// missing questions both fail; the same input always yields the same
// aggregate.
func (g *SurveyGate) Aggregate(ratings map[uint]int) (int, error) {
	if len(g.questions) == 0 {
		return 0, fmt.Errorf("%w: survey catalog is empty", ErrValidation)
	}

	known := make(map[uint]bool, len(g.questions))
	for _, q := range g.questions {
		known[q.ID] = true
	}
	for id := range ratings {
		if !known[id] {
			return 0, fmt.Errorf("%w: unknown survey question id %d", ErrValidation, id)
		}
	}

	sum := 0
	for _, q := range g.questions {
		rating, ok := ratings[q.ID]
		if !ok {
			return 0, fmt.Errorf("%w: question %s has no rating", ErrValidation, q.Code)
		}
		if rating < SkmRatingMin || rating > SkmRatingMax {
			return 0, fmt.Errorf("%w: rating for question %s must be between %d and %d",
				ErrValidation, q.Code, SkmRatingMin, SkmRatingMax)
		}
		sum += rating
	}

	return int(math.Round(float64(sum) / float64(len(g.questions)))), nil
}
