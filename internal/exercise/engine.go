package exercise

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownCategory is returned when generation is requested for a
// category the engine has no generator for.
type ErrUnknownCategory struct {
	Category Category
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("unknown exercise category: %q", e.Category)
}

// Engine generates and validates template-based cognitive exercises.
type Engine struct {
	cfg  Config
	rng  *rand.Rand
	gens map[Category]generator
}

type generator func(e *Engine, difficulty int) *Exercise

// New creates an engine with the standard generators. rng may be nil, in
// which case the shared global source is used; tests inject a seeded one.
func New(cfg Config, rng *rand.Rand) *Engine {
	e := &Engine{cfg: cfg, rng: rng}
	e.gens = map[Category]generator{
		CategoryMemory:         (*Engine).memoryExercise,
		CategoryLogic:          (*Engine).logicExercise,
		CategoryProblemSolving: (*Engine).problemSolvingExercise,
		CategoryPattern:        (*Engine).patternExercise,
		CategoryAttention:      (*Engine).attentionExercise,
	}
	return e
}

// Generate produces a new exercise for the category at the given
// difficulty (1-5, clamped).
func (e *Engine) Generate(category Category, difficulty int) (*Exercise, error) {
	gen, ok := e.gens[category]
	if !ok {
		return nil, &ErrUnknownCategory{Category: category}
	}
	if difficulty < 1 {
		difficulty = 1
	}
	if difficulty > 5 {
		difficulty = 5
	}
	return gen(e, difficulty), nil
}

// Validate checks an answer and computes the score: 100/0 base on
// correctness, a fast-completion bonus under half the time limit, an
// overtime penalty past the limit, and a per-hint penalty, clamped to
// [0,100]. Accuracy carries correctness only.
func (e *Engine) Validate(ex *Exercise, answer string, completionSecs, hintsUsed int) *Result {
	correct := e.checkAnswer(ex, answer)

	score := 0.0
	if correct {
		score = 100.0
		if ex.TimeLimitSecs > 0 {
			ratio := float64(completionSecs) / float64(ex.TimeLimitSecs)
			switch {
			case ratio < 0.5:
				score += e.cfg.FastBonus
			case ratio > 1.0:
				score -= e.cfg.OvertimePenalty
			}
		}
	}
	score -= float64(hintsUsed) * e.cfg.HintPenalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	accuracy := 0.0
	if correct {
		accuracy = 100.0
	}

	return &Result{
		ExerciseID:         ex.ID,
		UserAnswer:         answer,
		IsCorrect:          correct,
		Score:              score,
		Accuracy:           accuracy,
		CompletionTimeSecs: completionSecs,
		HintsUsed:          hintsUsed,
	}
}

func (e *Engine) checkAnswer(ex *Exercise, answer string) bool {
	// Word-list recall is partial: enough of the studied words, in any
	// order, counts.
	if len(ex.AnswerWords) > 0 {
		recalled := map[string]bool{}
		for _, w := range strings.Split(answer, ",") {
			recalled[strings.ToLower(strings.TrimSpace(w))] = true
		}
		matches := 0
		for _, w := range ex.AnswerWords {
			if recalled[strings.ToLower(w)] {
				matches++
			}
		}
		return float64(matches) >= float64(len(ex.AnswerWords))*e.cfg.RecallRatio
	}

	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(ex.Answer))
}

func (e *Engine) intn(n int) int {
	if e.rng != nil {
		return e.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (e *Engine) pick(items []string) string {
	return items[e.intn(len(items))]
}

// sample returns n distinct items from pool.
func (e *Engine) sample(pool []string, n int) []string {
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	for i := len(idx) - 1; i > 0; i-- {
		j := e.intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}

func newID() string {
	return uuid.NewString()
}
