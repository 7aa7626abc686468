package exercise

// Category identifies a cognitive exercise category.
type Category string

const (
	CategoryMemory         Category = "memory"
	CategoryLogic          Category = "logic"
	CategoryProblemSolving Category = "problem_solving"
	CategoryPattern        Category = "pattern_recognition"
	CategoryAttention      Category = "attention"
)

// Categories returns all exercise categories in display order.
func Categories() []Category {
	return []Category{
		CategoryMemory,
		CategoryLogic,
		CategoryProblemSolving,
		CategoryPattern,
		CategoryAttention,
	}
}

// Exercise is a generated exercise ready for display.
type Exercise struct {
	ID         string
	Category   Category
	Type       string
	Difficulty int

	// Question is the full prompt displayed to the trainee.
	Question string

	// Answer is the canonical correct answer. For word-list recall it is
	// the comma-joined word set and matching is partial (see Validate).
	Answer string

	// AnswerWords is set for word-list recall; partial recall above
	// RecallRatio counts as correct.
	AnswerWords []string

	// Options is populated for multiple-choice exercises, nil otherwise.
	Options []string

	// TimeLimitSecs is the soft time budget; exceeding it costs score,
	// beating half of it earns a bonus.
	TimeLimitSecs int

	// Hints are revealed one at a time, each at a score penalty.
	Hints []string
}

// Result holds the validation outcome for one answered exercise.
type Result struct {
	ExerciseID         string
	UserAnswer         string
	IsCorrect          bool
	Score              float64 // 0-100, with time and hint adjustments
	Accuracy           float64 // 0-100, correctness only
	CompletionTimeSecs int
	HintsUsed          int
}
