package exercise

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
)

func newTestEngine() *Engine {
	return New(DefaultConfig(), rand.New(rand.NewPCG(1, 2)))
}

func TestGenerateAllCategories(t *testing.T) {
	e := newTestEngine()
	for _, cat := range Categories() {
		for d := 1; d <= 5; d++ {
			ex, err := e.Generate(cat, d)
			if err != nil {
				t.Fatalf("Generate(%s, %d): %v", cat, d, err)
			}
			if ex.ID == "" {
				t.Errorf("%s d=%d: empty ID", cat, d)
			}
			if ex.Category != cat {
				t.Errorf("%s d=%d: category = %s", cat, d, ex.Category)
			}
			if ex.Difficulty != d {
				t.Errorf("%s d=%d: difficulty = %d", cat, d, ex.Difficulty)
			}
			if ex.Question == "" {
				t.Errorf("%s d=%d: empty question", cat, d)
			}
			if ex.Answer == "" {
				t.Errorf("%s d=%d: empty answer", cat, d)
			}
			if ex.TimeLimitSecs <= 0 {
				t.Errorf("%s d=%d: time limit = %d", cat, d, ex.TimeLimitSecs)
			}
		}
	}
}

func TestGenerateUnknownCategory(t *testing.T) {
	e := newTestEngine()
	_, err := e.Generate(Category("juggling"), 3)
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
	var unknownErr *ErrUnknownCategory
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected *ErrUnknownCategory, got %T", err)
	}
}

func TestGenerateClampsDifficulty(t *testing.T) {
	e := newTestEngine()

	ex, err := e.Generate(CategoryAttention, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ex.Difficulty != 1 {
		t.Errorf("difficulty 0 clamped to %d, want 1", ex.Difficulty)
	}

	ex, err = e.Generate(CategoryAttention, 9)
	if err != nil {
		t.Fatal(err)
	}
	if ex.Difficulty != 5 {
		t.Errorf("difficulty 9 clamped to %d, want 5", ex.Difficulty)
	}
}

func TestValidateScoring(t *testing.T) {
	e := newTestEngine()
	ex := &Exercise{
		ID:            "ex-1",
		Category:      CategoryLogic,
		Answer:        "yes",
		TimeLimitSecs: 100,
	}

	tests := []struct {
		name      string
		answer    string
		secs      int
		hints     int
		wantScore float64
		wantOK    bool
	}{
		{"correct baseline", "yes", 60, 0, 100, true},
		{"case and whitespace insensitive", "  YES ", 60, 0, 100, true},
		{"fast bonus capped at 100", "yes", 20, 0, 100, true},
		{"fast bonus offsets hints", "yes", 20, 1, 100 + 10 - 5, true},
		{"overtime penalty", "yes", 120, 0, 90, true},
		{"hint penalty", "yes", 60, 2, 90, true},
		{"wrong answer", "no", 60, 0, 0, false},
		{"wrong answer with hints clamps at zero", "no", 60, 3, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.Validate(ex, tt.answer, tt.secs, tt.hints)
			if res.IsCorrect != tt.wantOK {
				t.Errorf("IsCorrect = %v, want %v", res.IsCorrect, tt.wantOK)
			}
			if res.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", res.Score, tt.wantScore)
			}
		})
	}
}

func TestValidateWordListRecall(t *testing.T) {
	e := newTestEngine()
	words := []string{"apple", "mountain", "computer", "elephant", "guitar",
		"ocean", "bicycle", "telephone", "butterfly", "camera"}
	ex := &Exercise{
		ID:            "ex-words",
		Category:      CategoryMemory,
		Answer:        strings.Join(words, ", "),
		AnswerWords:   words,
		TimeLimitSecs: 120,
	}

	// 7 of 10 meets the 0.7 recall ratio.
	res := e.Validate(ex, "Apple, mountain, COMPUTER, elephant, guitar, ocean, bicycle", 60, 0)
	if !res.IsCorrect {
		t.Error("7/10 recall should count as correct")
	}

	// 6 of 10 does not.
	res = e.Validate(ex, "apple, mountain, computer, elephant, guitar, ocean", 60, 0)
	if res.IsCorrect {
		t.Error("6/10 recall should not count as correct")
	}

	// Duplicates and unknown words do not inflate the count.
	res = e.Validate(ex, "apple, apple, apple, apple, apple, apple, apple, zebra", 60, 0)
	if res.IsCorrect {
		t.Error("repeated single word should not count as recall")
	}
}

func TestSeededDeterminism(t *testing.T) {
	a := New(DefaultConfig(), rand.New(rand.NewPCG(7, 7)))
	b := New(DefaultConfig(), rand.New(rand.NewPCG(7, 7)))

	for i := 0; i < 10; i++ {
		cat := Categories()[i%len(Categories())]
		exA, _ := a.Generate(cat, 1+i%5)
		exB, _ := b.Generate(cat, 1+i%5)
		if exA.Question != exB.Question || exA.Answer != exB.Answer {
			t.Fatalf("iteration %d: same seed produced different exercises", i)
		}
	}
}

func TestAttentionAnswerMatchesGrid(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 20; i++ {
		ex, err := e.Generate(CategoryAttention, 3)
		if err != nil {
			t.Fatal(err)
		}
		// The question quotes the target symbol and embeds the grid;
		// recount from the rendered grid.
		start := strings.Index(ex.Question, `"`)
		target := ex.Question[start+1 : start+2]
		gridStart := strings.Index(ex.Question, ":\n\n") + 3
		gridEnd := strings.LastIndex(ex.Question, "\n\nType")
		grid := ex.Question[gridStart:gridEnd]
		count := strings.Count(grid, target)
		if strconv.Itoa(count) != ex.Answer {
			t.Fatalf("grid contains %d %q but answer is %s", count, target, ex.Answer)
		}
	}
}
