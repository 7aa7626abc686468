package report

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/cogniplay/internal/store"
)

type fakeSource struct {
	records []store.OutcomeRecord
}

func (f *fakeSource) OutcomeHistory(_ context.Context, _ string, _ time.Time) ([]store.OutcomeRecord, error) {
	return f.records, nil
}

func rec(kind store.OutcomeKind, category string, score float64) store.OutcomeRecord {
	return store.OutcomeRecord{
		Kind:     kind,
		Category: category,
		Score:    score,
	}
}

func newReporter(records ...store.OutcomeRecord) *Reporter {
	// Records arrive sequence-ordered from the store; mirror that here.
	for i := range records {
		records[i].Sequence = int64(i + 1)
	}
	return NewReporter(&fakeSource{records: records}, DefaultConfig())
}

func TestReportEmpty(t *testing.T) {
	r := newReporter()

	rep, err := r.Report(context.Background(), "u1", 30)
	if err != nil {
		t.Fatal(err)
	}
	if rep.OverallAverage != nil {
		t.Errorf("average = %v, want nil", *rep.OverallAverage)
	}
	if rep.Trend != TrendStable {
		t.Errorf("trend = %s, want stable", rep.Trend)
	}
	if rep.TotalExercises != 0 || rep.TotalScenarios != 0 {
		t.Errorf("totals = %d/%d", rep.TotalExercises, rep.TotalScenarios)
	}
}

func TestReportAggregates(t *testing.T) {
	r := newReporter(
		rec(store.OutcomeExercise, "memory", 80),
		rec(store.OutcomeExercise, "memory", 90),
		rec(store.OutcomeExercise, "logic", 60),
		rec(store.OutcomeScenario, "negotiation", 70),
	)

	rep, err := r.Report(context.Background(), "u1", 30)
	if err != nil {
		t.Fatal(err)
	}
	if rep.TotalExercises != 3 || rep.TotalScenarios != 1 {
		t.Errorf("totals = %d/%d, want 3/1", rep.TotalExercises, rep.TotalScenarios)
	}
	if rep.OverallAverage == nil || *rep.OverallAverage != 75 {
		t.Fatalf("average = %v, want 75", rep.OverallAverage)
	}

	if len(rep.Categories) != 3 {
		t.Fatalf("categories = %d, want 3", len(rep.Categories))
	}
	// Sorted by average descending: Memory 85, Negotiation Scenarios 70, Logic 60.
	wantOrder := []string{"Memory", "Negotiation Scenarios", "Logic"}
	for i, c := range rep.Categories {
		if c.Name != wantOrder[i] {
			t.Errorf("category %d = %q, want %q", i, c.Name, wantOrder[i])
		}
	}
	if rep.Categories[0].AverageScore != 85 || rep.Categories[0].Count != 2 {
		t.Errorf("memory stats = %+v", rep.Categories[0])
	}
}

func TestTrendImproving(t *testing.T) {
	r := newReporter(
		rec(store.OutcomeExercise, "memory", 50),
		rec(store.OutcomeExercise, "memory", 55),
		rec(store.OutcomeExercise, "memory", 70),
		rec(store.OutcomeExercise, "memory", 72),
		rec(store.OutcomeExercise, "memory", 80),
		rec(store.OutcomeExercise, "memory", 85),
	)

	rep, err := r.Report(context.Background(), "u1", 30)
	if err != nil {
		t.Fatal(err)
	}
	// Early third mean 52.5, late third mean 82.5.
	if rep.Trend != TrendImproving {
		t.Errorf("trend = %s, want improving", rep.Trend)
	}
}

func TestTrendDeclining(t *testing.T) {
	r := newReporter(
		rec(store.OutcomeExercise, "memory", 90),
		rec(store.OutcomeExercise, "memory", 88),
		rec(store.OutcomeExercise, "memory", 70),
		rec(store.OutcomeExercise, "memory", 65),
		rec(store.OutcomeExercise, "memory", 60),
		rec(store.OutcomeExercise, "memory", 55),
	)

	rep, err := r.Report(context.Background(), "u1", 30)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Trend != TrendDeclining {
		t.Errorf("trend = %s, want declining", rep.Trend)
	}
}

func TestTrendStableWithinThreshold(t *testing.T) {
	r := newReporter(
		rec(store.OutcomeExercise, "memory", 70),
		rec(store.OutcomeExercise, "memory", 72),
		rec(store.OutcomeExercise, "memory", 71),
		rec(store.OutcomeExercise, "memory", 73),
		rec(store.OutcomeExercise, "memory", 74),
		rec(store.OutcomeExercise, "memory", 73),
	)

	rep, err := r.Report(context.Background(), "u1", 30)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Trend != TrendStable {
		t.Errorf("trend = %s, want stable", rep.Trend)
	}
}

func TestTrendTooFewOutcomes(t *testing.T) {
	r := newReporter(
		rec(store.OutcomeExercise, "memory", 10),
		rec(store.OutcomeExercise, "memory", 100),
	)

	rep, err := r.Report(context.Background(), "u1", 30)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Trend != TrendStable {
		t.Errorf("trend = %s, want stable with <3 outcomes", rep.Trend)
	}
}

func TestStrengthsAndWeaknessesNoOverlap(t *testing.T) {
	r := newReporter(
		rec(store.OutcomeExercise, "memory", 95),
		rec(store.OutcomeExercise, "logic", 85),
		rec(store.OutcomeExercise, "attention", 75),
		rec(store.OutcomeExercise, "pattern_recognition", 55),
	)

	rep, err := r.Report(context.Background(), "u1", 30)
	if err != nil {
		t.Fatal(err)
	}

	wantStrengths := []string{"Memory", "Logic", "Attention"}
	if len(rep.Strengths) != 3 {
		t.Fatalf("strengths = %v", rep.Strengths)
	}
	for i, s := range rep.Strengths {
		if s != wantStrengths[i] {
			t.Errorf("strength %d = %q, want %q", i, s, wantStrengths[i])
		}
	}

	// Only one category left over; it must not also be a strength.
	if len(rep.Weaknesses) != 1 || rep.Weaknesses[0] != "Pattern Recognition" {
		t.Errorf("weaknesses = %v, want [Pattern Recognition]", rep.Weaknesses)
	}
}

func TestTiedCategoriesOrderByName(t *testing.T) {
	r := newReporter(
		rec(store.OutcomeExercise, "memory", 80),
		rec(store.OutcomeExercise, "attention", 80),
		rec(store.OutcomeExercise, "logic", 80),
	)

	rep, err := r.Report(context.Background(), "u1", 30)
	if err != nil {
		t.Fatal(err)
	}
	wantOrder := []string{"Attention", "Logic", "Memory"}
	for i, c := range rep.Categories {
		if c.Name != wantOrder[i] {
			t.Errorf("category %d = %q, want %q", i, c.Name, wantOrder[i])
		}
	}
}

func TestRecommendationsCapped(t *testing.T) {
	// Declining trend + weaknesses + low activity would produce four
	// recommendations; the report carries at most three.
	r := newReporter(
		rec(store.OutcomeExercise, "memory", 90),
		rec(store.OutcomeExercise, "logic", 88),
		rec(store.OutcomeExercise, "attention", 70),
		rec(store.OutcomeExercise, "pattern_recognition", 60),
		rec(store.OutcomeExercise, "memory", 55),
		rec(store.OutcomeExercise, "logic", 50),
	)

	rep, err := r.Report(context.Background(), "u1", 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Recommendations) > 3 {
		t.Errorf("recommendations = %d, want <= 3", len(rep.Recommendations))
	}
	if rep.Recommendations[0] != "Your scores are trending down - focus on consistent practice" {
		t.Errorf("first recommendation = %q", rep.Recommendations[0])
	}
}

func TestQuickStats(t *testing.T) {
	r := newReporter(
		rec(store.OutcomeExercise, "memory", 80),
		rec(store.OutcomeExercise, "logic", 90),
		rec(store.OutcomeScenario, "leadership", 70),
	)

	qs, err := r.QuickStats(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if qs.Exercises != 2 || qs.Scenarios != 1 {
		t.Errorf("counts = %d/%d, want 2/1", qs.Exercises, qs.Scenarios)
	}
	if qs.AverageScore == nil || *qs.AverageScore != 80 {
		t.Fatalf("average = %v, want 80", qs.AverageScore)
	}
	if qs.BestCategory != "Logic" || qs.BestScore != 90 {
		t.Errorf("best = %q %v, want Logic 90", qs.BestCategory, qs.BestScore)
	}
}

func TestQuickStatsEmpty(t *testing.T) {
	r := newReporter()

	qs, err := r.QuickStats(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if qs.AverageScore != nil {
		t.Errorf("average = %v, want nil", *qs.AverageScore)
	}
	if qs.BestCategory != "" {
		t.Errorf("best category = %q, want empty", qs.BestCategory)
	}
}
