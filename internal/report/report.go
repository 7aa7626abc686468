// Package report aggregates outcome history into progress reports:
// per-category statistics, an overall trend, and training recommendations.
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/abhisek/cogniplay/internal/store"
)

// OutcomeSource is the slice of the event store the reporter reads.
type OutcomeSource interface {
	OutcomeHistory(ctx context.Context, userID string, from time.Time) ([]store.OutcomeRecord, error)
}

// Config holds reporting parameters.
type Config struct {
	// TrendThreshold is the minimum mean-score movement between the early
	// and late thirds of the period that counts as a trend.
	TrendThreshold float64

	// TopN bounds the strengths and weaknesses lists.
	TopN int
}

// DefaultConfig returns the standard reporting configuration.
func DefaultConfig() Config {
	return Config{
		TrendThreshold: 5.0,
		TopN:           3,
	}
}

// Trend is the direction performance moved over the period.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// CategoryStats aggregates outcomes for one exercise category or scenario
// type.
type CategoryStats struct {
	Name         string // display name, e.g. "Pattern Recognition"
	Kind         store.OutcomeKind
	Count        int
	AverageScore float64
}

// Report is a progress report over a period.
type Report struct {
	UserID     string
	PeriodDays int

	TotalExercises int
	TotalScenarios int

	// OverallAverage is nil when the period has no outcomes.
	OverallAverage *float64

	Trend Trend

	// Categories sorted by average score descending, name ascending on ties.
	Categories []CategoryStats

	Strengths       []string
	Weaknesses      []string
	Recommendations []string
}

// QuickStats is the 7-day roll-up shown by the status command.
type QuickStats struct {
	Exercises    int
	Scenarios    int
	AverageScore *float64
	BestCategory string
	BestScore    float64
}

// Reporter builds progress reports from outcome history.
type Reporter struct {
	source OutcomeSource
	cfg    Config
}

// NewReporter creates a reporter.
func NewReporter(source OutcomeSource, cfg Config) *Reporter {
	return &Reporter{source: source, cfg: cfg}
}

// Report aggregates the user's outcomes over the trailing period.
func (r *Reporter) Report(ctx context.Context, userID string, periodDays int) (*Report, error) {
	from := time.Now().AddDate(0, 0, -periodDays)
	records, err := r.source.OutcomeHistory(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("load outcome history: %w", err)
	}

	rep := &Report{
		UserID:     userID,
		PeriodDays: periodDays,
		Trend:      computeTrend(records, r.cfg.TrendThreshold),
	}

	var sum float64
	for _, rec := range records {
		sum += rec.Score
		switch rec.Kind {
		case store.OutcomeExercise:
			rep.TotalExercises++
		case store.OutcomeScenario:
			rep.TotalScenarios++
		}
	}
	if len(records) > 0 {
		avg := sum / float64(len(records))
		rep.OverallAverage = &avg
	}

	rep.Categories = categoryStats(records)
	rep.Strengths, rep.Weaknesses = splitAreas(rep.Categories, r.cfg.TopN)
	rep.Recommendations = recommendations(rep)

	return rep, nil
}

// QuickStats aggregates the trailing 7 days.
func (r *Reporter) QuickStats(ctx context.Context, userID string) (*QuickStats, error) {
	from := time.Now().AddDate(0, 0, -7)
	records, err := r.source.OutcomeHistory(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("load outcome history: %w", err)
	}

	qs := &QuickStats{}
	var sum float64
	for _, rec := range records {
		sum += rec.Score
		switch rec.Kind {
		case store.OutcomeExercise:
			qs.Exercises++
		case store.OutcomeScenario:
			qs.Scenarios++
		}
	}
	if len(records) > 0 {
		avg := sum / float64(len(records))
		qs.AverageScore = &avg
	}

	for _, c := range categoryStats(records) {
		if qs.BestCategory == "" || c.AverageScore > qs.BestScore {
			qs.BestCategory = c.Name
			qs.BestScore = c.AverageScore
		}
	}

	return qs, nil
}

// computeTrend compares the mean of the late third of outcomes against the
// early third. Fewer than three outcomes is always stable.
func computeTrend(records []store.OutcomeRecord, threshold float64) Trend {
	n := len(records)
	if n < 3 {
		return TrendStable
	}

	third := n / 3
	early := records[:third]
	late := records[n-third:]

	mean := func(rs []store.OutcomeRecord) float64 {
		var s float64
		for _, r := range rs {
			s += r.Score
		}
		return s / float64(len(rs))
	}

	switch delta := mean(late) - mean(early); {
	case delta > threshold:
		return TrendImproving
	case delta < -threshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func categoryStats(records []store.OutcomeRecord) []CategoryStats {
	type agg struct {
		kind  store.OutcomeKind
		count int
		sum   float64
	}
	byName := map[string]*agg{}
	for _, rec := range records {
		name := displayName(rec.Category, rec.Kind)
		a, ok := byName[name]
		if !ok {
			a = &agg{kind: rec.Kind}
			byName[name] = a
		}
		a.count++
		a.sum += rec.Score
	}

	stats := make([]CategoryStats, 0, len(byName))
	for name, a := range byName {
		stats = append(stats, CategoryStats{
			Name:         name,
			Kind:         a.kind,
			Count:        a.count,
			AverageScore: a.sum / float64(a.count),
		})
	}

	// Best first; ties break on name so the ordering is deterministic.
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].AverageScore != stats[j].AverageScore {
			return stats[i].AverageScore > stats[j].AverageScore
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// splitAreas takes the top and bottom of the sorted category list. A
// category never appears in both lists.
func splitAreas(stats []CategoryStats, topN int) (strengths, weaknesses []string) {
	n := len(stats)
	for i := 0; i < n && i < topN; i++ {
		strengths = append(strengths, stats[i].Name)
	}
	start := n - topN
	if start < topN {
		start = topN
	}
	for i := start; i < n; i++ {
		weaknesses = append(weaknesses, stats[i].Name)
	}
	return strengths, weaknesses
}

func recommendations(rep *Report) []string {
	var recs []string

	switch rep.Trend {
	case TrendDeclining:
		recs = append(recs, "Your scores are trending down - focus on consistent practice")
	case TrendStable:
		recs = append(recs, "Your performance is stable - try increasing difficulty or new challenge types")
	}

	if len(rep.Weaknesses) > 0 {
		limit := len(rep.Weaknesses)
		if limit > 2 {
			limit = 2
		}
		recs = append(recs, "Target improvement in: "+strings.Join(rep.Weaknesses[:limit], ", "))
	}

	if rep.TotalExercises < 10 {
		recs = append(recs, "Complete more exercises to get better performance insights")
	}
	if rep.TotalScenarios < 3 {
		recs = append(recs, "Try more scenarios to develop decision-making skills")
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

// displayName converts a raw category key to its display form; scenario
// types get a " Scenarios" suffix to keep the two activity kinds apart.
func displayName(category string, kind store.OutcomeKind) string {
	name := titleCase(strings.ReplaceAll(category, "_", " "))
	if kind == store.OutcomeScenario {
		name += " Scenarios"
	}
	return name
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
