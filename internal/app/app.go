// Package app is the interactive trainer loop: a line-oriented session
// that serves exercises and scenarios, records outcomes through the
// training manager, and prints the session summary on exit.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/cogniplay/internal/difficulty"
	"github.com/abhisek/cogniplay/internal/exercise"
	"github.com/abhisek/cogniplay/internal/report"
	"github.com/abhisek/cogniplay/internal/scenario"
	"github.com/abhisek/cogniplay/internal/training"
)

// ErrInterrupted is returned when input ends before the user finishes
// the session normally. The session is still closed and summarised.
var ErrInterrupted = errors.New("input interrupted")

// App wires the engines together behind the trainer loop. Input and
// output are injected so the loop can be driven from tests.
type App struct {
	UserID    string
	Exercises *exercise.Engine
	Scenarios *scenario.Engine
	Training  *training.Manager
	Reporter  *report.Reporter

	in  *bufio.Scanner
	out io.Writer

	// now is swappable in tests to make elapsed-time scoring deterministic.
	now func() time.Time
}

// New creates an App reading from in and writing to out.
func New(userID string, ex *exercise.Engine, sc *scenario.Engine, tr *training.Manager, rep *report.Reporter, in io.Reader, out io.Writer) *App {
	return &App{
		UserID:    userID,
		Exercises: ex,
		Scenarios: sc,
		Training:  tr,
		Reporter:  rep,
		in:        bufio.NewScanner(in),
		out:       out,
		now:       time.Now,
	}
}

// Run drives one training session until the user quits or input ends.
func (a *App) Run(ctx context.Context, sessionType training.SessionType) error {
	sess, err := a.Training.StartSession(ctx, a.UserID, sessionType)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	fmt.Fprintln(a.out, styleTitle.Render("Cogniplay"))
	fmt.Fprintf(a.out, "Session started at difficulty level %d.\n\n", sess.StartingLevel)

	for {
		choice, ok := a.menu(sessionType)
		if !ok {
			// Input ended mid-session; close it with whatever was recorded.
			summary, cerr := a.Training.CompleteSession(ctx, sess)
			if cerr != nil {
				return fmt.Errorf("complete session: %w", cerr)
			}
			a.showSummary(summary)
			return ErrInterrupted
		}

		switch choice {
		case "1":
			if sessionType == training.SessionScenarioOnly {
				fmt.Fprintln(a.out, styleHint.Render("This is a scenario-only session."))
				continue
			}
			if err := a.runExercise(ctx, sess); err != nil {
				if errors.Is(err, ErrInterrupted) {
					continue
				}
				fmt.Fprintln(a.out, styleBad.Render("Exercise failed: "+err.Error()))
			}
		case "2":
			if sessionType == training.SessionExerciseOnly {
				fmt.Fprintln(a.out, styleHint.Render("This is an exercise-only session."))
				continue
			}
			if err := a.runScenario(ctx, sess); err != nil {
				if errors.Is(err, ErrInterrupted) {
					continue
				}
				fmt.Fprintln(a.out, styleBad.Render("Scenario failed: "+err.Error()))
			}
		case "s":
			a.showStatus(ctx)
		case "q":
			summary, err := a.Training.CompleteSession(ctx, sess)
			if err != nil {
				return fmt.Errorf("complete session: %w", err)
			}
			a.showSummary(summary)
			return nil
		default:
			fmt.Fprintln(a.out, styleHint.Render("Unknown choice."))
		}
	}
}

func (a *App) menu(sessionType training.SessionType) (string, bool) {
	fmt.Fprintln(a.out, styleHeading.Render("What next?"))
	if sessionType != training.SessionScenarioOnly {
		fmt.Fprintln(a.out, "  [1] Cognitive exercise")
	}
	if sessionType != training.SessionExerciseOnly {
		fmt.Fprintln(a.out, "  [2] Role-playing scenario")
	}
	fmt.Fprintln(a.out, "  [s] Quick stats")
	fmt.Fprintln(a.out, "  [q] Finish session")

	line, ok := a.readLine("> ")
	if !ok {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(line)), true
}

func (a *App) runExercise(ctx context.Context, sess *training.Session) error {
	cats := exercise.Categories()
	fmt.Fprintln(a.out, styleHeading.Render("Pick a category:"))
	for i, c := range cats {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, displayKey(string(c)))
	}

	line, ok := a.readLine("> ")
	if !ok {
		return ErrInterrupted
	}
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > len(cats) {
		return fmt.Errorf("invalid category choice %q", strings.TrimSpace(line))
	}

	tr, err := a.Training.CurrentTracking(ctx, a.UserID)
	if err != nil {
		return err
	}

	ex, err := a.Exercises.Generate(cats[idx-1], tr.Level)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ex.Question)
	fmt.Fprintln(a.out, styleHint.Render(fmt.Sprintf("Time limit %ds. Type 'hint' for a hint.", ex.TimeLimitSecs)))

	hintsUsed := 0
	start := a.now()
	var answer string
	for {
		line, ok := a.readLine("answer> ")
		if !ok {
			return ErrInterrupted
		}
		if strings.EqualFold(strings.TrimSpace(line), "hint") {
			if hintsUsed < len(ex.Hints) {
				fmt.Fprintln(a.out, styleHint.Render("Hint: "+ex.Hints[hintsUsed]))
				hintsUsed++
			} else {
				fmt.Fprintln(a.out, styleHint.Render("No hints left."))
			}
			continue
		}
		answer = line
		break
	}
	elapsed := int(a.now().Sub(start).Seconds())

	res := a.Exercises.Validate(ex, answer, elapsed, hintsUsed)
	if res.IsCorrect {
		fmt.Fprintln(a.out, styleGood.Render(fmt.Sprintf("Correct! Score: %.0f", res.Score)))
	} else {
		fmt.Fprintln(a.out, styleBad.Render("Not quite."))
		fmt.Fprintf(a.out, "The answer was: %s\n", ex.Answer)
	}

	change, err := a.Training.RecordOutcome(ctx, sess, training.ExerciseOutcome{Exercise: ex, Result: res})
	if err != nil {
		return err
	}
	a.showLevelChange(change)
	return nil
}

func (a *App) runScenario(ctx context.Context, sess *training.Session) error {
	types := scenario.Types()
	fmt.Fprintln(a.out, styleHeading.Render("Pick a scenario type:"))
	for i, t := range types {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, displayKey(string(t)))
	}

	line, ok := a.readLine("> ")
	if !ok {
		return ErrInterrupted
	}
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > len(types) {
		return fmt.Errorf("invalid scenario choice %q", strings.TrimSpace(line))
	}

	tr, err := a.Training.CurrentTracking(ctx, a.UserID)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, styleHint.Render("Setting the scene..."))
	sc, err := a.Scenarios.Create(ctx, types[idx-1], tr.Level)
	if err != nil {
		return err
	}
	defer a.Scenarios.Cleanup(sc.ID)

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, styleTitle.Render(sc.Title))
	fmt.Fprintln(a.out, sc.Context)
	if p := sc.Primary(); p != nil {
		fmt.Fprintf(a.out, "You are talking to %s (%s).\n", p.Name, p.Role)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, sc.CurrentSituation)

	for !sc.IsComplete {
		a.showActions(sc.AvailableActions)

		line, ok := a.readLine("decision> ")
		if !ok {
			return ErrInterrupted
		}
		decision := resolveDecision(line, sc.AvailableActions)
		if decision == "" {
			fmt.Fprintln(a.out, styleHint.Render("Say what you do, or pick a numbered option."))
			continue
		}

		out, err := a.Scenarios.SubmitDecision(ctx, sc.ID, decision)
		if err != nil {
			// The turn did not advance; the same decision can be retried.
			fmt.Fprintln(a.out, styleBad.Render("That didn't land: "+err.Error()))
			continue
		}

		fmt.Fprintln(a.out)
		if p := sc.Primary(); p != nil {
			fmt.Fprintf(a.out, "%s: %s\n", styleHeading.Render(p.Name), out.AIResponse)
		}
		fmt.Fprintln(a.out, out.NarrativeUpdate)
		fmt.Fprintln(a.out, styleHint.Render(fmt.Sprintf("Decision quality: %.0f/100", out.DecisionQuality)))

		if out.IsComplete && out.Conclusion != nil {
			a.showConclusion(out.Conclusion)

			change, err := a.Training.RecordOutcome(ctx, sess, training.ScenarioOutcome{
				Scenario:   sc,
				Conclusion: out.Conclusion,
			})
			if err != nil {
				return err
			}
			a.showLevelChange(change)
		}
	}
	return nil
}

func (a *App) showActions(actions []string) {
	if len(actions) == 0 {
		return
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, styleHint.Render("Suggested actions (or type your own):"))
	for i, action := range actions {
		fmt.Fprintf(a.out, "  [%d] %s\n", i+1, action)
	}
}

// resolveDecision maps a numeric choice to its suggested action; anything
// else is taken as free text. Empty input resolves to nothing.
func resolveDecision(line string, actions []string) string {
	text := strings.TrimSpace(line)
	if text == "" {
		return ""
	}
	if idx, err := strconv.Atoi(text); err == nil && idx >= 1 && idx <= len(actions) {
		return actions[idx-1]
	}
	return text
}

func (a *App) showConclusion(c *scenario.Conclusion) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, styleTitle.Render("Scenario complete"))
	fmt.Fprintf(a.out, "Turns: %d   Average quality: %.1f/100   Grade: %s\n",
		c.TotalTurns, c.AverageScore, c.PerformanceGrade)
	fmt.Fprintln(a.out, c.Summary)
}

func (a *App) showLevelChange(change *difficulty.LevelChange) {
	if change == nil {
		return
	}
	style := styleGood
	if change.Direction == difficulty.DirectionDown {
		style = styleHint
	}
	fmt.Fprintln(a.out, style.Render(change.Message))
}

func (a *App) showStatus(ctx context.Context) {
	qs, err := a.Reporter.QuickStats(ctx, a.UserID)
	if err != nil {
		fmt.Fprintln(a.out, styleBad.Render("Stats unavailable: "+err.Error()))
		return
	}
	prog, err := a.Training.Progress(ctx, a.UserID)
	if err != nil {
		fmt.Fprintln(a.out, styleBad.Render("Stats unavailable: "+err.Error()))
		return
	}

	fmt.Fprintln(a.out, styleHeading.Render("Last 7 days"))
	fmt.Fprintf(a.out, "  Exercises: %d   Scenarios: %d\n", qs.Exercises, qs.Scenarios)
	if qs.AverageScore != nil {
		fmt.Fprintf(a.out, "  Average score: %.1f\n", *qs.AverageScore)
	} else {
		fmt.Fprintln(a.out, "  No activity recorded yet.")
	}
	if qs.BestCategory != "" {
		fmt.Fprintf(a.out, "  Best category: %s (%.1f)\n", qs.BestCategory, qs.BestScore)
	}

	fmt.Fprintf(a.out, "  Difficulty level: %d/5\n", prog.Level)
	if prog.Direction != "" {
		fmt.Fprintf(a.out, "  Streak: %d of %d toward a level-%s\n",
			prog.CurrentStreak, prog.Required, prog.Direction)
	}
	fmt.Fprintln(a.out)
}

func (a *App) showSummary(s *training.Summary) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, styleTitle.Render("Session summary"))
	fmt.Fprintf(a.out, "  Exercises: %d   Scenarios: %d   Duration: %ds\n",
		s.Exercises, s.Scenarios, s.DurationSecs)
	if s.AverageScore != nil {
		fmt.Fprintf(a.out, "  Average score: %.1f\n", *s.AverageScore)
	} else {
		fmt.Fprintln(a.out, "  No activities completed.")
	}
	fmt.Fprintln(a.out, styleGood.Render(s.Recommendation))
}

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, stylePrompt.Render(prompt))
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

// displayKey turns a snake_case key into a menu label.
func displayKey(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}
