package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/cogniplay/internal/app"
	"github.com/abhisek/cogniplay/internal/character"
	"github.com/abhisek/cogniplay/internal/difficulty"
	"github.com/abhisek/cogniplay/internal/exercise"
	"github.com/abhisek/cogniplay/internal/llm"
	"github.com/abhisek/cogniplay/internal/report"
	"github.com/abhisek/cogniplay/internal/scenario"
	"github.com/abhisek/cogniplay/internal/store"
	"github.com/abhisek/cogniplay/internal/training"
	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Start a training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := sessionTypeFlag(cmd)
		if err != nil {
			return err
		}
		return runTrain(cmd, typ)
	},
}

func init() {
	trainCmd.Flags().StringP("type", "t", "full", "Session type: full, exercises, or scenarios")
}

func sessionTypeFlag(cmd *cobra.Command) (training.SessionType, error) {
	switch t, _ := cmd.Flags().GetString("type"); t {
	case "full":
		return training.SessionFull, nil
	case "exercises":
		return training.SessionExerciseOnly, nil
	case "scenarios":
		return training.SessionScenarioOnly, nil
	default:
		return "", fmt.Errorf("unknown session type %q (want full, exercises, or scenarios)", t)
	}
}

// runTrain opens the store, builds the engines, and hands control to the
// interactive trainer loop.
func runTrain(cmd *cobra.Command, typ training.SessionType) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	manager := training.NewManager(difficulty.DefaultConfig(), eventRepo, st.TrackingRepo())
	reporter := report.NewReporter(eventRepo, report.DefaultConfig())
	exercises := exercise.New(exercise.DefaultConfig(), nil)

	// Scenarios need an LLM. Without one the session degrades to
	// exercise-only rather than failing outright.
	var scenarios *scenario.Engine
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		if typ == training.SessionScenarioOnly {
			return fmt.Errorf("scenarios require an LLM provider: %w", err)
		}
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Scenarios will be unavailable; running exercises only.")
		typ = training.SessionExerciseOnly
	} else {
		// Decision scoring runs on the cheaper fallback-model route when
		// one is configured.
		evalProvider, err := llm.NewEvaluationProviderFromEnv(ctx, eventRepo)
		if err != nil {
			evalProvider = provider
		}
		evaluator := scenario.NewEvaluator(evalProvider, scenario.DefaultEvaluatorConfig())
		chargen := character.NewGenerator(nil)
		scenarios = scenario.NewEngine(provider, evaluator, chargen, scenario.DefaultConfig())
	}

	a := app.New(resolveUserID(cmd), exercises, scenarios, manager, reporter, os.Stdin, os.Stdout)
	return a.Run(ctx, typ)
}
