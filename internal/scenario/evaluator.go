package scenario

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"text/template"

	"github.com/abhisek/cogniplay/internal/llm"
)

// EvaluatorConfig holds configuration for the decision evaluator.
type EvaluatorConfig struct {
	MaxTokens   int
	Temperature float64

	// FallbackScore is the neutral quality assigned when evaluation
	// fails, whatever the cause.
	FallbackScore float64
}

// DefaultEvaluatorConfig returns sensible defaults. The response is a bare
// number, so the token budget is tiny.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxTokens:     10,
		Temperature:   0.3,
		FallbackScore: 70.0,
	}
}

// Evaluator scores trainee decisions 0-100 via the LLM. It never returns
// an error: any failure, from transport to an unparseable reply, degrades
// to the configured fallback score so a scoring hiccup cannot sink a turn.
type Evaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewEvaluator creates a decision evaluator. The provider is typically the
// cheaper fallback-model route; scoring is high-volume and single-token.
func NewEvaluator(provider llm.Provider, cfg EvaluatorConfig) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

const evaluationSystemPrompt = "You are a strict judge of decision quality in training scenarios. Respond with ONLY a number between 0 and 100."

var evaluationTemplate = template.Must(template.New("evaluation").Parse(`Evaluate the quality of this decision in a {{.Type}} scenario.

Context: {{.Situation}}
User's decision: {{.Decision}}
Outcome: {{.Outcome}}

Rate the decision on a scale of 0-100 based on:
- Appropriateness for the situation
- Strategic thinking
- Communication effectiveness
- Problem-solving approach
- Consideration of consequences

Respond with ONLY a number between 0-100.`))

type evaluationInput struct {
	Type      Type
	Situation string
	Decision  string
	Outcome   string
}

// Evaluate scores a decision against the situation it was made in and the
// narrative outcome it produced.
func (e *Evaluator) Evaluate(ctx context.Context, typ Type, situation, decision, outcome string) float64 {
	ctx = llm.WithPurpose(ctx, "decision-evaluation")

	var buf bytes.Buffer
	if err := evaluationTemplate.Execute(&buf, evaluationInput{
		Type:      typ,
		Situation: situation,
		Decision:  decision,
		Outcome:   outcome,
	}); err != nil {
		return e.cfg.FallbackScore
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      evaluationSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buf.String()}},
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return e.cfg.FallbackScore
	}

	score, ok := parseScore(string(resp.Content))
	if !ok {
		return e.cfg.FallbackScore
	}
	return score
}

// parseScore extracts the first numeric substring and clamps it to [0,100].
func parseScore(s string) (float64, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, false
	}

	end := start
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}

	score, err := strconv.ParseFloat(strings.TrimSuffix(s[start:end], "."), 64)
	if err != nil {
		return 0, false
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, true
}
